package quizRoutes

import (
	"github.com/gofiber/fiber/v2"

	quizControllers "pathwise/controllers/quiz"
	"pathwise/middleware"
	quizValidators "pathwise/validators/quiz"
)

func SetupQuizRoutes(app *fiber.App) {
	quizGroup := app.Group("/quiz")

	quizGroup.Post("/submit", middleware.JWTMiddleware, quizValidators.Submit(), quizControllers.Submit)
	quizGroup.Get("/:courseId/:lessonId", middleware.JWTMiddleware, quizControllers.Questions)
}
