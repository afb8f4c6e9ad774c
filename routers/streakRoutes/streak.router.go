package streakRoutes

import (
	"github.com/gofiber/fiber/v2"

	streakControllers "pathwise/controllers/streak"
	"pathwise/middleware"
	streakValidators "pathwise/validators/streak"
)

func SetupStreakRoutes(app *fiber.App) {
	streakGroup := app.Group("/streak")

	streakGroup.Get("/", middleware.JWTMiddleware, streakControllers.Detail)
	streakGroup.Post("/complete", middleware.JWTMiddleware, streakValidators.Complete(), streakControllers.Complete)

	app.Get("/leaderboard", middleware.JWTMiddleware, streakControllers.Leaderboard)
}
