package assistantRoutes

import (
	"github.com/gofiber/fiber/v2"

	assistantControllers "pathwise/controllers/assistant"
	"pathwise/middleware"
	assistantValidators "pathwise/validators/assistant"
)

func SetupAssistantRoutes(app *fiber.App) {
	assistantGroup := app.Group("/assistant")

	assistantGroup.Post("/chat", middleware.JWTMiddleware, assistantValidators.Chat(), assistantControllers.Chat)
}
