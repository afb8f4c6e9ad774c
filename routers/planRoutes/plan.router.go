package planRoutes

import (
	"github.com/gofiber/fiber/v2"

	planControllers "pathwise/controllers/plan"
	"pathwise/middleware"
	planValidators "pathwise/validators/plan"
)

func SetupPlanRoutes(app *fiber.App) {
	planGroup := app.Group("/plan")

	planGroup.Post("/generate", middleware.JWTMiddleware, planValidators.Generate(), planControllers.Generate)
	planGroup.Get("/list", middleware.JWTMiddleware, planControllers.List)
	planGroup.Get("/:id", middleware.JWTMiddleware, planControllers.Detail)
}
