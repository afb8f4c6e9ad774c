package materialRoutes

import (
	"github.com/gofiber/fiber/v2"

	materialControllers "pathwise/controllers/material"
	"pathwise/middleware"
)

func SetupMaterialRoutes(app *fiber.App) {
	materialGroup := app.Group("/material")

	materialGroup.Post("/upload", middleware.JWTMiddleware, materialControllers.Upload)
	materialGroup.Get("/list", middleware.JWTMiddleware, materialControllers.List)
}
