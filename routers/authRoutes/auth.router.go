package authRoutes

import (
	"github.com/gofiber/fiber/v2"

	authControllers "pathwise/controllers/auth"
	"pathwise/middleware"
	authValidators "pathwise/validators/auth"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidators.Signup(), authControllers.Signup)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)

	userGroup := app.Group("/user")
	userGroup.Get("/profile", middleware.JWTMiddleware, authControllers.Profile)
}
