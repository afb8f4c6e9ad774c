package calendarRoutes

import (
	"github.com/gofiber/fiber/v2"

	calendarControllers "pathwise/controllers/calendar"
	"pathwise/middleware"
	calendarValidators "pathwise/validators/calendar"
)

func SetupCalendarRoutes(app *fiber.App) {
	calendarGroup := app.Group("/calendar")

	calendarGroup.Get("/list", middleware.JWTMiddleware, calendarControllers.List)
	calendarGroup.Post("/", middleware.JWTMiddleware, calendarValidators.Event(), calendarControllers.Create)
	calendarGroup.Put("/:id", middleware.JWTMiddleware, calendarValidators.Event(), calendarControllers.Update)
	calendarGroup.Delete("/:id", middleware.JWTMiddleware, calendarControllers.Delete)
}
