package pricingRoutes

import (
	"github.com/gofiber/fiber/v2"

	pricingControllers "pathwise/controllers/pricing"
)

func SetupPricingRoutes(app *fiber.App) {
	pricingGroup := app.Group("/pricing")

	pricingGroup.Get("/plans", pricingControllers.Plans)
}
