package pricingController

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"pathwise/database"
	"pathwise/middleware"
	"pathwise/models"
)

// Plans returns the seeded subscription tiers
func Plans(c *fiber.Ctx) error {
	var plans []models.SubscriptionPlan
	err := database.Database.Db.
		Where("is_deleted = ?", false).
		Order("price ASC").
		Find(&plans).Error
	if err != nil {
		log.Printf("Error fetching subscription plans: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch plans!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Plans fetched successfully.", plans)
}
