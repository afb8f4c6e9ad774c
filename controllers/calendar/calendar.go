package calendarController

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"pathwise/database"
	"pathwise/middleware"
	"pathwise/models"
	calendarValidator "pathwise/validators/calendar"
)

// List returns the caller's events in chronological order
func List(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var events []models.CalendarEvent
	err := database.Database.Db.
		Where("owner_id = ? AND is_deleted = ?", userID, false).
		Order("start ASC").
		Find(&events).Error
	if err != nil {
		log.Printf("Error listing calendar events: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to list events!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Events fetched successfully.", events)
}

// Create adds a manual event
func Create(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedEvent").(*calendarValidator.EventRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	event := models.CalendarEvent{
		OwnerID: userID,
		Title:   reqData.Title,
		Start:   reqData.Start,
		End:     reqData.End,
	}
	if err := database.Database.Db.Create(&event).Error; err != nil {
		log.Printf("Error creating calendar event: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create event!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Event created successfully.", event)
}

// Update edits a caller-owned event
func Update(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedEvent").(*calendarValidator.EventRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var event models.CalendarEvent
	err := database.Database.Db.
		Where("id = ? AND owner_id = ? AND is_deleted = ?", c.Params("id"), userID, false).
		First(&event).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Event not found!", nil)
	}

	event.Title = reqData.Title
	event.Start = reqData.Start
	event.End = reqData.End
	event.Notified = false
	if err := database.Database.Db.Save(&event).Error; err != nil {
		log.Printf("Error updating calendar event: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update event!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Event updated successfully.", event)
}

// Delete soft-deletes a caller-owned event
func Delete(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var event models.CalendarEvent
	err := database.Database.Db.
		Where("id = ? AND owner_id = ? AND is_deleted = ?", c.Params("id"), userID, false).
		First(&event).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Event not found!", nil)
	}

	event.IsDeleted = true
	if err := database.Database.Db.Save(&event).Error; err != nil {
		log.Printf("Error deleting calendar event: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete event!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Event deleted successfully.", nil)
}
