package calendarValidator

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"pathwise/middleware"
)

// EventRequest is the validated calendar event payload
type EventRequest struct {
	Title string    `json:"title"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Event validates create and update payloads
func Event() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EventRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.Start.IsZero() {
			errors["start"] = "Start time is required!"
		}
		if reqData.End.IsZero() {
			reqData.End = reqData.Start.Add(30 * time.Minute)
		} else if !reqData.End.After(reqData.Start) {
			errors["end"] = "End must be after start!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEvent", reqData)
		return c.Next()
	}
}
