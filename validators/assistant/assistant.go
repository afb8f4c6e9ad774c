package assistantValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"pathwise/middleware"
)

// ChatRequest is the validated chat payload
type ChatRequest struct {
	Message string `json:"message"`
	Subject string `json:"subject"`
	PlanID  string `json:"planId"`
}

// Chat validator middleware
func Chat() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ChatRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Message)) == 0 {
			errors["message"] = "Message is required!"
		} else if len(reqData.Message) > 2000 {
			errors["message"] = "Message must be under 2000 characters!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedChat", reqData)
		return c.Next()
	}
}
