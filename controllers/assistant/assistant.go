package assistantController

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"pathwise/assistant"
	"pathwise/config"
	"pathwise/middleware"
	assistantValidator "pathwise/validators/assistant"
)

var responder assistant.Responder

// Init picks the chat backend: a remote completion API when one is
// configured, the built-in keyword lookup otherwise.
func Init() {
	if config.AppConfig.AssistantApiURL != "" {
		log.Printf("[ASSISTANT] Using remote backend at %s", config.AppConfig.AssistantApiURL)
		responder = assistant.NewRemoteResponder(config.AppConfig.AssistantApiURL, config.AppConfig.AssistantApiKey)
		return
	}
	responder = assistant.NewKeywordResponder()
}

// Chat answers a study question
func Chat(c *fiber.Ctx) error {
	if _, ok := c.Locals("userId").(uint); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedChat").(*assistantValidator.ChatRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if responder == nil {
		Init()
	}

	reply, err := responder.Respond(c.Context(), assistant.Message{
		Content: reqData.Message,
		Subject: reqData.Subject,
		PlanID:  reqData.PlanID,
	})
	if err != nil {
		log.Printf("Error from assistant backend: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Assistant is unavailable!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reply generated successfully.", reply)
}
