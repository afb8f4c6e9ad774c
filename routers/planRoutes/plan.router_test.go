package planRoutes

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

// Requests without a token must be rejected before the body is parsed
// or validated
func TestGenerateRequiresAuthBeforeValidation(t *testing.T) {
	app := fiber.New()
	SetupPlanRoutes(app)

	malformed := `{"courseId":"","technique":"nope","mode":"bogus"}`
	req := httptest.NewRequest(fiber.MethodPost, "/plan/generate", strings.NewReader(malformed))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
