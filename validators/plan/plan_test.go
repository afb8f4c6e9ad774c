package planValidator

import (
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func postGenerate(t *testing.T, app *fiber.App, body string) int {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, "/plan/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode
}

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Post("/plan/generate", Generate(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestGenerateValidatorCustomMode(t *testing.T) {
	app := newTestApp()

	ok := `{"courseId":"calculo","technique":"pomodoro","mode":"custom","totalSessions":10,"sessionDuration":45}`
	require.Equal(t, fiber.StatusOK, postGenerate(t, app, ok))

	tooManySessions := `{"courseId":"calculo","technique":"pomodoro","mode":"custom","totalSessions":51,"sessionDuration":45}`
	require.Equal(t, fiber.StatusUnprocessableEntity, postGenerate(t, app, tooManySessions))

	zeroSessions := `{"courseId":"calculo","technique":"pomodoro","mode":"custom","totalSessions":0,"sessionDuration":45}`
	require.Equal(t, fiber.StatusUnprocessableEntity, postGenerate(t, app, zeroSessions))
}

func TestGenerateValidatorDurationRange(t *testing.T) {
	app := newTestApp()

	cases := map[string]struct {
		duration int
		status   int
	}{
		"minimum":        {15, fiber.StatusOK},
		"maximum":        {120, fiber.StatusOK},
		"below minimum":  {10, fiber.StatusUnprocessableEntity},
		"above maximum":  {125, fiber.StatusUnprocessableEntity},
		"off the 5 grid": {47, fiber.StatusUnprocessableEntity},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			body := `{"courseId":"calculo","technique":"pomodoro","mode":"custom","totalSessions":10,"sessionDuration":` +
				strconv.Itoa(tc.duration) + `}`
			require.Equal(t, tc.status, postGenerate(t, app, body))
		})
	}
}

func TestGenerateValidatorPeriodMode(t *testing.T) {
	app := newTestApp()

	ok := `{"courseId":"calculo","technique":"spaced_repetition","mode":"period","startDate":"2026-03-02","endDate":"2026-03-30","sessionsPerWeek":3,"sessionDuration":60}`
	require.Equal(t, fiber.StatusOK, postGenerate(t, app, ok))

	badCadence := `{"courseId":"calculo","technique":"spaced_repetition","mode":"period","startDate":"2026-03-02","endDate":"2026-03-30","sessionsPerWeek":8,"sessionDuration":60}`
	require.Equal(t, fiber.StatusUnprocessableEntity, postGenerate(t, app, badCadence))

	reversedDates := `{"courseId":"calculo","technique":"spaced_repetition","mode":"period","startDate":"2026-03-30","endDate":"2026-03-02","sessionsPerWeek":3,"sessionDuration":60}`
	require.Equal(t, fiber.StatusUnprocessableEntity, postGenerate(t, app, reversedDates))
}
