package planValidator

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"pathwise/middleware"
	"pathwise/planner"
)

// GenerateRequest is the validated payload for plan generation
type GenerateRequest struct {
	CourseID        string   `json:"courseId"`
	Technique       string   `json:"technique"`
	Mode            string   `json:"mode"`
	StartDate       string   `json:"startDate"` // YYYY-MM-DD
	EndDate         string   `json:"endDate"`
	SessionsPerWeek int      `json:"sessionsPerWeek"`
	SessionDuration int      `json:"sessionDuration"`
	TotalSessions   int      `json:"totalSessions"`
	PreferredDays   []string `json:"preferredDays"`
}

func isValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// Generate validator middleware
func Generate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(GenerateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID == "" {
			errors["courseId"] = "Course is required!"
		}

		if _, ok := planner.FindTechnique(reqData.Technique); !ok {
			errors["technique"] = "Unknown study technique!"
		}

		switch reqData.Mode {
		case planner.ModePeriod:
			if !isValidDate(reqData.StartDate) {
				errors["startDate"] = "Start date must be YYYY-MM-DD!"
			}
			if !isValidDate(reqData.EndDate) {
				errors["endDate"] = "End date must be YYYY-MM-DD!"
			}
			if errors["startDate"] == "" && errors["endDate"] == "" && reqData.EndDate < reqData.StartDate {
				errors["endDate"] = "End date must be after start date!"
			}
			if reqData.SessionsPerWeek < 1 || reqData.SessionsPerWeek > 7 {
				errors["sessionsPerWeek"] = "Sessions per week must be between 1 and 7!"
			}
		case planner.ModeCustom:
			if reqData.TotalSessions < 1 || reqData.TotalSessions > 50 {
				errors["totalSessions"] = "Total sessions must be between 1 and 50!"
			}
			if reqData.StartDate != "" && !isValidDate(reqData.StartDate) {
				errors["startDate"] = "Start date must be YYYY-MM-DD!"
			}
		default:
			errors["mode"] = "Mode must be period or custom!"
		}

		if reqData.SessionDuration < 15 || reqData.SessionDuration > 120 || reqData.SessionDuration%5 != 0 {
			errors["sessionDuration"] = "Session duration must be 15 to 120 minutes in steps of 5!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPlan", reqData)
		return c.Next()
	}
}
