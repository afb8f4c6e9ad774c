package streakValidator

import (
	"github.com/gofiber/fiber/v2"

	"pathwise/catalog"
	"pathwise/middleware"
	"pathwise/planner"
)

// CompleteRequest is the validated manual session completion payload
type CompleteRequest struct {
	CourseID        string `json:"courseId"`
	LessonID        string `json:"lessonId"`
	Technique       string `json:"technique"`
	DurationMinutes int    `json:"durationMinutes"`
}

// Complete validator middleware
func Complete() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CompleteRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID != "" {
			if _, ok := catalog.FindCourse(reqData.CourseID); !ok {
				errors["courseId"] = "Unknown course!"
			}
		}
		if reqData.LessonID != "" {
			if _, _, _, ok := catalog.FindLesson(reqData.LessonID); !ok {
				errors["lessonId"] = "Unknown lesson!"
			}
		}

		if reqData.Technique == "" {
			reqData.Technique = "pomodoro"
		}
		technique, ok := planner.FindTechnique(reqData.Technique)
		if !ok {
			errors["technique"] = "Unknown study technique!"
		} else if reqData.DurationMinutes < 1 {
			reqData.DurationMinutes = technique.StudyMinutes
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSession", reqData)
		return c.Next()
	}
}
