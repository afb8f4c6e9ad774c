package quizValidator

import (
	"github.com/gofiber/fiber/v2"

	"pathwise/middleware"
)

// SubmitRequest is the validated quiz submission payload. Seed must
// match the one the quiz was fetched with so the graded questions are
// the same sampled set.
type SubmitRequest struct {
	CourseID string `json:"courseId"`
	LessonID string `json:"lessonId"`
	Seed     int64  `json:"seed"`
	Answers  []int  `json:"answers"`
}

// Submit validator middleware
func Submit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubmitRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID == "" {
			errors["courseId"] = "Course is required!"
		}
		if reqData.LessonID == "" {
			errors["lessonId"] = "Lesson is required!"
		}
		if len(reqData.Answers) == 0 {
			errors["answers"] = "Please answer at least one question!"
		}
		for _, a := range reqData.Answers {
			if a < -1 || a > 10 {
				errors["answers"] = "Answer indexes are out of range!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}
