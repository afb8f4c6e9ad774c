package catalogController

import (
	"github.com/gofiber/fiber/v2"

	"pathwise/catalog"
	"pathwise/middleware"
	"pathwise/planner"
)

// CourseList returns catalog summaries without the lesson bodies
func CourseList(c *fiber.Ctx) error {
	type courseSummary struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Icon        string `json:"icon"`
		Color       string `json:"color"`
		Description string `json:"description"`
		Units       int    `json:"units"`
		Lessons     int    `json:"lessons"`
		Duration    int    `json:"duration"` // minutes
	}

	courses := catalog.Courses()
	summaries := make([]courseSummary, 0, len(courses))
	for i := range courses {
		course := &courses[i]
		summaries = append(summaries, courseSummary{
			ID:          course.ID,
			Name:        course.Name,
			Icon:        course.Icon,
			Color:       course.Color,
			Description: course.Description,
			Units:       len(course.Units),
			Lessons:     catalog.TotalLessons(course),
			Duration:    catalog.TotalDuration(course),
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", summaries)
}

// CourseDetail returns the full unit/lesson tree for one course
func CourseDetail(c *fiber.Ctx) error {
	course, ok := catalog.FindCourse(c.Params("id"))
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully.", course)
}

// LessonDetail returns a lesson with its deep study content when the
// catalog carries one
func LessonDetail(c *fiber.Ctx) error {
	lesson, unit, course, ok := catalog.FindLesson(c.Params("id"))
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	payload := fiber.Map{
		"lesson":     lesson,
		"unit_id":    unit.ID,
		"unit_title": unit.Title,
		"course_id":  course.ID,
	}
	if content, ok := catalog.ContentForLesson(lesson.ID); ok {
		payload["content"] = content
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson fetched successfully.", payload)
}

// TechniqueList returns the supported study techniques
func TechniqueList(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Techniques fetched successfully.", planner.Techniques())
}
