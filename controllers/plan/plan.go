package planController

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"pathwise/catalog"
	"pathwise/database"
	"pathwise/middleware"
	"pathwise/models"
	"pathwise/planner"
	planValidator "pathwise/validators/plan"
)

// planSnapshot is what gets persisted in the StudyPlan JSON column
type planSnapshot struct {
	Plan       planner.Plan           `json:"plan"`
	Validation planner.TimeValidation `json:"validation"`
}

// Generate builds a plan for a course, stores the snapshot and seeds
// calendar events for every session. The time validation is advisory:
// an underfunded config still yields a plan.
func Generate(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedPlan").(*planValidator.GenerateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	course, ok := catalog.FindCourse(reqData.CourseID)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	cfg := planner.SessionConfig{
		TechniqueID:     reqData.Technique,
		Mode:            reqData.Mode,
		SessionsPerWeek: reqData.SessionsPerWeek,
		SessionDuration: reqData.SessionDuration,
		TotalSessions:   reqData.TotalSessions,
		PreferredDays:   reqData.PreferredDays,
	}
	if reqData.StartDate != "" {
		cfg.StartDate, _ = time.Parse("2006-01-02", reqData.StartDate)
	}
	if reqData.EndDate != "" {
		cfg.EndDate, _ = time.Parse("2006-01-02", reqData.EndDate)
	}

	validation := planner.ValidateStudyTime(course, cfg)
	plan := planner.GeneratePlan(course, cfg)

	content, err := json.Marshal(planSnapshot{Plan: plan, Validation: validation})
	if err != nil {
		log.Printf("Error encoding plan snapshot: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate plan!", nil)
	}

	record := models.StudyPlan{
		PublicID:  uuid.NewString(),
		OwnerID:   userID,
		CourseID:  course.ID,
		Title:     course.Name,
		Technique: reqData.Technique,
		Content:   content,
	}

	db := database.Database.Db
	if err := db.Create(&record).Error; err != nil {
		log.Printf("Error saving study plan: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save plan!", nil)
	}

	seedCalendarEvents(userID, record.ID, plan, cfg)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Plan generated successfully.", fiber.Map{
		"plan_id":    record.PublicID,
		"plan":       plan,
		"validation": validation,
	})
}

// seedCalendarEvents creates one event per plan session. Failures are
// logged and swallowed; the plan itself is already saved.
func seedCalendarEvents(userID, planID uint, plan planner.Plan, cfg planner.SessionConfig) {
	duration := cfg.SessionDuration
	if duration < 1 {
		if t, ok := planner.FindTechnique(cfg.TechniqueID); ok {
			duration = t.StudyMinutes
		} else {
			duration = 25
		}
	}

	db := database.Database.Db
	for _, session := range plan.Sessions {
		start, err := time.Parse("2006-01-02 15:04", session.Date+" "+session.Time)
		if err != nil {
			log.Printf("Error parsing session schedule %s %s: %v", session.Date, session.Time, err)
			continue
		}

		event := models.CalendarEvent{
			OwnerID: userID,
			PlanID:  &planID,
			Title:   plan.Title + " — " + session.UnitTitle,
			Start:   start,
			End:     start.Add(time.Duration(duration) * time.Minute),
		}
		if err := db.Create(&event).Error; err != nil {
			log.Printf("Error creating calendar event for session %s: %v", session.ID, err)
		}
	}
}

// Detail returns a stored plan snapshot by its public id
func Detail(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var record models.StudyPlan
	err := database.Database.Db.
		Where("public_id = ? AND owner_id = ? AND is_deleted = ?", c.Params("id"), userID, false).
		First(&record).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Plan not found!", nil)
	}

	var snapshot planSnapshot
	if err := json.Unmarshal(record.Content, &snapshot); err != nil {
		log.Printf("Error decoding plan snapshot %s: %v", record.PublicID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load plan!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Plan fetched successfully.", fiber.Map{
		"plan_id":    record.PublicID,
		"created_at": record.CreatedAt,
		"plan":       snapshot.Plan,
		"validation": snapshot.Validation,
	})
}

// List returns the caller's plans, newest first, without session bodies
func List(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var records []models.StudyPlan
	err := database.Database.Db.
		Where("owner_id = ? AND is_deleted = ?", userID, false).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		log.Printf("Error listing study plans: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to list plans!", nil)
	}

	type planSummary struct {
		PlanID    string    `json:"plan_id"`
		CourseID  string    `json:"course_id"`
		Title     string    `json:"title"`
		Technique string    `json:"technique"`
		CreatedAt time.Time `json:"created_at"`
	}

	summaries := make([]planSummary, 0, len(records))
	for _, r := range records {
		summaries = append(summaries, planSummary{
			PlanID:    r.PublicID,
			CourseID:  r.CourseID,
			Title:     r.Title,
			Technique: r.Technique,
			CreatedAt: r.CreatedAt,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Plans fetched successfully.", summaries)
}
