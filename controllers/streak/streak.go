package streakController

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"

	"pathwise/database"
	"pathwise/middleware"
	"pathwise/models"
	"pathwise/streak"
	streakValidator "pathwise/validators/streak"
)

// SessionPoints is awarded for a manually completed study session
const SessionPoints = 15

func mondayWeek(t time.Time) time.Time {
	cfg := &now.Config{WeekStartDay: time.Monday}
	return cfg.With(t).BeginningOfWeek()
}

// weeklyActivity marks the weekdays with any completed session or quiz
// attempt since Monday
func weeklyActivity(userID uint) [7]bool {
	var week [7]bool
	weekStart := mondayWeek(time.Now())
	db := database.Database.Db

	var sessions []models.StudySession
	db.Where("user_id = ? AND completed = ? AND is_deleted = ? AND created_at >= ?", userID, true, false, weekStart).
		Find(&sessions)
	for _, s := range sessions {
		week[(int(s.CreatedAt.Weekday())+6)%7] = true
	}

	var attempts []models.QuizAttempt
	db.Where("user_id = ? AND is_deleted = ? AND created_at >= ?", userID, false, weekStart).
		Find(&attempts)
	for _, a := range attempts {
		week[(int(a.CreatedAt.Weekday())+6)%7] = true
	}

	return week
}

// Detail returns the caller's streak, weekly activity and accuracy
func Detail(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	data := streak.Data{
		Current:      user.StreakCurrent,
		Longest:      user.StreakLongest,
		LastActivity: user.StreakLastActivity,
		TotalQuizzes: user.TotalQuizzes,
		TotalCorrect: user.TotalCorrect,
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Streak fetched successfully.", fiber.Map{
		"current":       data.Current,
		"longest":       data.Longest,
		"last_activity": data.LastActivity,
		"weekly":        weeklyActivity(userID),
		"total_quizzes": data.TotalQuizzes,
		"accuracy":      data.Accuracy(),
		"points_total":  user.PointsTotal,
		"points_weekly": user.PointsWeekly,
	})
}

// Complete records a finished study session and advances the streak by
// the same day-gap rules quizzes use
func Complete(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedSession").(*streakValidator.CompleteRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	session := models.StudySession{
		UserID:          userID,
		CourseID:        reqData.CourseID,
		LessonID:        reqData.LessonID,
		Technique:       reqData.Technique,
		DurationMinutes: reqData.DurationMinutes,
		Completed:       true,
	}
	if err := db.Create(&session).Error; err != nil {
		log.Printf("Error saving study session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save session!", nil)
	}

	data := streak.Advance(streak.Data{
		Current:      user.StreakCurrent,
		Longest:      user.StreakLongest,
		LastActivity: user.StreakLastActivity,
	}, time.Now())

	user.StreakCurrent = data.Current
	user.StreakLongest = data.Longest
	user.StreakLastActivity = data.LastActivity
	user.PointsTotal += SessionPoints
	user.PointsWeekly += SessionPoints
	if err := db.Save(&user).Error; err != nil {
		log.Printf("Error updating streak: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update streak!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session recorded successfully.", fiber.Map{
		"current":        user.StreakCurrent,
		"longest":        user.StreakLongest,
		"points_awarded": SessionPoints,
	})
}

// Leaderboard ranks users by weekly points
func Leaderboard(c *fiber.Ctx) error {
	var users []models.User
	err := database.Database.Db.
		Where("is_deleted = ?", false).
		Order("points_weekly DESC").
		Limit(10).
		Find(&users).Error
	if err != nil {
		log.Printf("Error fetching leaderboard: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch leaderboard!", nil)
	}

	type entry struct {
		Rank         int    `json:"rank"`
		Name         string `json:"name"`
		ProfileImage string `json:"profile_image"`
		PointsWeekly int    `json:"points_weekly"`
		PointsTotal  int    `json:"points_total"`
		Streak       int    `json:"streak"`
	}

	entries := make([]entry, 0, len(users))
	for i, u := range users {
		entries = append(entries, entry{
			Rank:         i + 1,
			Name:         u.Name,
			ProfileImage: u.ProfileImage,
			PointsWeekly: u.PointsWeekly,
			PointsTotal:  u.PointsTotal,
			Streak:       u.StreakCurrent,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Leaderboard fetched successfully.", entries)
}
