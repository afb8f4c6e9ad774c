package quizController

import (
	"encoding/json"
	"log"
	"math/rand"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"pathwise/database"
	"pathwise/middleware"
	"pathwise/models"
	"pathwise/quiz"
	"pathwise/streak"
	quizValidator "pathwise/validators/quiz"
)

// PassPoints is awarded for every passed quiz
const PassPoints = 10

// publicQuestion hides the correct index and explanation from the
// fetch payload; they come back with the graded result.
type publicQuestion struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// Questions returns the quiz for a lesson. A seed query pins the
// course-pool sample; without one a fresh seed is generated and
// returned so the client can submit against the same set.
func Questions(c *fiber.Ctx) error {
	courseID := c.Params("courseId")
	lessonID := c.Params("lessonId")

	seed, err := strconv.ParseInt(c.Query("seed"), 10, 64)
	if err != nil {
		seed = time.Now().UnixNano()
	}

	questions, ok := quiz.QuestionsForLesson(courseID, lessonID, rand.New(rand.NewSource(seed)))
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No quiz available for this lesson!", nil)
	}

	public := make([]publicQuestion, 0, len(questions))
	for _, q := range questions {
		public = append(public, publicQuestion{ID: q.ID, Question: q.Question, Options: q.Options})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully.", fiber.Map{
		"course_id": courseID,
		"lesson_id": lessonID,
		"seed":      seed,
		"questions": public,
	})
}

// Submit grades a quiz. Every attempt is recorded; a pass marks the
// lesson complete, advances the streak and awards points.
func Submit(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedQuiz").(*quizValidator.SubmitRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	questions, ok := quiz.QuestionsForLesson(reqData.CourseID, reqData.LessonID, rand.New(rand.NewSource(reqData.Seed)))
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No quiz available for this lesson!", nil)
	}

	result := quiz.Grade(questions, reqData.Answers)

	answersJSON, _ := json.Marshal(reqData.Answers)

	var attempts int64
	db.Model(&models.QuizAttempt{}).
		Where("user_id = ? AND course_id = ? AND lesson_id = ? AND is_deleted = ?", userID, reqData.CourseID, reqData.LessonID, false).
		Count(&attempts)

	attempt := models.QuizAttempt{
		UserID:        userID,
		CourseID:      reqData.CourseID,
		LessonID:      reqData.LessonID,
		Answers:       string(answersJSON),
		Score:         result.Correct,
		MaxScore:      result.Total,
		Percentage:    result.Percentage,
		Passed:        result.Passed,
		AttemptNumber: int(attempts) + 1,
	}
	if err := db.Create(&attempt).Error; err != nil {
		log.Printf("Error saving quiz attempt: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save quiz attempt!", nil)
	}

	// accuracy accumulators move on every attempt, pass or fail
	data := streak.RecordQuiz(streak.Data{
		Current:      user.StreakCurrent,
		Longest:      user.StreakLongest,
		LastActivity: user.StreakLastActivity,
		TotalQuizzes: user.TotalQuizzes,
		TotalCorrect: user.TotalCorrect,
	}, float64(result.Percentage))

	if result.Passed {
		data = streak.Advance(data, time.Now())
		user.PointsTotal += PassPoints
		user.PointsWeekly += PassPoints

		var existing models.LessonCompletion
		err := db.Where("user_id = ? AND lesson_id = ? AND is_deleted = ?", userID, reqData.LessonID, false).
			First(&existing).Error
		if err != nil {
			completion := models.LessonCompletion{
				UserID:   userID,
				CourseID: reqData.CourseID,
				LessonID: reqData.LessonID,
			}
			if err := db.Create(&completion).Error; err != nil {
				log.Printf("Error saving lesson completion: %v", err)
			}
		}
	}

	user.StreakCurrent = data.Current
	user.StreakLongest = data.Longest
	user.StreakLastActivity = data.LastActivity
	user.TotalQuizzes = data.TotalQuizzes
	user.TotalCorrect = data.TotalCorrect
	if err := db.Save(&user).Error; err != nil {
		log.Printf("Error updating user progress: %v", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz graded successfully.", fiber.Map{
		"result":         result,
		"attempt_number": attempt.AttemptNumber,
		"streak":         user.StreakCurrent,
		"points_awarded": passPoints(result.Passed),
	})
}

func passPoints(passed bool) int {
	if passed {
		return PassPoints
	}
	return 0
}
