package planner

import (
	"fmt"
	"time"

	"github.com/jinzhu/now"

	"pathwise/catalog"
)

// Config modes
const (
	ModePeriod = "period"
	ModeCustom = "custom"
)

// SessionConfig carries the user's scheduling choices. Period mode uses
// StartDate/EndDate/SessionsPerWeek; custom mode uses TotalSessions and
// PreferredDays. SessionDuration applies to both.
type SessionConfig struct {
	TechniqueID     string    `json:"technique"`
	Mode            string    `json:"mode"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	SessionsPerWeek int       `json:"sessionsPerWeek"`
	SessionDuration int       `json:"sessionDuration"` // minutes
	TotalSessions   int       `json:"totalSessions"`
	PreferredDays   []string  `json:"preferredDays"`
}

// PlanLesson is a lesson as scheduled inside a plan session
type PlanLesson struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	HasQuiz     bool   `json:"has_quiz"`
	UnitTitle   string `json:"unit_title"`
}

// PlanSession is a dated, timed batch of lessons from one unit
type PlanSession struct {
	ID        string       `json:"id"`
	Date      string       `json:"date"` // YYYY-MM-DD
	Time      string       `json:"time"` // HH:MM
	UnitTitle string       `json:"unit_title"`
	Lessons   []PlanLesson `json:"lessons"`
}

// Plan is the generated study schedule for one course
type Plan struct {
	CourseID      string        `json:"course_id"`
	Title         string        `json:"title"`
	TechniqueID   string        `json:"technique"`
	TechniqueName string        `json:"technique_name"`
	TotalSessions int           `json:"total_sessions"`
	TotalDuration int           `json:"total_duration"` // minutes
	Sessions      []PlanSession `json:"sessions"`
}

const lessonsPerSession = 2

var sessionTimes = []string{"09:00", "14:00", "16:00", "19:00"}

// GeneratePlan builds the study schedule for a course. Pure: the same
// course and config always produce the same session list. Lessons are
// taken in catalog order and batched two per session within each unit;
// session dates advance two days per session from the start date, with
// the time of day cycling through four fixed slots.
func GeneratePlan(course *catalog.Course, cfg SessionConfig) Plan {
	start := cfg.StartDate
	if start.IsZero() {
		start = time.Now()
	}
	start = now.With(start).BeginningOfDay()

	techniqueName := "Pomodoro"
	if t, ok := FindTechnique(cfg.TechniqueID); ok {
		techniqueName = t.Name
	}

	plan := Plan{
		CourseID:      course.ID,
		Title:         course.Name,
		TechniqueID:   cfg.TechniqueID,
		TechniqueName: techniqueName,
	}

	sessionIndex := 0
	for _, unit := range course.Units {
		unitLessons := make([]PlanLesson, 0, len(unit.Lessons))
		for _, lesson := range unit.Lessons {
			plan.TotalDuration += lesson.Duration
			unitLessons = append(unitLessons, PlanLesson{
				ID:          lesson.ID,
				Title:       lesson.Title,
				Description: lesson.Description,
				Duration:    lesson.Duration,
				HasQuiz:     len(lesson.Quiz) > 0,
				UnitTitle:   unit.Title,
			})
		}

		for i := 0; i < len(unitLessons); i += lessonsPerSession {
			end := i + lessonsPerSession
			if end > len(unitLessons) {
				end = len(unitLessons)
			}
			sessionDate := start.AddDate(0, 0, sessionIndex*2)

			plan.Sessions = append(plan.Sessions, PlanSession{
				ID:        fmt.Sprintf("session-%d", sessionIndex),
				Date:      sessionDate.Format("2006-01-02"),
				Time:      sessionTimes[sessionIndex%len(sessionTimes)],
				UnitTitle: unit.Title,
				Lessons:   unitLessons[i:end],
			})
			sessionIndex++
		}
	}

	plan.TotalSessions = len(plan.Sessions)
	return plan
}
