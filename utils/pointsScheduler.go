package utils

import (
	"log"
	"time"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"

	"pathwise/database"
	"pathwise/models"
)

// InitializePointsScheduler starts the weekly leaderboard reset and the
// daily session reminder jobs
func InitializePointsScheduler() {
	log.Println("[POINTS-SCHEDULER] Initializing points scheduler...")

	c := cron.New()

	// Sunday midnight: new leaderboard week
	c.AddFunc("0 0 * * 0", func() {
		log.Println("[POINTS-SCHEDULER] Running weekly points reset...")
		ResetWeeklyPoints()
	})

	// Every morning at 8 AM: remind users of today's sessions
	c.AddFunc("0 8 * * *", func() {
		log.Println("[POINTS-SCHEDULER] Sending session reminders...")
		SendSessionReminders()
	})

	c.Start()
	log.Println("[POINTS-SCHEDULER] Points scheduler started")
}

// ResetWeeklyPoints zeroes every user's weekly bucket. Total points are
// untouched.
func ResetWeeklyPoints() {
	db := database.Database.Db

	result := db.Model(&models.User{}).
		Where("is_deleted = ?", false).
		Update("points_weekly", 0)
	if result.Error != nil {
		log.Printf("[POINTS-SCHEDULER] Error resetting weekly points: %v", result.Error)
		return
	}

	log.Printf("[POINTS-SCHEDULER] Weekly points reset for %d users", result.RowsAffected)
}

// SendSessionReminders emails users with a not-yet-notified calendar
// event scheduled for today
func SendSessionReminders() {
	db := database.Database.Db

	dayStart := now.BeginningOfDay()
	dayEnd := now.EndOfDay()

	var events []models.CalendarEvent
	err := db.
		Where("notified = ? AND is_deleted = ?", false, false).
		Where("start BETWEEN ? AND ?", dayStart, dayEnd).
		Preload("User").
		Find(&events).Error
	if err != nil {
		log.Printf("[POINTS-SCHEDULER] Error fetching today's events: %v", err)
		return
	}

	log.Printf("[POINTS-SCHEDULER] Found %d sessions scheduled for today", len(events))

	for _, event := range events {
		if event.User.Email == "" || event.User.IsDeleted {
			continue
		}

		SendSessionReminderEmail(event.User.Email, event.User.Name, event.Title, event.Start.Format("15:04"))

		event.Notified = true
		if err := db.Save(&event).Error; err != nil {
			log.Printf("[POINTS-SCHEDULER] Error marking event %d as notified: %v", event.ID, err)
		}

		time.Sleep(100 * time.Millisecond) // avoid hammering the SMTP relay
	}
}
