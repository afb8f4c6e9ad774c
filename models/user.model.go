package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	ProfileImage string `gorm:"default:''"`
	Name         string `gorm:"default:''"`
	Email        string `gorm:"unique;not null"`
	Role         string `gorm:"default:'USER'"` // USER, ADMIN
	Password     string `gorm:"not null"`

	SubscriptionPlanID *uint `json:"subscription_plan_id"`

	// Streak tracking
	StreakCurrent      int        `json:"streak_current" gorm:"default:0"`
	StreakLongest      int        `json:"streak_longest" gorm:"default:0"`
	StreakLastActivity *time.Time `json:"streak_last_activity"`

	// Gamification points, weekly bucket resets every Sunday
	PointsTotal  int `json:"points_total" gorm:"default:0"`
	PointsWeekly int `json:"points_weekly" gorm:"default:0"`

	// Quiz accuracy accumulators
	TotalQuizzes int     `json:"total_quizzes" gorm:"default:0"`
	TotalCorrect float64 `json:"total_correct" gorm:"default:0"`

	LastLogin time.Time `gorm:"default:NULL"`
	IsDeleted bool      `gorm:"default:false"`
}
