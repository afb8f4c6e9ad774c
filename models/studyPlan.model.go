package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StudyPlan stores a generated plan snapshot. Generation itself is a pure
// function of (course, session config); the snapshot only exists so that
// GET /plan/:id survives restarts.
type StudyPlan struct {
	gorm.Model
	PublicID  string         `json:"public_id" gorm:"uniqueIndex;not null"`
	OwnerID   uint           `json:"owner_id" gorm:"index;not null"`
	CourseID  string         `json:"course_id" gorm:"index;not null"`
	Title     string         `json:"title"`
	Technique string         `json:"technique"`
	Content   datatypes.JSON `json:"content"` // sessions, totals, validation
	IsDeleted bool           `gorm:"default:false"`
	User      User           `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}

// StudySession is a completed study activity record, used for streak
// history and reminder emails
type StudySession struct {
	gorm.Model
	UserID          uint   `json:"user_id" gorm:"index;not null"`
	PlanID          *uint  `json:"plan_id" gorm:"index"`
	CourseID        string `json:"course_id"`
	LessonID        string `json:"lesson_id"`
	Technique       string `json:"technique"`
	DurationMinutes int    `json:"duration_minutes" gorm:"default:25"`
	Completed       bool   `json:"completed" gorm:"default:false"`
	IsDeleted       bool   `gorm:"default:false"`
	User            User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
