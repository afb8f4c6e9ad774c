package models

import "gorm.io/gorm"

// LessonCompletion marks a catalog lesson as done for a user
type LessonCompletion struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	CourseID  string `json:"course_id" gorm:"index;not null"`
	LessonID  string `json:"lesson_id" gorm:"index;not null"`
	Status    string `json:"status" gorm:"default:'COMPLETED'"`
	IsDeleted bool   `gorm:"default:false"`
	User      User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// QuizAttempt records one graded quiz submission
type QuizAttempt struct {
	gorm.Model
	UserID        uint   `json:"user_id" gorm:"index;not null"`
	CourseID      string `json:"course_id" gorm:"index;not null"`
	LessonID      string `json:"lesson_id" gorm:"index"`
	Answers       string `json:"answers"` // selected option indexes as JSON
	Score         int    `json:"score"`
	MaxScore      int    `json:"max_score"`
	Percentage    int    `json:"percentage"`
	Passed        bool   `json:"passed"`
	AttemptNumber int    `json:"attempt_number" gorm:"default:1"`
	IsDeleted     bool   `gorm:"default:false"`
	User          User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
