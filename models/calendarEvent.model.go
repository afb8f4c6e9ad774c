package models

import (
	"time"

	"gorm.io/gorm"
)

type CalendarEvent struct {
	gorm.Model
	OwnerID   uint      `json:"owner_id" gorm:"index;not null"`
	PlanID    *uint     `json:"plan_id" gorm:"index"`
	Title     string    `json:"title"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Notified  bool      `json:"notified" gorm:"default:false"`
	IsDeleted bool      `gorm:"default:false"`
	User      User      `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}
