package models

import (
	"log"

	"gorm.io/gorm"
)

type SubscriptionPlan struct {
	gorm.Model
	Name         string  `json:"name" gorm:"unique;not null"` // free, student, personal, enterprise
	Price        float64 `json:"price" gorm:"default:0"`
	MonthlyQuota int     `json:"monthly_quota" gorm:"default:10"` // assistant calls per month
	IsDeleted    bool    `gorm:"default:false"`
}

// SeedSubscriptionPlans inserts the fixed pricing tiers if missing
func SeedSubscriptionPlans(db *gorm.DB) {
	plans := []SubscriptionPlan{
		{Name: "free", Price: 0, MonthlyQuota: 10},
		{Name: "student", Price: 4.99, MonthlyQuota: 100},
		{Name: "personal", Price: 9.99, MonthlyQuota: 300},
		{Name: "enterprise", Price: 29.99, MonthlyQuota: 1000},
	}

	for _, plan := range plans {
		var existing SubscriptionPlan
		if err := db.Where("name = ?", plan.Name).First(&existing).Error; err != nil {
			if err := db.Create(&plan).Error; err != nil {
				log.Printf("Error seeding subscription plan %s: %v", plan.Name, err)
			}
		}
	}
}
