package models

import "gorm.io/gorm"

// StudyMaterial is an uploaded document a plan can be generated from
type StudyMaterial struct {
	gorm.Model
	OwnerID       uint   `json:"owner_id" gorm:"index;not null"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	CourseID      string `json:"course_id"` // catalog course the material maps to
	FilePath      string `json:"file_path"`
	ExtractedText string `json:"extracted_text" gorm:"type:text"`
	IsDeleted     bool   `gorm:"default:false"`
	User          User   `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}
