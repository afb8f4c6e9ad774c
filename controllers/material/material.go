package materialController

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"pathwise/catalog"
	"pathwise/config"
	"pathwise/database"
	"pathwise/middleware"
	"pathwise/models"
	"pathwise/utils"
)

// Upload stores a study material file and its metadata. The optional
// courseId links the material to a catalog course so a plan can be
// generated from it directly.
func Upload(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	title := c.FormValue("title")
	description := c.FormValue("description")
	courseID := c.FormValue("courseId")

	errors := make(map[string]string)
	if title == "" {
		errors["title"] = "Title is required!"
	}
	if courseID != "" {
		if _, found := catalog.FindCourse(courseID); !found {
			errors["courseId"] = "Unknown course!"
		}
	}

	file, err := c.FormFile("file")
	if err != nil {
		errors["file"] = "File is required!"
	}

	if len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	filePath, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
	if err != nil {
		log.Printf("Error saving uploaded file: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save file!", nil)
	}

	material := models.StudyMaterial{
		OwnerID:       userID,
		Title:         title,
		Description:   description,
		CourseID:      courseID,
		FilePath:      filePath,
		ExtractedText: utils.ExtractPlainText(file),
	}
	if err := database.Database.Db.Create(&material).Error; err != nil {
		log.Printf("Error saving study material: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save material!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Material uploaded successfully.", fiber.Map{
		"id":        material.ID,
		"title":     material.Title,
		"course_id": material.CourseID,
		"file_url":  utils.GetFileURL(material.FilePath),
	})
}

// List returns the caller's materials, newest first
func List(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var materials []models.StudyMaterial
	err := database.Database.Db.
		Where("owner_id = ? AND is_deleted = ?", userID, false).
		Order("created_at DESC").
		Find(&materials).Error
	if err != nil {
		log.Printf("Error listing materials: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to list materials!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Materials fetched successfully.", materials)
}
