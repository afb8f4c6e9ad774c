package catalogRoutes

import (
	"github.com/gofiber/fiber/v2"

	catalogControllers "pathwise/controllers/catalog"
)

func SetupCatalogRoutes(app *fiber.App) {
	catalogGroup := app.Group("/catalog")

	catalogGroup.Get("/list", catalogControllers.CourseList)
	catalogGroup.Get("/techniques", catalogControllers.TechniqueList)
	catalogGroup.Get("/lesson/:id", catalogControllers.LessonDetail)
	catalogGroup.Get("/:id", catalogControllers.CourseDetail)
}
