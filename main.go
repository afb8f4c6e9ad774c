package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"pathwise/config"
	assistantControllers "pathwise/controllers/assistant"
	"pathwise/database"
	assistantRoutes "pathwise/routers/assistantRoutes"
	authRoutes "pathwise/routers/authRoutes"
	calendarRoutes "pathwise/routers/calendarRoutes"
	catalogRoutes "pathwise/routers/catalogRoutes"
	materialRoutes "pathwise/routers/materialRoutes"
	planRoutes "pathwise/routers/planRoutes"
	pricingRoutes "pathwise/routers/pricingRoutes"
	quizRoutes "pathwise/routers/quizRoutes"
	streakRoutes "pathwise/routers/streakRoutes"
	"pathwise/utils"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	assistantControllers.Init()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded study materials
	app.Static("/uploads", config.AppConfig.UploadDir)

	authRoutes.SetupAuthRoutes(app)
	catalogRoutes.SetupCatalogRoutes(app)
	planRoutes.SetupPlanRoutes(app)
	quizRoutes.SetupQuizRoutes(app)
	streakRoutes.SetupStreakRoutes(app)
	materialRoutes.SetupMaterialRoutes(app)
	calendarRoutes.SetupCalendarRoutes(app)
	pricingRoutes.SetupPricingRoutes(app)
	assistantRoutes.SetupAssistantRoutes(app)

	utils.InitializePointsScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
