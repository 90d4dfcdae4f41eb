// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "quizku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	log.Println("[INFO] Setting up QuizRoutes...")
	routeDetails.QuizRoutes(app, db)

	log.Println("[INFO] Setting up ChatRoutes...")
	routeDetails.ChatRoutes(app, db)

	log.Println("[INFO] Setting up AdminRoutes...")
	routeDetails.AdminRoutes(app, db)

	// health check utk platform (Railway) — tanpa auth
	app.Get("/health", func(c *fiber.Ctx) error {
		sqlDB, err := db.DB()
		dbStatus := "ok"
		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "down"
		}
		return c.JSON(fiber.Map{
			"success": true,
			"message": "healthy",
			"data": fiber.Map{
				"uptime":   time.Since(startTime).String(),
				"database": dbStatus,
			},
		})
	})
}
