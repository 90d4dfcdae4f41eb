// file: internals/route/details/auth_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "quizku_backend/internals/features/users/auth/controller"
	"quizku_backend/internals/middlewares"
	authMiddleware "quizku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := app.Group("/auth")
	auth.Post("/signup", middlewares.SignupRateLimiter(), ctrl.Signup)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/login/google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)
	auth.Get("/logout", ctrl.Logout)

	// profil butuh sesi valid
	auth.Get("/user", authMiddleware.AuthMiddleware(), ctrl.GetProfile)
}
