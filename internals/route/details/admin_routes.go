// file: internals/route/details/admin_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	setController "quizku_backend/internals/features/quizzes/question_sets/controller"
	authMiddleware "quizku_backend/internals/middlewares/auth"
)

func AdminRoutes(app *fiber.App, db *gorm.DB) {
	adminCtrl := setController.NewQuestionSetAdminController(db)

	admin := app.Group("/admin",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyAdmin(),
	)

	admin.Post("/quiz/sets", adminCtrl.CreateSet)
	admin.Post("/quiz/sets/:id/questions", adminCtrl.CreateQuestion)
	admin.Get("/quiz/sets/:id/attempts", adminCtrl.ListSetAttempts)
}
