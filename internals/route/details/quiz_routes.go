// file: internals/route/details/quiz_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attemptController "quizku_backend/internals/features/quizzes/attempts/controller"
	setController "quizku_backend/internals/features/quizzes/question_sets/controller"
	authMiddleware "quizku_backend/internals/middlewares/auth"
)

func QuizRoutes(app *fiber.App, db *gorm.DB) {
	setCtrl := setController.NewQuestionSetController(db)
	attemptCtrl := attemptController.NewQuizAttemptController(db)

	quiz := app.Group("/quiz", authMiddleware.AuthMiddleware())

	// katalog (correct answer TIDAK pernah ikut)
	quiz.Get("/sets", setCtrl.List)
	quiz.Get("/sets/:id", setCtrl.Detail)

	// lifecycle attempt
	quiz.Post("/:setId/start", attemptCtrl.Start)
	quiz.Post("/attempt/:id/answer", attemptCtrl.Answer)
	quiz.Post("/attempt/:id/complete", attemptCtrl.Complete)

	// riwayat
	quiz.Get("/attempts/my", attemptCtrl.ListMyAttempts)
	quiz.Get("/attempts/:id", attemptCtrl.GetAttemptDetail)
}
