// file: internals/route/details/chat_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	chatController "quizku_backend/internals/features/chat/controller"
	authMiddleware "quizku_backend/internals/middlewares/auth"
)

func ChatRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := chatController.NewChatController(db)

	chat := app.Group("/chat", authMiddleware.AuthMiddleware())
	chat.Post("/completions", ctrl.PostCompletion)
	chat.Get("/history", ctrl.GetHistory)
}
