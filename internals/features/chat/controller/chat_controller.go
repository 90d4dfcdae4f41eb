// file: internals/features/chat/controller/chat_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quizku_backend/internals/features/chat/dto"
	"quizku_backend/internals/features/chat/model"
	"quizku_backend/internals/features/chat/service"
	helper "quizku_backend/internals/helpers"
)

type ChatController struct {
	Service *service.ChatService
}

func NewChatController(db *gorm.DB) *ChatController {
	return &ChatController{
		Service: service.NewChatService(db, service.NewLLMClient()),
	}
}

/* =========================================================
   POST /chat/completions
========================================================= */
func (ctrl *ChatController) PostCompletion(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	var req dto.CompletionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonFormError(c, "Format request tidak valid")
	}
	if strings.TrimSpace(req.Message) == "" {
		return helper.JsonFormError(c, "message wajib diisi")
	}

	exchange, err := ctrl.Service.PostCompletion(c.UserContext(), userID, req.Message)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	// data = pesan assistant langsung (role + content di level atas)
	return helper.JsonOK(c, "Balasan diterima", toMessageResponse(exchange.Assistant))
}

/* =========================================================
   GET /chat/history
========================================================= */
func (ctrl *ChatController) GetHistory(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	msgs, err := ctrl.Service.GetHistory(c.UserContext(), userID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	out := make([]dto.ChatMessageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, toMessageResponse(m))
	}
	return helper.JsonList(c, "Riwayat chat", out, nil)
}

func toMessageResponse(m model.ChatMessageModel) dto.ChatMessageResponse {
	return dto.ChatMessageResponse{
		SessionID: m.ChatMessageSessionID,
		Role:      string(m.ChatMessageRole),
		Content:   m.ChatMessageContent,
		CreatedAt: m.ChatMessageCreatedAt,
	}
}
