// file: internals/features/chat/service/chat_service.go
package service

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"quizku_backend/internals/features/chat/model"
)

/* =========================================================
   SERVICE — proxy chat + persist riwayat.
   Urutan di PostCompletion disengaja: panggil provider DULU,
   baru tulis DB. Provider gagal → tidak ada row sama sekali.
========================================================= */

type ChatService struct {
	DB       *gorm.DB
	Provider CompletionProvider
}

func NewChatService(db *gorm.DB, provider CompletionProvider) *ChatService {
	return &ChatService{DB: db, Provider: provider}
}

type CompletionExchange struct {
	SessionID string
	UserMsg   model.ChatMessageModel
	Assistant model.ChatMessageModel
}

func (s *ChatService) PostCompletion(ctx context.Context, userID uuid.UUID, message string) (*CompletionExchange, error) {
	receivedAt := time.Now().UTC()

	res, err := s.Provider.Complete(ctx, message)
	if err != nil {
		log.Printf("[ChatService] ERROR provider: %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Layanan chat sedang tidak tersedia")
	}

	session := model.ChatSessionModel{
		ChatSessionID:        res.ID,
		ChatSessionUserID:    userID,
		ChatSessionCreatedAt: res.CreatedAt,
	}
	userMsg := model.ChatMessageModel{
		ChatMessageSessionID: res.ID,
		ChatMessageRole:      model.ChatRoleUser,
		ChatMessageContent:   message,
		ChatMessageCreatedAt: receivedAt,
	}
	assistantMsg := model.ChatMessageModel{
		ChatMessageSessionID: res.ID,
		ChatMessageRole:      model.ChatRoleAssistant,
		ChatMessageContent:   res.Content,
		ChatMessageCreatedAt: res.CreatedAt,
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&session).Error; err != nil {
			return err
		}
		if err := tx.Create(&userMsg).Error; err != nil {
			return err
		}
		return tx.Create(&assistantMsg).Error
	})
	if err != nil {
		log.Printf("[ChatService] ERROR persist exchange: %v", err)
		return nil, err
	}

	return &CompletionExchange{
		SessionID: res.ID,
		UserMsg:   userMsg,
		Assistant: assistantMsg,
	}, nil
}

// GetHistory — seluruh pesan user lintas session, flat, urut waktu pesan asc.
func (s *ChatService) GetHistory(ctx context.Context, userID uuid.UUID) ([]model.ChatMessageModel, error) {
	var msgs []model.ChatMessageModel
	if err := s.DB.WithContext(ctx).
		Table("chat_messages AS cm").
		Select("cm.*").
		Joins("JOIN chat_sessions AS cs ON cs.chat_session_id = cm.chat_message_session_id").
		Where("cs.chat_session_user_id = ?", userID).
		Order("cm.chat_message_created_at ASC").
		Scan(&msgs).Error; err != nil {
		log.Printf("[ChatService] ERROR load history: %v", err)
		return nil, err
	}
	if msgs == nil {
		msgs = []model.ChatMessageModel{}
	}
	return msgs, nil
}
