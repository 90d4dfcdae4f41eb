// file: internals/features/chat/model/chat_message_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessageModel — pesan user: created_at = waktu server menerima request;
// pesan assistant: created_at = timestamp dari provider.
type ChatMessageModel struct {
	ChatMessageID        uuid.UUID `gorm:"column:chat_message_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"chat_message_id"`
	ChatMessageSessionID string    `gorm:"column:chat_message_session_id;type:varchar(64);not null;index:idx_chat_msg_session" json:"chat_message_session_id"`
	ChatMessageRole      ChatRole  `gorm:"column:chat_message_role;type:varchar(20);not null" json:"chat_message_role"`
	ChatMessageContent   string    `gorm:"column:chat_message_content;type:text;not null" json:"chat_message_content"`
	ChatMessageCreatedAt time.Time `gorm:"column:chat_message_created_at;not null" json:"chat_message_created_at"`
}

func (ChatMessageModel) TableName() string { return "chat_messages" }

func (m *ChatMessageModel) BeforeCreate(_ *gorm.DB) error {
	if m.ChatMessageID == uuid.Nil {
		m.ChatMessageID = uuid.New()
	}
	return nil
}
