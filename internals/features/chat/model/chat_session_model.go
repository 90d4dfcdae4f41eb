// file: internals/features/chat/model/chat_session_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =============================================================================
   MODEL: chat_sessions
   - PK = ID completion dari provider (string, bukan UUID) supaya satu
     completion tidak pernah tercatat dua kali.
   - created_at memakai timestamp "created" dari provider, bukan jam server.
============================================================================= */
type ChatSessionModel struct {
	ChatSessionID        string    `gorm:"column:chat_session_id;type:varchar(64);primaryKey" json:"chat_session_id"`
	ChatSessionUserID    uuid.UUID `gorm:"column:chat_session_user_id;type:uuid;not null;index:idx_chat_session_user" json:"chat_session_user_id"`
	ChatSessionCreatedAt time.Time `gorm:"column:chat_session_created_at;not null" json:"chat_session_created_at"`
}

func (ChatSessionModel) TableName() string { return "chat_sessions" }
