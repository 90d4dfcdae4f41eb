// file: internals/features/chat/dto/chat_dto.go
package dto

import "time"

type CompletionRequest struct {
	Message string `json:"message" validate:"required"`
}

// ChatMessageResponse dipakai dua arah: balasan POST /chat/completions
// (pesan assistant) dan item list GET /chat/history.
type ChatMessageResponse struct {
	SessionID string    `json:"session_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
