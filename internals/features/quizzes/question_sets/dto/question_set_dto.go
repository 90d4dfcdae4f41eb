// file: internals/features/quizzes/question_sets/dto/question_set_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

/* =========================
   REQUEST (admin)
========================= */

type CreateQuestionSetRequest struct {
	Name        string `json:"name" validate:"required,min=3,max=180"`
	Description string `json:"description" validate:"max=2000"`
}

type CreateQuestionRequest struct {
	Type          string   `json:"type" validate:"required,oneof=single_selection true_false"`
	Content       string   `json:"content" validate:"required"`
	Options       []string `json:"options" validate:"omitempty,min=2,dive,required"`
	CorrectAnswer string   `json:"correct_answer" validate:"required"`
}

/* =========================
   RESPONSE
========================= */

type QuestionSetResponse struct {
	QuestionSetID uuid.UUID `json:"question_set_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
}

// PublicQuestionResponse — bentuk soal utk user yang mau mengerjakan.
// SENGAJA tidak punya field correct answer; jangan tambahkan di sini.
type PublicQuestionResponse struct {
	QuestionID uuid.UUID `json:"question_id"`
	Type       string    `json:"type"`
	Content    string    `json:"content"`
	Options    []string  `json:"options,omitempty"`
}

type QuestionSetDetailResponse struct {
	QuestionSetID uuid.UUID                `json:"question_set_id"`
	Name          string                   `json:"name"`
	Description   string                   `json:"description"`
	CreatedAt     time.Time                `json:"created_at"`
	Questions     []PublicQuestionResponse `json:"questions"`
}

// AdminQuestionResponse — bentuk soal utk admin (correct answer tampil).
type AdminQuestionResponse struct {
	QuestionID    uuid.UUID `json:"question_id"`
	QuestionSetID uuid.UUID `json:"question_set_id"`
	Type          string    `json:"type"`
	Content       string    `json:"content"`
	Options       []string  `json:"options,omitempty"`
	CorrectAnswer string    `json:"correct_answer"`
	CreatedAt     time.Time `json:"created_at"`
}

// AdminAttemptRow — listing attempt per paket utk admin (lintas user).
type AdminAttemptRow struct {
	AttemptID      uuid.UUID  `json:"attempt_id"`
	UserID         uuid.UUID  `json:"user_id"`
	UserName       string     `json:"user_name"`
	Score          int        `json:"score"`
	TotalQuestions int        `json:"total_questions"`
	StartedAt      time.Time  `json:"started_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}
