// file: internals/features/quizzes/attempts/dto/quiz_attempt_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

/* =========================
   REQUEST
========================= */

type SubmitAnswerRequest struct {
	QuestionID uuid.UUID `json:"question_id" validate:"required"`
	UserAnswer string    `json:"user_answer" validate:"required"`
}

/* =========================
   RESPONSE
========================= */

type StartAttemptResponse struct {
	AttemptID      uuid.UUID `json:"attempt_id"`
	QuestionSetID  uuid.UUID `json:"question_set_id"`
	TotalQuestions int       `json:"total_questions"`
	StartedAt      time.Time `json:"started_at"`
}

type SubmitAnswerResponse struct {
	WasCorrect    bool   `json:"was_correct"`
	CorrectAnswer string `json:"correct_answer"`
}

type CompleteAttemptResponse struct {
	AttemptID      uuid.UUID  `json:"attempt_id"`
	Score          int        `json:"score"`
	TotalQuestions int        `json:"total_questions"`
	StartedAt      time.Time  `json:"started_at"`
	CompletedAt    *time.Time `json:"completed_at"`
}

// AttemptSummaryResponse — item list riwayat attempt user (join nama paket).
type AttemptSummaryResponse struct {
	AttemptID       uuid.UUID  `json:"attempt_id"`
	QuestionSetID   uuid.UUID  `json:"question_set_id"`
	QuestionSetName string     `json:"question_set_name"`
	Score           int        `json:"score"`
	TotalQuestions  int        `json:"total_questions"`
	StartedAt       time.Time  `json:"started_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

// AttemptAnswerDetail — jawaban + konteks soal utk review attempt sendiri.
// correct_answer SELALU tampil di sini (beda dengan listing soal publik).
type AttemptAnswerDetail struct {
	QuestionID      uuid.UUID `json:"question_id"`
	QuestionType    string    `json:"question_type"`
	QuestionContent string    `json:"question_content"`
	Options         []string  `json:"options,omitempty"`
	CorrectAnswer   string    `json:"correct_answer"`
	UserAnswer      string    `json:"user_answer"`
	IsCorrect       bool      `json:"is_correct"`
	AnsweredAt      time.Time `json:"answered_at"`
}

type AttemptDetailResponse struct {
	AttemptID       uuid.UUID             `json:"attempt_id"`
	QuestionSetID   uuid.UUID             `json:"question_set_id"`
	QuestionSetName string                `json:"question_set_name"`
	Score           int                   `json:"score"`
	TotalQuestions  int                   `json:"total_questions"`
	StartedAt       time.Time             `json:"started_at"`
	CompletedAt     *time.Time            `json:"completed_at,omitempty"`
	Answers         []AttemptAnswerDetail `json:"answers"`
}
