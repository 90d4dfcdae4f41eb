// file: internals/features/quizzes/attempts/model/quiz_attempt_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =============================================================================
   MODEL: quiz_attempts
   - total_questions = snapshot jumlah soal saat start; perubahan set sesudahnya
     tidak mengubah attempt yang sudah jalan.
   - completed_at NULL = masih berjalan; setelah terisi, attempt terkunci.
============================================================================= */
type QuizAttemptModel struct {
	QuizAttemptID            uuid.UUID `gorm:"column:quiz_attempt_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"quiz_attempt_id"`
	QuizAttemptUserID        uuid.UUID `gorm:"column:quiz_attempt_user_id;type:uuid;not null;index:idx_qa_user" json:"quiz_attempt_user_id"`
	QuizAttemptQuestionSetID uuid.UUID `gorm:"column:quiz_attempt_question_set_id;type:uuid;not null;index" json:"quiz_attempt_question_set_id"`

	QuizAttemptScore          int `gorm:"column:quiz_attempt_score;not null;default:0" json:"quiz_attempt_score"`
	QuizAttemptTotalQuestions int `gorm:"column:quiz_attempt_total_questions;not null" json:"quiz_attempt_total_questions"`

	QuizAttemptStartedAt   time.Time  `gorm:"column:quiz_attempt_started_at;not null;autoCreateTime" json:"quiz_attempt_started_at"`
	QuizAttemptCompletedAt *time.Time `gorm:"column:quiz_attempt_completed_at" json:"quiz_attempt_completed_at,omitempty"`
}

func (QuizAttemptModel) TableName() string { return "quiz_attempts" }

func (m *QuizAttemptModel) BeforeCreate(_ *gorm.DB) error {
	if m.QuizAttemptID == uuid.Nil {
		m.QuizAttemptID = uuid.New()
	}
	return nil
}

func (m *QuizAttemptModel) IsCompleted() bool { return m.QuizAttemptCompletedAt != nil }
