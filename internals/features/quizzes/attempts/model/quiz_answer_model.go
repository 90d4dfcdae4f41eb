// file: internals/features/quizzes/attempts/model/quiz_answer_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuizAnswerModel — satu row per submission jawaban; append-only, tidak pernah
// di-update.
type QuizAnswerModel struct {
	QuizAnswerID         uuid.UUID `gorm:"column:quiz_answer_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"quiz_answer_id"`
	QuizAnswerAttemptID  uuid.UUID `gorm:"column:quiz_answer_attempt_id;type:uuid;not null;index:idx_qans_attempt" json:"quiz_answer_attempt_id"`
	QuizAnswerQuestionID uuid.UUID `gorm:"column:quiz_answer_question_id;type:uuid;not null" json:"quiz_answer_question_id"`

	QuizAnswerUserAnswer string `gorm:"column:quiz_answer_user_answer;type:text;not null" json:"quiz_answer_user_answer"`
	QuizAnswerIsCorrect  bool   `gorm:"column:quiz_answer_is_correct;not null" json:"quiz_answer_is_correct"`

	QuizAnswerAnsweredAt time.Time `gorm:"column:quiz_answer_answered_at;not null;autoCreateTime" json:"quiz_answer_answered_at"`
}

func (QuizAnswerModel) TableName() string { return "quiz_answers" }

func (m *QuizAnswerModel) BeforeCreate(_ *gorm.DB) error {
	if m.QuizAnswerID == uuid.Nil {
		m.QuizAnswerID = uuid.New()
	}
	return nil
}
