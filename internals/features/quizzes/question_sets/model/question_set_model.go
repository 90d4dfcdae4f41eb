package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuestionSetModel — paket soal. Immutable setelah dibuat (tidak ada update path).
type QuestionSetModel struct {
	QuestionSetID          uuid.UUID `gorm:"column:question_set_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"question_set_id"`
	QuestionSetName        string    `gorm:"column:question_set_name;type:varchar(180);not null" json:"question_set_name"`
	QuestionSetDescription string    `gorm:"column:question_set_description;type:text" json:"question_set_description"`

	QuestionSetCreatedAt time.Time `gorm:"column:question_set_created_at;not null;autoCreateTime" json:"question_set_created_at"`
}

func (QuestionSetModel) TableName() string { return "question_sets" }

func (m *QuestionSetModel) BeforeCreate(_ *gorm.DB) error {
	if m.QuestionSetID == uuid.Nil {
		m.QuestionSetID = uuid.New()
	}
	return nil
}
