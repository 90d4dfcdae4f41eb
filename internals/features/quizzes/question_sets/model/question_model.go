// file: internals/features/quizzes/question_sets/model/question_model.go
package model

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type QuestionType string

const (
	QuestionTypeSingleSelection QuestionType = "single_selection"
	QuestionTypeTrueFalse       QuestionType = "true_false"
)

func (t QuestionType) Valid() bool {
	switch t {
	case QuestionTypeSingleSelection, QuestionTypeTrueFalse:
		return true
	default:
		return false
	}
}

type QuestionModel struct {
	QuestionID            uuid.UUID    `gorm:"column:question_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"question_id"`
	QuestionQuestionSetID uuid.UUID    `gorm:"column:question_question_set_id;type:uuid;not null;index" json:"question_question_set_id"`
	QuestionType          QuestionType `gorm:"column:question_type;type:varchar(20);not null" json:"question_type"`
	QuestionContent       string       `gorm:"column:question_content;type:text;not null" json:"question_content"`

	// Daftar opsi berurutan (JSON array of string); hanya single_selection, selain itu NULL.
	QuestionOptions datatypes.JSON `gorm:"column:question_options;type:jsonb" json:"question_options,omitempty"`

	// Teks opsi yang benar, atau "true"/"false" untuk true_false.
	QuestionCorrectAnswer string `gorm:"column:question_correct_answer;type:text;not null" json:"question_correct_answer"`

	QuestionCreatedAt time.Time `gorm:"column:question_created_at;not null;autoCreateTime" json:"question_created_at"`
}

func (QuestionModel) TableName() string { return "questions" }

func (m *QuestionModel) BeforeCreate(_ *gorm.DB) error {
	if m.QuestionID == uuid.Nil {
		m.QuestionID = uuid.New()
	}
	return nil
}

/* ------------------------
   Helpers
------------------------ */

func (m *QuestionModel) IsSingleSelection() bool { return m.QuestionType == QuestionTypeSingleSelection }
func (m *QuestionModel) IsTrueFalse() bool       { return m.QuestionType == QuestionTypeTrueFalse }

// Options men-decode kolom JSON ke slice string (nil untuk true_false).
func (m *QuestionModel) Options() []string {
	if len(m.QuestionOptions) == 0 {
		return nil
	}
	var opts []string
	if err := json.Unmarshal(m.QuestionOptions, &opts); err != nil {
		return nil
	}
	return opts
}

// SetOptions menyimpan slice string sebagai JSON array (urutan dipertahankan).
func (m *QuestionModel) SetOptions(opts []string) error {
	if !m.IsSingleSelection() {
		return errors.New("options hanya untuk tipe single_selection")
	}
	if len(opts) < 2 {
		return errors.New("minimal 2 opsi diperlukan")
	}
	b, err := json.Marshal(opts)
	if err != nil {
		return err
	}
	m.QuestionOptions = datatypes.JSON(b)
	return nil
}

// Evaluate menilai jawaban user per varian tipe soal.
// single_selection & true_false: exact match (case-sensitive).
// Tipe lain tidak bisa dinilai → selalu salah.
func (m *QuestionModel) Evaluate(userAnswer string) bool {
	switch m.QuestionType {
	case QuestionTypeSingleSelection, QuestionTypeTrueFalse:
		return userAnswer == m.QuestionCorrectAnswer
	default:
		return false
	}
}

// ValidateShape — mirror CHECK constraint DB supaya cepat fail di app:
// - single_selection: options wajib (≥2), correct harus salah satu opsi.
// - true_false: options harus NULL, correct harus "true"/"false".
func (m *QuestionModel) ValidateShape() error {
	if !m.QuestionType.Valid() {
		return errors.New("tipe soal tidak dikenal")
	}
	if strings.TrimSpace(m.QuestionContent) == "" {
		return errors.New("content soal wajib diisi")
	}

	if m.IsTrueFalse() {
		if len(m.QuestionOptions) != 0 {
			return errors.New("true_false: options harus NULL")
		}
		if m.QuestionCorrectAnswer != "true" && m.QuestionCorrectAnswer != "false" {
			return errors.New(`true_false: correct answer harus "true" atau "false"`)
		}
		return nil
	}

	// single_selection
	opts := m.Options()
	if len(opts) < 2 {
		return errors.New("single_selection: minimal 2 opsi")
	}
	for _, op := range opts {
		if strings.TrimSpace(op) == "" {
			return errors.New("single_selection: opsi tidak boleh kosong")
		}
		if op == m.QuestionCorrectAnswer {
			return nil
		}
	}
	return errors.New("single_selection: correct answer tidak ada pada options")
}
