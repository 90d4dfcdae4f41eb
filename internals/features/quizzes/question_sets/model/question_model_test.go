// file: internals/features/quizzes/question_sets/model/question_model_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singleSelection(t *testing.T, options []string, correct string) QuestionModel {
	t.Helper()
	q := QuestionModel{
		QuestionType:          QuestionTypeSingleSelection,
		QuestionContent:       "Ibu kota Indonesia?",
		QuestionCorrectAnswer: correct,
	}
	require.NoError(t, q.SetOptions(options))
	return q
}

func TestEvaluate_SingleSelection(t *testing.T) {
	q := singleSelection(t, []string{"Jakarta", "Bandung", "Surabaya"}, "Jakarta")

	assert.True(t, q.Evaluate("Jakarta"))
	assert.False(t, q.Evaluate("Bandung"))
	// case-sensitive, tanpa trimming
	assert.False(t, q.Evaluate("jakarta"))
	assert.False(t, q.Evaluate(" Jakarta"))
	assert.False(t, q.Evaluate(""))
}

func TestEvaluate_TrueFalse(t *testing.T) {
	q := QuestionModel{
		QuestionType:          QuestionTypeTrueFalse,
		QuestionContent:       "Bumi itu bulat?",
		QuestionCorrectAnswer: "true",
	}

	assert.True(t, q.Evaluate("true"))
	assert.False(t, q.Evaluate("false"))
	assert.False(t, q.Evaluate("True"))
	assert.False(t, q.Evaluate("ya"))
}

func TestEvaluate_UnknownTypeNeverCorrect(t *testing.T) {
	q := QuestionModel{
		QuestionType:          QuestionType("essay"),
		QuestionCorrectAnswer: "apa saja",
	}
	assert.False(t, q.Evaluate("apa saja"))
}

func TestOptions_RoundTripKeepsOrder(t *testing.T) {
	opts := []string{"Delta", "Alpha", "Charlie", "Bravo"}
	q := singleSelection(t, opts, "Alpha")
	assert.Equal(t, opts, q.Options())
}

func TestSetOptions_RejectsWrongShape(t *testing.T) {
	tf := QuestionModel{QuestionType: QuestionTypeTrueFalse}
	assert.Error(t, tf.SetOptions([]string{"true", "false"}))

	ss := QuestionModel{QuestionType: QuestionTypeSingleSelection}
	assert.Error(t, ss.SetOptions([]string{"cuma satu"}))
}

func TestValidateShape(t *testing.T) {
	t.Run("single_selection valid", func(t *testing.T) {
		q := singleSelection(t, []string{"A", "B"}, "A")
		assert.NoError(t, q.ValidateShape())
	})

	t.Run("single_selection correct bukan opsi", func(t *testing.T) {
		q := singleSelection(t, []string{"A", "B"}, "A")
		q.QuestionCorrectAnswer = "C"
		assert.Error(t, q.ValidateShape())
	})

	t.Run("single_selection tanpa options", func(t *testing.T) {
		q := QuestionModel{
			QuestionType:          QuestionTypeSingleSelection,
			QuestionContent:       "x?",
			QuestionCorrectAnswer: "A",
		}
		assert.Error(t, q.ValidateShape())
	})

	t.Run("true_false valid", func(t *testing.T) {
		q := QuestionModel{
			QuestionType:          QuestionTypeTrueFalse,
			QuestionContent:       "x?",
			QuestionCorrectAnswer: "false",
		}
		assert.NoError(t, q.ValidateShape())
	})

	t.Run("true_false dengan options", func(t *testing.T) {
		q := QuestionModel{
			QuestionType:          QuestionTypeTrueFalse,
			QuestionContent:       "x?",
			QuestionCorrectAnswer: "true",
		}
		q.QuestionOptions = []byte(`["true","false"]`)
		assert.Error(t, q.ValidateShape())
	})

	t.Run("true_false correct aneh", func(t *testing.T) {
		q := QuestionModel{
			QuestionType:          QuestionTypeTrueFalse,
			QuestionContent:       "x?",
			QuestionCorrectAnswer: "yes",
		}
		assert.Error(t, q.ValidateShape())
	})

	t.Run("content kosong", func(t *testing.T) {
		q := QuestionModel{
			QuestionType:          QuestionTypeTrueFalse,
			QuestionContent:       "   ",
			QuestionCorrectAnswer: "true",
		}
		assert.Error(t, q.ValidateShape())
	})
}
