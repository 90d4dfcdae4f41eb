// file: internals/features/quizzes/attempts/service/attempt_service_test.go
package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	amodel "quizku_backend/internals/features/quizzes/attempts/model"
	qmodel "quizku_backend/internals/features/quizzes/question_sets/model"
	userModel "quizku_backend/internals/features/users/user/model"
)

/* =========================================================
   Test setup — sqlite in-memory; DDL manual karena default
   gen_random_uuid() di tag model khusus Postgres.
========================================================= */

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// DB in-memory ber-nama unik supaya antar test tidak saling lihat
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	ddl := []string{
		`CREATE TABLE question_sets (
			question_set_id TEXT PRIMARY KEY,
			question_set_name TEXT NOT NULL,
			question_set_description TEXT,
			question_set_created_at DATETIME NOT NULL
		)`,
		`CREATE TABLE questions (
			question_id TEXT PRIMARY KEY,
			question_question_set_id TEXT NOT NULL,
			question_type TEXT NOT NULL,
			question_content TEXT NOT NULL,
			question_options TEXT,
			question_correct_answer TEXT NOT NULL,
			question_created_at DATETIME NOT NULL
		)`,
		`CREATE TABLE quiz_attempts (
			quiz_attempt_id TEXT PRIMARY KEY,
			quiz_attempt_user_id TEXT NOT NULL,
			quiz_attempt_question_set_id TEXT NOT NULL,
			quiz_attempt_score INTEGER NOT NULL DEFAULT 0,
			quiz_attempt_total_questions INTEGER NOT NULL,
			quiz_attempt_started_at DATETIME NOT NULL,
			quiz_attempt_completed_at DATETIME
		)`,
		`CREATE TABLE quiz_answers (
			quiz_answer_id TEXT PRIMARY KEY,
			quiz_answer_attempt_id TEXT NOT NULL,
			quiz_answer_question_id TEXT NOT NULL,
			quiz_answer_user_answer TEXT NOT NULL,
			quiz_answer_is_correct BOOLEAN NOT NULL,
			quiz_answer_answered_at DATETIME NOT NULL
		)`,
		`CREATE TABLE user_profiles (
			user_profile_id TEXT PRIMARY KEY,
			user_profile_user_id TEXT NOT NULL UNIQUE,
			user_profile_total_quizzes_taken INTEGER NOT NULL DEFAULT 0,
			user_profile_highest_score INTEGER NOT NULL DEFAULT 0,
			user_profile_created_at DATETIME NOT NULL,
			user_profile_updated_at DATETIME NOT NULL
		)`,
	}
	for _, stmt := range ddl {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

// seedSet membuat paket + n soal true_false dgn jawaban benar "true".
func seedSet(t *testing.T, db *gorm.DB, n int) (qmodel.QuestionSetModel, []qmodel.QuestionModel) {
	t.Helper()
	set := qmodel.QuestionSetModel{QuestionSetName: "Paket Uji"}
	require.NoError(t, db.Create(&set).Error)

	questions := make([]qmodel.QuestionModel, 0, n)
	for i := 0; i < n; i++ {
		q := qmodel.QuestionModel{
			QuestionQuestionSetID: set.QuestionSetID,
			QuestionType:          qmodel.QuestionTypeTrueFalse,
			QuestionContent:       fmt.Sprintf("Pernyataan %d benar?", i+1),
			QuestionCorrectAnswer: "true",
		}
		require.NoError(t, db.Create(&q).Error)
		questions = append(questions, q)
	}
	return set, questions
}

func requireFiberStatus(t *testing.T, err error, want int) {
	t.Helper()
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe), "expected *fiber.Error, got %v", err)
	require.Equal(t, want, fe.Code)
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

/* =========================================================
   START
========================================================= */

func TestStartAttempt_SnapshotTotalQuestions(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttemptService(db)
	userID := uuid.New()
	set, _ := seedSet(t, db, 3)

	attempt, err := svc.StartAttempt(context.Background(), userID, set.QuestionSetID)
	require.NoError(t, err)
	require.Equal(t, 0, attempt.QuizAttemptScore)
	require.Equal(t, 3, attempt.QuizAttemptTotalQuestions)
	require.Nil(t, attempt.QuizAttemptCompletedAt)
	require.EqualValues(t, 1, countRows(t, db, &amodel.QuizAttemptModel{}))

	// soal baru setelah start tidak mengubah snapshot
	extra := qmodel.QuestionModel{
		QuestionQuestionSetID: set.QuestionSetID,
		QuestionType:          qmodel.QuestionTypeTrueFalse,
		QuestionContent:       "Soal tambahan",
		QuestionCorrectAnswer: "false",
	}
	require.NoError(t, db.Create(&extra).Error)

	var reloaded amodel.QuizAttemptModel
	require.NoError(t, db.First(&reloaded, "quiz_attempt_id = ?", attempt.QuizAttemptID).Error)
	require.Equal(t, 3, reloaded.QuizAttemptTotalQuestions)
}

func TestStartAttempt_MissingSet(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttemptService(db)

	_, err := svc.StartAttempt(context.Background(), uuid.New(), uuid.New())
	requireFiberStatus(t, err, fiber.StatusNotFound)
	require.EqualValues(t, 0, countRows(t, db, &amodel.QuizAttemptModel{}))
}

func TestStartAttempt_EmptySet(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttemptService(db)
	set, _ := seedSet(t, db, 0)

	_, err := svc.StartAttempt(context.Background(), uuid.New(), set.QuestionSetID)
	requireFiberStatus(t, err, fiber.StatusNotFound)
	require.EqualValues(t, 0, countRows(t, db, &amodel.QuizAttemptModel{}))
}

/* =========================================================
   SUBMIT ANSWER
========================================================= */

func TestSubmitAnswer_CorrectIncrementsScore(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttemptService(db)
	userID := uuid.New()
	set, questions := seedSet(t, db, 2)

	attempt, err := svc.StartAttempt(context.Background(), userID, set.QuestionSetID)
	require.NoError(t, err)

	res, err := svc.SubmitAnswer(context.Background(), userID, attempt.QuizAttemptID, questions[0].QuestionID, "true")
	require.NoError(t, err)
	require.True(t, res.WasCorrect)
	require.Equal(t, "true", res.CorrectAnswer)

	var reloaded amodel.QuizAttemptModel
	require.NoError(t, db.First(&reloaded, "quiz_attempt_id = ?", attempt.QuizAttemptID).Error)
	require.Equal(t, 1, reloaded.QuizAttemptScore)
	require.EqualValues(t, 1, countRows(t, db, &amodel.QuizAnswerModel{}))
}

func TestSubmitAnswer_WrongAnswerKeepsScore(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttemptService(db)
	userID := uuid.New()
	set, questions := seedSet(t, db, 1)

	attempt, err := svc.StartAttempt(context.Background(), userID, set.QuestionSetID)
	require.NoError(t, err)

	res, err := svc.SubmitAnswer(context.Background(), userID, attempt.QuizAttemptID, questions[0].QuestionID, "false")
	require.NoError(t, err)
	require.False(t, res.WasCorrect)
	require.Equal(t, "true", res.CorrectAnswer)

	var reloaded amodel.QuizAttemptModel
	require.NoError(t, db.First(&reloaded, "quiz_attempt_id = ?", attempt.QuizAttemptID).Error)
	require.Equal(t, 0, reloaded.QuizAttemptScore)

	var answer amodel.QuizAnswerModel
	require.NoError(t, db.First(&answer, "quiz_answer_attempt_id = ?", attempt.QuizAttemptID).Error)
	require.False(t, answer.QuizAnswerIsCorrect)
	require.Equal(t, "false", answer.QuizAnswerUserAnswer)
}

func TestSubmitAnswer_DuplicateNeverDoubleCounts(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttemptService(db)
	userID := uuid.New()
	set, questions := seedSet(t, db, 1)

	attempt, err := svc.StartAttempt(context.Background(), userID, set.QuestionSetID)
	require.NoError(t, err)

	// benar dua kali → dua row jawaban, skor tetap 1
	for i := 0; i < 2; i++ {
		_, err := svc.SubmitAnswer(context.Background(), userID, attempt.QuizAttemptID, questions[0].QuestionID, "true")
		require.NoError(t, err)
	}

	var reloaded amodel.QuizAttemptModel
	require.NoError(t, db.First(&reloaded, "quiz_attempt_id = ?", attempt.QuizAttemptID).Error)
	require.Equal(t, 1, reloaded.QuizAttemptScore)
	require.EqualValues(t, 2, countRows(t, db, &amodel.QuizAnswerModel{}))
}

func TestSubmitAnswer_OnlyFirstSubmissionCanScore(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttemptService(db)
	userID := uuid.New()
	set, questions := seedSet(t, db, 1)

	attempt, err := svc.StartAttempt(context.Background(), userID, set.QuestionSetID)
	require.NoError(t, err)

	// salah dulu, lalu benar → skor tidak bisa dikejar lewat retry
	_, err = svc.SubmitAnswer(context.Background(), userID, attempt.QuizAttemptID, questions[0].QuestionID, "false")
	require.NoError(t, err)
	res, err := svc.SubmitAnswer(context.Background(), userID, attempt.QuizAttemptID, questions[0].QuestionID, "true")
	require.NoError(t, err)
	require.True(t, res.WasCorrect)

	var reloaded amodel.QuizAttemptModel
	require.NoError(t, db.First(&reloaded, "quiz_attempt_id = ?", attempt.QuizAttemptID).Error)
	require.Equal(t, 0, reloaded.QuizAttemptScore)
}

func TestSubmitAnswer_CompletedAttemptRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttemptService(db)
	userID := uuid.New()
	set, questions := seedSet(t, db, 1)

	attempt, err := svc.StartAttempt(context.Background(), userID, set.QuestionSetID)
	require.NoError(t, err)
	_, err = svc.CompleteAttempt(context.Background(), userID, attempt.QuizAttemptID)
	require.NoError(t, err)

	_, err = svc.SubmitAnswer(context.Background(), userID, attempt.QuizAttemptID, questions[0].QuestionID, "true")
	requireFiberStatus(t, err, fiber.StatusForbidden)
	require.EqualValues(t, 0, countRows(t, db, &amodel.QuizAnswerModel{}))
}

func TestSubmitAnswer_QuestionFromOtherSet(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttemptService(db)
	userID := uuid.New()
	setA, _ := seedSet(t, db, 1)
	_, questionsB := seedSet(t, db, 1)

	attempt, err := svc.StartAttempt(context.Background(), userID, setA.QuestionSetID)
	require.NoError(t, err)

	_, err = svc.SubmitAnswer(context.Background(), userID, attempt.QuizAttemptID, questionsB[0].QuestionID, "true")
	requireFiberStatus(t, err, fiber.StatusForbidden)
	require.EqualValues(t, 0, countRows(t, db, &amodel.QuizAnswerModel{}))
}

func TestSubmitAnswer_UnknownQuestion(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttemptService(db)
	userID := uuid.New()
	set, _ := seedSet(t, db, 1)

	attempt, err := svc.StartAttempt(context.Background(), userID, set.QuestionSetID)
	require.NoError(t, err)

	_, err = svc.SubmitAnswer(context.Background(), userID, attempt.QuizAttemptID, uuid.New(), "true")
	requireFiberStatus(t, err, fiber.StatusNotFound)
}

func TestSubmitAnswer_OtherUsersAttempt(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttemptService(db)
	owner := uuid.New()
	intruder := uuid.New()
	set, questions := seedSet(t, db, 1)

	attempt, err := svc.StartAttempt(context.Background(), owner, set.QuestionSetID)
	require.NoError(t, err)

	// bukan pemilik → 404, bukan 403 (eksistensi tidak dibocorkan)
	_, err = svc.SubmitAnswer(context.Background(), intruder, attempt.QuizAttemptID, questions[0].QuestionID, "true")
	requireFiberStatus(t, err, fiber.StatusNotFound)
	require.EqualValues(t, 0, countRows(t, db, &amodel.QuizAnswerModel{}))
}

/* =========================================================
   COMPLETE + agregasi profil
========================================================= */

func TestCompleteAttempt_LocksAndAggregates(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttemptService(db)
	userID := uuid.New()
	set, questions := seedSet(t, db, 2)

	attempt, err := svc.StartAttempt(context.Background(), userID, set.QuestionSetID)
	require.NoError(t, err)
	_, err = svc.SubmitAnswer(context.Background(), userID, attempt.QuizAttemptID, questions[0].QuestionID, "true")
	require.NoError(t, err)

	done, err := svc.CompleteAttempt(context.Background(), userID, attempt.QuizAttemptID)
	require.NoError(t, err)
	require.NotNil(t, done.QuizAttemptCompletedAt)
	require.Equal(t, 1, done.QuizAttemptScore)

	var profile userModel.UserProfileModel
	require.NoError(t, db.First(&profile, "user_profile_user_id = ?", userID).Error)
	require.Equal(t, 1, profile.UserProfileTotalQuizzesTaken)
	require.Equal(t, 1, profile.UserProfileHighestScore)
}

func TestCompleteAttempt_TwiceRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttemptService(db)
	userID := uuid.New()
	set, _ := seedSet(t, db, 1)

	attempt, err := svc.StartAttempt(context.Background(), userID, set.QuestionSetID)
	require.NoError(t, err)
	_, err = svc.CompleteAttempt(context.Background(), userID, attempt.QuizAttemptID)
	require.NoError(t, err)

	_, err = svc.CompleteAttempt(context.Background(), userID, attempt.QuizAttemptID)
	requireFiberStatus(t, err, fiber.StatusForbidden)

	// profil tidak naik dua kali
	var profile userModel.UserProfileModel
	require.NoError(t, db.First(&profile, "user_profile_user_id = ?", userID).Error)
	require.Equal(t, 1, profile.UserProfileTotalQuizzesTaken)
}

func TestCompleteAttempt_HighestScoreMonotonic(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttemptService(db)
	userID := uuid.New()
	set, questions := seedSet(t, db, 2)

	// attempt 1: skor 2
	a1, err := svc.StartAttempt(context.Background(), userID, set.QuestionSetID)
	require.NoError(t, err)
	for _, q := range questions {
		_, err := svc.SubmitAnswer(context.Background(), userID, a1.QuizAttemptID, q.QuestionID, "true")
		require.NoError(t, err)
	}
	_, err = svc.CompleteAttempt(context.Background(), userID, a1.QuizAttemptID)
	require.NoError(t, err)

	// attempt 2: skor 0 → highest tetap 2
	a2, err := svc.StartAttempt(context.Background(), userID, set.QuestionSetID)
	require.NoError(t, err)
	_, err = svc.CompleteAttempt(context.Background(), userID, a2.QuizAttemptID)
	require.NoError(t, err)

	// attempt 3: skor 1 → highest tetap 2, total 3
	a3, err := svc.StartAttempt(context.Background(), userID, set.QuestionSetID)
	require.NoError(t, err)
	_, err = svc.SubmitAnswer(context.Background(), userID, a3.QuizAttemptID, questions[0].QuestionID, "true")
	require.NoError(t, err)
	_, err = svc.CompleteAttempt(context.Background(), userID, a3.QuizAttemptID)
	require.NoError(t, err)

	var profile userModel.UserProfileModel
	require.NoError(t, db.First(&profile, "user_profile_user_id = ?", userID).Error)
	require.Equal(t, 3, profile.UserProfileTotalQuizzesTaken)
	require.Equal(t, 2, profile.UserProfileHighestScore)
}

func TestCompleteAttempt_LostRaceDoesNotAggregateTwice(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttemptService(db)
	userID := uuid.New()
	set, _ := seedSet(t, db, 1)

	attempt, err := svc.StartAttempt(context.Background(), userID, set.QuestionSetID)
	require.NoError(t, err)

	// request lain menutup attempt lebih dulu (langsung di DB, tanpa agregasi)
	require.NoError(t, db.Model(&amodel.QuizAttemptModel{}).
		Where("quiz_attempt_id = ?", attempt.QuizAttemptID).
		Update("quiz_attempt_completed_at", time.Now().UTC()).Error)

	// UPDATE bersyarat kena 0 rows → 403, recordCompletion tidak jalan
	_, err = svc.CompleteAttempt(context.Background(), userID, attempt.QuizAttemptID)
	requireFiberStatus(t, err, fiber.StatusForbidden)
	require.EqualValues(t, 0, countRows(t, db, &userModel.UserProfileModel{}))
}

func TestCompleteAttempt_OtherUsersAttempt(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttemptService(db)
	owner := uuid.New()
	set, _ := seedSet(t, db, 1)

	attempt, err := svc.StartAttempt(context.Background(), owner, set.QuestionSetID)
	require.NoError(t, err)

	_, err = svc.CompleteAttempt(context.Background(), uuid.New(), attempt.QuizAttemptID)
	requireFiberStatus(t, err, fiber.StatusNotFound)

	var reloaded amodel.QuizAttemptModel
	require.NoError(t, db.First(&reloaded, "quiz_attempt_id = ?", attempt.QuizAttemptID).Error)
	require.Nil(t, reloaded.QuizAttemptCompletedAt)
}
