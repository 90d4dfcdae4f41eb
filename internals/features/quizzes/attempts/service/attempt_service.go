// file: internals/features/quizzes/attempts/service/attempt_service.go
package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	amodel "quizku_backend/internals/features/quizzes/attempts/model"
	qmodel "quizku_backend/internals/features/quizzes/question_sets/model"
	userModel "quizku_backend/internals/features/users/user/model"
)

/* =========================================================
   SERVICE — lifecycle attempt: start → answer → complete
========================================================= */

type AttemptService struct {
	DB *gorm.DB
}

func NewAttemptService(db *gorm.DB) *AttemptService {
	return &AttemptService{DB: db}
}

/* =========================================================
   START
========================================================= */

// StartAttempt membuat attempt baru untuk paket soal.
// 404 kalau paket tidak ada ATAU tidak punya soal (dua-duanya NotFound,
// tidak dibedakan ke caller).
func (s *AttemptService) StartAttempt(ctx context.Context, userID, questionSetID uuid.UUID) (*amodel.QuizAttemptModel, error) {
	var set qmodel.QuestionSetModel
	if err := s.DB.WithContext(ctx).
		First(&set, "question_set_id = ?", questionSetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Paket soal tidak ditemukan")
		}
		log.Printf("[AttemptService] ERROR load set: %v", err)
		return nil, err
	}

	var total int64
	if err := s.DB.WithContext(ctx).
		Model(&qmodel.QuestionModel{}).
		Where("question_question_set_id = ?", questionSetID).
		Count(&total).Error; err != nil {
		log.Printf("[AttemptService] ERROR count questions: %v", err)
		return nil, err
	}
	if total == 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, "Paket soal tidak ditemukan")
	}

	// total_questions = snapshot saat start
	attempt := amodel.QuizAttemptModel{
		QuizAttemptUserID:         userID,
		QuizAttemptQuestionSetID:  questionSetID,
		QuizAttemptScore:          0,
		QuizAttemptTotalQuestions: int(total),
	}
	if err := s.DB.WithContext(ctx).Create(&attempt).Error; err != nil {
		log.Printf("[AttemptService] ERROR create attempt: %v", err)
		return nil, err
	}
	return &attempt, nil
}

/* =========================================================
   SUBMIT ANSWER
========================================================= */

type SubmitAnswerResult struct {
	WasCorrect    bool
	CorrectAnswer string
}

// SubmitAnswer memvalidasi berurutan (urutan menentukan status error):
//  1. attempt milik user       → 404 (eksistensi & ownership tidak dibedakan)
//  2. attempt belum selesai    → 403
//  3. soal ada                 → 404
//  4. soal satu paket dgn attempt → 403
//
// Insert jawaban + increment skor berjalan dalam SATU transaksi.
// Submission ulang utk soal yang sama tetap dicatat sebagai row baru, tapi
// hanya submission PERTAMA per soal yang bisa menambah skor — skor tidak
// pernah melebihi total_questions.
func (s *AttemptService) SubmitAnswer(ctx context.Context, userID, attemptID, questionID uuid.UUID, userAnswer string) (*SubmitAnswerResult, error) {
	var attempt amodel.QuizAttemptModel
	if err := s.DB.WithContext(ctx).
		First(&attempt, "quiz_attempt_id = ? AND quiz_attempt_user_id = ?", attemptID, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Attempt tidak ditemukan atau bukan milik Anda")
		}
		log.Printf("[AttemptService] ERROR load attempt: %v", err)
		return nil, err
	}
	if attempt.IsCompleted() {
		return nil, fiber.NewError(fiber.StatusForbidden, "Attempt sudah diselesaikan")
	}

	var question qmodel.QuestionModel
	if err := s.DB.WithContext(ctx).
		First(&question, "question_id = ?", questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Soal tidak ditemukan")
		}
		log.Printf("[AttemptService] ERROR load question: %v", err)
		return nil, err
	}
	if question.QuestionQuestionSetID != attempt.QuizAttemptQuestionSetID {
		return nil, fiber.NewError(fiber.StatusForbidden, "Soal bukan bagian dari paket quiz ini")
	}

	isCorrect := question.Evaluate(userAnswer)

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var prior int64
		if err := tx.Model(&amodel.QuizAnswerModel{}).
			Where("quiz_answer_attempt_id = ? AND quiz_answer_question_id = ?", attempt.QuizAttemptID, question.QuestionID).
			Count(&prior).Error; err != nil {
			return err
		}

		answer := amodel.QuizAnswerModel{
			QuizAnswerAttemptID:  attempt.QuizAttemptID,
			QuizAnswerQuestionID: question.QuestionID,
			QuizAnswerUserAnswer: userAnswer,
			QuizAnswerIsCorrect:  isCorrect,
		}
		if err := tx.Create(&answer).Error; err != nil {
			return err
		}

		if isCorrect && prior == 0 {
			if err := tx.Model(&amodel.QuizAttemptModel{}).
				Where("quiz_attempt_id = ?", attempt.QuizAttemptID).
				Update("quiz_attempt_score", gorm.Expr("quiz_attempt_score + 1")).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("[AttemptService] ERROR submit tx: %v", err)
		return nil, err
	}

	return &SubmitAnswerResult{
		WasCorrect:    isCorrect,
		CorrectAnswer: question.QuestionCorrectAnswer,
	}, nil
}

/* =========================================================
   COMPLETE (+ agregasi profil)
========================================================= */

// CompleteAttempt menutup attempt dan meng-update agregat profil dalam satu
// transaksi: completed_at & profil harus sama-sama persist atau sama-sama batal.
// Penutupan memakai UPDATE bersyarat (completed_at IS NULL) + cek rows affected,
// jadi dua Complete yang balapan hanya meng-agregasi profil SATU kali.
func (s *AttemptService) CompleteAttempt(ctx context.Context, userID, attemptID uuid.UUID) (*amodel.QuizAttemptModel, error) {
	var attempt amodel.QuizAttemptModel
	if err := s.DB.WithContext(ctx).
		First(&attempt, "quiz_attempt_id = ? AND quiz_attempt_user_id = ?", attemptID, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Attempt tidak ditemukan atau bukan milik Anda")
		}
		log.Printf("[AttemptService] ERROR load attempt: %v", err)
		return nil, err
	}

	now := time.Now().UTC()
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&amodel.QuizAttemptModel{}).
			Where("quiz_attempt_id = ? AND quiz_attempt_completed_at IS NULL", attempt.QuizAttemptID).
			Update("quiz_attempt_completed_at", now)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// sudah ditutup (request lain menang) → jangan agregasi lagi
			return fiber.NewError(fiber.StatusForbidden, "Attempt sudah diselesaikan")
		}
		return recordCompletion(tx, userID, attempt.QuizAttemptScore)
	})
	if err != nil {
		var fe *fiber.Error
		if !errors.As(err, &fe) {
			log.Printf("[AttemptService] ERROR complete tx: %v", err)
		}
		return nil, err
	}

	attempt.QuizAttemptCompletedAt = &now
	return &attempt, nil
}

// recordCompletion — agregator profil; HANYA dipanggil dari transaksi
// CompleteAttempt. Profil dibuat lazy saat completion pertama.
// highest_score monotonic non-decreasing.
func recordCompletion(tx *gorm.DB, userID uuid.UUID, score int) error {
	var profile userModel.UserProfileModel
	err := tx.First(&profile, "user_profile_user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = userModel.UserProfileModel{
			UserProfileUserID:            userID,
			UserProfileTotalQuizzesTaken: 1,
			UserProfileHighestScore:      score,
		}
		return tx.Create(&profile).Error
	}
	if err != nil {
		return err
	}

	updates := map[string]any{
		"user_profile_total_quizzes_taken": gorm.Expr("user_profile_total_quizzes_taken + 1"),
		"user_profile_updated_at":          time.Now().UTC(),
	}
	if score > profile.UserProfileHighestScore {
		updates["user_profile_highest_score"] = score
	}
	return tx.Model(&userModel.UserProfileModel{}).
		Where("user_profile_id = ?", profile.UserProfileID).
		Updates(updates).Error
}
