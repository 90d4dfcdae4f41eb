// file: internals/features/quizzes/attempts/controller/quiz_attempt_controller.go
package controller

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"quizku_backend/internals/features/quizzes/attempts/dto"
	amodel "quizku_backend/internals/features/quizzes/attempts/model"
	"quizku_backend/internals/features/quizzes/attempts/service"
	qmodel "quizku_backend/internals/features/quizzes/question_sets/model"
	helper "quizku_backend/internals/helpers"
)

var validate = validator.New()

type QuizAttemptController struct {
	DB      *gorm.DB
	Service *service.AttemptService
}

func NewQuizAttemptController(db *gorm.DB) *QuizAttemptController {
	return &QuizAttemptController{
		DB:      db,
		Service: service.NewAttemptService(db),
	}
}

/* =========================================================
   POST /quiz/:setId/start
========================================================= */
func (ctrl *QuizAttemptController) Start(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	setID, err := uuid.Parse(c.Params("setId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID paket soal tidak valid")
	}

	attempt, err := ctrl.Service.StartAttempt(c.UserContext(), userID, setID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	return helper.JsonOK(c, "Attempt dimulai", dto.StartAttemptResponse{
		AttemptID:      attempt.QuizAttemptID,
		QuestionSetID:  attempt.QuizAttemptQuestionSetID,
		TotalQuestions: attempt.QuizAttemptTotalQuestions,
		StartedAt:      attempt.QuizAttemptStartedAt,
	})
}

/* =========================================================
   POST /quiz/attempt/:id/answer
========================================================= */
func (ctrl *QuizAttemptController) Answer(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	attemptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID attempt tidak valid")
	}

	var req dto.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonFormError(c, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonFormError(c, "question_id dan user_answer wajib diisi")
	}

	res, err := ctrl.Service.SubmitAnswer(c.UserContext(), userID, attemptID, req.QuestionID, req.UserAnswer)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	return helper.JsonOK(c, "Jawaban tercatat", dto.SubmitAnswerResponse{
		WasCorrect:    res.WasCorrect,
		CorrectAnswer: res.CorrectAnswer,
	})
}

/* =========================================================
   POST /quiz/attempt/:id/complete
========================================================= */
func (ctrl *QuizAttemptController) Complete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	attemptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID attempt tidak valid")
	}

	attempt, err := ctrl.Service.CompleteAttempt(c.UserContext(), userID, attemptID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	return helper.JsonOK(c, "Attempt selesai", dto.CompleteAttemptResponse{
		AttemptID:      attempt.QuizAttemptID,
		Score:          attempt.QuizAttemptScore,
		TotalQuestions: attempt.QuizAttemptTotalQuestions,
		StartedAt:      attempt.QuizAttemptStartedAt,
		CompletedAt:    attempt.QuizAttemptCompletedAt,
	})
}

/* =========================================================
   GET /quiz/attempts/my
   Riwayat attempt user (selesai maupun berjalan), urut startedAt asc.
========================================================= */
func (ctrl *QuizAttemptController) ListMyAttempts(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	var rows []dto.AttemptSummaryResponse
	if err := ctrl.DB.WithContext(c.UserContext()).
		Table("quiz_attempts AS qa").
		Select(`qa.quiz_attempt_id AS attempt_id,
			qa.quiz_attempt_question_set_id AS question_set_id,
			qs.question_set_name AS question_set_name,
			qa.quiz_attempt_score AS score,
			qa.quiz_attempt_total_questions AS total_questions,
			qa.quiz_attempt_started_at AS started_at,
			qa.quiz_attempt_completed_at AS completed_at`).
		Joins("JOIN question_sets AS qs ON qs.question_set_id = qa.quiz_attempt_question_set_id").
		Where("qa.quiz_attempt_user_id = ?", userID).
		Order("qa.quiz_attempt_started_at ASC").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat attempt")
	}

	if rows == nil {
		rows = []dto.AttemptSummaryResponse{}
	}
	return helper.JsonList(c, "Riwayat attempt", rows, nil)
}

/* =========================================================
   GET /quiz/attempts/:id
   Detail attempt + seluruh jawaban (hanya pemilik).
   correct_answer ikut tampil — ini review, bukan listing soal.
========================================================= */
func (ctrl *QuizAttemptController) GetAttemptDetail(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	attemptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID attempt tidak valid")
	}

	var attempt amodel.QuizAttemptModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&attempt, "quiz_attempt_id = ? AND quiz_attempt_user_id = ?", attemptID, userID).Error; err != nil {
		// eksistensi & ownership sengaja tidak dibedakan
		return helper.JsonError(c, fiber.StatusNotFound, "Attempt tidak ditemukan atau bukan milik Anda")
	}

	var setName string
	if err := ctrl.DB.WithContext(c.UserContext()).
		Table("question_sets").
		Select("question_set_name").
		Where("question_set_id = ?", attempt.QuizAttemptQuestionSetID).
		Scan(&setName).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil detail attempt")
	}

	var answers []amodel.QuizAnswerModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("quiz_answer_attempt_id = ?", attempt.QuizAttemptID).
		Order("quiz_answer_answered_at ASC").
		Find(&answers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jawaban attempt")
	}

	details, err := ctrl.buildAnswerDetails(c.UserContext(), answers)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jawaban attempt")
	}

	return helper.JsonOK(c, "Detail attempt", dto.AttemptDetailResponse{
		AttemptID:       attempt.QuizAttemptID,
		QuestionSetID:   attempt.QuizAttemptQuestionSetID,
		QuestionSetName: setName,
		Score:           attempt.QuizAttemptScore,
		TotalQuestions:  attempt.QuizAttemptTotalQuestions,
		StartedAt:       attempt.QuizAttemptStartedAt,
		CompletedAt:     attempt.QuizAttemptCompletedAt,
		Answers:         details,
	})
}

// buildAnswerDetails melengkapi tiap jawaban dengan konteks soalnya
// (content, type, options, correct answer) lewat satu query batch.
func (ctrl *QuizAttemptController) buildAnswerDetails(ctx context.Context, answers []amodel.QuizAnswerModel) ([]dto.AttemptAnswerDetail, error) {
	details := make([]dto.AttemptAnswerDetail, 0, len(answers))
	if len(answers) == 0 {
		return details, nil
	}

	ids := make([]uuid.UUID, 0, len(answers))
	for _, a := range answers {
		ids = append(ids, a.QuizAnswerQuestionID)
	}

	var questions []qmodel.QuestionModel
	if err := ctrl.DB.WithContext(ctx).
		Where("question_id IN ?", ids).
		Find(&questions).Error; err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]qmodel.QuestionModel, len(questions))
	for _, q := range questions {
		byID[q.QuestionID] = q
	}

	for _, a := range answers {
		q := byID[a.QuizAnswerQuestionID]
		details = append(details, dto.AttemptAnswerDetail{
			QuestionID:      a.QuizAnswerQuestionID,
			QuestionType:    string(q.QuestionType),
			QuestionContent: q.QuestionContent,
			Options:         q.Options(),
			CorrectAnswer:   q.QuestionCorrectAnswer,
			UserAnswer:      a.QuizAnswerUserAnswer,
			IsCorrect:       a.QuizAnswerIsCorrect,
			AnsweredAt:      a.QuizAnswerAnsweredAt,
		})
	}
	return details, nil
}
