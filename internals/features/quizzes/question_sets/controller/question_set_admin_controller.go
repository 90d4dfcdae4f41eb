// file: internals/features/quizzes/question_sets/controller/question_set_admin_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"quizku_backend/internals/features/quizzes/question_sets/dto"
	"quizku_backend/internals/features/quizzes/question_sets/model"
	helper "quizku_backend/internals/helpers"
)

var validateAdmin = validator.New()

type QuestionSetAdminController struct {
	DB *gorm.DB
}

func NewQuestionSetAdminController(db *gorm.DB) *QuestionSetAdminController {
	return &QuestionSetAdminController{DB: db}
}

/* =========================================================
   POST /admin/quiz/sets
========================================================= */
func (ctrl *QuestionSetAdminController) CreateSet(c *fiber.Ctx) error {
	var req dto.CreateQuestionSetRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonFormError(c, "Format request tidak valid")
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := validateAdmin.Struct(req); err != nil {
		return helper.JsonFormError(c, "Nama paket wajib diisi (3-180 karakter)")
	}

	set := model.QuestionSetModel{
		QuestionSetName:        req.Name,
		QuestionSetDescription: strings.TrimSpace(req.Description),
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&set).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat paket soal")
	}

	return helper.JsonCreated(c, "Paket soal dibuat", dto.QuestionSetResponse{
		QuestionSetID: set.QuestionSetID,
		Name:          set.QuestionSetName,
		Description:   set.QuestionSetDescription,
		CreatedAt:     set.QuestionSetCreatedAt,
	})
}

/* =========================================================
   POST /admin/quiz/sets/:id/questions
========================================================= */
func (ctrl *QuestionSetAdminController) CreateQuestion(c *fiber.Ctx) error {
	setID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID paket soal tidak valid")
	}

	var set model.QuestionSetModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&set, "question_set_id = ?", setID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Paket soal tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil paket soal")
	}

	var req dto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonFormError(c, "Format request tidak valid")
	}
	if err := validateAdmin.Struct(req); err != nil {
		return helper.JsonFormError(c, "type, content, dan correct_answer wajib diisi")
	}

	q := model.QuestionModel{
		QuestionQuestionSetID: setID,
		QuestionType:          model.QuestionType(req.Type),
		QuestionContent:       strings.TrimSpace(req.Content),
		QuestionCorrectAnswer: req.CorrectAnswer,
	}
	if q.IsSingleSelection() {
		if err := q.SetOptions(req.Options); err != nil {
			return helper.JsonFormError(c, err.Error())
		}
	}
	if err := q.ValidateShape(); err != nil {
		return helper.JsonFormError(c, err.Error())
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&q).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan soal")
	}

	return helper.JsonCreated(c, "Soal dibuat", dto.AdminQuestionResponse{
		QuestionID:    q.QuestionID,
		QuestionSetID: q.QuestionQuestionSetID,
		Type:          string(q.QuestionType),
		Content:       q.QuestionContent,
		Options:       q.Options(),
		CorrectAnswer: q.QuestionCorrectAnswer,
		CreatedAt:     q.QuestionCreatedAt,
	})
}

/* =========================================================
   GET /admin/quiz/sets/:id/attempts?page=&per_page=&order=
   Listing attempt lintas user utk satu paket (paginated).
========================================================= */
func (ctrl *QuestionSetAdminController) ListSetAttempts(c *fiber.Ctx) error {
	setID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID paket soal tidak valid")
	}

	p := helper.ParseFiber(c, "desc", helper.AdminOpts)

	// query di-build ulang per eksekusi; *gorm.DB tidak aman di-reuse
	// setelah Count.
	base := func() *gorm.DB {
		return ctrl.DB.WithContext(c.UserContext()).
			Table("quiz_attempts AS qa").
			Joins("JOIN users AS u ON u.user_id = qa.quiz_attempt_user_id").
			Where("qa.quiz_attempt_question_set_id = ?", setID)
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung attempt")
	}

	var rows []dto.AdminAttemptRow
	if err := base().
		Select(`qa.quiz_attempt_id AS attempt_id,
			qa.quiz_attempt_user_id AS user_id,
			u.user_name AS user_name,
			qa.quiz_attempt_score AS score,
			qa.quiz_attempt_total_questions AS total_questions,
			qa.quiz_attempt_started_at AS started_at,
			qa.quiz_attempt_completed_at AS completed_at`).
		Order("qa.quiz_attempt_started_at " + strings.ToUpper(p.SortOrder)).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil attempt")
	}

	if rows == nil {
		rows = []dto.AdminAttemptRow{}
	}
	return helper.JsonList(c, "Daftar attempt", rows, helper.BuildMeta(total, p))
}
