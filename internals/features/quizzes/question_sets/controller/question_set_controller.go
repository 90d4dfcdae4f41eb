// file: internals/features/quizzes/question_sets/controller/question_set_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"quizku_backend/internals/features/quizzes/question_sets/dto"
	"quizku_backend/internals/features/quizzes/question_sets/model"
	helper "quizku_backend/internals/helpers"
)

/* =========================================================
   CONTROLLER publik — katalog paket soal.
   Semua output soal di sini WAJIB lewat toPublicQuestion
   supaya correct answer tidak pernah bocor ke client.
========================================================= */

type QuestionSetController struct {
	DB *gorm.DB
}

func NewQuestionSetController(db *gorm.DB) *QuestionSetController {
	return &QuestionSetController{DB: db}
}

func toPublicQuestion(q model.QuestionModel) dto.PublicQuestionResponse {
	return dto.PublicQuestionResponse{
		QuestionID: q.QuestionID,
		Type:       string(q.QuestionType),
		Content:    q.QuestionContent,
		Options:    q.Options(),
	}
}

/* =========================================================
   GET /quiz/sets
========================================================= */
func (ctrl *QuestionSetController) List(c *fiber.Ctx) error {
	var sets []model.QuestionSetModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("question_set_created_at ASC").
		Find(&sets).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar paket soal")
	}

	out := make([]dto.QuestionSetResponse, 0, len(sets))
	for _, s := range sets {
		out = append(out, dto.QuestionSetResponse{
			QuestionSetID: s.QuestionSetID,
			Name:          s.QuestionSetName,
			Description:   s.QuestionSetDescription,
			CreatedAt:     s.QuestionSetCreatedAt,
		})
	}
	return helper.JsonList(c, "Daftar paket soal", out, nil)
}

/* =========================================================
   GET /quiz/sets/:id
========================================================= */
func (ctrl *QuestionSetController) Detail(c *fiber.Ctx) error {
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

	var questions []model.QuestionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("question_question_set_id = ?", setID).
		Order("question_created_at ASC").
		Find(&questions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil soal")
	}

	qs := make([]dto.PublicQuestionResponse, 0, len(questions))
	for _, q := range questions {
		qs = append(qs, toPublicQuestion(q))
	}

	return helper.JsonOK(c, "Detail paket soal", dto.QuestionSetDetailResponse{
		QuestionSetID: set.QuestionSetID,
		Name:          set.QuestionSetName,
		Description:   set.QuestionSetDescription,
		CreatedAt:     set.QuestionSetCreatedAt,
		Questions:     qs,
	})
}
