package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	evalDTO "atletku_backend/internals/features/assessments/evaluation/dto"
	evalService "atletku_backend/internals/features/assessments/evaluation/service"
	helper "atletku_backend/internals/helpers"
)

var validate = validator.New()

type EvaluationController struct {
	Service *evalService.Service
}

func NewEvaluationController(svc *evalService.Service) *EvaluationController {
	return &EvaluationController{Service: svc}
}

// PUT /api/a/submissions/:id/evaluate
func (ctrl *EvaluationController) EvaluateSubmission(c *fiber.Ctx) error {
	subID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID submission tidak valid")
	}

	var req evalDTO.EvaluateSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if req.IsEmpty() {
		return helper.Error(c, fiber.StatusBadRequest, "Minimal kirim status atau score")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	sub, err := ctrl.Service.EvaluateSubmission(c.UserContext(), helper.GetSportsScope(c), evalService.EvaluateSubmissionInput{
		SubmissionID: subID,
		Status:       req.Status,
		Score:        req.Score,
	})
	if err != nil {
		return evaluationError(c, err)
	}

	return helper.Success(c, "Submission berhasil dievaluasi", sub)
}

// PUT /api/a/athletes/:id/evaluate
func (ctrl *EvaluationController) EvaluateAthlete(c *fiber.Ctx) error {
	athleteUserID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID atlet tidak valid")
	}

	var req evalDTO.EvaluateAthleteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	athlete, err := ctrl.Service.EvaluateAthlete(c.UserContext(), helper.GetSportsScope(c), evalService.EvaluateAthleteInput{
		AthleteUserID: athleteUserID,
		Status:        req.Status,
		Remarks:       req.Remarks,
	})
	if err != nil {
		return evaluationError(c, err)
	}

	return helper.Success(c, "Profil atlet berhasil dievaluasi", athlete)
}

// evaluationError memetakan sentinel error engine ke HTTP status
func evaluationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, evalService.ErrSubmissionNotFound),
		errors.Is(err, evalService.ErrAthleteNotFound):
		return helper.Error(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, evalService.ErrForbiddenScope):
		return helper.Error(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, evalService.ErrInvalidStatus),
		errors.Is(err, evalService.ErrScoreOutOfRange):
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	default:
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses evaluasi")
	}
}
