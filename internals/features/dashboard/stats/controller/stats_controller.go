package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	statsService "atletku_backend/internals/features/dashboard/stats/service"
	helper "atletku_backend/internals/helpers"
)

type StatsController struct {
	Service *statsService.Service
}

func NewStatsController(service *statsService.Service) *StatsController {
	return &StatsController{Service: service}
}

// GET /api/a/dashboard
func (ctrl *StatsController) GetDashboard(c *fiber.Ctx) error {
	stats, err := ctrl.Service.ComputeDashboard(c.UserContext(), helper.GetSportsScope(c))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung statistik dashboard")
	}
	return helper.Success(c, "Statistik dashboard berhasil diambil", stats)
}

// GET /api/a/athletes?status=pending|approved|rejected
func (ctrl *StatsController) ListAthletes(c *fiber.Ctx) error {
	status := c.Query("status")
	athletes, err := ctrl.Service.ListAthletes(c.UserContext(), helper.GetSportsScope(c), status)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar atlet")
	}
	return helper.Success(c, "Daftar atlet berhasil diambil", fiber.Map{
		"athletes": athletes,
		"total":    len(athletes),
	})
}

// GET /api/a/submissions/pending
func (ctrl *StatsController) ListPendingSubmissions(c *fiber.Ctx) error {
	items, err := ctrl.Service.ListPendingSubmissions(c.UserContext(), helper.GetSportsScope(c))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil antrian submission")
	}
	return helper.Success(c, "Antrian submission berhasil diambil", fiber.Map{
		"submissions": items,
		"total":       len(items),
	})
}

// GET /api/a/athletes/:id
func (ctrl *StatsController) GetAthleteDetail(c *fiber.Ctx) error {
	athleteID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID atlet tidak valid")
	}

	detail, err := ctrl.Service.GetAthleteDetail(c.UserContext(), helper.GetSportsScope(c), athleteID)
	if err != nil {
		switch {
		case errors.Is(err, statsService.ErrAthleteNotFound):
			return helper.Error(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, statsService.ErrForbiddenScope):
			return helper.Error(c, fiber.StatusForbidden, err.Error())
		default:
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil detail atlet")
		}
	}
	return helper.Success(c, "Detail atlet berhasil diambil", detail)
}
