package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	announcementDTO "atletku_backend/internals/features/home/announcements/dto"
	announcementModel "atletku_backend/internals/features/home/announcements/model"
	helper "atletku_backend/internals/helpers"
)

var validate = validator.New()

type AnnouncementController struct {
	DB *gorm.DB
}

func NewAnnouncementController(db *gorm.DB) *AnnouncementController {
	return &AnnouncementController{DB: db}
}

// GET /api/u/announcements — atlet cuma lihat yang aktif
func (ctrl *AnnouncementController) ListActive(c *fiber.Ctx) error {
	var items []announcementModel.AnnouncementModel
	if err := ctrl.DB.
		Where("announcement_is_active = TRUE").
		Order("announcement_created_at DESC").
		Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil pengumuman")
	}
	return helper.Success(c, "Pengumuman berhasil diambil", fiber.Map{
		"announcements": items,
		"total":         len(items),
	})
}

// GET /api/a/announcements — reviewer/owner lihat semua
func (ctrl *AnnouncementController) ListAll(c *fiber.Ctx) error {
	var items []announcementModel.AnnouncementModel
	if err := ctrl.DB.
		Order("announcement_created_at DESC").
		Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil pengumuman")
	}
	return helper.Success(c, "Pengumuman berhasil diambil", fiber.Map{
		"announcements": items,
		"total":         len(items),
	})
}

// POST /api/a/announcements
func (ctrl *AnnouncementController) Create(c *fiber.Ctx) error {
	var req announcementDTO.CreateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan pengumuman")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pengumuman berhasil dibuat", m)
}

func (ctrl *AnnouncementController) findByParam(c *fiber.Ctx) (*announcementModel.AnnouncementModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.Error(c, fiber.StatusBadRequest, "ID pengumuman tidak valid")
	}
	var m announcementModel.AnnouncementModel
	if err := ctrl.DB.Where("announcement_id = ?", id).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.Error(c, fiber.StatusNotFound, "Pengumuman tidak ditemukan")
		}
		return nil, helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil pengumuman")
	}
	return &m, nil
}

// PUT /api/a/announcements/:id
func (ctrl *AnnouncementController) Update(c *fiber.Ctx) error {
	m, ferr := ctrl.findByParam(c)
	if m == nil {
		return ferr
	}

	var req announcementDTO.UpdateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyTo(m)
	if err := ctrl.DB.Save(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui pengumuman")
	}
	return helper.Success(c, "Pengumuman berhasil diperbarui", m)
}

// DELETE /api/a/announcements/:id
func (ctrl *AnnouncementController) Delete(c *fiber.Ctx) error {
	m, ferr := ctrl.findByParam(c)
	if m == nil {
		return ferr
	}
	if err := ctrl.DB.Delete(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus pengumuman")
	}
	return helper.Success(c, "Pengumuman berhasil dihapus", nil)
}
