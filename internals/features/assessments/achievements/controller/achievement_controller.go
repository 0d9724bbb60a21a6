package controller

import (
	"errors"
	"log"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	achievementDTO "atletku_backend/internals/features/assessments/achievements/dto"
	achievementModel "atletku_backend/internals/features/assessments/achievements/model"
	helper "atletku_backend/internals/helpers"
	"atletku_backend/internals/helpers/oss"
)

var validate = validator.New()

type AchievementController struct {
	DB    *gorm.DB
	Blobs oss.BlobService
}

func NewAchievementController(db *gorm.DB, blobs oss.BlobService) *AchievementController {
	return &AchievementController{DB: db, Blobs: blobs}
}

// uploadCertificate memilih jalur upload berdasarkan ekstensi (pdf vs gambar)
func (ctrl *AchievementController) uploadCertificate(c *fiber.Ctx) (*string, error) {
	fh, err := c.FormFile("certificate")
	if err != nil || fh == nil {
		return nil, nil
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	var url string
	if ext == ".pdf" {
		url, err = ctrl.Blobs.UploadDocument(c.UserContext(), "achievements/certificates", fh)
	} else {
		url, err = ctrl.Blobs.UploadImage(c.UserContext(), "achievements/certificates", fh)
	}
	if err != nil {
		return nil, err
	}
	return &url, nil
}

// POST /api/u/achievements (multipart, file opsional di field "certificate")
func (ctrl *AchievementController) CreateAchievement(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	var req achievementDTO.CreateAchievementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	certURL, err := ctrl.uploadCertificate(c)
	if err != nil {
		log.Println("[ERROR] upload sertifikat:", err)
		return helper.Error(c, fiber.StatusBadGateway, "Upload sertifikat gagal")
	}

	m := req.ToModel()
	m.AchievementUserID = userID
	m.AchievementCertificateURL = certURL

	if err := ctrl.DB.Create(m).Error; err != nil {
		if certURL != nil {
			_ = ctrl.Blobs.DeleteByPublicURL(c.UserContext(), *certURL)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan prestasi")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Prestasi berhasil ditambahkan", m)
}

// GET /api/u/achievements
func (ctrl *AchievementController) ListMyAchievements(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	var items []achievementModel.AchievementModel
	if err := ctrl.DB.
		Where("achievement_user_id = ?", userID).
		Order("achievement_earned_at DESC NULLS LAST").
		Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil prestasi")
	}
	return helper.Success(c, "Daftar prestasi berhasil diambil", fiber.Map{
		"achievements": items,
		"total":        len(items),
	})
}

// GET /api/u/achievements/:id
func (ctrl *AchievementController) GetMyAchievement(c *fiber.Ctx) error {
	m, ferr := ctrl.findOwned(c)
	if m == nil {
		return ferr
	}
	return helper.Success(c, "Prestasi berhasil diambil", m)
}

// findOwned mengambil prestasi milik user sendiri (404 kalau bukan miliknya)
func (ctrl *AchievementController) findOwned(c *fiber.Ctx) (*achievementModel.AchievementModel, error) {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return nil, helper.Error(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.Error(c, fiber.StatusBadRequest, "ID prestasi tidak valid")
	}

	var m achievementModel.AchievementModel
	err = ctrl.DB.
		Where("achievement_id = ? AND achievement_user_id = ?", id, userID).
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.Error(c, fiber.StatusNotFound, "Prestasi tidak ditemukan")
		}
		return nil, helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil prestasi")
	}
	return &m, nil
}

// PUT /api/u/achievements/:id
func (ctrl *AchievementController) UpdateAchievement(c *fiber.Ctx) error {
	m, ferr := ctrl.findOwned(c)
	if m == nil {
		return ferr
	}

	var req achievementDTO.UpdateAchievementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	req.ApplyTo(m)

	// sertifikat baru menggantikan yang lama
	if certURL, err := ctrl.uploadCertificate(c); err != nil {
		log.Println("[ERROR] upload sertifikat:", err)
		return helper.Error(c, fiber.StatusBadGateway, "Upload sertifikat gagal")
	} else if certURL != nil {
		if m.AchievementCertificateURL != nil {
			_ = ctrl.Blobs.DeleteByPublicURL(c.UserContext(), *m.AchievementCertificateURL)
		}
		m.AchievementCertificateURL = certURL
	}

	if err := ctrl.DB.Save(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui prestasi")
	}
	return helper.Success(c, "Prestasi berhasil diperbarui", m)
}

// DELETE /api/u/achievements/:id
func (ctrl *AchievementController) DeleteAchievement(c *fiber.Ctx) error {
	m, ferr := ctrl.findOwned(c)
	if m == nil {
		return ferr
	}

	if err := ctrl.DB.Delete(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus prestasi")
	}
	if m.AchievementCertificateURL != nil {
		_ = ctrl.Blobs.DeleteByPublicURL(c.UserContext(), *m.AchievementCertificateURL)
	}
	return helper.Success(c, "Prestasi berhasil dihapus", nil)
}
