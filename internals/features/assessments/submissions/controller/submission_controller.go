package controller

import (
	"errors"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	submissionDTO "atletku_backend/internals/features/assessments/submissions/dto"
	submissionModel "atletku_backend/internals/features/assessments/submissions/model"
	userModel "atletku_backend/internals/features/users/user/model"
	helper "atletku_backend/internals/helpers"
	"atletku_backend/internals/helpers/oss"
)

var validate = validator.New()

type SubmissionController struct {
	DB    *gorm.DB
	Blobs oss.BlobService
}

func NewSubmissionController(db *gorm.DB, blobs oss.BlobService) *SubmissionController {
	return &SubmissionController{DB: db, Blobs: blobs}
}

// POST /api/u/submissions
// Multipart: test_name, category?, taken_at?, metrics? (string JSON), video? (file).
// Upload video gagal = request gagal, tidak ada row yang tertulis.
func (ctrl *SubmissionController) CreateSubmission(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	var req submissionDTO.CreateSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// gate akses tes
	var profile userModel.AthleteProfileModel
	if err := ctrl.DB.Where("athlete_profile_user_id = ?", userID).Take(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Profil atlet tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat profil atlet")
	}
	if !profile.CanStartTest() {
		return helper.Error(c, fiber.StatusForbidden, "Akses tes sedang ditutup untuk akun ini")
	}

	metrics := datatypes.JSONMap{}
	if raw := c.FormValue("metrics"); raw != "" {
		if err := sonic.Unmarshal([]byte(raw), &metrics); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Field metrics bukan JSON object yang valid")
		}
	}

	sub := req.ToModel(metrics, time.Now())
	sub.SubmissionUserID = userID

	// upload dulu, baru insert — kalau OSS gagal tidak ada submission setengah jadi
	if fh, err := c.FormFile("video"); err == nil && fh != nil {
		url, err := ctrl.Blobs.UploadVideo(c.UserContext(), "submissions/videos", fh)
		if err != nil {
			log.Println("[ERROR] upload video submission:", err)
			return helper.Error(c, fiber.StatusBadGateway, "Upload video gagal, submission dibatalkan")
		}
		sub.SubmissionVideoURL = &url
	}

	if err := ctrl.DB.Create(sub).Error; err != nil {
		// rollback best-effort objek yang sudah terlanjur naik
		if sub.SubmissionVideoURL != nil {
			_ = ctrl.Blobs.DeleteByPublicURL(c.UserContext(), *sub.SubmissionVideoURL)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan submission")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Submission berhasil dibuat", sub)
}

// POST /api/u/submissions/submit-battery
// Menandai rangkaian tes selesai: is_test_submitted = true.
// Atlet rejected yang mengulang tes dikembalikan ke pending (remarks lama dibersihkan).
func (ctrl *SubmissionController) SubmitBattery(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var profile userModel.AthleteProfileModel
		if err := tx.Where("athlete_profile_user_id = ?", userID).Take(&profile).Error; err != nil {
			return err
		}
		if profile.AthleteEvaluationStatus == userModel.EvaluationStatusApproved {
			return errApprovedLocked
		}

		var count int64
		if err := tx.Model(&submissionModel.SubmissionModel{}).
			Where("submission_user_id = ?", userID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errNoSubmissions
		}

		profile.AthleteIsTestSubmitted = true
		if profile.AthleteEvaluationStatus == userModel.EvaluationStatusRejected {
			profile.AthleteEvaluationStatus = userModel.EvaluationStatusPending
			profile.AthleteEvaluationRemarks = nil
		}
		return tx.Save(&profile).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return helper.Error(c, fiber.StatusNotFound, "Profil atlet tidak ditemukan")
		case errors.Is(err, errApprovedLocked):
			return helper.Error(c, fiber.StatusForbidden, "Atlet yang sudah approved tidak bisa submit tes lagi")
		case errors.Is(err, errNoSubmissions):
			return helper.Error(c, fiber.StatusBadRequest, "Belum ada submission yang bisa dikumpulkan")
		default:
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengumpulkan rangkaian tes")
		}
	}
	return helper.Success(c, "Rangkaian tes berhasil dikumpulkan", nil)
}

var (
	errApprovedLocked = errors.New("akses tes ditutup")
	errNoSubmissions  = errors.New("belum ada submission")
)

// GET /api/u/submissions
func (ctrl *SubmissionController) ListMySubmissions(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&submissionModel.SubmissionModel{}).
		Where("submission_user_id = ?", userID).
		Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung submission")
	}

	var subs []submissionModel.SubmissionModel
	if err := ctrl.DB.
		Where("submission_user_id = ?", userID).
		Order("submission_taken_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&subs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil submission")
	}

	return helper.Success(c, "Daftar submission berhasil diambil", fiber.Map{
		"submissions": subs,
		"pagination":  helper.BuildPagination(paging, total, len(subs)),
	})
}

// GET /api/u/submissions/:id
func (ctrl *SubmissionController) GetMySubmission(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}
	subID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID submission tidak valid")
	}

	var sub submissionModel.SubmissionModel
	err = ctrl.DB.
		Where("submission_id = ? AND submission_user_id = ?", subID, userID).
		Take(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Submission tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil submission")
	}
	return helper.Success(c, "Submission berhasil diambil", sub)
}
