package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"atletku_backend/internals/constants"
	userDTO "atletku_backend/internals/features/users/user/dto"
	userModel "atletku_backend/internals/features/users/user/model"
	helper "atletku_backend/internals/helpers"
	"atletku_backend/internals/helpers/oss"
)

var validate = validator.New()

type UserController struct {
	DB    *gorm.DB
	Blobs oss.BlobService
}

func NewUserController(db *gorm.DB, blobs oss.BlobService) *UserController {
	return &UserController{DB: db, Blobs: blobs}
}

func (ctrl *UserController) loadUser(userID uuid.UUID) (*userModel.UserModel, error) {
	var u userModel.UserModel
	if err := ctrl.DB.Where("user_id = ?", userID).Take(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// loadProfile — profil atlet; dibuat on-demand kalau belum ada (akun athlete lama)
func (ctrl *UserController) loadProfile(userID uuid.UUID, createIfMissing bool) (*userModel.AthleteProfileModel, error) {
	var p userModel.AthleteProfileModel
	err := ctrl.DB.Where("athlete_profile_user_id = ?", userID).Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) && createIfMissing {
		p = userModel.AthleteProfileModel{AthleteProfileUserID: userID}
		if err := ctrl.DB.Create(&p).Error; err != nil {
			return nil, err
		}
		return &p, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GET /api/u/profile
func (ctrl *UserController) GetMyProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	u, err := ctrl.loadUser(userID)
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	var profile *userModel.AthleteProfileModel
	if u.UserRole == constants.RoleAthlete {
		profile, err = ctrl.loadProfile(userID, true)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat profil atlet")
		}
	}
	return helper.Success(c, "Profil berhasil diambil", userDTO.NewProfileResponse(u, profile))
}

// PUT /api/u/profile
func (ctrl *UserController) UpdateMyProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	var req userDTO.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	u, err := ctrl.loadUser(userID)
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if req.FullName != nil && *req.FullName != "" {
			if err := tx.Model(&userModel.UserModel{}).
				Where("user_id = ?", userID).
				Update("user_full_name", *req.FullName).Error; err != nil {
				return err
			}
			u.UserFullName = *req.FullName
		}

		if u.UserRole != constants.RoleAthlete {
			return nil
		}

		var p userModel.AthleteProfileModel
		if err := tx.Where("athlete_profile_user_id = ?", userID).Take(&p).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			p = userModel.AthleteProfileModel{AthleteProfileUserID: userID}
		}
		req.ApplyTo(&p)
		return tx.Save(&p).Error
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui profil")
	}

	profile, _ := ctrl.loadProfile(userID, false)
	return helper.Success(c, "Profil berhasil diperbarui", userDTO.NewProfileResponse(u, profile))
}

// POST /api/u/profile/photo (multipart, field "photo")
func (ctrl *UserController) UploadProfilePhoto(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}
	fh, err := c.FormFile("photo")
	if err != nil || fh == nil {
		return helper.Error(c, fiber.StatusBadRequest, "File photo wajib diisi")
	}

	p, err := ctrl.loadProfile(userID, true)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat profil atlet")
	}

	url, thumbURL, err := ctrl.Blobs.UploadImageWithThumb(c.UserContext(), "athletes/photos", fh)
	if err != nil {
		log.Println("[ERROR] upload foto profil:", err)
		return helper.Error(c, fiber.StatusBadGateway, "Upload foto gagal")
	}

	oldURL, oldThumb := p.AthletePhotoURL, p.AthletePhotoThumbURL
	p.AthletePhotoURL = &url
	p.AthletePhotoThumbURL = &thumbURL
	if err := ctrl.DB.Save(p).Error; err != nil {
		_ = ctrl.Blobs.DeleteByPublicURL(c.UserContext(), url)
		_ = ctrl.Blobs.DeleteByPublicURL(c.UserContext(), thumbURL)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan foto profil")
	}
	if oldURL != nil {
		_ = ctrl.Blobs.DeleteByPublicURL(c.UserContext(), *oldURL)
	}
	if oldThumb != nil {
		_ = ctrl.Blobs.DeleteByPublicURL(c.UserContext(), *oldThumb)
	}

	return helper.Success(c, "Foto profil berhasil diperbarui", fiber.Map{
		"photo_url":       url,
		"photo_thumb_url": thumbURL,
	})
}

// POST /api/u/profile/documents
// Multipart: identity_doc? age_proof? — minimal salah satu
func (ctrl *UserController) UploadDocuments(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	p, err := ctrl.loadProfile(userID, true)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat profil atlet")
	}

	uploaded := fiber.Map{}
	if fh, err := c.FormFile("identity_doc"); err == nil && fh != nil {
		url, err := ctrl.Blobs.UploadDocument(c.UserContext(), "athletes/documents/identity", fh)
		if err != nil {
			log.Println("[ERROR] upload dokumen identitas:", err)
			return helper.Error(c, fiber.StatusBadGateway, "Upload dokumen identitas gagal")
		}
		if p.AthleteIdentityDocURL != nil {
			_ = ctrl.Blobs.DeleteByPublicURL(c.UserContext(), *p.AthleteIdentityDocURL)
		}
		p.AthleteIdentityDocURL = &url
		uploaded["identity_doc_url"] = url
	}
	if fh, err := c.FormFile("age_proof"); err == nil && fh != nil {
		url, err := ctrl.Blobs.UploadDocument(c.UserContext(), "athletes/documents/age", fh)
		if err != nil {
			log.Println("[ERROR] upload bukti umur:", err)
			return helper.Error(c, fiber.StatusBadGateway, "Upload bukti umur gagal")
		}
		if p.AthleteAgeProofURL != nil {
			_ = ctrl.Blobs.DeleteByPublicURL(c.UserContext(), *p.AthleteAgeProofURL)
		}
		p.AthleteAgeProofURL = &url
		uploaded["age_proof_url"] = url
	}
	if len(uploaded) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Minimal satu dokumen (identity_doc / age_proof) wajib diisi")
	}

	if err := ctrl.DB.Save(p).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan dokumen")
	}
	return helper.Success(c, "Dokumen berhasil diunggah", uploaded)
}

// POST /api/u/profile/reference-video (multipart, field "video")
func (ctrl *UserController) UploadReferenceVideo(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}
	fh, err := c.FormFile("video")
	if err != nil || fh == nil {
		return helper.Error(c, fiber.StatusBadRequest, "File video wajib diisi")
	}

	p, err := ctrl.loadProfile(userID, true)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat profil atlet")
	}

	url, err := ctrl.Blobs.UploadVideo(c.UserContext(), "athletes/reference-videos", fh)
	if err != nil {
		log.Println("[ERROR] upload video referensi:", err)
		return helper.Error(c, fiber.StatusBadGateway, "Upload video referensi gagal")
	}

	old := p.AthleteReferenceVideoURL
	p.AthleteReferenceVideoURL = &url
	if err := ctrl.DB.Save(p).Error; err != nil {
		_ = ctrl.Blobs.DeleteByPublicURL(c.UserContext(), url)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan video referensi")
	}
	if old != nil {
		_ = ctrl.Blobs.DeleteByPublicURL(c.UserContext(), *old)
	}
	return helper.Success(c, "Video referensi berhasil diunggah", fiber.Map{"reference_video_url": url})
}

// GET /api/u/test-access — gate mulai tes utk klien
func (ctrl *UserController) GetTestAccess(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	p, err := ctrl.loadProfile(userID, true)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat profil atlet")
	}
	return helper.Success(c, "Status akses tes berhasil diambil", fiber.Map{
		"can_start_test":    p.CanStartTest(),
		"evaluation_status": p.AthleteEvaluationStatus,
		"is_test_submitted": p.AthleteIsTestSubmitted,
		"overall_score":     p.AthleteOverallScore,
		"remarks":           p.AthleteEvaluationRemarks,
	})
}
