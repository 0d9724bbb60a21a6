package dto

import (
	"strings"
	"time"

	userModel "atletku_backend/internals/features/users/user/model"
)

// UpdateProfileRequest — partial update data diri atlet.
// Field workflow (score, status, remarks, is_test_submitted) TIDAK pernah
// lewat sini; hanya evaluation engine yang boleh menyentuhnya.
type UpdateProfileRequest struct {
	FullName  *string   `json:"full_name" validate:"omitempty,min=2,max=100"`
	BirthDate *string   `json:"birth_date" validate:"omitempty"` // YYYY-MM-DD
	Gender    *string   `json:"gender" validate:"omitempty,oneof=male female"`
	HeightCm  *float64  `json:"height_cm" validate:"omitempty,gt=0,lt=300"`
	WeightKg  *float64  `json:"weight_kg" validate:"omitempty,gt=0,lt=500"`
	Address   *string   `json:"address" validate:"omitempty,max=500"`
	State     *string   `json:"state" validate:"omitempty,max=100"`
	Sports    []string  `json:"sports" validate:"omitempty,dive,min=2,max=50"`
}

func (r *UpdateProfileRequest) Normalize() {
	if r.FullName != nil {
		v := strings.TrimSpace(*r.FullName)
		r.FullName = &v
	}
	if r.Gender != nil {
		v := strings.ToLower(strings.TrimSpace(*r.Gender))
		r.Gender = &v
	}
	if r.Address != nil {
		v := strings.TrimSpace(*r.Address)
		r.Address = &v
	}
	if r.State != nil {
		v := strings.TrimSpace(*r.State)
		r.State = &v
	}
	for i := range r.Sports {
		r.Sports[i] = strings.ToLower(strings.TrimSpace(r.Sports[i]))
	}
}

// ApplyTo menimpa hanya field yang dikirim
func (r *UpdateProfileRequest) ApplyTo(p *userModel.AthleteProfileModel) {
	if r.BirthDate != nil {
		if t, err := time.Parse("2006-01-02", strings.TrimSpace(*r.BirthDate)); err == nil {
			p.AthleteBirthDate = &t
		}
	}
	if r.Gender != nil {
		p.AthleteGender = r.Gender
	}
	if r.HeightCm != nil {
		p.AthleteHeightCm = r.HeightCm
	}
	if r.WeightKg != nil {
		p.AthleteWeightKg = r.WeightKg
	}
	if r.Address != nil {
		p.AthleteAddress = r.Address
	}
	if r.State != nil {
		p.AthleteState = r.State
	}
	if r.Sports != nil {
		p.AthleteSports = r.Sports
	}
}

// ProfileResponse menggabungkan akun + profil atlet untuk layar profil
type ProfileResponse struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`

	Profile *userModel.AthleteProfileModel `json:"profile,omitempty"`
}

func NewProfileResponse(u *userModel.UserModel, p *userModel.AthleteProfileModel) *ProfileResponse {
	return &ProfileResponse{
		UserID:   u.UserID.String(),
		UserName: u.UserName,
		FullName: u.UserFullName,
		Email:    u.UserEmail,
		Role:     u.UserRole,
		Profile:  p,
	}
}
