package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Status evaluasi profil atlet (workflow milik Evaluation Engine)
const (
	EvaluationStatusPending  = "pending"
	EvaluationStatusApproved = "approved"
	EvaluationStatusRejected = "rejected"
)

// AthleteProfileModel — data profil atlet (1:1 dengan users ber-role athlete).
// Kolom overall_score / evaluation_status / evaluation_remarks / is_test_submitted
// HANYA boleh dimutasi oleh evaluation engine, bukan oleh edit profil.
type AthleteProfileModel struct {
	AthleteProfileID     uuid.UUID      `gorm:"column:athlete_profile_id;type:uuid;default:gen_random_uuid();primaryKey" json:"athlete_profile_id"`
	AthleteProfileUserID uuid.UUID      `gorm:"column:athlete_profile_user_id;type:uuid;not null;uniqueIndex" json:"athlete_profile_user_id"`

	AthleteBirthDate *time.Time     `gorm:"column:athlete_birth_date;type:date" json:"athlete_birth_date,omitempty"`
	AthleteGender    *string        `gorm:"column:athlete_gender;type:varchar(10)" json:"athlete_gender,omitempty"`
	AthleteHeightCm  *float64       `gorm:"column:athlete_height_cm" json:"athlete_height_cm,omitempty"`
	AthleteWeightKg  *float64       `gorm:"column:athlete_weight_kg" json:"athlete_weight_kg,omitempty"`
	AthleteAddress   *string        `gorm:"column:athlete_address;type:text" json:"athlete_address,omitempty"`
	AthleteState     *string        `gorm:"column:athlete_state;size:100" json:"athlete_state,omitempty"`
	AthleteSports    pq.StringArray `gorm:"column:athlete_sports;type:text[]" json:"athlete_sports"`

	// URL media di OSS (opaque string)
	AthletePhotoURL          *string `gorm:"column:athlete_photo_url;type:text" json:"athlete_photo_url,omitempty"`
	AthletePhotoThumbURL     *string `gorm:"column:athlete_photo_thumb_url;type:text" json:"athlete_photo_thumb_url,omitempty"`
	AthleteIdentityDocURL    *string `gorm:"column:athlete_identity_doc_url;type:text" json:"athlete_identity_doc_url,omitempty"`
	AthleteAgeProofURL       *string `gorm:"column:athlete_age_proof_url;type:text" json:"athlete_age_proof_url,omitempty"`
	AthleteReferenceVideoURL *string `gorm:"column:athlete_reference_video_url;type:text" json:"athlete_reference_video_url,omitempty"`

	// Derived/workflow — dimiliki evaluation engine
	AthleteOverallScore      float64 `gorm:"column:athlete_overall_score;not null;default:0" json:"athlete_overall_score"`
	AthleteEvaluationStatus  string  `gorm:"column:athlete_evaluation_status;type:varchar(20);not null;default:'pending'" json:"athlete_evaluation_status"`
	AthleteEvaluationRemarks *string `gorm:"column:athlete_evaluation_remarks;type:text" json:"athlete_evaluation_remarks,omitempty"`
	AthleteIsTestSubmitted   bool    `gorm:"column:athlete_is_test_submitted;not null;default:false" json:"athlete_is_test_submitted"`

	AthleteCreatedAt time.Time `gorm:"column:athlete_created_at;autoCreateTime" json:"athlete_created_at"`
	AthleteUpdatedAt time.Time `gorm:"column:athlete_updated_at;autoUpdateTime" json:"athlete_updated_at"`
}

func (AthleteProfileModel) TableName() string {
	return "athlete_profiles"
}

// CanStartTest — aturan akses mulai tes:
// tertutup permanen setelah approved; tertutup sementara saat pending + sudah submit;
// rejected membuka kembali (is_test_submitted sudah direset oleh engine).
func (p *AthleteProfileModel) CanStartTest() bool {
	if p.AthleteEvaluationStatus == EvaluationStatusApproved {
		return false
	}
	if p.AthleteEvaluationStatus == EvaluationStatusPending && p.AthleteIsTestSubmitted {
		return false
	}
	return true
}
