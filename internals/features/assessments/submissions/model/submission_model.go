package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Status submission: pending → scored (jalur skor, terminal) atau approved/rejected langsung.
// Skor yang sudah di-set tidak pernah dihapus oleh transisi manapun.
const (
	SubmissionStatusPending  = "pending"
	SubmissionStatusScored   = "scored"
	SubmissionStatusApproved = "approved"
	SubmissionStatusRejected = "rejected"
)

// Kategori tes — enum eksplisit, di-set saat create (bukan regex di query)
const (
	CategoryJump      = "jump"
	CategorySitup     = "situp"
	CategoryEndurance = "endurance"
	CategorySprint    = "sprint"
	CategoryStrength  = "strength"
	CategoryOther     = "other"
)

// SubmissionModel — satu percobaan tes fisik milik atlet
type SubmissionModel struct {
	SubmissionID       uuid.UUID         `gorm:"column:submission_id;type:uuid;default:gen_random_uuid();primaryKey" json:"submission_id"`
	SubmissionUserID   uuid.UUID         `gorm:"column:submission_user_id;type:uuid;not null;index" json:"submission_user_id"`
	SubmissionTestName string            `gorm:"column:submission_test_name;size:100;not null" json:"submission_test_name"`
	SubmissionCategory string            `gorm:"column:submission_category;type:varchar(20);not null;default:'other'" json:"submission_category"`
	SubmissionMetrics  datatypes.JSONMap `gorm:"column:submission_metrics" json:"submission_metrics"`
	SubmissionScore    *float64          `gorm:"column:submission_score" json:"submission_score,omitempty"` // null sampai dinilai
	SubmissionTakenAt  time.Time         `gorm:"column:submission_taken_at;not null" json:"submission_taken_at"`
	SubmissionVideoURL *string           `gorm:"column:submission_video_url;type:text" json:"submission_video_url,omitempty"`
	SubmissionStatus   string            `gorm:"column:submission_status;type:varchar(20);not null;default:'pending'" json:"submission_status"`
	SubmissionCreatedAt time.Time        `gorm:"column:submission_created_at;autoCreateTime" json:"submission_created_at"`
	SubmissionUpdatedAt time.Time        `gorm:"column:submission_updated_at;autoUpdateTime" json:"submission_updated_at"`
}

func (SubmissionModel) TableName() string {
	return "submissions"
}

// IsRatified — submission ikut dihitung di chart dashboard
// (scored = sudah dinilai reviewer, approved = diratifikasi manual)
func (s *SubmissionModel) IsRatified() bool {
	return s.SubmissionStatus == SubmissionStatusScored || s.SubmissionStatus == SubmissionStatusApproved
}

var validCategories = map[string]struct{}{
	CategoryJump:      {},
	CategorySitup:     {},
	CategoryEndurance: {},
	CategorySprint:    {},
	CategoryStrength:  {},
	CategoryOther:     {},
}

func IsValidCategory(cat string) bool {
	_, ok := validCategories[cat]
	return ok
}

// DeriveCategory menebak kategori dari nama tes (fallback utk klien lama
// yang belum mengirim kategori eksplisit). Case-insensitive substring match.
func DeriveCategory(testName string) string {
	name := strings.ToLower(testName)
	switch {
	case strings.Contains(name, "jump"), strings.Contains(name, "lompat"):
		return CategoryJump
	case strings.Contains(name, "sit-up"), strings.Contains(name, "sit up"), strings.Contains(name, "situp"):
		return CategorySitup
	case strings.Contains(name, "endurance"), strings.Contains(name, "run"), strings.Contains(name, "lari"):
		return CategoryEndurance
	case strings.Contains(name, "sprint"):
		return CategorySprint
	case strings.Contains(name, "strength"), strings.Contains(name, "push"):
		return CategoryStrength
	default:
		return CategoryOther
	}
}
