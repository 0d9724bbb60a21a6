package dto

import (
	"strings"
	"time"

	"gorm.io/datatypes"

	submissionModel "atletku_backend/internals/features/assessments/submissions/model"
)

// CreateSubmissionRequest — field non-file dari form multipart create submission.
// Metrics dikirim sebagai string JSON di field "metrics" dan di-decode terpisah.
type CreateSubmissionRequest struct {
	TestName string `json:"test_name" form:"test_name" validate:"required,min=2,max=100"`
	Category string `json:"category" form:"category" validate:"omitempty,oneof=jump situp endurance sprint strength other"`
	TakenAt  string `json:"taken_at" form:"taken_at" validate:"omitempty"` // RFC3339, default now
}

func (r *CreateSubmissionRequest) Normalize() {
	r.TestName = strings.TrimSpace(r.TestName)
	r.Category = strings.ToLower(strings.TrimSpace(r.Category))
	r.TakenAt = strings.TrimSpace(r.TakenAt)
}

// ResolveCategory — pakai kategori eksplisit kalau valid, selain itu tebak dari nama tes
func (r *CreateSubmissionRequest) ResolveCategory() string {
	if submissionModel.IsValidCategory(r.Category) {
		return r.Category
	}
	return submissionModel.DeriveCategory(r.TestName)
}

// ResolveTakenAt — parse RFC3339; kosong/invalid jatuh ke waktu sekarang
func (r *CreateSubmissionRequest) ResolveTakenAt(now time.Time) time.Time {
	if r.TakenAt == "" {
		return now
	}
	t, err := time.Parse(time.RFC3339, r.TakenAt)
	if err != nil {
		return now
	}
	return t
}

func (r *CreateSubmissionRequest) ToModel(metrics datatypes.JSONMap, now time.Time) *submissionModel.SubmissionModel {
	return &submissionModel.SubmissionModel{
		SubmissionTestName: r.TestName,
		SubmissionCategory: r.ResolveCategory(),
		SubmissionMetrics:  metrics,
		SubmissionTakenAt:  r.ResolveTakenAt(now),
		SubmissionStatus:   submissionModel.SubmissionStatusPending,
	}
}
