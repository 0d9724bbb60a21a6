package dto

import "strings"

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// EvaluateSubmissionRequest — status dan/atau skor; minimal salah satu harus ada
type EvaluateSubmissionRequest struct {
	Status *string  `json:"status" validate:"omitempty,oneof=pending approved rejected"`
	Score  *float64 `json:"score" validate:"omitempty,gte=0,lte=25"`
}

func (r *EvaluateSubmissionRequest) Normalize() {
	if r.Status != nil {
		s := strings.ToLower(strings.TrimSpace(*r.Status))
		r.Status = &s
	}
}

func (r *EvaluateSubmissionRequest) IsEmpty() bool {
	return r.Status == nil && r.Score == nil
}

// EvaluateAthleteRequest — keputusan reviewer pada profil atlet
type EvaluateAthleteRequest struct {
	Status  string  `json:"status" validate:"required,oneof=approved rejected"`
	Remarks *string `json:"remarks" validate:"omitempty,max=1000"`
}

func (r *EvaluateAthleteRequest) Normalize() {
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
	if r.Remarks != nil {
		t := strings.TrimSpace(*r.Remarks)
		r.Remarks = &t
	}
}
