package dto

import (
	"strings"
	"time"

	achievementModel "atletku_backend/internals/features/assessments/achievements/model"
)

type CreateAchievementRequest struct {
	Title       string `json:"title" form:"title" validate:"required,min=2,max=255"`
	Description string `json:"description" form:"description" validate:"omitempty,max=2000"`
	EarnedAt    string `json:"earned_at" form:"earned_at" validate:"omitempty"` // YYYY-MM-DD
}

func (r *CreateAchievementRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.EarnedAt = strings.TrimSpace(r.EarnedAt)
}

func (r *CreateAchievementRequest) ToModel() *achievementModel.AchievementModel {
	m := &achievementModel.AchievementModel{
		AchievementTitle: r.Title,
	}
	if r.Description != "" {
		m.AchievementDescription = &r.Description
	}
	if t, err := time.Parse("2006-01-02", r.EarnedAt); err == nil {
		m.AchievementEarnedAt = &t
	}
	return m
}

type UpdateAchievementRequest struct {
	Title       *string `json:"title" form:"title" validate:"omitempty,min=2,max=255"`
	Description *string `json:"description" form:"description" validate:"omitempty,max=2000"`
	EarnedAt    *string `json:"earned_at" form:"earned_at" validate:"omitempty"`
}

func (r *UpdateAchievementRequest) Normalize() {
	if r.Title != nil {
		t := strings.TrimSpace(*r.Title)
		r.Title = &t
	}
	if r.Description != nil {
		d := strings.TrimSpace(*r.Description)
		r.Description = &d
	}
	if r.EarnedAt != nil {
		e := strings.TrimSpace(*r.EarnedAt)
		r.EarnedAt = &e
	}
}

// ApplyTo menimpa field yang dikirim saja (partial update)
func (r *UpdateAchievementRequest) ApplyTo(m *achievementModel.AchievementModel) {
	if r.Title != nil && *r.Title != "" {
		m.AchievementTitle = *r.Title
	}
	if r.Description != nil {
		if *r.Description == "" {
			m.AchievementDescription = nil
		} else {
			m.AchievementDescription = r.Description
		}
	}
	if r.EarnedAt != nil {
		if t, err := time.Parse("2006-01-02", *r.EarnedAt); err == nil {
			m.AchievementEarnedAt = &t
		}
	}
}
