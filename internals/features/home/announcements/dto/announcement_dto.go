package dto

import (
	"strings"

	announcementModel "atletku_backend/internals/features/home/announcements/model"
)

type CreateAnnouncementRequest struct {
	Title       string `json:"title" validate:"required,min=2,max=255"`
	Description string `json:"description" validate:"required,max=5000"`
	Category    string `json:"category" validate:"omitempty,max=50"`
	IsActive    *bool  `json:"is_active"`
}

func (r *CreateAnnouncementRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Category = strings.ToLower(strings.TrimSpace(r.Category))
}

func (r *CreateAnnouncementRequest) ToModel() *announcementModel.AnnouncementModel {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &announcementModel.AnnouncementModel{
		AnnouncementTitle:       r.Title,
		AnnouncementDescription: r.Description,
		AnnouncementCategory:    r.Category,
		AnnouncementIsActive:    active,
	}
}

type UpdateAnnouncementRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=2,max=255"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	Category    *string `json:"category" validate:"omitempty,max=50"`
	IsActive    *bool   `json:"is_active"`
}

func (r *UpdateAnnouncementRequest) Normalize() {
	if r.Title != nil {
		v := strings.TrimSpace(*r.Title)
		r.Title = &v
	}
	if r.Description != nil {
		v := strings.TrimSpace(*r.Description)
		r.Description = &v
	}
	if r.Category != nil {
		v := strings.ToLower(strings.TrimSpace(*r.Category))
		r.Category = &v
	}
}

func (r *UpdateAnnouncementRequest) ApplyTo(m *announcementModel.AnnouncementModel) {
	if r.Title != nil && *r.Title != "" {
		m.AnnouncementTitle = *r.Title
	}
	if r.Description != nil {
		m.AnnouncementDescription = *r.Description
	}
	if r.Category != nil {
		m.AnnouncementCategory = *r.Category
	}
	if r.IsActive != nil {
		m.AnnouncementIsActive = *r.IsActive
	}
}
