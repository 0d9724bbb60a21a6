package model

import (
	"time"

	"github.com/google/uuid"
)

// AnnouncementModel — pengumuman broadcast (bukan bagian alur evaluasi)
type AnnouncementModel struct {
	AnnouncementID          uuid.UUID `gorm:"column:announcement_id;type:uuid;default:gen_random_uuid();primaryKey" json:"announcement_id"`
	AnnouncementTitle       string    `gorm:"column:announcement_title;size:255;not null" json:"announcement_title"`
	AnnouncementDescription string    `gorm:"column:announcement_description;type:text" json:"announcement_description"`
	AnnouncementCategory    string    `gorm:"column:announcement_category;size:50" json:"announcement_category"`
	AnnouncementIsActive    bool      `gorm:"column:announcement_is_active;not null;default:true" json:"announcement_is_active"`
	AnnouncementCreatedAt   time.Time `gorm:"column:announcement_created_at;autoCreateTime" json:"announcement_created_at"`
	AnnouncementUpdatedAt   time.Time `gorm:"column:announcement_updated_at;autoUpdateTime" json:"announcement_updated_at"`
}

func (AnnouncementModel) TableName() string {
	return "announcements"
}
