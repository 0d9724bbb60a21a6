package model

import (
	"time"

	"github.com/google/uuid"
)

// AchievementModel — sertifikat/prestasi pendukung milik atlet.
// Tidak berpengaruh pada skor; boleh dihapus oleh pemiliknya.
type AchievementModel struct {
	AchievementID             uuid.UUID  `gorm:"column:achievement_id;type:uuid;default:gen_random_uuid();primaryKey" json:"achievement_id"`
	AchievementUserID         uuid.UUID  `gorm:"column:achievement_user_id;type:uuid;not null;index" json:"achievement_user_id"`
	AchievementTitle          string     `gorm:"column:achievement_title;size:255;not null" json:"achievement_title"`
	AchievementDescription    *string    `gorm:"column:achievement_description;type:text" json:"achievement_description,omitempty"`
	AchievementEarnedAt       *time.Time `gorm:"column:achievement_earned_at;type:date" json:"achievement_earned_at,omitempty"`
	AchievementCertificateURL *string    `gorm:"column:achievement_certificate_url;type:text" json:"achievement_certificate_url,omitempty"`
	AchievementCreatedAt      time.Time  `gorm:"column:achievement_created_at;autoCreateTime" json:"achievement_created_at"`
	AchievementUpdatedAt      time.Time  `gorm:"column:achievement_updated_at;autoUpdateTime" json:"achievement_updated_at"`
}

func (AchievementModel) TableName() string {
	return "achievements"
}
