package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Tipe notifikasi (enum di sisi kode)
const (
	NotificationTypeStatusUpdate = "status_update"
	NotificationTypeSystemAlert  = "system_alert"
	NotificationTypeReminder     = "reminder"
)

// NotificationModel — pesan untuk atlet, append-only.
// Dibuat hanya oleh evaluation engine; atlet cuma bisa flip read flag.
type NotificationModel struct {
	NotificationID        uuid.UUID      `gorm:"column:notification_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"notification_id"`
	NotificationUserID    uuid.UUID      `gorm:"column:notification_user_id;type:uuid;not null;index" json:"notification_user_id"`
	NotificationTitle     string         `gorm:"column:notification_title;type:varchar(255);not null" json:"notification_title"`
	NotificationMessage   string         `gorm:"column:notification_message;type:text" json:"notification_message"`
	NotificationType      string         `gorm:"column:notification_type;type:varchar(30);not null;default:'status_update'" json:"notification_type"`
	NotificationIsRead    bool           `gorm:"column:notification_is_read;not null;default:false" json:"notification_is_read"`
	NotificationTags      pq.StringArray `gorm:"column:notification_tags;type:text[]" json:"notification_tags"`
	NotificationCreatedAt time.Time      `gorm:"column:notification_created_at;autoCreateTime" json:"notification_created_at"`
	NotificationUpdatedAt time.Time      `gorm:"column:notification_updated_at;autoUpdateTime" json:"notification_updated_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
