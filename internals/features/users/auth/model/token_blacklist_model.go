package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenBlacklistModel — token yang sudah di-logout, ditolak oleh middleware auth
type TokenBlacklistModel struct {
	TokenBlacklistID        uuid.UUID `gorm:"column:token_blacklist_id;type:uuid;default:gen_random_uuid();primaryKey" json:"token_blacklist_id"`
	Token                   string    `gorm:"column:token;type:text;not null;uniqueIndex" json:"token"`
	TokenBlacklistExpiresAt time.Time `gorm:"column:token_blacklist_expires_at;not null" json:"token_blacklist_expires_at"`
	TokenBlacklistCreatedAt time.Time `gorm:"column:token_blacklist_created_at;autoCreateTime" json:"token_blacklist_created_at"`
}

func (TokenBlacklistModel) TableName() string {
	return "token_blacklist"
}
