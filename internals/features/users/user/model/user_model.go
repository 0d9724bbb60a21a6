package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// UserModel merepresentasikan tabel users (atlet, reviewer, owner)
type UserModel struct {
	UserID               uuid.UUID      `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserName             string         `gorm:"column:user_name;size:50;not null" json:"user_name"`
	UserFullName         string         `gorm:"column:user_full_name;size:100;not null" json:"user_full_name"`
	UserEmail            string         `gorm:"column:user_email;size:255;unique;not null" json:"user_email"`
	UserPassword         string         `gorm:"column:user_password;not null" json:"-"`
	UserGoogleID         *string        `gorm:"column:user_google_id;size:255;unique" json:"user_google_id,omitempty"`
	UserRole             string         `gorm:"column:user_role;type:varchar(20);not null;default:'athlete'" json:"user_role"`
	UserSports           pq.StringArray `gorm:"column:user_sports;type:text[]" json:"user_sports"` // scope reviewer; kosong utk atlet
	UserSecurityQuestion string         `gorm:"column:user_security_question;not null" json:"user_security_question"`
	UserSecurityAnswer   string         `gorm:"column:user_security_answer;size:255;not null" json:"-"`
	UserIsActive         bool           `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`
	UserCreatedAt        time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt        time.Time      `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
