package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authModel "atletku_backend/internals/features/users/auth/model"
	userModel "atletku_backend/internals/features/users/user/model"
)

func FindUserByID(db *gorm.DB, id uuid.UUID) (*userModel.UserModel, error) {
	var u userModel.UserModel
	if err := db.Where("user_id = ?", id).Take(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func FindUserByEmail(db *gorm.DB, email string) (*userModel.UserModel, error) {
	var u userModel.UserModel
	if err := db.Where("LOWER(user_email) = LOWER(?)", email).Take(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// FindUserByIdentifier — login bisa pakai email atau user_name
func FindUserByIdentifier(db *gorm.DB, identifier string) (*userModel.UserModel, error) {
	var u userModel.UserModel
	err := db.
		Where("LOWER(user_email) = LOWER(?) OR LOWER(user_name) = LOWER(?)", identifier, identifier).
		Take(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func FindUserByGoogleID(db *gorm.DB, googleID string) (*userModel.UserModel, error) {
	var u userModel.UserModel
	if err := db.Where("user_google_id = ?", googleID).Take(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func CreateUser(db *gorm.DB, u *userModel.UserModel) error {
	return db.Create(u).Error
}

// CreateAthleteProfile — profil kosong dibuat bareng akun athlete
func CreateAthleteProfile(db *gorm.DB, userID uuid.UUID) error {
	p := userModel.AthleteProfileModel{AthleteProfileUserID: userID}
	return db.Create(&p).Error
}

func UpdateUserPassword(db *gorm.DB, userID uuid.UUID, hashed string) error {
	return db.Model(&userModel.UserModel{}).
		Where("user_id = ?", userID).
		Update("user_password", hashed).Error
}

// BlacklistToken — idempotent; token yang sama tidak bikin error duplikat
func BlacklistToken(db *gorm.DB, token string, ttl time.Duration) error {
	if token == "" {
		return errors.New("empty token")
	}
	row := authModel.TokenBlacklistModel{
		Token:                   token,
		TokenBlacklistExpiresAt: time.Now().Add(ttl),
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "token"}},
		DoNothing: true,
	}).Create(&row).Error
}

func DeleteExpiredBlacklistTokens(db *gorm.DB) (int64, error) {
	res := db.Where("token_blacklist_expires_at < ?", time.Now()).
		Delete(&authModel.TokenBlacklistModel{})
	return res.RowsAffected, res.Error
}
