// internals/features/users/auth/service/auth_service.go
package service

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"atletku_backend/internals/configs"
	"atletku_backend/internals/constants"
	authDTO "atletku_backend/internals/features/users/auth/dto"
	authRepo "atletku_backend/internals/features/users/auth/repository"
	userModel "atletku_backend/internals/features/users/user/model"
	helper "atletku_backend/internals/helpers"
)

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

var validate = validator.New()

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("JWT_SECRET"))
	}
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("JWT_REFRESH_SECRET"))
	}
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET belum diset")
	}
	return secret, nil
}

func hashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(b), err
}

func checkPasswordHash(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}

/* ==========================
   REGISTER
========================== */

// Register — self-service, selalu role athlete + profil kosong
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := userModel.UserModel{
		UserName:             req.UserName,
		UserFullName:         req.FullName,
		UserEmail:            req.Email,
		UserPassword:         hashed,
		UserRole:             constants.RoleAthlete,
		UserSecurityQuestion: req.SecurityQuestion,
		UserSecurityAnswer:   req.SecurityAnswer,
		UserIsActive:         true,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := authRepo.CreateUser(tx, &user); err != nil {
			return err
		}
		return authRepo.CreateAthleteProfile(tx, user.UserID)
	})
	if err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.Error(c, fiber.StatusConflict, "Email atau username sudah terdaftar")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat akun")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registrasi berhasil", fiber.Map{
		"user_id":   user.UserID,
		"user_name": user.UserName,
		"email":     user.UserEmail,
		"role":      user.UserRole,
	})
}

// RegisterReviewer — hanya dipanggil dari route owner; sports jadi scope reviewer
func RegisterReviewer(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.RegisterReviewerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := userModel.UserModel{
		UserName:             req.UserName,
		UserFullName:         req.FullName,
		UserEmail:            req.Email,
		UserPassword:         hashed,
		UserRole:             constants.RoleReviewer,
		UserSports:           req.Sports,
		UserSecurityQuestion: req.SecurityQuestion,
		UserSecurityAnswer:   req.SecurityAnswer,
		UserIsActive:         true,
	}
	if err := authRepo.CreateUser(db, &user); err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.Error(c, fiber.StatusConflict, "Email atau username sudah terdaftar")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat akun reviewer")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Reviewer berhasil dibuat", fiber.Map{
		"user_id": user.UserID,
		"email":   user.UserEmail,
		"sports":  user.UserSports,
	})
}

/* ==========================
   LOGIN
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := authRepo.FindUserByIdentifier(db, req.Identifier)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Identifier atau password salah")
	}
	if err := checkPasswordHash(user.UserPassword, req.Password); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Identifier atau password salah")
	}
	if !user.UserIsActive {
		return helper.Error(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}

	return issueTokens(c, user)
}

/* ==========================
   LOGIN GOOGLE
========================== */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Google ID Token tidak valid")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal decode ID Token")
	}
	email, name, googleID := claimSet.Email, claimSet.Name, claimSet.Sub

	user, err := authRepo.FindUserByGoogleID(db, googleID)
	if err != nil {
		// akun Google belum ada -> buat athlete baru
		hashed, _ := hashPassword(randomDummyPassword())
		newUser := userModel.UserModel{
			UserName:             strings.Split(email, "@")[0],
			UserFullName:         name,
			UserEmail:            strings.ToLower(email),
			UserPassword:         hashed,
			UserGoogleID:         &googleID,
			UserRole:             constants.RoleAthlete,
			UserSecurityQuestion: "Created by Google",
			UserSecurityAnswer:   "google_auth",
			UserIsActive:         true,
		}
		err = db.Transaction(func(tx *gorm.DB) error {
			if err := authRepo.CreateUser(tx, &newUser); err != nil {
				return err
			}
			return authRepo.CreateAthleteProfile(tx, newUser.UserID)
		})
		if err != nil {
			low := strings.ToLower(err.Error())
			if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
				return helper.Error(c, fiber.StatusConflict, "Email sudah terdaftar lewat jalur lain")
			}
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat akun Google")
		}
		user = &newUser
	}

	if !user.UserIsActive {
		return helper.Error(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}
	return issueTokens(c, user)
}

func randomDummyPassword() string {
	return "google-" + strconv.FormatInt(time.Now().UnixNano(), 36)
}

/* ==========================
   ISSUE TOKENS
========================== */

func buildAccessClaims(user *userModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ":       "access",
		"sub":       user.UserID.String(),
		"id":        user.UserID.String(),
		"user_name": user.UserName,
		"role":      user.UserRole,
		"sports":    []string(user.UserSports),
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTLDefault).Unix(),
	}
}

func buildRefreshClaims(user *userModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ": "refresh",
		"sub": user.UserID.String(),
		"id":  user.UserID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
}

func issueTokens(c *fiber.Ctx, user *userModel.UserModel) error {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	now := nowUTC()
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(user, now)).
		SignedString([]byte(jwtSecret))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat access token")
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(user, now)).
		SignedString([]byte(refreshSecret))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}

	setAuthCookies(c, accessToken, refreshToken, now)

	return helper.Success(c, "Login berhasil", fiber.Map{
		"access_token": accessToken,
		"user": fiber.Map{
			"user_id":   user.UserID,
			"user_name": user.UserName,
			"full_name": user.UserFullName,
			"email":     user.UserEmail,
			"role":      user.UserRole,
			"sports":    []string(user.UserSports),
		},
	})
}

func setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(accessTTLDefault),
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(refreshTTLDefault),
	})
}

/* ==========================
   REFRESH
========================== */

func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshCookie := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshCookie == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token tidak ada")
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	tok, err := jwt.Parse(refreshCookie, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Metode signing tidak dikenal")
		}
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok || claims["typ"] != "refresh" {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}
	sub, _ := claims["sub"].(string)

	user, err := findActiveUserBySub(db, sub)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User tidak ditemukan atau nonaktif")
	}
	return issueTokens(c, user)
}

func findActiveUserBySub(db *gorm.DB, sub string) (*userModel.UserModel, error) {
	var u userModel.UserModel
	err := db.Where("user_id = ? AND user_is_active = TRUE", sub).Take(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

/* ==========================
   LOGOUT
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	accessToken := helper.GetRawAccessToken(c)
	if accessToken != "" {
		if err := authRepo.BlacklistToken(db, accessToken, resolveBlacklistTTL(accessToken)); err != nil {
			log.Printf("[WARN] gagal blacklist token: %v", err)
		}
	}

	expired := nowUTC().Add(-time.Hour)
	for _, name := range []string{"access_token", "refresh_token"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			HTTPOnly: true,
			Secure:   true,
			SameSite: "None",
			Path:     "/",
			Expires:  expired,
			MaxAge:   -1,
		})
	}
	return helper.Success(c, "Logout berhasil", nil)
}

// resolveBlacklistTTL — blacklist cukup selama sisa umur token
func resolveBlacklistTTL(accessToken string) time.Duration {
	ttl := 2 * time.Minute
	if v := os.Getenv("BLACKLIST_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	jwtSecret, err := getJWTSecret()
	if err != nil || accessToken == "" {
		return ttl
	}
	if tok, err := jwt.Parse(accessToken, func(t *jwt.Token) (any, error) {
		return []byte(jwtSecret), nil
	}); err == nil {
		if claims, ok := tok.Claims.(jwt.MapClaims); ok && tok.Valid {
			if exp, ok := claims["exp"].(float64); ok {
				if until := time.Until(time.Unix(int64(exp), 0)); until > 0 {
					return until + time.Minute
				}
				return time.Minute
			}
		}
	}
	return ttl
}

/* ==========================
   FORGOT / RESET PASSWORD
========================== */

func CheckSecurityAnswer(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.SecurityAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := authRepo.FindUserByEmail(db, req.Email)
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	if !strings.EqualFold(req.Answer, strings.TrimSpace(user.UserSecurityAnswer)) {
		return helper.Error(c, fiber.StatusBadRequest, "Jawaban keamanan salah")
	}
	return helper.Success(c, "Jawaban keamanan benar", fiber.Map{"email": user.UserEmail})
}

func ResetPassword(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := authRepo.FindUserByEmail(db, req.Email)
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	if !strings.EqualFold(req.Answer, strings.TrimSpace(user.UserSecurityAnswer)) {
		return helper.Error(c, fiber.StatusBadRequest, "Jawaban keamanan salah")
	}

	hashed, err := hashPassword(req.NewPassword)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}
	if err := authRepo.UpdateUserPassword(db, user.UserID, hashed); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui password")
	}
	return helper.Success(c, "Password berhasil direset", nil)
}
