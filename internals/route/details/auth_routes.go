package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "atletku_backend/internals/features/users/auth/controller"
	"atletku_backend/internals/middlewares"
)

// AuthRoutes — endpoint publik /api/auth dengan rate limit per aksi
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)
	auth.Post("/refresh-token", ctrl.RefreshToken)
	auth.Post("/logout", ctrl.Logout)
	auth.Post("/check-security-answer", middlewares.ForgotPasswordRateLimiter(), ctrl.CheckSecurityAnswer)
	auth.Post("/reset-password", middlewares.ForgotPasswordRateLimiter(), ctrl.ResetPassword)
}
