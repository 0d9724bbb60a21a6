package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "atletku_backend/internals/features/users/auth/service"
)

// AuthController — wrapper tipis; logika di service
type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	return authService.Register(ctrl.DB, c)
}

func (ctrl *AuthController) RegisterReviewer(c *fiber.Ctx) error {
	return authService.RegisterReviewer(ctrl.DB, c)
}

func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	return authService.Login(ctrl.DB, c)
}

func (ctrl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	return authService.LoginGoogle(ctrl.DB, c)
}

func (ctrl *AuthController) RefreshToken(c *fiber.Ctx) error {
	return authService.RefreshToken(ctrl.DB, c)
}

func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	return authService.Logout(ctrl.DB, c)
}

func (ctrl *AuthController) CheckSecurityAnswer(c *fiber.Ctx) error {
	return authService.CheckSecurityAnswer(ctrl.DB, c)
}

func (ctrl *AuthController) ResetPassword(c *fiber.Ctx) error {
	return authService.ResetPassword(ctrl.DB, c)
}
