package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	notificationModel "atletku_backend/internals/features/home/notifications/model"
	helper "atletku_backend/internals/helpers"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// GET /api/u/notifications — milik sendiri, terbaru dulu
func (ctrl *NotificationController) ListMyNotifications(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&notificationModel.NotificationModel{}).
		Where("notification_user_id = ?", userID).
		Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung notifikasi")
	}

	var unread int64
	if err := ctrl.DB.Model(&notificationModel.NotificationModel{}).
		Where("notification_user_id = ? AND notification_is_read = FALSE", userID).
		Count(&unread).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung notifikasi")
	}

	var items []notificationModel.NotificationModel
	if err := ctrl.DB.
		Where("notification_user_id = ?", userID).
		Order("notification_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil notifikasi")
	}

	return helper.Success(c, "Notifikasi berhasil diambil", fiber.Map{
		"notifications": items,
		"unread_count":  unread,
		"pagination":    helper.BuildPagination(paging, total, len(items)),
	})
}

// PUT /api/u/notifications/:id/read
func (ctrl *NotificationController) MarkAsRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID notifikasi tidak valid")
	}

	var n notificationModel.NotificationModel
	err = ctrl.DB.
		Where("notification_id = ? AND notification_user_id = ?", id, userID).
		Take(&n).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Notifikasi tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil notifikasi")
	}

	if !n.NotificationIsRead {
		n.NotificationIsRead = true
		if err := ctrl.DB.Save(&n).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui notifikasi")
		}
	}
	return helper.Success(c, "Notifikasi ditandai sudah dibaca", n)
}

// PUT /api/u/notifications/read-all
func (ctrl *NotificationController) MarkAllAsRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	res := ctrl.DB.Model(&notificationModel.NotificationModel{}).
		Where("notification_user_id = ? AND notification_is_read = FALSE", userID).
		Update("notification_is_read", true)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui notifikasi")
	}
	return helper.Success(c, "Semua notifikasi ditandai sudah dibaca", fiber.Map{
		"updated": res.RowsAffected,
	})
}
