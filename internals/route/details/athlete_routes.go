package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	achievementController "atletku_backend/internals/features/assessments/achievements/controller"
	submissionController "atletku_backend/internals/features/assessments/submissions/controller"
	announcementController "atletku_backend/internals/features/home/announcements/controller"
	notificationController "atletku_backend/internals/features/home/notifications/controller"
	userController "atletku_backend/internals/features/users/user/controller"
	"atletku_backend/internals/helpers/oss"
	"atletku_backend/internals/middlewares"
)

// AthleteRoutes — semua endpoint /api/u (sudah lewat AuthMiddleware di group)
func AthleteRoutes(u fiber.Router, db *gorm.DB, blobs oss.BlobService) {
	userCtrl := userController.NewUserController(db, blobs)
	subCtrl := submissionController.NewSubmissionController(db, blobs)
	achCtrl := achievementController.NewAchievementController(db, blobs)
	notifCtrl := notificationController.NewNotificationController(db)
	annCtrl := announcementController.NewAnnouncementController(db)

	// profil & media
	u.Get("/profile", userCtrl.GetMyProfile)
	u.Put("/profile", userCtrl.UpdateMyProfile)
	u.Post("/profile/photo", userCtrl.UploadProfilePhoto)
	u.Post("/profile/documents", userCtrl.UploadDocuments)
	u.Post("/profile/reference-video", userCtrl.UploadReferenceVideo)
	u.Get("/test-access", userCtrl.GetTestAccess)

	// submission tes fisik
	u.Post("/submissions", middlewares.SubmissionRateLimiter(), subCtrl.CreateSubmission)
	u.Post("/submissions/submit-battery", subCtrl.SubmitBattery)
	u.Get("/submissions", subCtrl.ListMySubmissions)
	u.Get("/submissions/:id", subCtrl.GetMySubmission)

	// prestasi
	u.Post("/achievements", achCtrl.CreateAchievement)
	u.Get("/achievements", achCtrl.ListMyAchievements)
	u.Get("/achievements/:id", achCtrl.GetMyAchievement)
	u.Put("/achievements/:id", achCtrl.UpdateAchievement)
	u.Delete("/achievements/:id", achCtrl.DeleteAchievement)

	// notifikasi & pengumuman
	u.Get("/notifications", notifCtrl.ListMyNotifications)
	u.Put("/notifications/read-all", notifCtrl.MarkAllAsRead)
	u.Put("/notifications/:id/read", notifCtrl.MarkAsRead)
	u.Get("/announcements", annCtrl.ListActive)
}
