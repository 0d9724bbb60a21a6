package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"atletku_backend/internals/constants"
	evalController "atletku_backend/internals/features/assessments/evaluation/controller"
	evalRepo "atletku_backend/internals/features/assessments/evaluation/repository"
	evalService "atletku_backend/internals/features/assessments/evaluation/service"
	statsController "atletku_backend/internals/features/dashboard/stats/controller"
	statsRepo "atletku_backend/internals/features/dashboard/stats/repository"
	statsService "atletku_backend/internals/features/dashboard/stats/service"
	announcementController "atletku_backend/internals/features/home/announcements/controller"
	authController "atletku_backend/internals/features/users/auth/controller"
	authMw "atletku_backend/internals/middlewares/auth"
)

// AdminRoutes — endpoint /api/a (group sudah lewat AuthMiddleware + OnlyRoles reviewer/owner)
func AdminRoutes(a fiber.Router, db *gorm.DB) {
	evalCtrl := evalController.NewEvaluationController(
		evalService.NewService(evalRepo.NewGormRepository(db)),
	)
	statsCtrl := statsController.NewStatsController(
		statsService.NewService(statsRepo.NewGormRepository(db)),
	)
	annCtrl := announcementController.NewAnnouncementController(db)
	authCtrl := authController.NewAuthController(db)

	// evaluation engine
	a.Put("/submissions/:id/evaluate", evalCtrl.EvaluateSubmission)
	a.Put("/athletes/:id/evaluate", evalCtrl.EvaluateAthlete)

	// dashboard & review queues
	a.Get("/dashboard", statsCtrl.GetDashboard)
	a.Get("/submissions/pending", statsCtrl.ListPendingSubmissions)
	a.Get("/athletes", statsCtrl.ListAthletes)
	a.Get("/athletes/:id", statsCtrl.GetAthleteDetail)

	// pengumuman
	a.Get("/announcements", annCtrl.ListAll)
	a.Post("/announcements", annCtrl.Create)
	a.Put("/announcements/:id", annCtrl.Update)
	a.Delete("/announcements/:id", annCtrl.Delete)

	// manajemen reviewer — khusus owner
	a.Post("/reviewers",
		authMw.OnlyRoles(constants.RoleErrorOwner("manajemen reviewer"), constants.RoleOwner),
		authCtrl.RegisterReviewer,
	)
}
