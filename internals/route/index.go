// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"atletku_backend/internals/constants"
	"atletku_backend/internals/helpers/oss"
	authMw "atletku_backend/internals/middlewares/auth"
	routeDetails "atletku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, blobs oss.BlobService) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== ATHLETE (/api/u) =====================
	log.Println("[INFO] Setting up ATHLETE group...")
	u := app.Group("/api/u", authMw.AuthMiddleware(db))
	routeDetails.AthleteRoutes(u, db, blobs)

	// ===================== ADMIN (/api/a) =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	a := app.Group("/api/a",
		authMw.AuthMiddleware(db),
		authMw.OnlyRoles(
			constants.RoleErrorReviewer("panel admin"),
			constants.ReviewerAndAbove...,
		),
	)
	routeDetails.AdminRoutes(a, db)
}
