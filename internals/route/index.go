// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	registerRoute "kampusku_backend/internals/features/school/academic_registers/route"
	optionsRoute "kampusku_backend/internals/features/school/options/route"
	scheduleRoute "kampusku_backend/internals/features/school/schedules/route"
	ossHelper "kampusku_backend/internals/helpers/oss"
	authMiddleware "kampusku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// Storage OSS opsional: tanpa kredensial server tetap jalan,
	// endpoint upload membalas 503.
	var blob ossHelper.BlobService
	if svc, err := ossHelper.NewOSSBlobServiceFromEnv("kampusku"); err != nil {
		log.Printf("[WARN] OSS tidak dikonfigurasi, upload lampiran nonaktif: %v", err)
	} else {
		blob = svc
	}

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("manajemen jadwal"), constants.AdminOnly...),
	)
	scheduleRoute.ScheduleAdminRoutes(admin, db, blob)

	// ===================== TEACHER =====================
	log.Println("[INFO] Setting up TEACHER group...")
	teacher := app.Group("/api/t",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles(constants.RoleErrorTeacher("absensi"), constants.TeacherAndAbove...),
	)
	registerRoute.AcademicRegisterTeacherRoutes(teacher, db)

	// ===================== USER =====================
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u", authMiddleware.AuthMiddleware())
	optionsRoute.OptionsUserRoutes(user)
}
