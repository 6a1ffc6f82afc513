// file: internals/features/school/schedules/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/school/schedules/controller"
	ossHelper "kampusku_backend/internals/helpers/oss"
	"kampusku_backend/internals/middlewares"
)

// ScheduleAdminRoutes: CRUD jadwal + rencana tematik + lampiran.
// Dipasang di group admin (guard role sudah di level group).
func ScheduleAdminRoutes(api fiber.Router, db *gorm.DB, blob ossHelper.BlobService) {
	scheduleCtrl := controller.NewScheduleController(db, blob)
	planCtrl := controller.NewThematicPlanController(db)
	attachmentCtrl := controller.NewAttachmentController(db, blob)

	schedules := api.Group("/schedules")

	schedules.Get("/list", scheduleCtrl.ListSchedules)
	schedules.Post("/", scheduleCtrl.CreateSchedule)
	schedules.Get("/:id", scheduleCtrl.GetSchedule)
	schedules.Patch("/:id", scheduleCtrl.UpdateSchedule)
	schedules.Delete("/:id", scheduleCtrl.DeleteSchedule)

	// rencana tematik: POST & PATCH sama-sama replace total
	schedules.Post("/:id/thematic-plan", planCtrl.ReplaceThematicPlan)
	schedules.Patch("/:id/thematic-plan", planCtrl.ReplaceThematicPlan)

	schedules.Patch("/:id/attachments", attachmentCtrl.PatchAttachments)
	schedules.Post("/:id/attachments/upload", middlewares.UploadRateLimiter(), attachmentCtrl.UploadAttachment)
}
