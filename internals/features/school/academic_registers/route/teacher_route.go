// file: internals/features/school/academic_registers/route/teacher_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/school/academic_registers/controller"
)

// AcademicRegisterTeacherRoutes: alur absensi harian guru.
func AcademicRegisterTeacherRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAcademicRegisterController(db)

	registers := api.Group("/academic-registers")

	registers.Get("/list", ctrl.ListTeachingSchedules)
	registers.Post("/:scheduleId", ctrl.SubmitRegister)
	registers.Get("/:scheduleId/records", ctrl.ListRecords)
}
