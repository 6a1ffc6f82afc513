// file: internals/features/school/options/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"kampusku_backend/internals/features/school/options/controller"
)

func OptionsUserRoutes(api fiber.Router) {
	ctrl := controller.NewOptionsController()

	options := api.Group("/options")
	options.Get("/periods", ctrl.GetPeriods)
	options.Get("/academic-years", ctrl.GetAcademicYears)
	options.Get("/week-days", ctrl.GetWeekDays)
	options.Get("/marks", ctrl.GetMarks)
}
