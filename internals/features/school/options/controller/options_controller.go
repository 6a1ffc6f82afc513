// file: internals/features/school/options/controller/options_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"kampusku_backend/internals/constants"
	helper "kampusku_backend/internals/helpers"
)

// OptionsController melayani daftar pilihan statis untuk dropdown di
// frontend. Semua daftar dibangkitkan per request dari generator murni,
// tidak ada state yang disimpan.
type OptionsController struct{}

func NewOptionsController() *OptionsController { return &OptionsController{} }

// GET /options/periods
func (ctrl *OptionsController) GetPeriods(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Daftar slot pelajaran", constants.GeneratePeriods(constants.PeriodsPerDay))
}

// GET /options/academic-years
func (ctrl *OptionsController) GetAcademicYears(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Daftar tahun ajaran", constants.GenerateAcademicYears(time.Now(), constants.AcademicYearSpan))
}

// GET /options/week-days
func (ctrl *OptionsController) GetWeekDays(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Daftar hari", constants.WeekDays())
}

// GET /options/marks
func (ctrl *OptionsController) GetMarks(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Daftar nilai", constants.GenerateMarks(constants.MarkScale))
}
