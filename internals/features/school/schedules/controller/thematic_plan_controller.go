// file: internals/features/school/schedules/controller/thematic_plan_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	scheduleDTO "kampusku_backend/internals/features/school/schedules/dto"
	scheduleModel "kampusku_backend/internals/features/school/schedules/model"
	"kampusku_backend/internals/features/school/schedules/service"
	helper "kampusku_backend/internals/helpers"
)

type ThematicPlanController struct {
	DB    *gorm.DB
	Plans *service.ThematicPlanService
}

func NewThematicPlanController(db *gorm.DB) *ThematicPlanController {
	return &ThematicPlanController{DB: db, Plans: service.NewThematicPlanService()}
}

// POST & PATCH /schedules/:id/thematic-plan
// Dua-duanya replace penuh (delete-all lalu recreate), jadi handler satu.
// POST dipertahankan demi client lama.
func (ctrl *ThematicPlanController) ReplaceThematicPlan(c *fiber.Ctx) error {
	scheduleID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req scheduleDTO.ReplaceThematicPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// pastikan jadwalnya ada dulu (404 sebelum mutasi)
	var exists scheduleModel.ScheduleModel
	if err := ctrl.DB.Select("schedule_id").First(&exists, "schedule_id = ?", scheduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Jadwal tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}

	var res service.ReplacePlansResult
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		out, err := ctrl.Plans.ReplacePlans(tx, scheduleID, req)
		if err != nil {
			return err
		}
		res = out
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonUpdated(c, "Thematic plan berhasil diganti", res)
}
