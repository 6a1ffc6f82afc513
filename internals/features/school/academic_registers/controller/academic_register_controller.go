// file: internals/features/school/academic_registers/controller/academic_register_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	registerDTO "kampusku_backend/internals/features/school/academic_registers/dto"
	registerModel "kampusku_backend/internals/features/school/academic_registers/model"
	scheduleDTO "kampusku_backend/internals/features/school/schedules/dto"
	scheduleModel "kampusku_backend/internals/features/school/schedules/model"
	helper "kampusku_backend/internals/helpers"
)

type AcademicRegisterController struct {
	DB *gorm.DB
}

func NewAcademicRegisterController(db *gorm.DB) *AcademicRegisterController {
	return &AcademicRegisterController{DB: db}
}

/* ===================== SUBMIT ===================== */
// POST /academic-registers/:scheduleId?lessonOfTheDay=
//
// Submission bersifat append-only: koreksi dilakukan dengan submission
// baru, tidak ada update/delete pada register lama.
func (ctrl *AcademicRegisterController) SubmitRegister(c *fiber.Ctx) error {
	scheduleID, err := uuid.Parse(c.Params("scheduleId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "scheduleId tidak valid")
	}

	var schedule scheduleModel.ScheduleModel
	if err := ctrl.DB.First(&schedule, "schedule_id = ?", scheduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Jadwal tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}

	lessonOfTheDay, err := registerDTO.ResolveLessonSlot(schedule.IsCyclic(), c.Query("lessonOfTheDay"))
	if err != nil {
		return err
	}

	var req registerDTO.SubmitAcademicRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	entries, err := registerDTO.NormalizeEntries(req.Students)
	if err != nil {
		return err
	}
	taughtDate, err := req.ParseTaughtDate()
	if err != nil {
		return err
	}

	// thematicPlanIds harus milik jadwal ini
	if len(req.ThematicPlanIds) > 0 {
		var owned int64
		if err := ctrl.DB.Model(&scheduleModel.ThematicPlanModel{}).
			Where("thematic_plan_schedule_id = ? AND thematic_plan_id IN ?", scheduleID, req.ThematicPlanIds).
			Count(&owned).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa rencana tematik")
		}
		if owned != int64(len(req.ThematicPlanIds)) {
			return fiber.NewError(fiber.StatusBadRequest, "thematicPlanIds berisi rencana yang bukan milik jadwal ini")
		}
	}

	register := registerModel.AcademicRegisterModel{
		AcademicRegisterScheduleID:     scheduleID,
		AcademicRegisterLessonOfTheDay: lessonOfTheDay,
		AcademicRegisterTaughtDate:     taughtDate,
		Entries:                        entries,
	}
	for _, planID := range req.ThematicPlanIds {
		register.CoveredPlans = append(register.CoveredPlans, registerModel.AcademicRegisterPlanModel{
			AcademicRegisterPlanThematicPlanID: planID,
		})
	}

	// header + entri + plan tercakup dalam satu transaksi
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&register).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan absensi")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonCreated(c, "Absensi berhasil disimpan", registerDTO.FromAcademicRegisterModel(register))
}

/* ===================== LIST SCHEDULES FOR TEACHER ===================== */
// GET /academic-registers/list
//
// Guru hanya melihat jadwal yang ditugaskan padanya; admin melihat semua.
func (ctrl *AcademicRegisterController) ListTeachingSchedules(c *fiber.Ctx) error {
	role, err := helper.GetUserRole(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&scheduleModel.ScheduleModel{})
	if role != constants.RoleAdmin {
		teacherID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return err
		}
		q = q.Joins("JOIN schedule_teachers st ON st.schedule_teacher_schedule_id = schedules.schedule_id").
			Where("st.schedule_teacher_teacher_id = ?", teacherID)
	}

	if t := strings.ToUpper(strings.TrimSpace(c.Query("type"))); t != "" {
		q = q.Where("schedule_type = ?", t)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung jadwal")
	}

	var schedules []scheduleModel.ScheduleModel
	if err := q.
		Preload("ThematicPlans.Descriptions").
		Preload("Attachments").
		Preload("ScheduleTeachers").
		Order("schedule_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&schedules).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}

	return helper.JsonList(c, "Daftar jadwal mengajar", scheduleDTO.FromScheduleModels(schedules), total)
}

/* ===================== RECORDS ===================== */
// GET /academic-registers/:scheduleId/records?lessonOfTheDay=
//
// Riwayat submission untuk satu jadwal, terbaru dulu.
func (ctrl *AcademicRegisterController) ListRecords(c *fiber.Ctx) error {
	scheduleID, err := uuid.Parse(c.Params("scheduleId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "scheduleId tidak valid")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&registerModel.AcademicRegisterModel{}).
		Where("academic_register_schedule_id = ?", scheduleID)

	if raw := strings.TrimSpace(c.Query("lessonOfTheDay")); raw != "" {
		slot, convErr := strconv.Atoi(raw)
		if convErr != nil || !constants.ValidPeriod(slot) {
			return fiber.NewError(fiber.StatusBadRequest, "lessonOfTheDay harus 1.."+strconv.Itoa(constants.PeriodsPerDay))
		}
		q = q.Where("academic_register_lesson_of_the_day = ?", slot)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung riwayat absensi")
	}

	var registers []registerModel.AcademicRegisterModel
	if err := q.
		Preload("Entries").
		Preload("CoveredPlans").
		Order("academic_register_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&registers).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil riwayat absensi")
	}

	out := make([]registerDTO.AcademicRegisterResponse, 0, len(registers))
	for _, reg := range registers {
		out = append(out, registerDTO.FromAcademicRegisterModel(reg))
	}
	return helper.JsonList(c, "Riwayat absensi", out, total)
}
