// file: internals/features/school/schedules/controller/schedule_controller.go
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
	ossHelper "kampusku_backend/internals/helpers/oss"
)

type ScheduleController struct {
	DB          *gorm.DB
	Blob        ossHelper.BlobService
	Attachments *service.AttachmentService
	Plans       *service.ThematicPlanService
}

func NewScheduleController(db *gorm.DB, blob ossHelper.BlobService) *ScheduleController {
	return &ScheduleController{
		DB:          db,
		Blob:        blob,
		Attachments: service.NewAttachmentService(),
		Plans:       service.NewThematicPlanService(),
	}
}

// resolveScheduleType: ?type=NON_CYCLIC atau default CYCLIC.
// Dua keluarga endpoint lama (cyclic & none-cyclic) disatukan di sini.
func resolveScheduleType(c *fiber.Ctx) (string, error) {
	t := strings.ToUpper(strings.TrimSpace(c.Query("type", scheduleModel.ScheduleTypeCyclic)))
	switch t {
	case scheduleModel.ScheduleTypeCyclic, scheduleModel.ScheduleTypeNonCyclic:
		return t, nil
	}
	return "", fiber.NewError(fiber.StatusBadRequest, "type harus CYCLIC atau NON_CYCLIC")
}

/* ===================== CREATE ===================== */
// POST /schedules?type=
func (ctrl *ScheduleController) CreateSchedule(c *fiber.Ctx) error {
	scheduleType, err := resolveScheduleType(c)
	if err != nil {
		return err
	}

	var req scheduleDTO.ScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	// Validasi dasar (required/enum/range), lalu aturan per varian.
	// Semua ditolak sebelum ada mutasi.
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if err := req.ValidateForType(scheduleType); err != nil {
		return err
	}

	mdl := req.ToModel(scheduleType)

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&mdl).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat jadwal")
		}

		// tepat satu penugasan guru per jadwal
		teacher := scheduleModel.ScheduleTeacherModel{
			ScheduleTeacherScheduleID: mdl.ScheduleID,
			ScheduleTeacherTeacherID:  req.TeacherID,
			ScheduleTeacherSubjectID:  req.SubjectID,
		}
		if err := tx.Create(&teacher).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat penugasan guru")
		}

		if len(req.Attachments) > 0 {
			if _, err := ctrl.Attachments.Reconcile(tx, mdl.ScheduleID, req.Attachments); err != nil {
				return err
			}
		}

		// Thematic plan TIDAK dibuat di sini; datang lewat endpoint
		// /schedules/:id/thematic-plan (kontrak sama untuk dua varian).
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "Jadwal berhasil dibuat", fiber.Map{"id": mdl.ScheduleID})
}

/* ===================== UPDATE ===================== */
// PATCH /schedules/:id
func (ctrl *ScheduleController) UpdateSchedule(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var existing scheduleModel.ScheduleModel
	if err := ctrl.DB.First(&existing, "schedule_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Jadwal tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}

	var req scheduleDTO.ScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if err := req.ValidateForType(existing.ScheduleType); err != nil {
		return err
	}

	// key blob yang dihapus SETELAH commit (DB dulu, storage menyusul)
	var blobKeys []string

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		// 1) plan lama dibuang; isi baru datang lewat endpoint thematic-plan
		if err := tx.
			Where("thematic_plan_schedule_id = ?", existing.ScheduleID).
			Delete(&scheduleModel.ThematicPlanModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus thematic plan")
		}

		// 2) penugasan guru diganti, bukan ditambah
		if err := tx.
			Where("schedule_teacher_schedule_id = ?", existing.ScheduleID).
			Delete(&scheduleModel.ScheduleTeacherModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus penugasan guru")
		}

		// 3) update skalar (full replace, termasuk zero values)
		updated := req.ToModel(existing.ScheduleType)
		updates := map[string]interface{}{
			"schedule_title":           updated.ScheduleTitle,
			"schedule_description":     updated.ScheduleDescription,
			"schedule_exam_type":       updated.ScheduleExamType,
			"schedule_total_hours":     updated.ScheduleTotalHours,
			"schedule_is_assessment":   updated.ScheduleIsAssessment,
			"schedule_subject_id":      updated.ScheduleSubjectID,
			"schedule_course_group_id": updated.ScheduleCourseGroupID,
			"schedule_links":           updated.ScheduleLinks,
			"schedule_start_day_date":  updated.ScheduleStartDayDate,
			"schedule_end_day_date":    updated.ScheduleEndDayDate,
			"schedule_exam_date":       updated.ScheduleExamDate,
			"schedule_period":          updated.SchedulePeriod,
			"schedule_available_day":   updated.ScheduleAvailableDay,
		}
		if len(updated.ScheduleExamMetadata) > 0 {
			updates["schedule_exam_metadata"] = updated.ScheduleExamMetadata
		}
		if err := tx.Model(&scheduleModel.ScheduleModel{}).
			Where("schedule_id = ?", existing.ScheduleID).
			Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal update jadwal")
		}

		// 4) penugasan guru baru
		teacher := scheduleModel.ScheduleTeacherModel{
			ScheduleTeacherScheduleID: existing.ScheduleID,
			ScheduleTeacherTeacherID:  req.TeacherID,
			ScheduleTeacherSubjectID:  req.SubjectID,
		}
		if err := tx.Create(&teacher).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat penugasan guru")
		}

		// 5) attachment: set-difference by key
		keys, err := ctrl.Attachments.Reconcile(tx, existing.ScheduleID, req.Attachments)
		if err != nil {
			return err
		}
		blobKeys = keys
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	warnings := ctrl.Attachments.DeleteBlobs(c.UserContext(), ctrl.Blob, blobKeys)
	return helper.JsonUpdatedWithWarnings(c, "Jadwal berhasil diperbarui", fiber.Map{"id": existing.ScheduleID}, warnings)
}

/* ===================== DELETE ===================== */
// DELETE /schedules/:id
func (ctrl *ScheduleController) DeleteSchedule(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var existing scheduleModel.ScheduleModel
	if err := ctrl.DB.
		Preload("Attachments").
		First(&existing, "schedule_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Jadwal tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}

	// blob dihapus best-effort; row DB tetap sumber kebenaran
	keys := make([]string, 0, len(existing.Attachments))
	for _, att := range existing.Attachments {
		keys = append(keys, att.AttachmentKey)
	}
	warnings := ctrl.Attachments.DeleteBlobs(c.UserContext(), ctrl.Blob, keys)

	// row jadwal; plan/teacher/attachment ikut lewat FK cascade
	if err := ctrl.DB.Delete(&scheduleModel.ScheduleModel{}, "schedule_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus jadwal")
	}

	if len(warnings) > 0 {
		return helper.JsonUpdatedWithWarnings(c, "Jadwal dihapus", fiber.Map{"id": id}, warnings)
	}
	return helper.JsonDeleted(c, "Jadwal dihapus", fiber.Map{"id": id})
}

/* ===================== LIST ===================== */
// GET /schedules/list?offset&limit&search&sorting&type
// Offset/limit tanpa snapshot isolation: hasil bisa bergeser kalau ada
// insert/delete di antara dua halaman. Count + page dibaca satu query-set.
func (ctrl *ScheduleController) ListSchedules(c *fiber.Ctx) error {
	var q scheduleDTO.ListScheduleQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}

	paging := helper.ResolvePaging(c, 20, 200)

	orderClause, err := scheduleDTO.ParseSortSpec(q.Sorting)
	if err != nil {
		return err
	}

	tx := ctrl.DB.Model(&scheduleModel.ScheduleModel{})

	if t := strings.ToUpper(strings.TrimSpace(q.Type)); t != "" {
		if t != scheduleModel.ScheduleTypeCyclic && t != scheduleModel.ScheduleTypeNonCyclic {
			return fiber.NewError(fiber.StatusBadRequest, "type harus CYCLIC atau NON_CYCLIC")
		}
		tx = tx.Where("schedule_type = ?", t)
	}

	if kw := strings.TrimSpace(q.Search); kw != "" {
		tx = tx.Where("LOWER(schedule_title) LIKE ?", "%"+strings.ToLower(kw)+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung total data")
	}

	var rows []scheduleModel.ScheduleModel
	if err := tx.
		Preload("ThematicPlans.Descriptions").
		Preload("ScheduleTeachers").
		Preload("Attachments").
		Order(orderClause).
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "Daftar jadwal", scheduleDTO.FromScheduleModels(rows), total)
}

/* ===================== DETAIL ===================== */
// GET /schedules/:id
func (ctrl *ScheduleController) GetSchedule(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var mdl scheduleModel.ScheduleModel
	if err := ctrl.DB.
		Preload("ThematicPlans.Descriptions").
		Preload("ScheduleTeachers").
		Preload("Attachments").
		First(&mdl, "schedule_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Jadwal tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}

	return helper.JsonOK(c, "Detail jadwal", scheduleDTO.FromScheduleModel(mdl))
}
