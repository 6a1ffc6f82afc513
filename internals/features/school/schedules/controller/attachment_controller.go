// file: internals/features/school/schedules/controller/attachment_controller.go
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

type AttachmentController struct {
	DB          *gorm.DB
	Blob        ossHelper.BlobService
	Attachments *service.AttachmentService
}

func NewAttachmentController(db *gorm.DB, blob ossHelper.BlobService) *AttachmentController {
	return &AttachmentController{DB: db, Blob: blob, Attachments: service.NewAttachmentService()}
}

type patchAttachmentsRequest struct {
	Attachments []scheduleDTO.AttachmentInput `json:"attachments" validate:"dive"`
}

func (ctrl *AttachmentController) findSchedule(c *fiber.Ctx) (*scheduleModel.ScheduleModel, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	var mdl scheduleModel.ScheduleModel
	if err := ctrl.DB.First(&mdl, "schedule_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Jadwal tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}
	return &mdl, nil
}

/* ===================== RECONCILE ===================== */
// PATCH /schedules/:id/attachments
// Seluruh set attachment diganti by key: yang hilang dihapus (row + blob),
// yang baru dibuat, yang key-nya sama tidak disentuh.
func (ctrl *AttachmentController) PatchAttachments(c *fiber.Ctx) error {
	mdl, err := ctrl.findSchedule(c)
	if err != nil {
		return err
	}

	var req patchAttachmentsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var blobKeys []string
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		keys, err := ctrl.Attachments.Reconcile(tx, mdl.ScheduleID, req.Attachments)
		if err != nil {
			return err
		}
		blobKeys = keys
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	warnings := ctrl.Attachments.DeleteBlobs(c.UserContext(), ctrl.Blob, blobKeys)

	var rows []scheduleModel.AttachmentModel
	if err := ctrl.DB.
		Where("attachment_schedule_id = ?", mdl.ScheduleID).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil attachment")
	}

	out := make([]scheduleDTO.AttachmentResponse, 0, len(rows))
	for _, a := range rows {
		out = append(out, scheduleDTO.AttachmentResponse{
			AttachmentID: a.AttachmentID,
			Title:        a.AttachmentTitle,
			Key:          a.AttachmentKey,
			Mimetype:     a.AttachmentMimetype,
			Type:         a.AttachmentType,
		})
	}
	return helper.JsonUpdatedWithWarnings(c, "Attachment berhasil diperbarui", out, warnings)
}

/* ===================== UPLOAD ===================== */
// POST /schedules/:id/attachments/upload (multipart)
// Blob masuk storage dulu, baru row dibuat. Row tidak boleh menunjuk
// blob yang belum diterima storage.
func (ctrl *AttachmentController) UploadAttachment(c *fiber.Ctx) error {
	mdl, err := ctrl.findSchedule(c)
	if err != nil {
		return err
	}

	if ctrl.Blob == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Storage belum dikonfigurasi")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "File tidak ditemukan di form")
	}

	title := strings.TrimSpace(c.FormValue("title"))
	if title == "" {
		title = fh.Filename
	}

	publicURL, key, contentType, err := ctrl.Blob.UploadAttachment(c.UserContext(), "schedules", fh)
	if err != nil {
		return err
	}

	row := scheduleModel.AttachmentModel{
		AttachmentScheduleID: mdl.ScheduleID,
		AttachmentTitle:      title,
		AttachmentKey:        key,
		AttachmentMimetype:   contentType,
		AttachmentType:       scheduleModel.AttachmentTypeFile,
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		// row gagal → blob yatim; bersihkan best-effort
		_ = ctrl.Blob.DeleteByKey(c.UserContext(), key)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan attachment")
	}

	return helper.JsonCreated(c, "Attachment berhasil diupload", fiber.Map{
		"attachment_id": row.AttachmentID,
		"title":         row.AttachmentTitle,
		"key":           row.AttachmentKey,
		"mimetype":      row.AttachmentMimetype,
		"url":           publicURL,
	})
}
