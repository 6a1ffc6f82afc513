// file: internals/features/school/schedules/service/attachment_service.go
package service

import (
	"context"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/school/schedules/dto"
	m "kampusku_backend/internals/features/school/schedules/model"
	ossHelper "kampusku_backend/internals/helpers/oss"
)

/* =========================================================
 * RECONCILE PLAN (murni, tanpa DB)
 * ========================================================= */

type AttachmentDiff struct {
	ToCreate []dto.AttachmentInput // di desired, belum ada row-nya
	ToDelete []m.AttachmentModel   // ada row-nya, hilang dari desired
	// key sama = tidak disentuh; title/mimetype beda dibiarkan basi (by key)
}

// PlanReconcile menghitung set-difference by key. Idempoten: dipanggil dua
// kali dengan desired yang sama, panggilan kedua menghasilkan diff kosong.
func PlanReconcile(existing []m.AttachmentModel, desired []dto.AttachmentInput) AttachmentDiff {
	existingKeys := make(map[string]struct{}, len(existing))
	for _, att := range existing {
		existingKeys[att.AttachmentKey] = struct{}{}
	}
	desiredKeys := make(map[string]struct{}, len(desired))
	for _, att := range desired {
		desiredKeys[att.Key] = struct{}{}
	}

	diff := AttachmentDiff{}
	for _, att := range existing {
		if _, ok := desiredKeys[att.AttachmentKey]; !ok {
			diff.ToDelete = append(diff.ToDelete, att)
		}
	}
	for _, att := range desired {
		if _, ok := existingKeys[att.Key]; !ok {
			diff.ToCreate = append(diff.ToCreate, att)
		}
	}
	return diff
}

/* =========================================================
 * SERVICE
 * ========================================================= */

type AttachmentService struct{}

func NewAttachmentService() *AttachmentService { return &AttachmentService{} }

// Reconcile menjalankan diff row di dalam transaksi pemanggil dan
// mengembalikan key blob yang harus dihapus SETELAH commit. Hapus blob
// tidak boleh di dalam tx: DB adalah source of truth, storage menyusul.
func (s *AttachmentService) Reconcile(tx *gorm.DB, scheduleID uuid.UUID, desired []dto.AttachmentInput) (blobKeysToDelete []string, err error) {
	var existing []m.AttachmentModel
	if err := tx.
		Where("attachment_schedule_id = ?", scheduleID).
		Find(&existing).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil attachment lama")
	}

	diff := PlanReconcile(existing, desired)

	if len(diff.ToDelete) > 0 {
		keys := make([]string, 0, len(diff.ToDelete))
		for _, att := range diff.ToDelete {
			keys = append(keys, att.AttachmentKey)
		}
		if err := tx.
			Where("attachment_schedule_id = ? AND attachment_key IN ?", scheduleID, keys).
			Delete(&m.AttachmentModel{}).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus attachment")
		}
		blobKeysToDelete = keys
	}

	if len(diff.ToCreate) > 0 {
		rows := make([]m.AttachmentModel, 0, len(diff.ToCreate))
		for _, att := range diff.ToCreate {
			rows = append(rows, m.AttachmentModel{
				AttachmentScheduleID: scheduleID,
				AttachmentTitle:      att.Title,
				AttachmentKey:        att.Key,
				AttachmentMimetype:   att.Mimetype,
				AttachmentType:       m.AttachmentTypeFile,
			})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat attachment")
		}
	}

	return blobKeysToDelete, nil
}

// DeleteBlobs best-effort setelah commit. Kegagalan dicatat + dibalikin
// sebagai warning, bukan error: row DB sudah final.
func (s *AttachmentService) DeleteBlobs(ctx context.Context, blob ossHelper.BlobService, keys []string) []string {
	if len(keys) == 0 || blob == nil {
		return nil
	}
	_, failed := blob.DeleteManyByKey(ctx, keys)
	if len(failed) == 0 {
		return nil
	}
	warnings := make([]string, 0, len(failed))
	for key, ferr := range failed {
		log.Printf("[ATTACHMENT] blob %s gagal dihapus: %v", key, ferr)
		warnings = append(warnings, fmt.Sprintf("blob %s gagal dihapus dari storage", key))
	}
	return warnings
}
