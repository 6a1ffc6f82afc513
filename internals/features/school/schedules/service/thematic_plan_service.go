// file: internals/features/school/schedules/service/thematic_plan_service.go
package service

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/school/schedules/dto"
	m "kampusku_backend/internals/features/school/schedules/model"
)

type ThematicPlanService struct{}

func NewThematicPlanService() *ThematicPlanService { return &ThematicPlanService{} }

type ReplacePlansResult struct {
	PracticalPlanID   uuid.UUID `json:"practical_plan_id"`
	TheoreticalPlanID uuid.UUID `json:"theoretical_plan_id"`
}

// ReplacePlans: hapus semua plan milik jadwal, lalu buat tepat satu
// PRACTICAL + satu THEORETICAL (plan kosong tetap dibuat). Dua create
// satu transaksi dengan pemanggil; dua-duanya wajib sukses.
func (s *ThematicPlanService) ReplacePlans(tx *gorm.DB, scheduleID uuid.UUID, req dto.ReplaceThematicPlanRequest) (ReplacePlansResult, error) {
	var res ReplacePlansResult

	// baris deskripsi ikut terhapus lewat FK cascade
	if err := tx.
		Where("thematic_plan_schedule_id = ?", scheduleID).
		Delete(&m.ThematicPlanModel{}).Error; err != nil {
		return res, fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus thematic plan lama")
	}

	practical, err := req.PracticalClass.ToModel(scheduleID, m.ThematicPlanTypePractical)
	if err != nil {
		return res, err
	}
	theoretical, err := req.TheoreticalClass.ToModel(scheduleID, m.ThematicPlanTypeTheoretical)
	if err != nil {
		return res, err
	}

	if err := tx.Create(&practical).Error; err != nil {
		return res, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat plan practical")
	}
	if err := tx.Create(&theoretical).Error; err != nil {
		return res, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat plan theoretical")
	}

	res.PracticalPlanID = practical.ThematicPlanID
	res.TheoreticalPlanID = theoretical.ThematicPlanID
	return res, nil
}
