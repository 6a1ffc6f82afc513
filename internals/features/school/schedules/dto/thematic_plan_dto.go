// file: internals/features/school/schedules/dto/thematic_plan_dto.go
package dto

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	m "kampusku_backend/internals/features/school/schedules/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type ClassDescriptionRowInput struct {
	Title string `json:"title" validate:"required,max=255"`
	Hour  string `json:"hour" validate:"required,max=8"`
}

// totalHours dikirim client lama sebagai string ("10"), bukan angka.
type ThematicPlanClassInput struct {
	TotalHours          string                     `json:"totalHours" validate:"required"`
	ClassDescriptionRow []ClassDescriptionRowInput `json:"classDescriptionRow" validate:"dive"`
}

// ReplaceThematicPlanRequest: payload POST/PATCH /schedules/:id/thematic-plan.
// Dua-duanya wajib; plan kosong (0 baris) tetap valid = "belum ada kurikulum".
type ReplaceThematicPlanRequest struct {
	PracticalClass   ThematicPlanClassInput `json:"practicalClass" validate:"required"`
	TheoreticalClass ThematicPlanClassInput `json:"theoreticalClass" validate:"required"`
}

// ParseTotalHours menormalkan string jam total jadi int >= 0.
func (in *ThematicPlanClassInput) ParseTotalHours() (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(in.TotalHours))
	if err != nil || n < 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "totalHours harus angka >= 0")
	}
	return n, nil
}

// ToModel membentuk plan + baris deskripsi berurut.
func (in *ThematicPlanClassInput) ToModel(scheduleID uuid.UUID, planType string) (m.ThematicPlanModel, error) {
	totalHours, err := in.ParseTotalHours()
	if err != nil {
		return m.ThematicPlanModel{}, err
	}

	rows := make([]m.ThematicPlanDescriptionModel, 0, len(in.ClassDescriptionRow))
	for i, row := range in.ClassDescriptionRow {
		rows = append(rows, m.ThematicPlanDescriptionModel{
			ThematicPlanDescriptionTitle: strings.TrimSpace(row.Title),
			ThematicPlanDescriptionHour:  strings.TrimSpace(row.Hour),
			ThematicPlanDescriptionOrder: i,
		})
	}

	return m.ThematicPlanModel{
		ThematicPlanScheduleID: scheduleID,
		ThematicPlanType:       planType,
		ThematicPlanTotalHours: totalHours,
		Descriptions:           rows,
	}, nil
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type ThematicPlanDescriptionResponse struct {
	DescriptionID uuid.UUID `json:"description_id"`
	Title         string    `json:"title"`
	Hour          string    `json:"hour"`
	Order         int       `json:"order"`
}

type ThematicPlanResponse struct {
	ThematicPlanID uuid.UUID                         `json:"thematic_plan_id"`
	ScheduleID     uuid.UUID                         `json:"schedule_id"`
	Type           string                            `json:"type"`
	TotalHours     int                               `json:"total_hours"`
	Descriptions   []ThematicPlanDescriptionResponse `json:"descriptions"`
}

func FromThematicPlanModel(mdl m.ThematicPlanModel) ThematicPlanResponse {
	rows := make([]ThematicPlanDescriptionResponse, 0, len(mdl.Descriptions))
	for _, d := range mdl.Descriptions {
		rows = append(rows, ThematicPlanDescriptionResponse{
			DescriptionID: d.ThematicPlanDescriptionID,
			Title:         d.ThematicPlanDescriptionTitle,
			Hour:          d.ThematicPlanDescriptionHour,
			Order:         d.ThematicPlanDescriptionOrder,
		})
	}
	return ThematicPlanResponse{
		ThematicPlanID: mdl.ThematicPlanID,
		ScheduleID:     mdl.ThematicPlanScheduleID,
		Type:           mdl.ThematicPlanType,
		TotalHours:     mdl.ThematicPlanTotalHours,
		Descriptions:   rows,
	}
}
