package dto

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"kampusku_backend/internals/constants"
	m "kampusku_backend/internals/features/school/academic_registers/model"
)

// =============================
// Request DTO
// =============================

// Mark dikirim sebagai string oleh klien (input teks di frontend);
// string kosong = tidak dinilai.
type StudentEntryInput struct {
	ID        uuid.UUID `json:"id" validate:"required"`
	IsPresent bool      `json:"isPresent"`
	Mark      string    `json:"mark"`
}

type SubmitAcademicRegisterRequest struct {
	Students        []StudentEntryInput `json:"students" validate:"required,min=1,dive"`
	ThematicPlanIds []uuid.UUID         `json:"thematicPlanIds"`
	TaughtDate      string              `json:"taughtDate"` // "2006-01-02", default hari ini
}

// NormalizeEntries menerapkan aturan server:
//   - siswa absen ⇒ mark dibuang diam-diam (bukan error)
//   - siswa hadir dengan mark ⇒ harus angka 1..MarkScale
func NormalizeEntries(students []StudentEntryInput) ([]m.AcademicRegisterEntryModel, error) {
	entries := make([]m.AcademicRegisterEntryModel, 0, len(students))
	for _, s := range students {
		entry := m.AcademicRegisterEntryModel{
			AcademicRegisterEntryStudentID: s.ID,
			AcademicRegisterEntryIsPresent: s.IsPresent,
		}
		if s.IsPresent && s.Mark != "" {
			mark, err := strconv.Atoi(s.Mark)
			if err != nil || !constants.ValidMark(mark) {
				return nil, fiber.NewError(fiber.StatusBadRequest,
					fmt.Sprintf("Nilai tidak valid untuk siswa %s (harus 1..%d)", s.ID, constants.MarkScale))
			}
			entry.AcademicRegisterEntryMark = &mark
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// ResolveLessonSlot menerjemahkan query lessonOfTheDay sesuai tipe jadwal.
// Jadwal cyclic punya banyak slot per hari, jadi slotnya wajib ditunjuk
// (1..PeriodsPerDay); non-cyclic hanya punya satu kemunculan, slot diabaikan.
func ResolveLessonSlot(cyclic bool, raw string) (*int, error) {
	if !cyclic {
		return nil, nil
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Pilih slot pelajaran dulu (lessonOfTheDay wajib untuk jadwal CYCLIC)")
	}
	slot, err := strconv.Atoi(raw)
	if err != nil || !constants.ValidPeriod(slot) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "lessonOfTheDay harus 1.."+strconv.Itoa(constants.PeriodsPerDay))
	}
	return &slot, nil
}

// ParseTaughtDate: kosong ⇒ hari ini (tanggal saja).
func (r *SubmitAcademicRegisterRequest) ParseTaughtDate() (time.Time, error) {
	if r.TaughtDate == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse("2006-01-02", r.TaughtDate)
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Format taughtDate tidak valid (YYYY-MM-DD)")
	}
	return t, nil
}

// =============================
// Response DTO
// =============================

type RegisterEntryResponse struct {
	StudentID uuid.UUID `json:"student_id"`
	IsPresent bool      `json:"is_present"`
	Mark      *int      `json:"mark,omitempty"`
}

type AcademicRegisterResponse struct {
	AcademicRegisterID uuid.UUID               `json:"academic_register_id"`
	ScheduleID         uuid.UUID               `json:"schedule_id"`
	LessonOfTheDay     *int                    `json:"lesson_of_the_day,omitempty"`
	TaughtDate         string                  `json:"taught_date"`
	CreatedAt          time.Time               `json:"created_at"`
	Entries            []RegisterEntryResponse `json:"entries"`
	ThematicPlanIDs    []uuid.UUID             `json:"thematic_plan_ids"`
}

func FromAcademicRegisterModel(reg m.AcademicRegisterModel) AcademicRegisterResponse {
	entries := make([]RegisterEntryResponse, 0, len(reg.Entries))
	for _, e := range reg.Entries {
		entries = append(entries, RegisterEntryResponse{
			StudentID: e.AcademicRegisterEntryStudentID,
			IsPresent: e.AcademicRegisterEntryIsPresent,
			Mark:      e.AcademicRegisterEntryMark,
		})
	}
	planIDs := make([]uuid.UUID, 0, len(reg.CoveredPlans))
	for _, p := range reg.CoveredPlans {
		planIDs = append(planIDs, p.AcademicRegisterPlanThematicPlanID)
	}
	return AcademicRegisterResponse{
		AcademicRegisterID: reg.AcademicRegisterID,
		ScheduleID:         reg.AcademicRegisterScheduleID,
		LessonOfTheDay:     reg.AcademicRegisterLessonOfTheDay,
		TaughtDate:         reg.AcademicRegisterTaughtDate.Format("2006-01-02"),
		CreatedAt:          reg.AcademicRegisterCreatedAt,
		Entries:            entries,
		ThematicPlanIDs:    planIDs,
	}
}
