// file: internals/features/school/schedules/dto/schedule_dto.go
package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"kampusku_backend/internals/constants"
	m "kampusku_backend/internals/features/school/schedules/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// Payload attachment dari client: blob sudah di-upload, key-nya dikirim ke sini.
type AttachmentInput struct {
	Title    string `json:"title" validate:"required,max=255"`
	Key      string `json:"key" validate:"required,max=512"`
	Mimetype string `json:"mimetype" validate:"required,max=128"`
}

type LinkInput struct {
	Link string `json:"link" validate:"required,url"`
}

// ScheduleRequest dipakai create & update (update = full replace).
// Field date dikirim "YYYY-MM-DD" mengikuti kontrak client lama.
type ScheduleRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"max=2000"`

	ExamType     string `json:"examType" validate:"required,oneof=VERBAL WRITTEN MIXED"`
	TotalHours   int    `json:"totalHours" validate:"required,gt=0"`
	IsAssessment bool   `json:"isAssessment"`

	SubjectID     uuid.UUID `json:"subjectId" validate:"required"`
	CourseGroupID uuid.UUID `json:"courseGroupId" validate:"required"`
	TeacherID     uuid.UUID `json:"teacherId" validate:"required"`

	Links       []LinkInput       `json:"links" validate:"omitempty,dive"`
	Attachments []AttachmentInput `json:"attachments" validate:"omitempty,dive"`

	ExamMetadata json.RawMessage `json:"examMetadata,omitempty"`

	// CYCLIC
	StartDayDate string `json:"startDayDate" validate:"omitempty,datetime=2006-01-02"`
	EndDayDate   string `json:"endDayDate" validate:"omitempty,datetime=2006-01-02"`
	ExamDate     string `json:"examDate" validate:"omitempty,datetime=2006-01-02"`

	// NON_CYCLIC
	Period       *int    `json:"period" validate:"omitempty,min=1"`
	AvailableDay *string `json:"availableDay" validate:"omitempty,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY SUNDAY"`
}

// ValidateForType menegakkan aturan per varian jadwal, termasuk urutan
// tanggal start <= end <= exam. Ditolak sebelum ada mutasi apa pun.
func (r *ScheduleRequest) ValidateForType(scheduleType string) error {
	switch scheduleType {
	case m.ScheduleTypeCyclic:
		if r.StartDayDate == "" || r.EndDayDate == "" || r.ExamDate == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Jadwal CYCLIC wajib punya startDayDate, endDayDate, dan examDate")
		}
		start, err := ParseDate(r.StartDayDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "startDayDate tidak valid")
		}
		end, err := ParseDate(r.EndDayDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "endDayDate tidak valid")
		}
		exam, err := ParseDate(r.ExamDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "examDate tidak valid")
		}
		if end.Before(start) || exam.Before(end) {
			return fiber.NewError(fiber.StatusBadRequest, "Urutan tanggal harus startDayDate <= endDayDate <= examDate")
		}
	case m.ScheduleTypeNonCyclic:
		if r.Period == nil || r.AvailableDay == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Jadwal NON_CYCLIC wajib punya period dan availableDay")
		}
		// skala slot sama dengan lessonOfTheDay di academic register
		if !constants.ValidPeriod(*r.Period) {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("period harus 1..%d", constants.PeriodsPerDay))
		}
	default:
		return fiber.NewError(fiber.StatusBadRequest, "scheduleType tidak dikenal: "+scheduleType)
	}
	return nil
}

func (r *ScheduleRequest) ToModel(scheduleType string) m.ScheduleModel {
	links := make([]string, 0, len(r.Links))
	for _, l := range r.Links {
		links = append(links, l.Link)
	}

	mdl := m.ScheduleModel{
		ScheduleType:          scheduleType,
		ScheduleTitle:         strings.TrimSpace(r.Title),
		ScheduleDescription:   strings.TrimSpace(r.Description),
		ScheduleExamType:      r.ExamType,
		ScheduleTotalHours:    r.TotalHours,
		ScheduleIsAssessment:  r.IsAssessment,
		ScheduleSubjectID:     r.SubjectID,
		ScheduleCourseGroupID: r.CourseGroupID,
		ScheduleLinks:         links,
	}

	if len(r.ExamMetadata) > 0 {
		mdl.ScheduleExamMetadata = datatypes.JSON(r.ExamMetadata)
	}

	switch scheduleType {
	case m.ScheduleTypeCyclic:
		// sudah lolos ValidateForType, parse pasti sukses
		start, _ := ParseDate(r.StartDayDate)
		end, _ := ParseDate(r.EndDayDate)
		exam, _ := ParseDate(r.ExamDate)
		mdl.ScheduleStartDayDate = &start
		mdl.ScheduleEndDayDate = &end
		mdl.ScheduleExamDate = &exam
	case m.ScheduleTypeNonCyclic:
		mdl.SchedulePeriod = r.Period
		mdl.ScheduleAvailableDay = r.AvailableDay
	}

	return mdl
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", strings.TrimSpace(s))
}

/* =========================================================
 * LIST QUERY + SORTING
 * ========================================================= */

type ListScheduleQuery struct {
	Search  string `query:"search"`
	Sorting string `query:"sorting"`
	Type    string `query:"type"`
	Limit   int    `query:"limit"`
	Offset  int    `query:"offset"`
}

// whitelist kolom sorting (field API → kolom DB)
var sortableColumns = map[string]string{
	"title":        "schedule_title",
	"totalHours":   "schedule_total_hours",
	"examDate":     "schedule_exam_date",
	"startDayDate": "schedule_start_day_date",
	"createdAt":    "schedule_created_at",
}

// ParseSortSpec menerima "field:dir,field:dir" (prioritas sesuai urutan)
// dan menghasilkan klausa ORDER BY yang aman. Field di luar whitelist ditolak.
func ParseSortSpec(spec string) (string, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return "schedule_created_at DESC", nil
	}

	parts := strings.Split(spec, ",")
	clauses := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		field, dir := part, "asc"
		if i := strings.IndexByte(part, ':'); i >= 0 {
			field, dir = part[:i], strings.ToLower(part[i+1:])
		}
		col, ok := sortableColumns[field]
		if !ok {
			return "", fiber.NewError(fiber.StatusBadRequest, "Field sorting tidak dikenal: "+field)
		}
		if dir != "asc" && dir != "desc" {
			return "", fiber.NewError(fiber.StatusBadRequest, "Arah sorting harus asc/desc: "+dir)
		}
		clauses = append(clauses, col+" "+strings.ToUpper(dir))
	}
	if len(clauses) == 0 {
		return "schedule_created_at DESC", nil
	}
	return strings.Join(clauses, ", "), nil
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type ScheduleTeacherResponse struct {
	TeacherID uuid.UUID `json:"teacher_id"`
	SubjectID uuid.UUID `json:"subject_id"`
}

type AttachmentResponse struct {
	AttachmentID uuid.UUID `json:"attachment_id"`
	Title        string    `json:"title"`
	Key          string    `json:"key"`
	Mimetype     string    `json:"mimetype"`
	Type         string    `json:"type"`
}

type ScheduleResponse struct {
	ScheduleID   uuid.UUID `json:"schedule_id"`
	ScheduleType string    `json:"schedule_type"`

	Title        string `json:"title"`
	Description  string `json:"description"`
	ExamType     string `json:"exam_type"`
	TotalHours   int    `json:"total_hours"`
	IsAssessment bool   `json:"is_assessment"`

	SubjectID     uuid.UUID `json:"subject_id"`
	CourseGroupID uuid.UUID `json:"course_group_id"`

	Links []string `json:"links"`

	ExamMetadata json.RawMessage `json:"exam_metadata,omitempty"`

	StartDayDate *string `json:"start_day_date,omitempty"`
	EndDayDate   *string `json:"end_day_date,omitempty"`
	ExamDate     *string `json:"exam_date,omitempty"`

	Period       *int    `json:"period,omitempty"`
	AvailableDay *string `json:"available_day,omitempty"`

	CreatedAt time.Time `json:"created_at"`

	ScheduleTeachers []ScheduleTeacherResponse `json:"schedule_teachers"`
	ThematicPlans    []ThematicPlanResponse    `json:"thematic_plans"`
	Attachments      []AttachmentResponse      `json:"attachments"`
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

func FromScheduleModel(mdl m.ScheduleModel) ScheduleResponse {
	teachers := make([]ScheduleTeacherResponse, 0, len(mdl.ScheduleTeachers))
	for _, st := range mdl.ScheduleTeachers {
		teachers = append(teachers, ScheduleTeacherResponse{
			TeacherID: st.ScheduleTeacherTeacherID,
			SubjectID: st.ScheduleTeacherSubjectID,
		})
	}

	plans := make([]ThematicPlanResponse, 0, len(mdl.ThematicPlans))
	for _, tp := range mdl.ThematicPlans {
		plans = append(plans, FromThematicPlanModel(tp))
	}

	atts := make([]AttachmentResponse, 0, len(mdl.Attachments))
	for _, a := range mdl.Attachments {
		atts = append(atts, AttachmentResponse{
			AttachmentID: a.AttachmentID,
			Title:        a.AttachmentTitle,
			Key:          a.AttachmentKey,
			Mimetype:     a.AttachmentMimetype,
			Type:         a.AttachmentType,
		})
	}

	links := mdl.ScheduleLinks
	if links == nil {
		links = []string{}
	}

	return ScheduleResponse{
		ScheduleID:       mdl.ScheduleID,
		ScheduleType:     mdl.ScheduleType,
		Title:            mdl.ScheduleTitle,
		Description:      mdl.ScheduleDescription,
		ExamType:         mdl.ScheduleExamType,
		TotalHours:       mdl.ScheduleTotalHours,
		IsAssessment:     mdl.ScheduleIsAssessment,
		SubjectID:        mdl.ScheduleSubjectID,
		CourseGroupID:    mdl.ScheduleCourseGroupID,
		Links:            links,
		ExamMetadata:     json.RawMessage(mdl.ScheduleExamMetadata),
		StartDayDate:     formatDate(mdl.ScheduleStartDayDate),
		EndDayDate:       formatDate(mdl.ScheduleEndDayDate),
		ExamDate:         formatDate(mdl.ScheduleExamDate),
		Period:           mdl.SchedulePeriod,
		AvailableDay:     mdl.ScheduleAvailableDay,
		CreatedAt:        mdl.ScheduleCreatedAt,
		ScheduleTeachers: teachers,
		ThematicPlans:    plans,
		Attachments:      atts,
	}
}

func FromScheduleModels(rows []m.ScheduleModel) []ScheduleResponse {
	out := make([]ScheduleResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromScheduleModel(r))
	}
	return out
}
