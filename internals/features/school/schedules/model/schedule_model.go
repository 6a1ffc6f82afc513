package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Tipe jadwal: satu tabel untuk dua varian.
// CYCLIC punya start/end/exam date; NON_CYCLIC punya period + available day.
const (
	ScheduleTypeCyclic    = "CYCLIC"
	ScheduleTypeNonCyclic = "NON_CYCLIC"
)

const (
	ExamTypeVerbal  = "VERBAL"
	ExamTypeWritten = "WRITTEN"
	ExamTypeMixed   = "MIXED"
)

type ScheduleModel struct {
	ScheduleID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:schedule_id" json:"schedule_id"`
	ScheduleType string    `gorm:"type:varchar(16);not null;column:schedule_type" json:"schedule_type"`

	ScheduleTitle       string `gorm:"not null;column:schedule_title" json:"schedule_title"`
	ScheduleDescription string `gorm:"column:schedule_description" json:"schedule_description"`

	ScheduleExamType     string `gorm:"type:varchar(16);not null;column:schedule_exam_type" json:"schedule_exam_type"`
	ScheduleTotalHours   int    `gorm:"not null;column:schedule_total_hours" json:"schedule_total_hours"`
	ScheduleIsAssessment bool   `gorm:"not null;default:false;column:schedule_is_assessment" json:"schedule_is_assessment"`

	ScheduleSubjectID     uuid.UUID `gorm:"type:uuid;not null;column:schedule_subject_id" json:"schedule_subject_id"`
	ScheduleCourseGroupID uuid.UUID `gorm:"type:uuid;not null;column:schedule_course_group_id" json:"schedule_course_group_id"`

	// link eksternal (urutan dipertahankan)
	ScheduleLinks pq.StringArray `gorm:"type:text[];column:schedule_links" json:"schedule_links"`

	// metadata ujian bebas bentuk (mis. bahasa soal, catatan pengawas)
	ScheduleExamMetadata datatypes.JSON `gorm:"type:jsonb;column:schedule_exam_metadata" json:"schedule_exam_metadata,omitempty"`

	// --- CYCLIC ---
	ScheduleStartDayDate *time.Time `gorm:"type:date;column:schedule_start_day_date" json:"schedule_start_day_date,omitempty"`
	ScheduleEndDayDate   *time.Time `gorm:"type:date;column:schedule_end_day_date" json:"schedule_end_day_date,omitempty"`
	ScheduleExamDate     *time.Time `gorm:"type:date;column:schedule_exam_date" json:"schedule_exam_date,omitempty"`

	// --- NON_CYCLIC ---
	SchedulePeriod       *int    `gorm:"column:schedule_period" json:"schedule_period,omitempty"`
	ScheduleAvailableDay *string `gorm:"type:varchar(16);column:schedule_available_day" json:"schedule_available_day,omitempty"`

	ScheduleCreatedAt time.Time  `gorm:"column:schedule_created_at;autoCreateTime" json:"schedule_created_at"`
	ScheduleUpdatedAt *time.Time `gorm:"column:schedule_updated_at;autoUpdateTime" json:"schedule_updated_at,omitempty"`

	// relasi (cascade di level DB)
	ThematicPlans    []ThematicPlanModel    `gorm:"foreignKey:ThematicPlanScheduleID;references:ScheduleID;constraint:OnDelete:CASCADE" json:"thematic_plans,omitempty"`
	ScheduleTeachers []ScheduleTeacherModel `gorm:"foreignKey:ScheduleTeacherScheduleID;references:ScheduleID;constraint:OnDelete:CASCADE" json:"schedule_teachers,omitempty"`
	Attachments      []AttachmentModel      `gorm:"foreignKey:AttachmentScheduleID;references:ScheduleID;constraint:OnDelete:CASCADE" json:"attachments,omitempty"`
}

func (ScheduleModel) TableName() string { return "schedules" }

// IsCyclic true kalau jadwal bertipe CYCLIC.
func (m *ScheduleModel) IsCyclic() bool { return m.ScheduleType == ScheduleTypeCyclic }
