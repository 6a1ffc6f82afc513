package model

import (
	"time"

	"github.com/google/uuid"
)

// AcademicRegisterModel: satu submission absensi+nilai untuk satu
// kemunculan pelajaran. Append-only: koreksi = submission baru.
type AcademicRegisterModel struct {
	AcademicRegisterID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:academic_register_id" json:"academic_register_id"`
	AcademicRegisterScheduleID uuid.UUID `gorm:"type:uuid;not null;index;column:academic_register_schedule_id" json:"academic_register_schedule_id"`

	// slot pelajaran harian (1..10); NULL untuk jadwal NON_CYCLIC
	AcademicRegisterLessonOfTheDay *int `gorm:"column:academic_register_lesson_of_the_day" json:"academic_register_lesson_of_the_day,omitempty"`

	AcademicRegisterTaughtDate time.Time `gorm:"type:date;not null;column:academic_register_taught_date" json:"academic_register_taught_date"`

	AcademicRegisterCreatedAt time.Time `gorm:"column:academic_register_created_at;autoCreateTime" json:"academic_register_created_at"`

	Entries      []AcademicRegisterEntryModel `gorm:"foreignKey:AcademicRegisterEntryRegisterID;references:AcademicRegisterID;constraint:OnDelete:CASCADE" json:"entries,omitempty"`
	CoveredPlans []AcademicRegisterPlanModel  `gorm:"foreignKey:AcademicRegisterPlanRegisterID;references:AcademicRegisterID;constraint:OnDelete:CASCADE" json:"covered_plans,omitempty"`
}

func (AcademicRegisterModel) TableName() string { return "academic_registers" }

// Satu baris per siswa. Kalau absen, mark wajib NULL; dinormalkan
// di server, bukan ditolak.
type AcademicRegisterEntryModel struct {
	AcademicRegisterEntryID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:academic_register_entry_id" json:"academic_register_entry_id"`
	AcademicRegisterEntryRegisterID uuid.UUID `gorm:"type:uuid;not null;index;column:academic_register_entry_register_id" json:"academic_register_entry_register_id"`

	AcademicRegisterEntryStudentID uuid.UUID `gorm:"type:uuid;not null;column:academic_register_entry_student_id" json:"academic_register_entry_student_id"`
	AcademicRegisterEntryIsPresent bool      `gorm:"not null;column:academic_register_entry_is_present" json:"academic_register_entry_is_present"`
	AcademicRegisterEntryMark      *int      `gorm:"column:academic_register_entry_mark" json:"academic_register_entry_mark,omitempty"`
}

func (AcademicRegisterEntryModel) TableName() string { return "academic_register_entries" }

// Plan yang ditandai "sudah dibahas" pada sesi ini.
type AcademicRegisterPlanModel struct {
	AcademicRegisterPlanID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:academic_register_plan_id" json:"academic_register_plan_id"`
	AcademicRegisterPlanRegisterID uuid.UUID `gorm:"type:uuid;not null;index;column:academic_register_plan_register_id" json:"academic_register_plan_register_id"`

	AcademicRegisterPlanThematicPlanID uuid.UUID `gorm:"type:uuid;not null;column:academic_register_plan_thematic_plan_id" json:"academic_register_plan_thematic_plan_id"`
}

func (AcademicRegisterPlanModel) TableName() string { return "academic_register_plans" }
