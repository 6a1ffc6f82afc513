package model

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleTeacherModel: penugasan guru pada jadwal.
// Per jadwal hanya ada satu row hidup; update mengganti, bukan menambah.
type ScheduleTeacherModel struct {
	ScheduleTeacherID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:schedule_teacher_id" json:"schedule_teacher_id"`
	ScheduleTeacherScheduleID uuid.UUID `gorm:"type:uuid;not null;index;column:schedule_teacher_schedule_id" json:"schedule_teacher_schedule_id"`

	ScheduleTeacherTeacherID uuid.UUID `gorm:"type:uuid;not null;index;column:schedule_teacher_teacher_id" json:"schedule_teacher_teacher_id"`
	ScheduleTeacherSubjectID uuid.UUID `gorm:"type:uuid;not null;column:schedule_teacher_subject_id" json:"schedule_teacher_subject_id"`

	ScheduleTeacherCreatedAt time.Time `gorm:"column:schedule_teacher_created_at;autoCreateTime" json:"schedule_teacher_created_at"`
}

func (ScheduleTeacherModel) TableName() string { return "schedule_teachers" }
