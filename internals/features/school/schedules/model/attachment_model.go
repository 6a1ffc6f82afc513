package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	AttachmentTypeFile   = "FILE"
	AttachmentTypeAvatar = "AVATAR"
)

// AttachmentModel adalah referensi blob di storage.
// attachment_key = identitas blob; row tidak boleh menunjuk blob
// yang belum diterima storage.
type AttachmentModel struct {
	AttachmentID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attachment_id" json:"attachment_id"`
	AttachmentScheduleID uuid.UUID `gorm:"type:uuid;not null;index;column:attachment_schedule_id" json:"attachment_schedule_id"`

	AttachmentTitle    string `gorm:"not null;column:attachment_title" json:"attachment_title"`
	AttachmentKey      string `gorm:"not null;uniqueIndex;column:attachment_key" json:"attachment_key"`
	AttachmentMimetype string `gorm:"not null;column:attachment_mimetype" json:"attachment_mimetype"`
	AttachmentType     string `gorm:"type:varchar(16);not null;default:'FILE';column:attachment_type" json:"attachment_type"`

	AttachmentCreatedAt time.Time `gorm:"column:attachment_created_at;autoCreateTime" json:"attachment_created_at"`
}

func (AttachmentModel) TableName() string { return "attachments" }
