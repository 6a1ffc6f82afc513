package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ThematicPlanTypePractical   = "PRACTICAL"
	ThematicPlanTypeTheoretical = "THEORETICAL"
)

// Satu jadwal maksimal punya satu plan PRACTICAL + satu THEORETICAL.
// Dijaga lewat semantik delete-all-lalu-recreate, bukan unique constraint.
type ThematicPlanModel struct {
	ThematicPlanID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:thematic_plan_id" json:"thematic_plan_id"`
	ThematicPlanScheduleID uuid.UUID `gorm:"type:uuid;not null;index;column:thematic_plan_schedule_id" json:"thematic_plan_schedule_id"`

	ThematicPlanType       string `gorm:"type:varchar(16);not null;column:thematic_plan_type" json:"thematic_plan_type"`
	ThematicPlanTotalHours int    `gorm:"not null;default:0;column:thematic_plan_total_hours" json:"thematic_plan_total_hours"`

	ThematicPlanCreatedAt time.Time `gorm:"column:thematic_plan_created_at;autoCreateTime" json:"thematic_plan_created_at"`

	Descriptions []ThematicPlanDescriptionModel `gorm:"foreignKey:ThematicPlanDescriptionPlanID;references:ThematicPlanID;constraint:OnDelete:CASCADE" json:"descriptions,omitempty"`
}

func (ThematicPlanModel) TableName() string { return "thematic_plans" }

type ThematicPlanDescriptionModel struct {
	ThematicPlanDescriptionID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:thematic_plan_description_id" json:"thematic_plan_description_id"`
	ThematicPlanDescriptionPlanID uuid.UUID `gorm:"type:uuid;not null;index;column:thematic_plan_description_plan_id" json:"thematic_plan_description_plan_id"`

	ThematicPlanDescriptionTitle string `gorm:"not null;column:thematic_plan_description_title" json:"thematic_plan_description_title"`
	ThematicPlanDescriptionHour  string `gorm:"not null;column:thematic_plan_description_hour" json:"thematic_plan_description_hour"`

	// urutan baris sesuai input guru
	ThematicPlanDescriptionOrder int `gorm:"not null;default:0;column:thematic_plan_description_order" json:"thematic_plan_description_order"`
}

func (ThematicPlanDescriptionModel) TableName() string { return "thematic_plan_descriptions" }
