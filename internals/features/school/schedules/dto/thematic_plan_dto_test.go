package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "kampusku_backend/internals/features/school/schedules/model"
)

func TestParseTotalHours(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{"angka biasa", "10", 10, false},
		{"nol sah", "0", 0, false},
		{"spasi di-trim", "  7 ", 7, false},
		{"negatif ditolak", "-1", 0, true},
		{"bukan angka", "sepuluh", 0, true},
		{"kosong", "", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := ThematicPlanClassInput{TotalHours: tt.raw}
			got, err := in.ParseTotalHours()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestThematicPlanToModel_RowOrderPreserved(t *testing.T) {
	scheduleID := uuid.New()
	in := ThematicPlanClassInput{
		TotalHours: "12",
		ClassDescriptionRow: []ClassDescriptionRowInput{
			{Title: "Pengenalan", Hour: "2"},
			{Title: "Praktik Lab", Hour: "6"},
			{Title: "Evaluasi", Hour: "4"},
		},
	}

	mdl, err := in.ToModel(scheduleID, m.ThematicPlanTypePractical)
	require.NoError(t, err)

	assert.Equal(t, scheduleID, mdl.ThematicPlanScheduleID)
	assert.Equal(t, m.ThematicPlanTypePractical, mdl.ThematicPlanType)
	assert.Equal(t, 12, mdl.ThematicPlanTotalHours)

	require.Len(t, mdl.Descriptions, 3)
	for i, want := range []string{"Pengenalan", "Praktik Lab", "Evaluasi"} {
		assert.Equal(t, want, mdl.Descriptions[i].ThematicPlanDescriptionTitle)
		assert.Equal(t, i, mdl.Descriptions[i].ThematicPlanDescriptionOrder)
	}
}

func TestThematicPlanToModel_EmptyPlanValid(t *testing.T) {
	// plan tanpa baris = "kurikulum belum diisi", tetap dibuat
	in := ThematicPlanClassInput{TotalHours: "0"}

	mdl, err := in.ToModel(uuid.New(), m.ThematicPlanTypeTheoretical)
	require.NoError(t, err)
	assert.Empty(t, mdl.Descriptions)
	assert.Equal(t, 0, mdl.ThematicPlanTotalHours)
}

func TestThematicPlanToModel_BadHoursRejected(t *testing.T) {
	in := ThematicPlanClassInput{TotalHours: "abc"}
	_, err := in.ToModel(uuid.New(), m.ThematicPlanTypePractical)
	assert.Error(t, err)
}
