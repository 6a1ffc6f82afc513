package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "kampusku_backend/internals/features/school/schedules/model"
)

func validCyclicRequest() ScheduleRequest {
	return ScheduleRequest{
		Title:         "Matematika Dasar",
		ExamType:      "WRITTEN",
		TotalHours:    40,
		SubjectID:     uuid.New(),
		CourseGroupID: uuid.New(),
		TeacherID:     uuid.New(),
		StartDayDate:  "2026-01-05",
		EndDayDate:    "2026-06-20",
		ExamDate:      "2026-06-25",
	}
}

func TestValidateForType_CyclicOK(t *testing.T) {
	req := validCyclicRequest()
	require.NoError(t, req.ValidateForType(m.ScheduleTypeCyclic))
}

func TestValidateForType_CyclicDateOrdering(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		exam  string
	}{
		{"end sebelum start", "2026-06-01", "2026-01-01", "2026-07-01"},
		{"exam sebelum end", "2026-01-01", "2026-06-01", "2026-05-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCyclicRequest()
			req.StartDayDate = tt.start
			req.EndDayDate = tt.end
			req.ExamDate = tt.exam
			assert.Error(t, req.ValidateForType(m.ScheduleTypeCyclic))
		})
	}
}

func TestValidateForType_CyclicSameDayAllowed(t *testing.T) {
	// batas inklusif: start == end == exam sah
	req := validCyclicRequest()
	req.StartDayDate = "2026-03-01"
	req.EndDayDate = "2026-03-01"
	req.ExamDate = "2026-03-01"
	assert.NoError(t, req.ValidateForType(m.ScheduleTypeCyclic))
}

func TestValidateForType_CyclicMissingDates(t *testing.T) {
	req := validCyclicRequest()
	req.ExamDate = ""
	assert.Error(t, req.ValidateForType(m.ScheduleTypeCyclic))
}

func TestValidateForType_NonCyclicRequiresSlot(t *testing.T) {
	req := validCyclicRequest()
	req.StartDayDate, req.EndDayDate, req.ExamDate = "", "", ""

	assert.Error(t, req.ValidateForType(m.ScheduleTypeNonCyclic))

	period := 3
	day := "MONDAY"
	req.Period = &period
	req.AvailableDay = &day
	assert.NoError(t, req.ValidateForType(m.ScheduleTypeNonCyclic))
}

func TestValidateForType_NonCyclicPeriodBounds(t *testing.T) {
	// skala period sama dengan slot lessonOfTheDay (1..10)
	req := validCyclicRequest()
	req.StartDayDate, req.EndDayDate, req.ExamDate = "", "", ""
	day := "TUESDAY"
	req.AvailableDay = &day

	for _, p := range []int{0, 11, 99} {
		period := p
		req.Period = &period
		assert.Error(t, req.ValidateForType(m.ScheduleTypeNonCyclic), "period=%d", p)
	}

	period := 10
	req.Period = &period
	assert.NoError(t, req.ValidateForType(m.ScheduleTypeNonCyclic))
}

func TestValidateForType_UnknownType(t *testing.T) {
	req := validCyclicRequest()
	assert.Error(t, req.ValidateForType("WEEKLY"))
}

func TestToModel_CyclicFillsDatesOnly(t *testing.T) {
	req := validCyclicRequest()
	mdl := req.ToModel(m.ScheduleTypeCyclic)

	require.NotNil(t, mdl.ScheduleStartDayDate)
	require.NotNil(t, mdl.ScheduleEndDayDate)
	require.NotNil(t, mdl.ScheduleExamDate)
	assert.Nil(t, mdl.SchedulePeriod)
	assert.Nil(t, mdl.ScheduleAvailableDay)
	assert.Equal(t, "2026-01-05", mdl.ScheduleStartDayDate.Format("2006-01-02"))
}

func TestToModel_NonCyclicFillsSlotOnly(t *testing.T) {
	req := validCyclicRequest()
	req.StartDayDate, req.EndDayDate, req.ExamDate = "", "", ""
	period := 5
	day := "FRIDAY"
	req.Period = &period
	req.AvailableDay = &day

	mdl := req.ToModel(m.ScheduleTypeNonCyclic)

	assert.Nil(t, mdl.ScheduleStartDayDate)
	require.NotNil(t, mdl.SchedulePeriod)
	assert.Equal(t, 5, *mdl.SchedulePeriod)
	require.NotNil(t, mdl.ScheduleAvailableDay)
	assert.Equal(t, "FRIDAY", *mdl.ScheduleAvailableDay)
}

func TestParseSortSpec(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    string
		wantErr bool
	}{
		{"kosong pakai default", "", "schedule_created_at DESC", false},
		{"satu field", "title:asc", "schedule_title ASC", false},
		{"arah default asc", "totalHours", "schedule_total_hours ASC", false},
		{"multi field berurutan", "examDate:desc,title:asc", "schedule_exam_date DESC, schedule_title ASC", false},
		{"field di luar whitelist", "password:asc", "", true},
		{"injection ditolak", "title;DROP TABLE schedules:asc", "", true},
		{"arah tidak dikenal", "title:sideways", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSortSpec(tt.spec)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
