package constants

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePeriods(t *testing.T) {
	got := GeneratePeriods(PeriodsPerDay)
	require.Len(t, got, PeriodsPerDay)
	assert.Equal(t, Option{ID: 1, Title: "1-2"}, got[0])
	assert.Equal(t, Option{ID: 10, Title: "10-11"}, got[9])

	assert.Empty(t, GeneratePeriods(0))
	assert.Empty(t, GeneratePeriods(-1))
}

func TestGenerateAcademicYears(t *testing.T) {
	now := time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)
	got := GenerateAcademicYears(now, AcademicYearSpan)

	require.Len(t, got, AcademicYearSpan)
	assert.Equal(t, "2026-2027", got[0].Title)
	assert.Equal(t, "2030-2031", got[4].Title)
}

func TestGenerateMarks(t *testing.T) {
	got := GenerateMarks(MarkScale)
	require.Len(t, got, MarkScale)
	assert.Equal(t, Option{ID: 1, Title: "1"}, got[0])
	assert.Equal(t, Option{ID: 20, Title: "20"}, got[19])
}

func TestWeekDays(t *testing.T) {
	days := WeekDays()
	require.Len(t, days, 7)
	assert.Equal(t, "MONDAY", days[0])
	assert.Equal(t, "SUNDAY", days[6])
}

func TestValidPeriod(t *testing.T) {
	assert.True(t, ValidPeriod(1))
	assert.True(t, ValidPeriod(PeriodsPerDay))
	assert.False(t, ValidPeriod(0))
	assert.False(t, ValidPeriod(PeriodsPerDay+1))
}

func TestValidMark(t *testing.T) {
	assert.True(t, ValidMark(1))
	assert.True(t, ValidMark(MarkScale))
	assert.False(t, ValidMark(0))
	assert.False(t, ValidMark(MarkScale+1))
}
