package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEntries_AbsentClearsMark(t *testing.T) {
	// siswa absen tapi klien tetap kirim nilai: nilai dibuang, bukan error
	students := []StudentEntryInput{
		{ID: uuid.New(), IsPresent: false, Mark: "15"},
	}

	entries, err := NormalizeEntries(students)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.False(t, entries[0].AcademicRegisterEntryIsPresent)
	assert.Nil(t, entries[0].AcademicRegisterEntryMark)
}

func TestNormalizeEntries_PresentWithMark(t *testing.T) {
	students := []StudentEntryInput{
		{ID: uuid.New(), IsPresent: true, Mark: "18"},
	}

	entries, err := NormalizeEntries(students)
	require.NoError(t, err)
	require.NotNil(t, entries[0].AcademicRegisterEntryMark)
	assert.Equal(t, 18, *entries[0].AcademicRegisterEntryMark)
}

func TestNormalizeEntries_PresentUnmarked(t *testing.T) {
	// hadir tanpa nilai sah (belum dinilai)
	students := []StudentEntryInput{
		{ID: uuid.New(), IsPresent: true, Mark: ""},
	}

	entries, err := NormalizeEntries(students)
	require.NoError(t, err)
	assert.True(t, entries[0].AcademicRegisterEntryIsPresent)
	assert.Nil(t, entries[0].AcademicRegisterEntryMark)
}

func TestNormalizeEntries_MarkOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		mark string
	}{
		{"di atas skala", "21"},
		{"nol", "0"},
		{"negatif", "-3"},
		{"bukan angka", "bagus"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			students := []StudentEntryInput{
				{ID: uuid.New(), IsPresent: true, Mark: tt.mark},
			}
			_, err := NormalizeEntries(students)
			assert.Error(t, err)
		})
	}
}

func TestNormalizeEntries_MixedRoster(t *testing.T) {
	present := uuid.New()
	absent := uuid.New()
	students := []StudentEntryInput{
		{ID: present, IsPresent: true, Mark: "20"},
		{ID: absent, IsPresent: false, Mark: "1"},
	}

	entries, err := NormalizeEntries(students)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, present, entries[0].AcademicRegisterEntryStudentID)
	require.NotNil(t, entries[0].AcademicRegisterEntryMark)
	assert.Equal(t, 20, *entries[0].AcademicRegisterEntryMark)

	assert.Equal(t, absent, entries[1].AcademicRegisterEntryStudentID)
	assert.Nil(t, entries[1].AcademicRegisterEntryMark)
}

func TestResolveLessonSlot_CyclicRequiresSlot(t *testing.T) {
	// submit cyclic tanpa lessonOfTheDay harus ditolak sebelum mutasi
	_, err := ResolveLessonSlot(true, "")
	require.Error(t, err)

	_, err = ResolveLessonSlot(true, "   ")
	require.Error(t, err)
}

func TestResolveLessonSlot_CyclicValidSlot(t *testing.T) {
	slot, err := ResolveLessonSlot(true, "3")
	require.NoError(t, err)
	require.NotNil(t, slot)
	assert.Equal(t, 3, *slot)

	slot, err = ResolveLessonSlot(true, " 10 ")
	require.NoError(t, err)
	require.NotNil(t, slot)
	assert.Equal(t, 10, *slot)
}

func TestResolveLessonSlot_CyclicBadSlot(t *testing.T) {
	for _, raw := range []string{"0", "11", "-2", "tiga"} {
		_, err := ResolveLessonSlot(true, raw)
		assert.Error(t, err, "raw=%s", raw)
	}
}

func TestResolveLessonSlot_NonCyclicIgnoresSlot(t *testing.T) {
	// non-cyclic hanya punya satu kemunculan: slot selalu nil, query diabaikan
	for _, raw := range []string{"", "3", "999"} {
		slot, err := ResolveLessonSlot(false, raw)
		require.NoError(t, err)
		assert.Nil(t, slot)
	}
}

func TestParseTaughtDate(t *testing.T) {
	req := SubmitAcademicRegisterRequest{TaughtDate: "2026-08-31"}
	got, err := req.ParseTaughtDate()
	require.NoError(t, err)
	assert.Equal(t, "2026-08-31", got.Format("2006-01-02"))

	req.TaughtDate = "31/08/2026"
	_, err = req.ParseTaughtDate()
	assert.Error(t, err)

	// kosong = hari ini, jam dinolkan
	req.TaughtDate = ""
	got, err = req.ParseTaughtDate()
	require.NoError(t, err)
	assert.Equal(t, 0, got.Hour())
}
