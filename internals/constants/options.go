package constants

import (
	"fmt"
	"time"
)

// Jumlah slot pelajaran per hari & skala nilai.
// Dipakai juga oleh academic register untuk validasi lessonOfTheDay / mark.
const (
	PeriodsPerDay    = 10
	MarkScale        = 20
	AcademicYearSpan = 5
)

// Option adalah pasangan id+title untuk dropdown di frontend.
type Option struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// GeneratePeriods menghasilkan daftar slot pelajaran harian ("1-2", "2-3", ...).
// Dibangun per panggilan, bukan di init, supaya tidak ada cache proses basi.
func GeneratePeriods(n int) []Option {
	if n <= 0 {
		return []Option{}
	}
	out := make([]Option, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, Option{ID: i, Title: fmt.Sprintf("%d-%d", i, i+1)})
	}
	return out
}

// GenerateAcademicYears menghasilkan n tahun ajaran mulai tahun berjalan.
func GenerateAcademicYears(now time.Time, n int) []Option {
	if n <= 0 {
		return []Option{}
	}
	year := now.Year()
	out := make([]Option, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Option{ID: i + 1, Title: fmt.Sprintf("%d-%d", year+i, year+i+1)})
	}
	return out
}

// GenerateMarks menghasilkan skala nilai 1..n.
func GenerateMarks(n int) []Option {
	if n <= 0 {
		return []Option{}
	}
	out := make([]Option, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, Option{ID: i, Title: fmt.Sprintf("%d", i)})
	}
	return out
}

// WeekDays mengembalikan daftar hari untuk jadwal non-cyclic.
func WeekDays() []string {
	return []string{
		"MONDAY",
		"TUESDAY",
		"WEDNESDAY",
		"THURSDAY",
		"FRIDAY",
		"SATURDAY",
		"SUNDAY",
	}
}

// ValidPeriod true jika slot pelajaran masuk rentang 1..PeriodsPerDay.
func ValidPeriod(n int) bool { return n >= 1 && n <= PeriodsPerDay }

// ValidMark true jika nilai masuk rentang 1..MarkScale.
func ValidMark(n int) bool { return n >= 1 && n <= MarkScale }
