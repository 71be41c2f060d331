package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNormalizeEmployeeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ana", "ANA"},
		{"  juan   ruiz ", "JUAN RUIZ"},
		{"Óscar Hernández", "ÓSCAR HERNÁNDEZ"},
		{"   ", ""},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeEmployeeName(tc.in))
		})
	}
}

func TestVacationRequest_Overlaps(t *testing.T) {
	r := &VacationRequest{StartDate: date(2024, 3, 10), EndDate: date(2024, 3, 15)}

	tests := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"entirely before", date(2024, 3, 1), date(2024, 3, 9), false},
		{"touches start", date(2024, 3, 1), date(2024, 3, 10), true},
		{"inside", date(2024, 3, 11), date(2024, 3, 12), true},
		{"covers", date(2024, 3, 1), date(2024, 3, 31), true},
		{"touches end", date(2024, 3, 15), date(2024, 3, 20), true},
		{"entirely after", date(2024, 3, 16), date(2024, 3, 20), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.Overlaps(tc.start, tc.end))
		})
	}
}

func TestVacationStatus(t *testing.T) {
	assert.Equal(t, "A", StatusApproved.Code())
	assert.Equal(t, "P", StatusPending.Code())
	assert.Equal(t, "R", StatusRejected.Code())
	assert.Equal(t, "", VacationStatus("").Code())

	assert.Greater(t, StatusApproved.Rank(), StatusPending.Rank())
	assert.Greater(t, StatusPending.Rank(), StatusRejected.Rank())
	assert.Greater(t, StatusRejected.Rank(), VacationStatus("").Rank())

	assert.True(t, StatusPending.IsValid())
	assert.False(t, VacationStatus("cancelled").IsValid())
	assert.True(t, StatusRejected.IsDecision())
	assert.False(t, StatusPending.IsDecision())
}

func TestVacationRequest_Days(t *testing.T) {
	r := &VacationRequest{StartDate: date(2024, 3, 30), EndDate: date(2024, 4, 2)}
	assert.Equal(t, 4, r.Days())

	r = &VacationRequest{StartDate: date(2024, 3, 5), EndDate: date(2024, 3, 5)}
	assert.Equal(t, 1, r.Days())
}

func TestMonthBounds(t *testing.T) {
	first, last, days := MonthBounds(2024, 2)
	assert.Equal(t, date(2024, 2, 1), first)
	assert.Equal(t, date(2024, 2, 29), last)
	assert.Equal(t, 29, days)

	_, last, days = MonthBounds(2023, 12)
	assert.Equal(t, date(2023, 12, 31), last)
	assert.Equal(t, 31, days)
}

func TestNormalizeDate(t *testing.T) {
	loc := time.FixedZone("X", 3*3600)
	in := time.Date(2024, 3, 30, 23, 15, 0, 0, loc)
	assert.Equal(t, date(2024, 3, 30), NormalizeDate(in))
}

func TestCalendarMatrix_Status(t *testing.T) {
	m := &CalendarMatrix{
		DaysInMonth: 3,
		Employees:   []string{"ANA"},
		Cells:       map[string][]VacationStatus{"ANA": {"", StatusPending, StatusApproved}},
	}
	assert.Equal(t, StatusPending, m.Status("ANA", 2))
	assert.Equal(t, VacationStatus(""), m.Status("ANA", 4))
	assert.Equal(t, VacationStatus(""), m.Status("BOB", 1))
	assert.Equal(t, []string{"", "P", "A"}, m.Codes("ANA"))
}
