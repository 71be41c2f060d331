package models

import (
	"time"
)

type VacationStatus string

const (
	StatusPending  VacationStatus = "pending"
	StatusApproved VacationStatus = "approved"
	StatusRejected VacationStatus = "rejected"
)

// VacationRequest is one employee's inclusive date range. Employee holds the
// normalized name and is not a foreign key to employees.
type VacationRequest struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Employee   string         `gorm:"not null;index:idx_vacations_emp_dates,priority:1" json:"employee"`
	StartDate  time.Time      `gorm:"type:date;not null;index:idx_vacations_emp_dates,priority:2" json:"start_date"`
	EndDate    time.Time      `gorm:"type:date;not null;index:idx_vacations_emp_dates,priority:3" json:"end_date"`
	Status     VacationStatus `gorm:"type:text;not null;default:'pending';check:chk_vacations_status,status IN ('pending','approved','rejected');index:idx_vacations_emp_dates,priority:4" json:"status"`
	Note       *string        `gorm:"type:text" json:"note"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	ApprovedBy *string        `gorm:"type:text" json:"approved_by"`
	ApprovedAt *time.Time     `json:"approved_at"`
}

func (VacationRequest) TableName() string {
	return "vacations"
}

// IsValid reports whether s is one of the known statuses.
func (s VacationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// IsDecision reports whether s stamps an approver.
func (s VacationStatus) IsDecision() bool {
	return s == StatusApproved || s == StatusRejected
}

// Code is the single-letter cell value used by the calendar grid.
func (s VacationStatus) Code() string {
	switch s {
	case StatusApproved:
		return "A"
	case StatusPending:
		return "P"
	case StatusRejected:
		return "R"
	}
	return ""
}

// Rank orders statuses for calendar precedence: approved > pending > rejected.
func (s VacationStatus) Rank() int {
	switch s {
	case StatusApproved:
		return 3
	case StatusPending:
		return 2
	case StatusRejected:
		return 1
	}
	return 0
}

func (r *VacationRequest) IsPending() bool {
	return r.Status == StatusPending
}

// Overlaps uses the inclusive range test: not (r.end < start or r.start > end).
func (r *VacationRequest) Overlaps(start, end time.Time) bool {
	return !(r.EndDate.Before(start) || r.StartDate.After(end))
}

// Days counts calendar days in the range, both ends included.
func (r *VacationRequest) Days() int {
	if r.EndDate.Before(r.StartDate) {
		return 0
	}
	return int(r.EndDate.Sub(r.StartDate).Hours()/24) + 1
}

func (r *VacationRequest) NoteText() string {
	if r.Note == nil {
		return ""
	}
	return *r.Note
}

func (r *VacationRequest) ApproverName() string {
	if r.ApprovedBy == nil {
		return ""
	}
	return *r.ApprovedBy
}

// NormalizeDate drops the clock part and pins the date to UTC midnight.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthBounds returns the first and last calendar day of the month and the
// number of days in it.
func MonthBounds(year, month int) (time.Time, time.Time, int) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last, last.Day()
}
