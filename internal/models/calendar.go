package models

// CalendarMatrix is the dense employee × day grid for one month. Cells[name]
// has DaysInMonth entries; index 0 is day 1. An empty status means no request
// covers that day.
type CalendarMatrix struct {
	Year        int
	Month       int
	DaysInMonth int
	Employees   []string
	Cells       map[string][]VacationStatus
}

// Status returns the status for employee on day (1-based).
func (m *CalendarMatrix) Status(employee string, day int) VacationStatus {
	row, ok := m.Cells[employee]
	if !ok || day < 1 || day > len(row) {
		return ""
	}
	return row[day-1]
}

// Codes returns the single-letter row for employee.
func (m *CalendarMatrix) Codes(employee string) []string {
	row := m.Cells[employee]
	codes := make([]string, len(row))
	for i, s := range row {
		codes[i] = s.Code()
	}
	return codes
}
