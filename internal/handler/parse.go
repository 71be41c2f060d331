package handler

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"vacation-calendar-bot/internal/models"
)

// parseDate accepts DD.MM.YYYY, DD-MM-YYYY, YYYY-MM-DD and the short DD.MM /
// DD-MM forms, which fall in the current year.
func parseDate(dateStr string, now time.Time) (time.Time, error) {
	formats := []string{
		"02.01.2006",
		"02-01-2006",
		"2006-01-02",
		"02.01",
		"02-01",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			if !strings.Contains(format, "2006") {
				t = time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			}
			return models.NormalizeDate(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid date %q, use DD.MM.YYYY or DD.MM", dateStr)
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(s), "#"), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid request id %q", s)
	}
	return uint(id), nil
}

// parseYearMonth reads "[YYYY MM]" or "[MM]"; missing parts come from now.
func parseYearMonth(args string, now time.Time) (int, int, error) {
	year, month := now.Year(), int(now.Month())

	parts := strings.Fields(args)
	switch len(parts) {
	case 0:
		return year, month, nil
	case 1:
		m, err := strconv.Atoi(parts[0])
		if err != nil || m < 1 || m > 12 {
			return 0, 0, fmt.Errorf("invalid month, use a number from 1 to 12")
		}
		return year, m, nil
	case 2:
		y, err := strconv.Atoi(parts[0])
		if err != nil || y < 2000 || y > 2100 {
			return 0, 0, fmt.Errorf("invalid year, use a year between 2000 and 2100")
		}
		m, err := strconv.Atoi(parts[1])
		if err != nil || m < 1 || m > 12 {
			return 0, 0, fmt.Errorf("invalid month, use a number from 1 to 12")
		}
		return y, m, nil
	}
	return 0, 0, fmt.Errorf("invalid format, use [YYYY MM] or [MM]")
}

func formatDate(t time.Time) string {
	return t.Format("02.01.2006")
}

var statusEmoji = map[models.VacationStatus]string{
	models.StatusPending:  "⏳",
	models.StatusApproved: "✅",
	models.StatusRejected: "❌",
}

func formatRequest(r *models.VacationRequest) string {
	line := fmt.Sprintf("#%d %s %s: %s – %s (%d d.) %s",
		r.ID, statusEmoji[r.Status], r.Employee,
		formatDate(r.StartDate), formatDate(r.EndDate), r.Days(), r.Status)
	if r.ApprovedBy != nil {
		line += " by " + *r.ApprovedBy
	}
	if note := r.NoteText(); note != "" {
		line += "\n   📝 " + note
	}
	return line
}
