package weekends

import (
	"time"
)

// IsWeekend reports whether date falls on Saturday or Sunday.
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// ForMonth returns the day numbers of the weekend days in the month.
func ForMonth(year, month int) []int {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	days := first.AddDate(0, 1, -1).Day()

	result := []int{}
	for d := 1; d <= days; d++ {
		if IsWeekend(first.AddDate(0, 0, d-1)) {
			result = append(result, d)
		}
	}
	return result
}
