package export

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
	"vacation-calendar-bot/internal/models"
)

const Legend = "A=approved, P=pending, R=rejected"

// RenderText draws the grid for a monospace chat message. Each day takes one
// column; the two header lines hold the tens and units of the day number.
func RenderText(matrix *models.CalendarMatrix) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %d\n", time.Month(matrix.Month).String(), matrix.Year)

	if len(matrix.Employees) == 0 {
		b.WriteString("No active employees.\n")
		return b.String()
	}

	width := nameWidth(matrix)
	pad := strings.Repeat(" ", width+1)

	var tens, units strings.Builder
	for d := 1; d <= matrix.DaysInMonth; d++ {
		if d >= 10 {
			tens.WriteByte(byte('0' + d/10))
		} else {
			tens.WriteByte(' ')
		}
		units.WriteByte(byte('0' + d%10))
	}
	b.WriteString(pad + tens.String() + "\n")
	b.WriteString(pad + units.String() + "\n")

	for _, employee := range matrix.Employees {
		b.WriteString(employee)
		b.WriteString(strings.Repeat(" ", width-utf8.RuneCountInString(employee)+1))
		for _, code := range matrix.Codes(employee) {
			if code == "" {
				code = "."
			}
			b.WriteString(code)
		}
		b.WriteByte('\n')
	}

	b.WriteString(Legend + "\n")
	return b.String()
}

func nameWidth(matrix *models.CalendarMatrix) int {
	width := 0
	for _, e := range matrix.Employees {
		if n := utf8.RuneCountInString(e); n > width {
			width = n
		}
	}
	return width
}
