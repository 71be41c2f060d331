package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"vacation-calendar-bot/internal/models"
)

func CSVFileName(year, month int) string {
	return fmt.Sprintf("vacations_%04d_%02d.csv", year, month)
}

// WriteCSV writes the grid: a header of day numbers after an empty corner
// cell, then one row per employee with A/P/R/"" cells.
func WriteCSV(w io.Writer, matrix *models.CalendarMatrix) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, matrix.DaysInMonth+1)
	header = append(header, "")
	for d := 1; d <= matrix.DaysInMonth; d++ {
		header = append(header, strconv.Itoa(d))
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, employee := range matrix.Employees {
		row := append([]string{employee}, matrix.Codes(employee)...)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row for %s: %w", employee, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
