package export

import (
	"fmt"
	"io"
	"vacation-calendar-bot/internal/models"
	"vacation-calendar-bot/pkg/weekends"

	"github.com/xuri/excelize/v2"
)

func XLSXFileName(year, month int) string {
	return fmt.Sprintf("vacations_%04d_%02d.xlsx", year, month)
}

// SheetName is the worksheet title used by WriteXLSX.
func SheetName(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

const weekendFill = "D5D8DC"

var cellColors = map[string]struct{ fill, font string }{
	"A": {"2ECC71", "FFFFFF"},
	"P": {"F1C40F", "000000"},
	"R": {"E74C3C", "FFFFFF"},
}

// WriteXLSX writes the same grid as WriteCSV into a single worksheet with
// colored status cells and a legend row below the table.
func WriteXLSX(w io.Writer, matrix *models.CalendarMatrix) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := SheetName(matrix.Year, matrix.Month)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	styles := make(map[string]int, len(cellColors))
	for code, c := range cellColors {
		id, err := f.NewStyle(&excelize.Style{
			Fill:      excelize.Fill{Type: "pattern", Color: []string{c.fill}, Pattern: 1},
			Font:      &excelize.Font{Color: c.font, Bold: true},
			Alignment: &excelize.Alignment{Horizontal: "center"},
		})
		if err != nil {
			return fmt.Errorf("failed to create style %s: %w", code, err)
		}
		styles[code] = id
	}

	weekendStyle, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{weekendFill}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create weekend style: %w", err)
	}

	header := make([]interface{}, 0, matrix.DaysInMonth+1)
	header = append(header, "")
	for d := 1; d <= matrix.DaysInMonth; d++ {
		header = append(header, d)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	// weekend day numbers are shaded in the header only
	for _, d := range weekends.ForMonth(matrix.Year, matrix.Month) {
		cell, err := excelize.CoordinatesToCellName(d+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, weekendStyle); err != nil {
			return err
		}
	}

	for i, employee := range matrix.Employees {
		rowNum := i + 2
		nameCell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, nameCell, employee); err != nil {
			return err
		}

		for d, code := range matrix.Codes(employee) {
			if code == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(d+2, rowNum)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, code); err != nil {
				return err
			}
			if err := f.SetCellStyle(sheet, cell, cell, styles[code]); err != nil {
				return err
			}
		}
	}

	legendCell, err := excelize.CoordinatesToCellName(1, len(matrix.Employees)+3)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, legendCell, Legend); err != nil {
		return err
	}

	if err := f.SetColWidth(sheet, "A", "A", float64(nameWidth(matrix)+2)); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write xlsx: %w", err)
	}
	return nil
}
