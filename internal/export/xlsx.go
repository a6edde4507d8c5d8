package export

import (
	"fmt"

	"github.com/claude/couchplan/internal/plan"
	"github.com/xuri/excelize/v2"
)

const (
	progressSheet = "C25K Progress"
	summarySheet  = "Summary"
)

type xlsxSerializer struct{}

func (xlsxSerializer) Filename() string { return "c25k_progress_tracker.xlsx" }
func (xlsxSerializer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Serialize builds a progress tracker workbook: a data sheet with one row per
// workout session and a summary sheet whose count and completion-rate cells
// are formulas referencing the data sheet, so they stay live as the user
// ticks sessions off. Any engine failure is returned to the caller, which
// degrades to the generic CSV format.
func (xlsxSerializer) Serialize(sessions []plan.Session, _ plan.Profile) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", progressSheet); err != nil {
		return nil, err
	}

	headers := []string{"Week", "Day", "Date", "Workout", "Completed", "Notes", "Effort (1-5)", "Weather"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(progressSheet, cell, h); err != nil {
			return nil, err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4F81BD"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(progressSheet, "A1", "H1", headerStyle); err != nil {
		return nil, err
	}

	row := 2
	for _, s := range sessions {
		if !s.IsWorkout() {
			continue
		}
		values := []any{s.Week, s.Day.String(), s.Date.Format(plan.DateLayout), s.Workout, "N", "", "", s.Weather}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(progressSheet, cell, v); err != nil {
				return nil, err
			}
		}
		row++
	}

	if err := f.SetColWidth(progressSheet, "D", "D", 50); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(summarySheet, "A1", "C25K Progress Summary"); err != nil {
		return nil, err
	}
	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(summarySheet, "A1", "A1", titleStyle); err != nil {
		return nil, err
	}

	f.SetCellValue(summarySheet, "A3", "Total Sessions:")
	f.SetCellValue(summarySheet, "A4", "Completed Sessions:")
	f.SetCellValue(summarySheet, "A5", "Completion Rate:")
	f.SetCellValue(summarySheet, "C5", "%")

	formulas := map[string]string{
		"B3": fmt.Sprintf("COUNTA('%s'!E:E)-1", progressSheet),
		"B4": fmt.Sprintf("COUNTIF('%s'!E:E,\"Y\")", progressSheet),
		"B5": "B4/B3*100",
	}
	for cell, formula := range formulas {
		if err := f.SetCellFormula(summarySheet, cell, formula); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
