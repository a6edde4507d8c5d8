package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

// TestXLSXWorkbook verifies the tracker workbook: one data row per workout
// session (rest days excluded), the Completed column initialized, and live
// formulas on the summary sheet.
func TestXLSXWorkbook(t *testing.T) {
	sessions := testPlan(t)
	data, err := xlsxSerializer{}.Serialize(sessions, testProfile())
	if err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("opening workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(progressSheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1+6 {
		t.Fatalf("progress rows = %d, want header plus 6 workouts", len(rows))
	}
	if rows[0][0] != "Week" || rows[0][4] != "Completed" {
		t.Errorf("header = %v", rows[0])
	}
	for i, row := range rows[1:] {
		if row[4] != "N" {
			t.Errorf("row %d Completed = %q, want N", i+2, row[4])
		}
	}

	title, err := f.GetCellValue(summarySheet, "A1")
	if err != nil {
		t.Fatal(err)
	}
	if title != "C25K Progress Summary" {
		t.Errorf("summary title = %q", title)
	}

	formula, err := f.GetCellFormula(summarySheet, "B4")
	if err != nil {
		t.Fatal(err)
	}
	if formula != `COUNTIF('C25K Progress'!E:E,"Y")` {
		t.Errorf("B4 formula = %q", formula)
	}
	formula, err = f.GetCellFormula(summarySheet, "B5")
	if err != nil {
		t.Fatal(err)
	}
	if formula != "B4/B3*100" {
		t.Errorf("B5 formula = %q", formula)
	}
}

// TestXLSXEmptyPlan verifies an empty plan still yields a valid workbook with
// just the header row.
func TestXLSXEmptyPlan(t *testing.T) {
	data, err := xlsxSerializer{}.Serialize(nil, testProfile())
	if err != nil {
		t.Fatal(err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := f.GetRows(progressSheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Errorf("rows = %d, want header only", len(rows))
	}
}
