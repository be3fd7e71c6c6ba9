package excel

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"lunchscan/internal/attendance"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf
}

func TestReadRows(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"EMP Id", "First Name", "Last Name", "Select Menu", "Scan Time", "Status"},
		{"E1", "Ada", "Lovelace", "Yes", "14:32", ""},
		{"E2", "Grace", "Hopper", "Yes", "-", ""},
		{"E3", "Alan", "Turing", "No", "", ""},
		{"E4", "Edsger", "Dijkstra", "Yes", "12:00", "Duplicate"},
		{"", "Blank", "Row", "Yes", "", ""},
	})

	rows, err := ReadRows(buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("len = %d, want 4 (blank EMP Id skipped)", len(rows))
	}

	wantStatus := []string{
		attendance.StatusAttended,
		attendance.StatusNotScanned,
		attendance.StatusNotScanned,
		attendance.StatusDuplicated,
	}
	for i, want := range wantStatus {
		if got := rows[i].ResolveStatus(); got != want {
			t.Errorf("row %d status = %q, want %q", i, got, want)
		}
	}
	if rows[0].EmpID != "E1" || rows[0].FirstName != "Ada" || rows[0].LastName != "Lovelace" {
		t.Errorf("row 0 fields: %+v", rows[0])
	}
	if !rows[1].Eligible() || rows[2].Eligible() {
		t.Error("eligibility mapping wrong")
	}
}

func TestReadRowsHeaderOrderIndependent(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"Scan Time", "EMP Id", "Select Menu", "Last Name", "First Name"},
		{"09:15", "E9", "yes", "Curie", "Marie"},
	})

	rows, err := ReadRows(buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("len = %d, want 1", len(rows))
	}
	row := rows[0]
	if row.EmpID != "E9" || row.FirstName != "Marie" || row.ScanTime != "09:15" {
		t.Errorf("columns mismapped: %+v", row)
	}
	if row.ResolveStatus() != attendance.StatusAttended {
		t.Errorf("status = %q", row.ResolveStatus())
	}
}

func TestReadRowsRejectsGarbage(t *testing.T) {
	if _, err := ReadRows(bytes.NewReader([]byte("not a workbook"))); err == nil {
		t.Error("expected error for non-xlsx input")
	}
}
