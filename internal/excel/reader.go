// Package excel parses the bulk-import spreadsheet.
package excel

import (
	"errors"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"lunchscan/internal/attendance"
)

// Column headers expected on the first sheet.
const (
	ColEmpID      = "EMP Id"
	ColFirstName  = "First Name"
	ColLastName   = "Last Name"
	ColSelectMenu = "Select Menu"
	ColScanTime   = "Scan Time"
	ColStatus     = "Status"
)

// ErrNoSheet is returned when the workbook has no sheets at all.
var ErrNoSheet = errors.New("workbook has no sheets")

// ReadRows parses the first sheet of an .xlsx workbook into import rows.
// The first row is the header; cells are matched to columns by header name,
// so column order does not matter. Rows with an empty EMP Id are skipped,
// matching how a sheet-to-JSON conversion drops blank lines.
func ReadRows(r io.Reader) ([]attendance.ImportRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheet
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	// Map header name -> column index.
	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		index[strings.TrimSpace(name)] = i
	}

	cell := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var out []attendance.ImportRow
	for _, row := range rows[1:] {
		rec := attendance.ImportRow{
			EmpID:      strings.TrimSpace(cell(row, ColEmpID)),
			FirstName:  cell(row, ColFirstName),
			LastName:   cell(row, ColLastName),
			SelectMenu: cell(row, ColSelectMenu),
			ScanTime:   cell(row, ColScanTime),
			Status:     cell(row, ColStatus),
		}
		if rec.EmpID == "" {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}
