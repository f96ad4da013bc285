package regress

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// LoadXLSX reads paired observations from a spreadsheet file. The first row
// of the sheet is a header; xCol and yCol select columns by name
// (case-insensitive), with empty names falling back to the first and second
// columns. An empty sheet name selects the workbook's first sheet.
func LoadXLSX(path, sheet, xCol, yCol string) (Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("regress: opening %s: %w", path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return Dataset{}, fmt.Errorf("regress: reading sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return Dataset{}, ErrEmptyDataset
	}

	xi, yi, err := resolveColumns(rows[0], xCol, yCol)
	if err != nil {
		return Dataset{}, err
	}

	var xs, ys []float64
	for i, record := range rows[1:] {
		if isEmptyRow(record) {
			continue
		}
		x, y, err := parsePair(record, xi, yi, i+2)
		if err != nil {
			return Dataset{}, err
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return NewDataset(xs, ys)
}

func isEmptyRow(record []string) bool {
	for _, cell := range record {
		if cell != "" {
			return false
		}
	}
	return true
}
