package regress

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadCSV reads paired observations from a comma-separated file. The first
// row is a header; xCol and yCol select columns by name (case-insensitive).
// Empty names fall back to the first and second columns.
func LoadCSV(path, xCol, yCol string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("regress: opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return Dataset{}, fmt.Errorf("regress: reading CSV header: %w", err)
	}
	xi, yi, err := resolveColumns(header, xCol, yCol)
	if err != nil {
		return Dataset{}, err
	}

	var xs, ys []float64
	for row := 2; ; row++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Dataset{}, fmt.Errorf("regress: reading CSV row %d: %w", row, err)
		}
		x, y, err := parsePair(record, xi, yi, row)
		if err != nil {
			return Dataset{}, err
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return NewDataset(xs, ys)
}

// resolveColumns maps column names to indices in the header row.
// An empty name selects by position: x from column 0, y from column 1.
func resolveColumns(header []string, xCol, yCol string) (xi, yi int, err error) {
	find := func(name string, fallback int) (int, error) {
		if name == "" {
			if fallback >= len(header) {
				return 0, fmt.Errorf("%w: header has %d columns", ErrColumnNotFound, len(header))
			}
			return fallback, nil
		}
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				return i, nil
			}
		}
		return 0, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}

	if xi, err = find(xCol, 0); err != nil {
		return 0, 0, err
	}
	if yi, err = find(yCol, 1); err != nil {
		return 0, 0, err
	}
	return xi, yi, nil
}

// parsePair extracts the x and y values from one data row.
func parsePair(record []string, xi, yi, row int) (x, y float64, err error) {
	if xi >= len(record) || yi >= len(record) {
		return 0, 0, fmt.Errorf("regress: row %d has %d columns, need %d", row, len(record), max(xi, yi)+1)
	}
	x, err = strconv.ParseFloat(strings.TrimSpace(record[xi]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("regress: row %d: parsing x value %q: %w", row, record[xi], err)
	}
	y, err = strconv.ParseFloat(strings.TrimSpace(record[yi]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("regress: row %d: parsing y value %q: %w", row, record[yi], err)
	}
	return x, y, nil
}
