package table

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/peter-kozarec/sharpedge/pkg/utility/fixed"
)

// Table is one uploaded delimited file: a header row plus a row matrix.
type Table struct {
	Header []string
	Rows   [][]string
}

// Read parses a delimited file. Rows may be ragged, short rows simply have
// fewer cells.
func Read(path string, comma rune) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open %q: %w", path, err)
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	reader := csv.NewReader(f)
	reader.Comma = comma
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("unable to parse %q: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("file %q is empty", path)
	}

	return &Table{Header: records[0], Rows: records[1:]}, nil
}

// ColumnIndex resolves a header name case-insensitively.
func (t *Table) ColumnIndex(name string) (int, error) {
	for i, h := range t.Header {
		if strings.EqualFold(strings.TrimSpace(h), strings.TrimSpace(name)) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("column %q not found in header %v", name, t.Header)
}

// Observations extracts one column as the raw observation series. Cells are
// cleaned of currency symbols, thousands separators and trailing percent
// signs, parenthesized values are negated and blank cells are skipped.
func (t *Table) Observations(column int) ([]fixed.Point, error) {
	if column < 0 {
		return nil, fmt.Errorf("column index must not be negative, got %d", column)
	}
	var observations []fixed.Point
	for i, row := range t.Rows {
		if column >= len(row) {
			continue
		}
		cell, ok := Clean(row[column])
		if !ok {
			continue
		}
		p, err := fixed.Parse(cell)
		if err != nil {
			return nil, fmt.Errorf("row %d: unable to parse %q: %w", i+2, row[column], err)
		}
		observations = append(observations, p)
	}
	if len(observations) == 0 {
		return nil, fmt.Errorf("column %d holds no numeric observations", column)
	}
	return observations, nil
}

var currencyReplacer = strings.NewReplacer(
	"$", "",
	"€", "",
	"£", "",
	"¥", "",
	",", "",
	" ", "",
	"\u00a0", "",
)

// Clean normalizes one cell to plain decimal text. The second return is
// false for blank cells.
func Clean(cell string) (string, bool) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return "", false
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	s = currencyReplacer.Replace(s)
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimPrefix(s, "+")
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	if negative && !strings.HasPrefix(s, "-") {
		s = "-" + s
	}
	return s, true
}
