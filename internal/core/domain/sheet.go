package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Sheet is the tabular content of the first worksheet of an uploaded file.
// Header holds unique column names; every row in Rows has at most
// len(Header) cells.
type Sheet struct {
	Name   string
	Header []string
	Rows   []SheetRow
}

// SheetRow is one data row. Number is the 1-based row number in the source
// worksheet, so error messages can point at the offending line.
type SheetRow struct {
	Number int
	Cells  []any
}

// Cell returns the value at column index i, or nil past the end of the row.
func (r SheetRow) Cell(i int) any {
	if i < 0 || i >= len(r.Cells) {
		return nil
	}
	return r.Cells[i]
}

// ColumnIndex returns the index of the header matching name after trimming
// and case folding, or -1.
func (s *Sheet) ColumnIndex(name string) int {
	want := strings.TrimSpace(name)
	for i, h := range s.Header {
		if strings.EqualFold(strings.TrimSpace(h), want) {
			return i
		}
	}
	return -1
}

// FindHeader returns s re-based on the first row that contains every name
// in required. The current header is tried first, then up to maxScan data
// rows, so report exports with metadata lines above the real header still
// load. Rows above the chosen header are dropped.
func (s *Sheet) FindHeader(maxScan int, required ...string) (*Sheet, bool) {
	if s.hasColumns(required) {
		return s, true
	}
	for i := 0; i < maxScan && i < len(s.Rows); i++ {
		raw := make([]string, len(s.Rows[i].Cells))
		for c, v := range s.Rows[i].Cells {
			if v != nil {
				raw[c] = fmt.Sprint(v)
			}
		}
		candidate := &Sheet{
			Name:   s.Name,
			Header: NormalizeHeader(raw),
			Rows:   s.Rows[i+1:],
		}
		if candidate.hasColumns(required) {
			return candidate, true
		}
	}
	return s, false
}

func (s *Sheet) hasColumns(names []string) bool {
	for _, name := range names {
		if s.ColumnIndex(name) < 0 {
			return false
		}
	}
	return true
}

// NormalizeHeader makes raw header cells usable as column keys: blank names
// become "Unnamed: <index>" and repeated names get ".1", ".2" suffixes.
func NormalizeHeader(raw []string) []string {
	var (
		header = make([]string, len(raw))
		seen   = make(map[string]bool, len(raw))
		dups   = make(map[string]int)
	)
	for i, name := range raw {
		name = strings.TrimSpace(name)
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		candidate := name
		for seen[candidate] {
			dups[name]++
			candidate = fmt.Sprintf("%s.%d", name, dups[name])
		}
		seen[candidate] = true
		header[i] = candidate
	}
	return header
}

// ParseCellValue types a textual cell: int64 for integers, float64 for
// decimals, nil for blanks and the trimmed string otherwise.
func ParseCellValue(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, ok := parseFinite(s); ok {
		return f
	}
	return s
}

// ToFloat converts a typed cell value to float64. Blank cells report
// present=false; values that cannot be read as a number report ok=false.
func ToFloat(v any) (f float64, present, ok bool) {
	switch x := v.(type) {
	case nil:
		return 0, false, true
	case float64:
		return x, true, !math.IsNaN(x) && !math.IsInf(x, 0)
	case int64:
		return float64(x), true, true
	case int:
		return float64(x), true, true
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, false, true
		}
		f, ok := parseFinite(s)
		return f, true, ok
	default:
		return 0, true, false
	}
}

// parseFinite parses s as a float, rejecting NaN and infinities which have no
// spreadsheet or JSON representation.
func parseFinite(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
