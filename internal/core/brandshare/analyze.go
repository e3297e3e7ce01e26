// Package brandshare finds search queries where a brand converts better than
// it is seen: its share of cart adds beats both its impression and click
// share while impression share still has room to grow.
package brandshare

import (
	"fmt"
	"strings"

	"ppc-optimizer/internal/core/domain"
)

// MaxImpressionShare is the impression share at or above which a query is
// considered saturated.
const MaxImpressionShare = 0.8

// IsOpportunity reports whether a row passes the opportunity filter.
func IsOpportunity(r domain.BrandShareRow) bool {
	return r.ImpressionShare < r.CartAddShare &&
		r.ClickShare < r.CartAddShare &&
		r.ImpressionShare < MaxImpressionShare
}

// Analyze converts the sheet into brand-share rows and keeps the
// opportunities in sheet order.
func Analyze(s *domain.Sheet) ([]domain.BrandShareRow, error) {
	rows, err := RowsFromSheet(s)
	if err != nil {
		return nil, err
	}
	out := make([]domain.BrandShareRow, 0, len(rows))
	for _, r := range rows {
		if IsOpportunity(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

// headerScanRows bounds how many leading rows may hold report metadata
// before the column header.
const headerScanRows = 5

// RowsFromSheet reads every row of a brand-analytics export. All four
// columns must exist, either in the first row or in one of the rows below
// the report metadata lines. Share cells may be numbers or "12.5%" strings
// and are always divided by 100.
func RowsFromSheet(s *domain.Sheet) ([]domain.BrandShareRow, error) {
	cols := []string{
		domain.ColumnSearchQuery,
		domain.ColumnImpressionShare,
		domain.ColumnClickShare,
		domain.ColumnCartAddShare,
	}
	s, _ = s.FindHeader(headerScanRows, cols...)

	idx := make([]int, len(cols))
	for i, name := range cols {
		if idx[i] = s.ColumnIndex(name); idx[i] < 0 {
			return nil, &domain.MissingFieldError{Field: name}
		}
	}

	rows := make([]domain.BrandShareRow, 0, len(s.Rows))
	for _, sr := range s.Rows {
		row := domain.BrandShareRow{Row: sr.Number, SearchQuery: cellString(sr.Cell(idx[0]))}
		shares := []*float64{&row.ImpressionShare, &row.ClickShare, &row.CartAddShare}
		for i, dst := range shares {
			v, err := percent(sr, idx[i+1], cols[i+1])
			if err != nil {
				return nil, err
			}
			*dst = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func percent(row domain.SheetRow, idx int, field string) (float64, error) {
	raw := row.Cell(idx)
	if s, ok := raw.(string); ok {
		raw = strings.TrimSuffix(strings.TrimSpace(s), "%")
	}
	f, present, ok := domain.ToFloat(raw)
	if !ok {
		return 0, &domain.TypeMismatchError{Field: field, Row: row.Number, Value: row.Cell(idx)}
	}
	if !present {
		return 0, &domain.MissingFieldError{Field: field, Row: row.Number}
	}
	return f / 100, nil
}

func cellString(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
