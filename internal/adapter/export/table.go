// Package export renders result sets as tables and writes them to xlsx,
// csv or pdf files.
package export

import (
	"strings"

	"ppc-optimizer/internal/core/domain"
)

// Table is a rectangular result set with a title used for sheet names and
// report headings.
type Table struct {
	Title  string
	Header []string
	Rows   [][]any
}

// FromCampaignRecords lays out records with their source columns followed
// by suggested_bid.
func FromCampaignRecords(records []domain.CampaignRecord) Table {
	t := Table{Title: "Bid Suggestions"}
	if len(records) == 0 {
		t.Header = []string{domain.FieldACOS, domain.FieldCurrentBid, domain.FieldSuggestedBid}
		return t
	}
	t.Header, t.Rows = columnsTable(len(records), func(i int) ([]domain.Column, []any) {
		var s any
		if records[i].SuggestedBid != nil {
			s = *records[i].SuggestedBid
		}
		return records[i].Columns, []any{s}
	}, domain.FieldSuggestedBid)
	return t
}

// FromMaxBids lays out max-bid records with target_acos and new_max_bid last.
func FromMaxBids(records []domain.MaxBidRecord) Table {
	t := Table{Title: "Max Bids"}
	if len(records) == 0 {
		t.Header = []string{domain.FieldACOS, domain.FieldCurrentBid, domain.FieldTargetACOS, domain.FieldNewMaxBid}
		return t
	}
	t.Header, t.Rows = columnsTable(len(records), func(i int) ([]domain.Column, []any) {
		return records[i].Record.Columns, []any{records[i].TargetACOS, records[i].NewMaxBid}
	}, domain.FieldTargetACOS, domain.FieldNewMaxBid)
	return t
}

// FromBrandShare lays out brand-share opportunities using the column names
// of the source report.
func FromBrandShare(rows []domain.BrandShareRow) Table {
	t := Table{
		Title: "Brand Share Analysis",
		Header: []string{
			domain.ColumnSearchQuery,
			domain.ColumnImpressionShare,
			domain.ColumnClickShare,
			domain.ColumnCartAddShare,
		},
		Rows: make([][]any, len(rows)),
	}
	for i, r := range rows {
		t.Rows[i] = []any{r.SearchQuery, r.ImpressionShare, r.ClickShare, r.CartAddShare}
	}
	return t
}

// columnsTable builds header and rows from n records sharing a column
// layout. Source columns named like one of extra are dropped.
func columnsTable(n int, row func(i int) ([]domain.Column, []any), extra ...string) ([]string, [][]any) {
	cols, _ := row(0)
	keep := make([]int, 0, len(cols))
	header := make([]string, 0, len(cols)+len(extra))
	for i, c := range cols {
		if isExtra(c.Name, extra) {
			continue
		}
		keep = append(keep, i)
		header = append(header, c.Name)
	}
	header = append(header, extra...)

	rows := make([][]any, n)
	for i := range rows {
		cols, tail := row(i)
		out := make([]any, 0, len(header))
		for _, k := range keep {
			var v any
			if k < len(cols) {
				v = cols[k].Value
			}
			out = append(out, v)
		}
		rows[i] = append(out, tail...)
	}
	return header, rows
}

func isExtra(name string, extra []string) bool {
	for _, e := range extra {
		if strings.EqualFold(strings.TrimSpace(name), e) {
			return true
		}
	}
	return false
}
