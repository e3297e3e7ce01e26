package brandshare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ppc-optimizer/internal/core/domain"
)

func sheet(rows ...[]any) *domain.Sheet {
	s := &domain.Sheet{Header: []string{
		domain.ColumnSearchQuery,
		domain.ColumnImpressionShare,
		domain.ColumnClickShare,
		domain.ColumnCartAddShare,
	}}
	for i, r := range rows {
		s.Rows = append(s.Rows, domain.SheetRow{Number: i + 2, Cells: r})
	}
	return s
}

func TestAnalyze(t *testing.T) {
	s := sheet(
		[]any{"running shoes", "10%", "12%", "20%"},
		[]any{"trail shoes", int64(30), int64(25), int64(20)},
		[]any{"saturated", 85.0, 10.0, 90.0},
		[]any{"kids shoes", 5.5, 6.0, "7.25 %"},
		[]any{"tie", "20%", "20%", "20%"},
	)

	out, err := Analyze(s)
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "running shoes", out[0].SearchQuery)
	assert.Equal(t, 2, out[0].Row)
	assert.InDelta(t, 0.10, out[0].ImpressionShare, 1e-12)
	assert.InDelta(t, 0.12, out[0].ClickShare, 1e-12)
	assert.InDelta(t, 0.20, out[0].CartAddShare, 1e-12)

	assert.Equal(t, "kids shoes", out[1].SearchQuery)
	assert.InDelta(t, 0.0725, out[1].CartAddShare, 1e-12)
}

func TestAnalyzeSkipsReportMetadataRow(t *testing.T) {
	s := &domain.Sheet{
		Header: []string{"Brand=[Acme]", "Reporting Range=[Weekly]", "Viewing=[2024-05-05 - 2024-05-11]", "Unnamed: 3"},
		Rows: []domain.SheetRow{
			{Number: 2, Cells: []any{
				domain.ColumnSearchQuery, domain.ColumnImpressionShare,
				domain.ColumnClickShare, domain.ColumnCartAddShare,
			}},
			{Number: 3, Cells: []any{"red shoes", "10%", "15%", "30%"}},
			{Number: 4, Cells: []any{"blue shoes", "90%", "15%", "95%"}},
		},
	}

	out, err := Analyze(s)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "red shoes", out[0].SearchQuery)
	assert.Equal(t, 3, out[0].Row)
}

func TestAnalyzeMissingColumn(t *testing.T) {
	s := &domain.Sheet{Header: []string{domain.ColumnSearchQuery, domain.ColumnImpressionShare}}
	_, err := Analyze(s)
	var mf *domain.MissingFieldError
	require.ErrorAs(t, err, &mf)
	assert.Equal(t, domain.ColumnClickShare, mf.Field)
	assert.Zero(t, mf.Row)
}

func TestAnalyzeBadValue(t *testing.T) {
	_, err := Analyze(sheet([]any{"q", "ten", "1", "2"}))
	var tm *domain.TypeMismatchError
	require.ErrorAs(t, err, &tm)
	assert.Equal(t, domain.ColumnImpressionShare, tm.Field)
	assert.Equal(t, 2, tm.Row)
}

func TestAnalyzeBlankShare(t *testing.T) {
	_, err := Analyze(sheet([]any{"q", "1", nil, "2"}))
	var mf *domain.MissingFieldError
	require.ErrorAs(t, err, &mf)
	assert.Equal(t, domain.ColumnClickShare, mf.Field)
}

func TestIsOpportunity(t *testing.T) {
	assert.True(t, IsOpportunity(domain.BrandShareRow{ImpressionShare: 0.1, ClickShare: 0.1, CartAddShare: 0.2}))
	assert.False(t, IsOpportunity(domain.BrandShareRow{ImpressionShare: 0.8, ClickShare: 0.1, CartAddShare: 0.9}))
	assert.False(t, IsOpportunity(domain.BrandShareRow{ImpressionShare: 0.1, ClickShare: 0.3, CartAddShare: 0.2}))
}
