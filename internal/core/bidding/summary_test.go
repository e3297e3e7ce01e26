package bidding

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ppc-optimizer/internal/core/domain"
)

func TestSummarize(t *testing.T) {
	records, err := Suggest([]domain.CampaignRecord{
		record(2, "a", 31, 1.00),
		record(3, "b", 14, 1.00),
		record(4, "c", 20, 0.10),
		record(5, "d", 30, 0.20),
	})
	require.NoError(t, err)

	s := Summarize(records)
	assert.Equal(t, 4, s.Rows)
	assert.Equal(t, 1, s.Reduced)
	assert.Equal(t, 1, s.Increased)
	assert.Equal(t, 2, s.Held)
	assert.True(t, s.TotalCurrentBid.Equal(decimal.RequireFromString("2.3")), s.TotalCurrentBid.String())
	assert.True(t, s.TotalSuggestedBid.Equal(decimal.RequireFromString("2.3")), s.TotalSuggestedBid.String())
	assert.True(t, s.Delta().IsZero())
}

func TestSummarizeUnprocessedAndIncomplete(t *testing.T) {
	incomplete := record(3, "b", 14, 1)
	incomplete.CurrentBid = nil

	s := Summarize([]domain.CampaignRecord{record(2, "a", 40, 10), incomplete})
	assert.Equal(t, 2, s.Rows)
	assert.Equal(t, 1, s.Reduced)
	assert.Equal(t, 0, s.Increased)
	assert.True(t, s.TotalCurrentBid.Equal(decimal.NewFromInt(10)))
	assert.True(t, s.TotalSuggestedBid.Equal(decimal.NewFromInt(9)))
	assert.Equal(t, "-1", s.Delta().String())
}
