package bidding

import (
	"github.com/shopspring/decimal"

	"ppc-optimizer/internal/core/domain"
)

// Summary aggregates a processed batch for reporting. Totals are summed in
// decimal so that many float bids add up to a stable figure.
type Summary struct {
	Rows              int
	Reduced           int
	Increased         int
	Held              int
	TotalCurrentBid   decimal.Decimal
	TotalSuggestedBid decimal.Decimal
}

// Delta is the change in total bid the suggestions would cause.
func (s Summary) Delta() decimal.Decimal {
	return s.TotalSuggestedBid.Sub(s.TotalCurrentBid)
}

// Summarize reports band counts and bid totals. Records without the rule
// inputs are counted in Rows only.
func Summarize(records []domain.CampaignRecord) Summary {
	s := Summary{
		Rows:              len(records),
		TotalCurrentBid:   decimal.Zero,
		TotalSuggestedBid: decimal.Zero,
	}
	for _, rec := range records {
		if rec.ACOS == nil || rec.CurrentBid == nil {
			continue
		}
		switch Classify(*rec.ACOS) {
		case BandReduce:
			s.Reduced++
		case BandIncrease:
			s.Increased++
		default:
			s.Held++
		}
		s.TotalCurrentBid = s.TotalCurrentBid.Add(decimal.NewFromFloat(*rec.CurrentBid))
		suggested := SuggestBid(*rec.ACOS, *rec.CurrentBid)
		if rec.SuggestedBid != nil {
			suggested = *rec.SuggestedBid
		}
		s.TotalSuggestedBid = s.TotalSuggestedBid.Add(decimal.NewFromFloat(suggested))
	}
	return s
}
