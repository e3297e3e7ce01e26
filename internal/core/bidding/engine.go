// Package bidding holds the bid rules applied to campaign performance rows.
// Every function here is pure: a record's result depends only on that
// record, so callers may apply the rules in any order or in parallel.
package bidding

import (
	"ppc-optimizer/internal/core/domain"
)

// Thresholds and multipliers of the three-band ACOS rule. Comparisons are
// strict, so ACOS values equal to a threshold fall into the hold band.
const (
	ReduceAboveACOS   = 30.0
	IncreaseBelowACOS = 15.0
	ReduceFactor      = 0.9
	IncreaseFactor    = 1.1
)

// Band is the bid action selected for a row.
type Band int

const (
	BandHold Band = iota
	BandReduce
	BandIncrease
)

func (b Band) String() string {
	switch b {
	case BandReduce:
		return "reduce"
	case BandIncrease:
		return "increase"
	default:
		return "hold"
	}
}

// Classify returns the band for an ACOS percentage.
func Classify(acos float64) Band {
	switch {
	case acos > ReduceAboveACOS:
		return BandReduce
	case acos < IncreaseBelowACOS:
		return BandIncrease
	default:
		return BandHold
	}
}

// SuggestBid applies the ACOS rule to a single bid. No rounding is applied.
func SuggestBid(acos, currentBid float64) float64 {
	switch Classify(acos) {
	case BandReduce:
		return currentBid * ReduceFactor
	case BandIncrease:
		return currentBid * IncreaseFactor
	default:
		return currentBid
	}
}

// Suggest returns a copy of records with SuggestedBid set on every element.
// Length and order are preserved and the input is left untouched. A record
// without acos or current_bid fails the whole batch.
func Suggest(records []domain.CampaignRecord) ([]domain.CampaignRecord, error) {
	out := make([]domain.CampaignRecord, len(records))
	for i, rec := range records {
		acos, bid, err := inputs(rec)
		if err != nil {
			return nil, err
		}
		suggested := SuggestBid(acos, bid)
		rec.SuggestedBid = &suggested
		out[i] = rec
	}
	return out, nil
}

func inputs(rec domain.CampaignRecord) (acos, bid float64, err error) {
	if rec.ACOS == nil {
		return 0, 0, &domain.MissingFieldError{Field: domain.FieldACOS, Row: rec.Row}
	}
	if rec.CurrentBid == nil {
		return 0, 0, &domain.MissingFieldError{Field: domain.FieldCurrentBid, Row: rec.Row}
	}
	return *rec.ACOS, *rec.CurrentBid, nil
}
