package bidding

import (
	"math"

	"ppc-optimizer/internal/core/domain"
)

// DefaultTargetACOS is used when the caller does not pick a target.
const DefaultTargetACOS = 30.0

// headroomRatio is the share of the target below which a keyword is
// considered under-bid and gets a flat raise.
const (
	headroomRatio = 0.84
	headroomRaise = 1.2
)

// MaxBid returns the new max bid that moves a keyword toward targetACOS.
// Keywords well under target get a 20% raise; the rest are scaled so that
// their ACOS would land on the target.
func MaxBid(cpc, acos, targetACOS float64) float64 {
	if acos < headroomRatio*targetACOS {
		return cpc * headroomRaise
	}
	return cpc / acos * targetACOS
}

// MaxBids computes MaxBid for every record, using current_bid as the CPC.
func MaxBids(records []domain.CampaignRecord, targetACOS float64) ([]domain.MaxBidRecord, error) {
	if err := ValidateTargetACOS(targetACOS); err != nil {
		return nil, err
	}
	out := make([]domain.MaxBidRecord, len(records))
	for i, rec := range records {
		acos, cpc, err := inputs(rec)
		if err != nil {
			return nil, err
		}
		out[i] = domain.MaxBidRecord{
			Record:     rec,
			TargetACOS: targetACOS,
			NewMaxBid:  MaxBid(cpc, acos, targetACOS),
		}
	}
	return out, nil
}

// ValidateTargetACOS rejects targets that are not positive finite numbers.
func ValidateTargetACOS(targetACOS float64) error {
	if !(targetACOS > 0) || math.IsInf(targetACOS, 0) {
		return &domain.InvalidArgumentError{Name: domain.FieldTargetACOS, Reason: "must be a positive number"}
	}
	return nil
}
