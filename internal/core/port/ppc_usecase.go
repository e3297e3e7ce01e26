package port

import (
	"context"

	"ppc-optimizer/internal/core/domain"
)

// PPCUseCase defines the operations exposed to inbound adapters (HTTP and
// CLI). Every method takes ownership of the upload, removes any temporary
// copy before returning, and fails the whole batch on the first bad row.
type PPCUseCase interface {
	// SuggestBids returns every row of the upload with a suggested_bid
	// computed by the ACOS threshold rule, in sheet order.
	SuggestBids(ctx context.Context, upload domain.Upload) ([]domain.CampaignRecord, error)

	// MaxBids returns every row with the max bid that moves it toward
	// targetACOS.
	MaxBids(ctx context.Context, upload domain.Upload, targetACOS float64) ([]domain.MaxBidRecord, error)

	// BrandShare returns the search queries of a brand-analytics export
	// whose cart-add share beats impression and click share.
	BrandShare(ctx context.Context, upload domain.Upload) ([]domain.BrandShareRow, error)
}
