package domain

// Brand-analytics column names as exported by the search query performance report.
const (
	ColumnSearchQuery     = "Search Query"
	ColumnImpressionShare = "Impressions: Brand Share %"
	ColumnClickShare      = "Clicks: Brand Share %"
	ColumnCartAddShare    = "Cart Adds: Brand Share %"
)

// BrandShareRow holds one search query with its brand shares expressed as
// fractions (0.25 == 25%).
type BrandShareRow struct {
	Row             int     `json:"-" yaml:"-"`
	SearchQuery     string  `json:"search_query" yaml:"search_query"`
	ImpressionShare float64 `json:"impression_share" yaml:"impression_share"`
	ClickShare      float64 `json:"click_share" yaml:"click_share"`
	CartAddShare    float64 `json:"cart_add_share" yaml:"cart_add_share"`
}
