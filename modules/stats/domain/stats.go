package domain

import "context"

// Overview is the admin dashboard summary, computed live from the
// catalog and audit tables.
type Overview struct {
	PortfolioTotal     int64 `db:"portfolio_total" json:"portfolioTotal"`
	PortfolioPublished int64 `db:"portfolio_published" json:"portfolioPublished"`
	PortfolioFeatured  int64 `db:"portfolio_featured" json:"portfolioFeatured"`
	ProductTotal       int64 `db:"product_total" json:"productTotal"`
	ProductReady       int64 `db:"product_ready" json:"productReadyDelivery"`
	ActivityTotal      int64 `db:"activity_total" json:"activityTotal"`
}

type Repository interface {
	Overview(ctx context.Context) (*Overview, error)
}
