package persistence

import (
	"context"

	"github.com/atelier-dourado/backoffice/modules/stats/domain"
	"github.com/jmoiron/sqlx"
)

const overviewQuery = `
	SELECT
		(SELECT COUNT(*) FROM portfolio_items)                                              AS portfolio_total,
		(SELECT COUNT(*) FROM portfolio_items WHERE status IN ('PUBLISHED', 'FEATURED'))    AS portfolio_published,
		(SELECT COUNT(*) FROM portfolio_items WHERE is_featured)                            AS portfolio_featured,
		(SELECT COUNT(*) FROM products)                                                     AS product_total,
		(SELECT COUNT(*) FROM products WHERE is_ready_delivery AND is_active)               AS product_ready,
		(SELECT COUNT(*) FROM activity_logs)                                                AS activity_total`

// SqlxStatsRepository is a read-only aggregation layer. It runs over
// database/sql instead of the pgx pool because the dashboard queries
// are plain scans with no transaction or retry semantics.
type SqlxStatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) domain.Repository {
	return &SqlxStatsRepository{db: db}
}

func (r *SqlxStatsRepository) Overview(ctx context.Context) (*domain.Overview, error) {
	var overview domain.Overview
	if err := r.db.GetContext(ctx, &overview, overviewQuery); err != nil {
		return nil, err
	}
	return &overview, nil
}
