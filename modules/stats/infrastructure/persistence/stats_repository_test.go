package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSqlxStatsRepository_Overview(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT`).WillReturnRows(
		sqlmock.NewRows([]string{
			"portfolio_total", "portfolio_published", "portfolio_featured",
			"product_total", "product_ready", "activity_total",
		}).AddRow(12, 8, 3, 40, 15, 120),
	)

	repo := NewStatsRepository(sqlx.NewDb(db, "sqlmock"))
	overview, err := repo.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(12), overview.PortfolioTotal)
	assert.Equal(t, int64(8), overview.PortfolioPublished)
	assert.Equal(t, int64(3), overview.PortfolioFeatured)
	assert.Equal(t, int64(40), overview.ProductTotal)
	assert.Equal(t, int64(15), overview.ProductReady)
	assert.Equal(t, int64(120), overview.ActivityTotal)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSqlxStatsRepository_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT`).WillReturnError(context.DeadlineExceeded)

	repo := NewStatsRepository(sqlx.NewDb(db, "sqlmock"))
	_, err = repo.Overview(context.Background())
	assert.Error(t, err)
}
