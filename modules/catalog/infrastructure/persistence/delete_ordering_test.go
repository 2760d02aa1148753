package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/atelier-dourado/backoffice/modules/catalog/domain/portfolio"
	"github.com/atelier-dourado/backoffice/modules/catalog/domain/product"
	"github.com/atelier-dourado/backoffice/pkg/composables"
	"github.com/atelier-dourado/backoffice/pkg/repo"
	"github.com/atelier-dourado/backoffice/pkg/serrors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type execResult struct {
	tag pgconn.CommandTag
	err error
}

// scriptedTx records every Exec in order and plays back per-call
// results, so tests can assert statement ordering inside a delete.
type scriptedTx struct {
	executed []string
	results  []execResult
}

func (tx *scriptedTx) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	i := len(tx.executed)
	tx.executed = append(tx.executed, sql)
	if i < len(tx.results) {
		return tx.results[i].tag, tx.results[i].err
	}
	return pgconn.NewCommandTag("DELETE 1"), nil
}

func (tx *scriptedTx) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("unexpected query")
}

func (tx *scriptedTx) QueryRow(context.Context, string, ...any) pgx.Row { return nil }

var _ repo.Tx = (*scriptedTx)(nil)

func scriptedContext(tx *scriptedTx) context.Context {
	return composables.WithTx(context.Background(), tx)
}

func TestPgPortfolioRepository_DeleteRemovesFavoritesFirst(t *testing.T) {
	tx := &scriptedTx{}
	repository := NewPortfolioRepository()

	err := repository.Delete(scriptedContext(tx), uuid.New())
	require.NoError(t, err)

	require.Len(t, tx.executed, 2)
	assert.Contains(t, tx.executed[0], "DELETE FROM favorites")
	assert.Contains(t, tx.executed[1], "DELETE FROM portfolio_items")
}

func TestPgPortfolioRepository_DeleteUnknownID(t *testing.T) {
	tx := &scriptedTx{results: []execResult{
		{tag: pgconn.NewCommandTag("DELETE 0")}, // favorites: none to remove
		{tag: pgconn.NewCommandTag("DELETE 0")}, // item missing
	}}
	repository := NewPortfolioRepository()

	err := repository.Delete(scriptedContext(tx), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, portfolio.ErrNotFound)
}

func TestPgPortfolioRepository_DeleteStillReferenced(t *testing.T) {
	tx := &scriptedTx{results: []execResult{
		{tag: pgconn.NewCommandTag("DELETE 0")},
		{err: &pgconn.PgError{Code: "23503"}},
	}}
	repository := NewPortfolioRepository()

	err := repository.Delete(scriptedContext(tx), uuid.New())
	require.Error(t, err)
	assert.True(t, serrors.HasCode(err, serrors.CodeConflict),
		"a lingering reference is a conflict, not a missing related record")
}

func TestPgProductRepository_DeleteDetachesPortfolioItemsFirst(t *testing.T) {
	tx := &scriptedTx{results: []execResult{
		{tag: pgconn.NewCommandTag("UPDATE 2")},
		{tag: pgconn.NewCommandTag("DELETE 1")},
	}}
	repository := NewProductRepository()

	err := repository.Delete(scriptedContext(tx), uuid.New())
	require.NoError(t, err)

	require.Len(t, tx.executed, 2)
	assert.Contains(t, tx.executed[0], "UPDATE portfolio_items SET product_id = NULL")
	assert.Contains(t, tx.executed[1], "DELETE FROM products")
}

func TestPgProductRepository_DeleteUnknownID(t *testing.T) {
	tx := &scriptedTx{results: []execResult{
		{tag: pgconn.NewCommandTag("UPDATE 0")},
		{tag: pgconn.NewCommandTag("DELETE 0")},
	}}
	repository := NewProductRepository()

	err := repository.Delete(scriptedContext(tx), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, product.ErrNotFound)
}
