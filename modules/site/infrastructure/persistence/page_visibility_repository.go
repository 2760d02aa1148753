package persistence

import (
	"context"
	"errors"

	"github.com/atelier-dourado/backoffice/modules/site/domain/pagevisibility"
	"github.com/atelier-dourado/backoffice/pkg/composables"
	"github.com/jackc/pgx/v5"
)

const (
	pageVisibilitySelectQuery = `
		SELECT slug, is_visible, updated_at
		FROM page_visibility`

	pageVisibilityUpsertQuery = `
		INSERT INTO page_visibility (slug, is_visible, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (slug) DO UPDATE
		SET is_visible = EXCLUDED.is_visible, updated_at = NOW()
		RETURNING slug, is_visible, updated_at`
)

type PgPageVisibilityRepository struct{}

func NewPageVisibilityRepository() pagevisibility.Repository {
	return &PgPageVisibilityRepository{}
}

func (r *PgPageVisibilityRepository) GetAll(ctx context.Context) ([]*pagevisibility.Page, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, pageVisibilitySelectQuery+` ORDER BY slug`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*pagevisibility.Page
	for rows.Next() {
		var page pagevisibility.Page
		if err := rows.Scan(&page.Slug, &page.IsVisible, &page.UpdatedAt); err != nil {
			return nil, err
		}
		pages = append(pages, &page)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return pages, nil
}

func (r *PgPageVisibilityRepository) GetBySlug(ctx context.Context, slug string) (*pagevisibility.Page, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	var page pagevisibility.Page
	err = tx.QueryRow(ctx, pageVisibilitySelectQuery+` WHERE slug = $1`, slug).
		Scan(&page.Slug, &page.IsVisible, &page.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, pagevisibility.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *PgPageVisibilityRepository) Upsert(ctx context.Context, page *pagevisibility.Page) (*pagevisibility.Page, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	var saved pagevisibility.Page
	err = tx.QueryRow(ctx, pageVisibilityUpsertQuery, page.Slug, page.IsVisible).
		Scan(&saved.Slug, &saved.IsVisible, &saved.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}
