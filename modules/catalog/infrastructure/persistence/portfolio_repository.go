package persistence

import (
	"context"

	"github.com/atelier-dourado/backoffice/modules/catalog/domain/portfolio"
	"github.com/atelier-dourado/backoffice/modules/catalog/infrastructure/persistence/models"
	"github.com/atelier-dourado/backoffice/pkg/composables"
	"github.com/atelier-dourado/backoffice/pkg/repo"
	"github.com/atelier-dourado/backoffice/pkg/serrors"
	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	portfolioFindQuery = `
		SELECT
			p.id,
			p.title,
			p.description,
			p.detailed_description,
			p.category,
			p.custom_category,
			p.main_image,
			p.images,
			p.is_active,
			p.is_featured,
			p.status,
			p.sort_order,
			p.specifications,
			p.seo_title,
			p.seo_description,
			p.keywords,
			p.related_projects,
			p.product_id,
			p.created_at,
			p.updated_at
		FROM portfolio_items p`

	portfolioCountFeaturedQuery = `SELECT COUNT(*) FROM portfolio_items WHERE is_featured = true`

	portfolioInsertQuery = `
		INSERT INTO portfolio_items (
			id, title, description, detailed_description, category,
			custom_category, main_image, images, is_active, is_featured,
			status, sort_order, specifications, seo_title, seo_description,
			keywords, related_projects, product_id, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, NOW(), NOW()
		)`

	portfolioUpdateQuery = `
		UPDATE portfolio_items SET
			title = $2,
			description = $3,
			detailed_description = $4,
			category = $5,
			custom_category = $6,
			main_image = $7,
			images = $8,
			is_active = $9,
			is_featured = $10,
			status = $11,
			sort_order = $12,
			specifications = $13,
			seo_title = $14,
			seo_description = $15,
			keywords = $16,
			related_projects = $17,
			product_id = $18,
			updated_at = NOW()
		WHERE id = $1`

	portfolioDeleteQuery          = `DELETE FROM portfolio_items WHERE id = $1`
	portfolioFavoritesDeleteQuery = `DELETE FROM favorites WHERE portfolio_item_id = $1`
)

type PgPortfolioRepository struct{}

func NewPortfolioRepository() portfolio.Repository {
	return &PgPortfolioRepository{}
}

// translatePgError converts constraint violations into the stable error
// taxonomy so callers never branch on raw SQLSTATE values. Transient
// errors pass through untouched for the retry executor to classify.
func translatePgError(err error, entity string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case "23505": // unique_violation
		return serrors.NewConflict(entity + " with the same unique value already exists")
	case "23503": // foreign_key_violation
		return serrors.NewError(serrors.CodeFKTargetMissing, "related record does not exist")
	default:
		return err
	}
}

// translateDeleteError is translatePgError for delete statements. A
// foreign key violation on a delete means the record is still
// referenced, a conflict retrying cannot resolve, not a missing target.
func translateDeleteError(err error, entity string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return serrors.NewConflict(entity + " is still referenced by other records")
	}
	return translatePgError(err, entity)
}

func (r *PgPortfolioRepository) queryItems(ctx context.Context, query string, args ...any) ([]*portfolio.Item, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*portfolio.Item
	for rows.Next() {
		var row models.PortfolioItem
		if err := rows.Scan(
			&row.ID,
			&row.Title,
			&row.Description,
			&row.DetailedDescription,
			&row.Category,
			&row.CustomCategory,
			&row.MainImage,
			&row.Images,
			&row.IsActive,
			&row.IsFeatured,
			&row.Status,
			&row.Order,
			&row.Specifications,
			&row.SEOTitle,
			&row.SEODescription,
			&row.Keywords,
			&row.RelatedProjects,
			&row.ProductID,
			&row.CreatedAt,
			&row.UpdatedAt,
		); err != nil {
			return nil, err
		}
		item, err := toDomainPortfolioItem(&row)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PgPortfolioRepository) GetAll(ctx context.Context, params *portfolio.FindParams) ([]*portfolio.Item, error) {
	query := portfolioFindQuery
	where := ""
	if params != nil {
		switch {
		case params.OnlyPublished && params.OnlyActive:
			where = ` WHERE p.status IN ('PUBLISHED', 'FEATURED') AND p.is_active = true`
		case params.OnlyPublished:
			where = ` WHERE p.status IN ('PUBLISHED', 'FEATURED')`
		case params.OnlyActive:
			where = ` WHERE p.is_active = true`
		}
	}
	query += where + ` ORDER BY p.sort_order ASC, p.created_at DESC`
	if params != nil {
		if clause := repo.FormatLimitOffset(params.Limit, params.Offset); clause != "" {
			query += " " + clause
		}
	}
	return r.queryItems(ctx, query)
}

func (r *PgPortfolioRepository) GetByID(ctx context.Context, id uuid.UUID) (*portfolio.Item, error) {
	items, err := r.queryItems(ctx, portfolioFindQuery+` WHERE p.id = $1`, id.String())
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, portfolio.ErrNotFound
	}
	return items[0], nil
}

func (r *PgPortfolioRepository) CountFeatured(ctx context.Context) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	var count int64
	if err := tx.QueryRow(ctx, portfolioCountFeaturedQuery).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PgPortfolioRepository) Create(ctx context.Context, item *portfolio.Item) (*portfolio.Item, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	row, err := toDBPortfolioItem(item)
	if err != nil {
		return nil, err
	}
	if _, err := tx.Exec(
		ctx,
		portfolioInsertQuery,
		row.ID,
		row.Title,
		row.Description,
		row.DetailedDescription,
		row.Category,
		row.CustomCategory,
		row.MainImage,
		row.Images,
		row.IsActive,
		row.IsFeatured,
		row.Status,
		row.Order,
		row.Specifications,
		row.SEOTitle,
		row.SEODescription,
		row.Keywords,
		row.RelatedProjects,
		row.ProductID,
	); err != nil {
		return nil, translatePgError(err, "portfolio item")
	}
	return r.GetByID(ctx, item.ID())
}

func (r *PgPortfolioRepository) Update(ctx context.Context, item *portfolio.Item) (*portfolio.Item, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	row, err := toDBPortfolioItem(item)
	if err != nil {
		return nil, err
	}
	tag, err := tx.Exec(
		ctx,
		portfolioUpdateQuery,
		row.ID,
		row.Title,
		row.Description,
		row.DetailedDescription,
		row.Category,
		row.CustomCategory,
		row.MainImage,
		row.Images,
		row.IsActive,
		row.IsFeatured,
		row.Status,
		row.Order,
		row.Specifications,
		row.SEOTitle,
		row.SEODescription,
		row.Keywords,
		row.RelatedProjects,
		row.ProductID,
	)
	if err != nil {
		return nil, translatePgError(err, "portfolio item")
	}
	if tag.RowsAffected() == 0 {
		return nil, portfolio.ErrNotFound
	}
	return r.GetByID(ctx, item.ID())
}

func (r *PgPortfolioRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return composables.InTx(ctx, func(txCtx context.Context) error {
		tx, err := composables.UseTx(txCtx)
		if err != nil {
			return err
		}
		// Dependents go first so the item delete cannot trip the FK.
		if _, err := tx.Exec(txCtx, portfolioFavoritesDeleteQuery, id.String()); err != nil {
			return translatePgError(err, "favorite")
		}
		tag, err := tx.Exec(txCtx, portfolioDeleteQuery, id.String())
		if err != nil {
			return translateDeleteError(err, "portfolio item")
		}
		if tag.RowsAffected() == 0 {
			return portfolio.ErrNotFound
		}
		return nil
	})
}
