package persistence

import (
	"context"

	"github.com/atelier-dourado/backoffice/modules/catalog/domain/product"
	"github.com/atelier-dourado/backoffice/modules/catalog/infrastructure/persistence/models"
	"github.com/atelier-dourado/backoffice/pkg/composables"
	"github.com/atelier-dourado/backoffice/pkg/repo"
	"github.com/google/uuid"
)

const (
	productFindQuery = `
		SELECT
			pr.id,
			pr.name,
			pr.description,
			pr.price,
			pr.category,
			pr.is_active,
			pr.is_ready_delivery,
			pr.main_image,
			pr.images,
			pr.stock,
			pr.weight,
			pr.material,
			pr.size,
			pr.code,
			pr.created_at,
			pr.updated_at
		FROM products pr`

	productInsertQuery = `
		INSERT INTO products (
			id, name, description, price, category, is_active,
			is_ready_delivery, main_image, images, stock, weight,
			material, size, code, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW()
		)`

	productUpdateQuery = `
		UPDATE products SET
			name = $2,
			description = $3,
			price = $4,
			category = $5,
			is_active = $6,
			is_ready_delivery = $7,
			main_image = $8,
			images = $9,
			stock = $10,
			weight = $11,
			material = $12,
			size = $13,
			code = $14,
			updated_at = NOW()
		WHERE id = $1`

	productDeleteQuery = `DELETE FROM products WHERE id = $1`
	// Portfolio items survive product deletion; the link is detached.
	productDetachPortfolioQuery = `UPDATE portfolio_items SET product_id = NULL WHERE product_id = $1`
)

type PgProductRepository struct{}

func NewProductRepository() product.Repository {
	return &PgProductRepository{}
}

func (r *PgProductRepository) queryProducts(ctx context.Context, query string, args ...any) ([]*product.Product, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*product.Product
	for rows.Next() {
		var row models.Product
		if err := rows.Scan(
			&row.ID,
			&row.Name,
			&row.Description,
			&row.Price,
			&row.Category,
			&row.IsActive,
			&row.IsReadyDelivery,
			&row.MainImage,
			&row.Images,
			&row.Stock,
			&row.Weight,
			&row.Material,
			&row.Size,
			&row.Code,
			&row.CreatedAt,
			&row.UpdatedAt,
		); err != nil {
			return nil, err
		}
		p, err := toDomainProduct(&row)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *PgProductRepository) GetAll(ctx context.Context, params *product.FindParams) ([]*product.Product, error) {
	query := productFindQuery
	where := ""
	if params != nil {
		switch {
		case params.OnlyActive && params.OnlyReadyDelivery:
			where = ` WHERE pr.is_active = true AND pr.is_ready_delivery = true`
		case params.OnlyActive:
			where = ` WHERE pr.is_active = true`
		case params.OnlyReadyDelivery:
			where = ` WHERE pr.is_ready_delivery = true`
		}
	}
	query += where + ` ORDER BY pr.is_active DESC, pr.created_at DESC`
	if params != nil {
		if clause := repo.FormatLimitOffset(params.Limit, params.Offset); clause != "" {
			query += " " + clause
		}
	}
	return r.queryProducts(ctx, query)
}

func (r *PgProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	products, err := r.queryProducts(ctx, productFindQuery+` WHERE pr.id = $1`, id.String())
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, product.ErrNotFound
	}
	return products[0], nil
}

func (r *PgProductRepository) GetByCode(ctx context.Context, code string) (*product.Product, error) {
	products, err := r.queryProducts(ctx, productFindQuery+` WHERE pr.code = $1`, code)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, product.ErrNotFound
	}
	return products[0], nil
}

func (r *PgProductRepository) Create(ctx context.Context, p *product.Product) (*product.Product, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	row, err := toDBProduct(p)
	if err != nil {
		return nil, err
	}
	if _, err := tx.Exec(
		ctx,
		productInsertQuery,
		row.ID,
		row.Name,
		row.Description,
		row.Price,
		row.Category,
		row.IsActive,
		row.IsReadyDelivery,
		row.MainImage,
		row.Images,
		row.Stock,
		row.Weight,
		row.Material,
		row.Size,
		row.Code,
	); err != nil {
		return nil, translatePgError(err, "product")
	}
	return r.GetByID(ctx, p.ID())
}

func (r *PgProductRepository) Update(ctx context.Context, p *product.Product) (*product.Product, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	row, err := toDBProduct(p)
	if err != nil {
		return nil, err
	}
	tag, err := tx.Exec(
		ctx,
		productUpdateQuery,
		row.ID,
		row.Name,
		row.Description,
		row.Price,
		row.Category,
		row.IsActive,
		row.IsReadyDelivery,
		row.MainImage,
		row.Images,
		row.Stock,
		row.Weight,
		row.Material,
		row.Size,
		row.Code,
	)
	if err != nil {
		return nil, translatePgError(err, "product")
	}
	if tag.RowsAffected() == 0 {
		return nil, product.ErrNotFound
	}
	return r.GetByID(ctx, p.ID())
}

func (r *PgProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return composables.InTx(ctx, func(txCtx context.Context) error {
		tx, err := composables.UseTx(txCtx)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(txCtx, productDetachPortfolioQuery, id.String()); err != nil {
			return translatePgError(err, "portfolio item")
		}
		tag, err := tx.Exec(txCtx, productDeleteQuery, id.String())
		if err != nil {
			return translateDeleteError(err, "product")
		}
		if tag.RowsAffected() == 0 {
			return product.ErrNotFound
		}
		return nil
	})
}
