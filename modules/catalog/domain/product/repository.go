package product

import (
	"context"

	"github.com/atelier-dourado/backoffice/pkg/serrors"
	"github.com/google/uuid"
)

var ErrNotFound = serrors.NewNotFound("product")

type FindParams struct {
	OnlyActive        bool
	OnlyReadyDelivery bool
	Limit             int
	Offset            int
}

type Repository interface {
	GetAll(ctx context.Context, params *FindParams) ([]*Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Product, error)
	GetByCode(ctx context.Context, code string) (*Product, error)
	Create(ctx context.Context, p *Product) (*Product, error)
	Update(ctx context.Context, p *Product) (*Product, error)
	// Delete detaches referencing portfolio items before removing the
	// product, in one transaction.
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreatedEvent struct {
	UserID string
	Result *Product
}

type UpdatedEvent struct {
	UserID string
	Result *Product
}

type DeletedEvent struct {
	UserID    string
	ProductID uuid.UUID
	Name      string
}
