package portfolio

import (
	"context"

	"github.com/atelier-dourado/backoffice/pkg/serrors"
	"github.com/google/uuid"
)

var ErrNotFound = serrors.NewNotFound("portfolio item")

type FindParams struct {
	OnlyPublished bool
	OnlyActive    bool
	Limit         int
	Offset        int
}

type Repository interface {
	GetAll(ctx context.Context, params *FindParams) ([]*Item, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Item, error)
	// CountFeatured computes the aggregate fresh at call time; callers
	// must not cache it across requests.
	CountFeatured(ctx context.Context) (int64, error)
	Create(ctx context.Context, item *Item) (*Item, error)
	Update(ctx context.Context, item *Item) (*Item, error)
	// Delete removes dependent favorites rows first, then the item, in
	// one transaction.
	Delete(ctx context.Context, id uuid.UUID) error
}
