package pagevisibility

import (
	"context"
	"time"

	"github.com/atelier-dourado/backoffice/pkg/serrors"
)

// Page is a visibility switch for one storefront page. Unknown pages
// default to visible so a missing row can never hide the storefront.
type Page struct {
	Slug      string
	IsVisible bool
	UpdatedAt time.Time
}

var ErrNotFound = serrors.NewNotFound("page visibility entry")

type Repository interface {
	GetAll(ctx context.Context) ([]*Page, error)
	GetBySlug(ctx context.Context, slug string) (*Page, error)
	Upsert(ctx context.Context, page *Page) (*Page, error)
}
