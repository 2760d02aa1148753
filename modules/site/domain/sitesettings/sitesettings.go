package sitesettings

import (
	"context"
	"time"

	"github.com/atelier-dourado/backoffice/pkg/serrors"
)

// Setting is one key/value pair of storefront configuration (contact
// details, social links, banner text).
type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

var ErrNotFound = serrors.NewNotFound("site setting")

type Repository interface {
	GetAll(ctx context.Context) ([]*Setting, error)
	GetByKey(ctx context.Context, key string) (*Setting, error)
	Upsert(ctx context.Context, setting *Setting) (*Setting, error)
}
