package activitylog

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Action string

const (
	ActionCreate Action = "CREATE"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
)

// Entry is one append-only audit record: who changed what. Entries are
// never updated or deleted by the application.
type Entry struct {
	ID          uuid.UUID
	Action      Action
	Entity      string
	EntityID    string
	Description string
	UserID      string
	CreatedAt   time.Time
}

type FindParams struct {
	Entity string
	UserID string
	Limit  int
	Offset int
}

type Repository interface {
	Create(ctx context.Context, entry *Entry) error
	List(ctx context.Context, params *FindParams) ([]*Entry, error)
	Count(ctx context.Context, params *FindParams) (int64, error)
}
