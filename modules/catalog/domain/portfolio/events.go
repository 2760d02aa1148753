package portfolio

import "github.com/google/uuid"

type CreatedEvent struct {
	UserID string
	Result *Item
}

type UpdatedEvent struct {
	UserID string
	Result *Item
}

type DeletedEvent struct {
	UserID string
	ItemID uuid.UUID
	Title  string
}
