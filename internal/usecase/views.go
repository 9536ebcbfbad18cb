package usecase

import (
	"time"

	"peershare/internal/domain/booking"
)

// Read models returned to the handler layer.

type UserView struct {
	ID    int64
	Name  string
	Email string
}

type BookingView struct {
	ID          int64
	Start       time.Time
	End         time.Time
	Status      booking.Status
	ItemID      int64
	ItemName    string
	ItemOwnerID int64
	BookerID    int64
}

type CommentView struct {
	ID         int64
	Text       string
	AuthorID   int64
	AuthorName string
	Created    time.Time
}

type ItemView struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   *int64
}

// ItemDetailView decorates an item with its comments and, for the owner
// only, the last/next approved booking summaries.
type ItemDetailView struct {
	ItemView
	LastBooking *booking.Summary
	NextBooking *booking.Summary
	Comments    []*CommentView
}

type RequestView struct {
	ID          int64
	Description string
	Created     time.Time
	Items       []*ItemView
}
