package usecase

import (
	"context"
	"time"

	"peershare/internal/domain/booking"
	"peershare/internal/domain/comment"
	"peershare/internal/domain/item"
	"peershare/internal/domain/request"
	"peershare/internal/domain/user"
)

// Repository ports. Implementations live in internal/infra/repository and
// classify failures into infra.RepositoryError kinds; use cases translate
// kinds into the sentinel errors of this package.

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (int64, error)
	Update(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*user.User, error)
	FindAll(ctx context.Context) ([]*user.User, error)
}

type ItemRepository interface {
	Create(ctx context.Context, i *item.Item) (int64, error)
	Update(ctx context.Context, i *item.Item) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*item.Item, error)
	FindByOwner(ctx context.Context, ownerID int64, limit, offset int32) ([]*item.Item, error)
	SearchAvailable(ctx context.Context, text string, limit, offset int32) ([]*item.Item, error)
	FindByRequestIDs(ctx context.Context, requestIDs []int64) ([]*item.Item, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status booking.Status) error
	FindByID(ctx context.Context, id int64) (*BookingView, error)
	// ListForBooker and ListForOwner evaluate one generic query shaped by
	// the criteria, ordered by start descending.
	ListForBooker(ctx context.Context, bookerID int64, crit booking.Criteria, limit, offset int32) ([]*BookingView, error)
	ListForOwner(ctx context.Context, ownerID int64, crit booking.Criteria, limit, offset int32) ([]*BookingView, error)
	// LastForItem returns the APPROVED booking with the latest start at or
	// before asOf; NextForItem the earliest start at or after asOf. Both
	// return nil when no such booking exists.
	LastForItem(ctx context.Context, itemID int64, asOf time.Time) (*booking.Summary, error)
	NextForItem(ctx context.Context, itemID int64, asOf time.Time) (*booking.Summary, error)
	// HasFinishedBooking reports whether the user has an APPROVED booking
	// on the item that ended before asOf.
	HasFinishedBooking(ctx context.Context, bookerID, itemID int64, asOf time.Time) (bool, error)
}

type CommentRepository interface {
	Create(ctx context.Context, c *comment.Comment) (int64, error)
	FindByID(ctx context.Context, id int64) (*CommentView, error)
	FindByItem(ctx context.Context, itemID int64) ([]*CommentView, error)
}

type RequestRepository interface {
	Create(ctx context.Context, r *request.Request) (int64, error)
	FindByID(ctx context.Context, id int64) (*request.Request, error)
	FindByRequester(ctx context.Context, requesterID int64) ([]*request.Request, error)
	FindOthers(ctx context.Context, userID int64, limit, offset int32) ([]*request.Request, error)
}
