package usecase

import (
	"context"
	"time"

	"peershare/internal/domain/booking"
	"peershare/internal/infra"
	"peershare/internal/pkg/clock"
	"peershare/internal/pkg/config"
	"peershare/internal/pkg/errs"
)

type CreateBookingInput struct {
	ItemID int64
	Start  time.Time
	End    time.Time
}

// BookingUseCase is the booking engine: creation, the approval state
// machine, and the temporal/state classification queries for both the
// renter's and the owner's perspective.
type BookingUseCase interface {
	Create(ctx context.Context, bookerID int64, in CreateBookingInput) (*BookingView, error)
	Approve(ctx context.Context, ownerID, bookingID int64, approved bool) (*BookingView, error)
	Get(ctx context.Context, requesterID, bookingID int64) (*BookingView, error)
	ListForBooker(ctx context.Context, bookerID int64, filter booking.StateFilter, from, size int32) ([]*BookingView, error)
	ListForOwner(ctx context.Context, ownerID int64, filter booking.StateFilter, from, size int32) ([]*BookingView, error)
}

type bookingUseCaseImpl struct {
	bookings BookingRepository
	items    ItemRepository
	users    UserRepository
	clock    clock.Clock
	policy   config.PolicyConfig
}

func NewBookingUseCase(
	bookings BookingRepository,
	items ItemRepository,
	users UserRepository,
	clk clock.Clock,
	cfg config.Config,
) BookingUseCase {
	return &bookingUseCaseImpl{
		bookings: bookings,
		items:    items,
		users:    users,
		clock:    clk,
		policy:   cfg.Policy,
	}
}

func (u *bookingUseCaseImpl) Create(ctx context.Context, bookerID int64, in CreateBookingInput) (*BookingView, error) {
	now := u.clock.Now()
	if err := booking.ValidateRange(in.Start, in.End, now); err != nil {
		return nil, errs.Mark(err, ErrInvalidTimeRange)
	}

	if err := u.checkUserExists(ctx, bookerID); err != nil {
		return nil, err
	}

	itm, err := u.items.FindByID(ctx, in.ItemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !itm.Available {
		return nil, ErrItemUnavailable
	}
	// Owners cannot book their own items. Reported as not-found rather
	// than forbidden so the caller cannot probe ownership.
	if itm.IsOwnedBy(bookerID) {
		return nil, u.ownershipFailure(ErrItemNotFound)
	}

	bk, err := booking.New(in.ItemID, bookerID, in.Start, in.End, now)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTimeRange)
	}

	id, err := u.bookings.Create(ctx, bk)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return u.findView(ctx, id)
}

func (u *bookingUseCaseImpl) Approve(ctx context.Context, ownerID, bookingID int64, approved bool) (*BookingView, error) {
	if err := u.checkUserExists(ctx, ownerID); err != nil {
		return nil, err
	}

	view, err := u.findView(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if view.ItemOwnerID != ownerID {
		return nil, u.ownershipFailure(ErrBookingNotFound)
	}
	if view.Status != booking.StatusWaiting {
		return nil, ErrBookingNotWaiting
	}

	if err := u.bookings.UpdateStatus(ctx, bookingID, booking.Resolve(approved)); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return u.findView(ctx, bookingID)
}

func (u *bookingUseCaseImpl) Get(ctx context.Context, requesterID, bookingID int64) (*BookingView, error) {
	if err := u.checkUserExists(ctx, requesterID); err != nil {
		return nil, err
	}

	view, err := u.findView(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	// Visibility is restricted to the two parties of the booking.
	if requesterID != view.BookerID && requesterID != view.ItemOwnerID {
		return nil, ErrBookingNotFound
	}
	return view, nil
}

func (u *bookingUseCaseImpl) ListForBooker(ctx context.Context, bookerID int64, filter booking.StateFilter, from, size int32) ([]*BookingView, error) {
	if err := u.checkUserExists(ctx, bookerID); err != nil {
		return nil, err
	}
	crit := filter.Criteria(u.clock.Now())
	limit, offset := pageWindow(from, size)
	views, err := u.bookings.ListForBooker(ctx, bookerID, crit, limit, offset)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (u *bookingUseCaseImpl) ListForOwner(ctx context.Context, ownerID int64, filter booking.StateFilter, from, size int32) ([]*BookingView, error) {
	if err := u.checkUserExists(ctx, ownerID); err != nil {
		return nil, err
	}
	crit := filter.Criteria(u.clock.Now())
	limit, offset := pageWindow(from, size)
	views, err := u.bookings.ListForOwner(ctx, ownerID, crit, limit, offset)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return views, nil
}

// pageWindow maps from/size to page-aligned limit/offset: page index is
// from/size by integer division, page size is size.
func pageWindow(from, size int32) (limit, offset int32) {
	return size, (from / size) * size
}

// ownershipFailure applies the information-hiding policy: by default an
// ownership check failure masquerades as the given not-found error so the
// caller cannot learn that the resource exists.
func (u *bookingUseCaseImpl) ownershipFailure(masked error) error {
	if u.policy.MaskOwnershipAsNotFound {
		return masked
	}
	return ErrAccessDenied
}

func (u *bookingUseCaseImpl) findView(ctx context.Context, bookingID int64) (*BookingView, error) {
	view, err := u.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (u *bookingUseCaseImpl) checkUserExists(ctx context.Context, userID int64) error {
	if _, err := u.users.FindByID(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
