package usecase

import (
	"context"
	"strings"

	"peershare/internal/domain/comment"
	"peershare/internal/domain/item"
	"peershare/internal/infra"
	"peershare/internal/pkg/clock"
	"peershare/internal/pkg/errs"
)

type CreateItemInput struct {
	Name        string
	Description string
	Available   bool
	RequestID   *int64
}

type UpdateItemInput struct {
	Name        *string
	Description *string
	Available   *bool
}

type ItemUseCase interface {
	Create(ctx context.Context, ownerID int64, in CreateItemInput) (*ItemView, error)
	Update(ctx context.Context, ownerID, itemID int64, in UpdateItemInput) (*ItemView, error)
	Delete(ctx context.Context, ownerID, itemID int64) error
	// Get decorates the item with comments; last/next booking summaries
	// are attached only when the requester owns the item.
	Get(ctx context.Context, requesterID, itemID int64) (*ItemDetailView, error)
	ListForOwner(ctx context.Context, ownerID int64, from, size int32) ([]*ItemDetailView, error)
	Search(ctx context.Context, text string, from, size int32) ([]*ItemView, error)
	AddComment(ctx context.Context, authorID, itemID int64, text string) (*CommentView, error)
}

type itemUseCaseImpl struct {
	items    ItemRepository
	users    UserRepository
	bookings BookingRepository
	comments CommentRepository
	requests RequestRepository
	clock    clock.Clock
}

func NewItemUseCase(
	items ItemRepository,
	users UserRepository,
	bookings BookingRepository,
	comments CommentRepository,
	requests RequestRepository,
	clk clock.Clock,
) ItemUseCase {
	return &itemUseCaseImpl{
		items:    items,
		users:    users,
		bookings: bookings,
		comments: comments,
		requests: requests,
		clock:    clk,
	}
}

func (u *itemUseCaseImpl) Create(ctx context.Context, ownerID int64, in CreateItemInput) (*ItemView, error) {
	if err := u.checkUserExists(ctx, ownerID); err != nil {
		return nil, err
	}
	if in.RequestID != nil {
		if _, err := u.requests.FindByID(ctx, *in.RequestID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrRequestNotFound
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	itm, err := item.New(ownerID, in.Name, in.Description, in.Available, in.RequestID)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	id, err := u.items.Create(ctx, itm)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	itm.ID = id
	return toItemView(itm), nil
}

func (u *itemUseCaseImpl) Update(ctx context.Context, ownerID, itemID int64, in UpdateItemInput) (*ItemView, error) {
	itm, err := u.findItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	// Unlike booking approval, item mutation surfaces a true forbidden.
	if !itm.IsOwnedBy(ownerID) {
		return nil, ErrNotItemOwner
	}

	if err := itm.Patch(in.Name, in.Description, in.Available); err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	if err := u.items.Update(ctx, itm); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return toItemView(itm), nil
}

func (u *itemUseCaseImpl) Delete(ctx context.Context, ownerID, itemID int64) error {
	itm, err := u.findItem(ctx, itemID)
	if err != nil {
		return err
	}
	if !itm.IsOwnedBy(ownerID) {
		return ErrNotItemOwner
	}
	if err := u.items.Delete(ctx, itemID); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *itemUseCaseImpl) Get(ctx context.Context, requesterID, itemID int64) (*ItemDetailView, error) {
	itm, err := u.findItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return u.decorate(ctx, requesterID, itm)
}

func (u *itemUseCaseImpl) ListForOwner(ctx context.Context, ownerID int64, from, size int32) ([]*ItemDetailView, error) {
	if err := u.checkUserExists(ctx, ownerID); err != nil {
		return nil, err
	}
	limit, offset := pageWindow(from, size)
	items, err := u.items.FindByOwner(ctx, ownerID, limit, offset)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	views := make([]*ItemDetailView, 0, len(items))
	for _, itm := range items {
		view, err := u.decorate(ctx, ownerID, itm)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (u *itemUseCaseImpl) Search(ctx context.Context, text string, from, size int32) ([]*ItemView, error) {
	if strings.TrimSpace(text) == "" {
		return []*ItemView{}, nil
	}
	limit, offset := pageWindow(from, size)
	items, err := u.items.SearchAvailable(ctx, text, limit, offset)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	views := make([]*ItemView, 0, len(items))
	for _, itm := range items {
		views = append(views, toItemView(itm))
	}
	return views, nil
}

func (u *itemUseCaseImpl) AddComment(ctx context.Context, authorID, itemID int64, text string) (*CommentView, error) {
	if err := u.checkUserExists(ctx, authorID); err != nil {
		return nil, err
	}
	if _, err := u.findItem(ctx, itemID); err != nil {
		return nil, err
	}

	now := u.clock.Now()
	rented, err := u.bookings.HasFinishedBooking(ctx, authorID, itemID, now)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !rented {
		return nil, ErrNotRented
	}

	cmt, err := comment.New(itemID, authorID, text, now)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	id, err := u.comments.Create(ctx, cmt)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := u.comments.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// decorate builds the detail view: comments for everyone, booking summaries
// for the owner only.
func (u *itemUseCaseImpl) decorate(ctx context.Context, requesterID int64, itm *item.Item) (*ItemDetailView, error) {
	comments, err := u.comments.FindByItem(ctx, itm.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view := &ItemDetailView{
		ItemView: *toItemView(itm),
		Comments: comments,
	}

	if !itm.IsOwnedBy(requesterID) {
		return view, nil
	}

	asOf := u.clock.Now()
	last, err := u.bookings.LastForItem(ctx, itm.ID, asOf)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	next, err := u.bookings.NextForItem(ctx, itm.ID, asOf)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	view.LastBooking = last
	view.NextBooking = next
	return view, nil
}

func (u *itemUseCaseImpl) findItem(ctx context.Context, itemID int64) (*item.Item, error) {
	itm, err := u.items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return itm, nil
}

func (u *itemUseCaseImpl) checkUserExists(ctx context.Context, userID int64) error {
	if _, err := u.users.FindByID(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func toItemView(itm *item.Item) *ItemView {
	return &ItemView{
		ID:          itm.ID,
		Name:        itm.Name,
		Description: itm.Description,
		Available:   itm.Available,
		OwnerID:     itm.OwnerID,
		RequestID:   itm.RequestID,
	}
}
