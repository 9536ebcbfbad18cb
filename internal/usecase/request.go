package usecase

import (
	"context"

	"peershare/internal/domain/request"
	"peershare/internal/infra"
	"peershare/internal/pkg/clock"
	"peershare/internal/pkg/errs"
)

type RequestUseCase interface {
	Create(ctx context.Context, requesterID int64, description string) (*RequestView, error)
	// ListOwn returns the requester's own requests, newest first, each
	// carrying the items created in answer to it.
	ListOwn(ctx context.Context, requesterID int64) ([]*RequestView, error)
	// ListOthers returns other users' requests, newest first, paginated.
	ListOthers(ctx context.Context, userID int64, from, size int32) ([]*RequestView, error)
	Get(ctx context.Context, userID, requestID int64) (*RequestView, error)
}

type requestUseCaseImpl struct {
	requests RequestRepository
	items    ItemRepository
	users    UserRepository
	clock    clock.Clock
}

func NewRequestUseCase(
	requests RequestRepository,
	items ItemRepository,
	users UserRepository,
	clk clock.Clock,
) RequestUseCase {
	return &requestUseCaseImpl{
		requests: requests,
		items:    items,
		users:    users,
		clock:    clk,
	}
}

func (u *requestUseCaseImpl) Create(ctx context.Context, requesterID int64, description string) (*RequestView, error) {
	if err := u.checkUserExists(ctx, requesterID); err != nil {
		return nil, err
	}

	req, err := request.New(requesterID, description, u.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	id, err := u.requests.Create(ctx, req)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	req.ID = id

	return &RequestView{
		ID:          req.ID,
		Description: req.Description,
		Created:     req.Created,
		Items:       []*ItemView{},
	}, nil
}

func (u *requestUseCaseImpl) ListOwn(ctx context.Context, requesterID int64) ([]*RequestView, error) {
	if err := u.checkUserExists(ctx, requesterID); err != nil {
		return nil, err
	}
	requests, err := u.requests.FindByRequester(ctx, requesterID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return u.attachItems(ctx, requests)
}

func (u *requestUseCaseImpl) ListOthers(ctx context.Context, userID int64, from, size int32) ([]*RequestView, error) {
	if err := u.checkUserExists(ctx, userID); err != nil {
		return nil, err
	}
	limit, offset := pageWindow(from, size)
	requests, err := u.requests.FindOthers(ctx, userID, limit, offset)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return u.attachItems(ctx, requests)
}

func (u *requestUseCaseImpl) Get(ctx context.Context, userID, requestID int64) (*RequestView, error) {
	if err := u.checkUserExists(ctx, userID); err != nil {
		return nil, err
	}
	req, err := u.requests.FindByID(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	views, err := u.attachItems(ctx, []*request.Request{req})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

// attachItems resolves, in one query, the items created for each request.
func (u *requestUseCaseImpl) attachItems(ctx context.Context, requests []*request.Request) ([]*RequestView, error) {
	ids := make([]int64, 0, len(requests))
	for _, req := range requests {
		ids = append(ids, req.ID)
	}

	itemsByRequest := map[int64][]*ItemView{}
	if len(ids) > 0 {
		items, err := u.items.FindByRequestIDs(ctx, ids)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		for _, itm := range items {
			if itm.RequestID == nil {
				continue
			}
			itemsByRequest[*itm.RequestID] = append(itemsByRequest[*itm.RequestID], toItemView(itm))
		}
	}

	views := make([]*RequestView, 0, len(requests))
	for _, req := range requests {
		items := itemsByRequest[req.ID]
		if items == nil {
			items = []*ItemView{}
		}
		views = append(views, &RequestView{
			ID:          req.ID,
			Description: req.Description,
			Created:     req.Created,
			Items:       items,
		})
	}
	return views, nil
}

func (u *requestUseCaseImpl) checkUserExists(ctx context.Context, userID int64) error {
	if _, err := u.users.FindByID(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
