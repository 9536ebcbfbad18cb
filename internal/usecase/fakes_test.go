//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"peershare/internal/domain/booking"
	"peershare/internal/domain/comment"
	"peershare/internal/domain/item"
	"peershare/internal/domain/request"
	"peershare/internal/domain/user"
	"peershare/internal/infra"
	"peershare/internal/usecase"
)

// In-memory repository fakes. They mirror the classification contract of
// the real pgx repositories: misses come back as NOT_FOUND repository
// errors, unique email conflicts as DUPLICATE_KEY.

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(msg, errors.New("no rows in result set"), infra.KindNotFound)
}

func duplicateErr(msg string) error {
	return infra.WrapRepoErr(msg, errors.New("duplicate key value"), infra.KindDuplicateKey)
}

type fakeUserRepo struct {
	users  map[int64]*user.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*user.User{}}
}

func (r *fakeUserRepo) add(name, email string) *user.User {
	r.nextID++
	u := user.Reconstruct(r.nextID, name, email)
	r.users[u.ID] = u
	return u
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) (int64, error) {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return 0, duplicateErr("insert user")
		}
	}
	r.nextID++
	stored := *u
	stored.ID = r.nextID
	r.users[stored.ID] = &stored
	return stored.ID, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *user.User) error {
	for _, existing := range r.users {
		if existing.ID != u.ID && existing.Email == u.Email {
			return duplicateErr("update user")
		}
	}
	if _, ok := r.users[u.ID]; !ok {
		return notFoundErr("update user")
	}
	stored := *u
	r.users[u.ID] = &stored
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return notFoundErr("delete user")
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id int64) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, notFoundErr("find user")
	}
	return u, nil
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]*user.User, error) {
	out := make([]*user.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeItemRepo struct {
	items  map[int64]*item.Item
	nextID int64
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: map[int64]*item.Item{}}
}

func (r *fakeItemRepo) add(ownerID int64, name string, available bool) *item.Item {
	r.nextID++
	i := item.Reconstruct(r.nextID, ownerID, name, name+" description", available, nil)
	r.items[i.ID] = i
	return i
}

func (r *fakeItemRepo) Create(_ context.Context, i *item.Item) (int64, error) {
	r.nextID++
	stored := *i
	stored.ID = r.nextID
	r.items[stored.ID] = &stored
	return stored.ID, nil
}

func (r *fakeItemRepo) Update(_ context.Context, i *item.Item) error {
	if _, ok := r.items[i.ID]; !ok {
		return notFoundErr("update item")
	}
	stored := *i
	r.items[i.ID] = &stored
	return nil
}

func (r *fakeItemRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return notFoundErr("delete item")
	}
	delete(r.items, id)
	return nil
}

func (r *fakeItemRepo) FindByID(_ context.Context, id int64) (*item.Item, error) {
	i, ok := r.items[id]
	if !ok {
		return nil, notFoundErr("find item")
	}
	return i, nil
}

func (r *fakeItemRepo) FindByOwner(_ context.Context, ownerID int64, limit, offset int32) ([]*item.Item, error) {
	var out []*item.Item
	for _, i := range r.items {
		if i.OwnerID == ownerID {
			out = append(out, i)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return window(out, limit, offset), nil
}

func (r *fakeItemRepo) SearchAvailable(_ context.Context, text string, limit, offset int32) ([]*item.Item, error) {
	var out []*item.Item
	for _, i := range r.items {
		if i.Available && containsFold(i.Name+" "+i.Description, text) {
			out = append(out, i)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return window(out, limit, offset), nil
}

func (r *fakeItemRepo) FindByRequestIDs(_ context.Context, requestIDs []int64) ([]*item.Item, error) {
	wanted := map[int64]bool{}
	for _, id := range requestIDs {
		wanted[id] = true
	}
	var out []*item.Item
	for _, i := range r.items {
		if i.RequestID != nil && wanted[*i.RequestID] {
			out = append(out, i)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeBookingRepo struct {
	bookings map[int64]*booking.Booking
	items    *fakeItemRepo
	nextID   int64
}

func newFakeBookingRepo(items *fakeItemRepo) *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[int64]*booking.Booking{}, items: items}
}

func (r *fakeBookingRepo) add(itemID, bookerID int64, start, end time.Time, status booking.Status) *booking.Booking {
	r.nextID++
	b := booking.Reconstruct(r.nextID, itemID, bookerID, start, end, status)
	r.bookings[b.ID] = b
	return b
}

func (r *fakeBookingRepo) Create(_ context.Context, b *booking.Booking) (int64, error) {
	r.nextID++
	stored := *b
	stored.ID = r.nextID
	r.bookings[stored.ID] = &stored
	return stored.ID, nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status booking.Status) error {
	b, ok := r.bookings[id]
	if !ok {
		return notFoundErr("update booking status")
	}
	b.Status = status
	return nil
}

func (r *fakeBookingRepo) FindByID(_ context.Context, id int64) (*usecase.BookingView, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, notFoundErr("find booking")
	}
	return r.view(b), nil
}

func (r *fakeBookingRepo) ListForBooker(_ context.Context, bookerID int64, crit booking.Criteria, limit, offset int32) ([]*usecase.BookingView, error) {
	return r.list(func(b *booking.Booking) bool { return b.BookerID == bookerID }, crit, limit, offset), nil
}

func (r *fakeBookingRepo) ListForOwner(_ context.Context, ownerID int64, crit booking.Criteria, limit, offset int32) ([]*usecase.BookingView, error) {
	return r.list(func(b *booking.Booking) bool {
		i, ok := r.items.items[b.ItemID]
		return ok && i.OwnerID == ownerID
	}, crit, limit, offset), nil
}

func (r *fakeBookingRepo) LastForItem(_ context.Context, itemID int64, asOf time.Time) (*booking.Summary, error) {
	var best *booking.Booking
	for _, b := range r.bookings {
		if b.ItemID != itemID || b.Status != booking.StatusApproved || b.Start.After(asOf) {
			continue
		}
		if best == nil || b.Start.After(best.Start) {
			best = b
		}
	}
	return summary(best), nil
}

func (r *fakeBookingRepo) NextForItem(_ context.Context, itemID int64, asOf time.Time) (*booking.Summary, error) {
	var best *booking.Booking
	for _, b := range r.bookings {
		if b.ItemID != itemID || b.Status != booking.StatusApproved || b.Start.Before(asOf) {
			continue
		}
		if best == nil || b.Start.Before(best.Start) {
			best = b
		}
	}
	return summary(best), nil
}

func (r *fakeBookingRepo) HasFinishedBooking(_ context.Context, bookerID, itemID int64, asOf time.Time) (bool, error) {
	for _, b := range r.bookings {
		if b.BookerID == bookerID && b.ItemID == itemID &&
			b.Status == booking.StatusApproved && b.End.Before(asOf) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeBookingRepo) list(subject func(*booking.Booking) bool, crit booking.Criteria, limit, offset int32) []*usecase.BookingView {
	var matched []*booking.Booking
	for _, b := range r.bookings {
		if subject(b) && crit.Matches(b) {
			matched = append(matched, b)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Start.After(matched[j].Start) })
	matched = window(matched, limit, offset)

	views := make([]*usecase.BookingView, 0, len(matched))
	for _, b := range matched {
		views = append(views, r.view(b))
	}
	return views
}

func (r *fakeBookingRepo) view(b *booking.Booking) *usecase.BookingView {
	view := &usecase.BookingView{
		ID:       b.ID,
		Start:    b.Start,
		End:      b.End,
		Status:   b.Status,
		ItemID:   b.ItemID,
		BookerID: b.BookerID,
	}
	if i, ok := r.items.items[b.ItemID]; ok {
		view.ItemName = i.Name
		view.ItemOwnerID = i.OwnerID
	}
	return view
}

func summary(b *booking.Booking) *booking.Summary {
	if b == nil {
		return nil
	}
	return &booking.Summary{ID: b.ID, BookerID: b.BookerID}
}

type fakeCommentRepo struct {
	comments map[int64]*comment.Comment
	users    *fakeUserRepo
	nextID   int64
}

func newFakeCommentRepo(users *fakeUserRepo) *fakeCommentRepo {
	return &fakeCommentRepo{comments: map[int64]*comment.Comment{}, users: users}
}

func (r *fakeCommentRepo) Create(_ context.Context, c *comment.Comment) (int64, error) {
	r.nextID++
	stored := *c
	stored.ID = r.nextID
	r.comments[stored.ID] = &stored
	return stored.ID, nil
}

func (r *fakeCommentRepo) FindByID(_ context.Context, id int64) (*usecase.CommentView, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, notFoundErr("find comment")
	}
	return r.view(c), nil
}

func (r *fakeCommentRepo) FindByItem(_ context.Context, itemID int64) ([]*usecase.CommentView, error) {
	out := []*usecase.CommentView{}
	for _, c := range r.comments {
		if c.ItemID == itemID {
			out = append(out, r.view(c))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeCommentRepo) view(c *comment.Comment) *usecase.CommentView {
	view := &usecase.CommentView{
		ID:       c.ID,
		Text:     c.Text,
		AuthorID: c.AuthorID,
		Created:  c.Created,
	}
	if u, ok := r.users.users[c.AuthorID]; ok {
		view.AuthorName = u.Name
	}
	return view
}

type fakeRequestRepo struct {
	requests map[int64]*request.Request
	nextID   int64
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: map[int64]*request.Request{}}
}

func (r *fakeRequestRepo) add(requesterID int64, description string, created time.Time) *request.Request {
	r.nextID++
	req := &request.Request{ID: r.nextID, Description: description, RequesterID: requesterID, Created: created}
	r.requests[req.ID] = req
	return req
}

func (r *fakeRequestRepo) Create(_ context.Context, req *request.Request) (int64, error) {
	r.nextID++
	stored := *req
	stored.ID = r.nextID
	r.requests[stored.ID] = &stored
	return stored.ID, nil
}

func (r *fakeRequestRepo) FindByID(_ context.Context, id int64) (*request.Request, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, notFoundErr("find request")
	}
	return req, nil
}

func (r *fakeRequestRepo) FindByRequester(_ context.Context, requesterID int64) ([]*request.Request, error) {
	var out []*request.Request
	for _, req := range r.requests {
		if req.RequesterID == requesterID {
			out = append(out, req)
		}
	}
	sortByCreatedDesc(out)
	return out, nil
}

func (r *fakeRequestRepo) FindOthers(_ context.Context, userID int64, limit, offset int32) ([]*request.Request, error) {
	var out []*request.Request
	for _, req := range r.requests {
		if req.RequesterID != userID {
			out = append(out, req)
		}
	}
	sortByCreatedDesc(out)
	return window(out, limit, offset), nil
}

func sortByCreatedDesc(reqs []*request.Request) {
	sort.Slice(reqs, func(i, j int) bool { return reqs[i].Created.After(reqs[j].Created) })
}

func window[T any](in []T, limit, offset int32) []T {
	if int(offset) >= len(in) {
		return nil
	}
	in = in[offset:]
	if int(limit) < len(in) {
		in = in[:limit]
	}
	return in
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
