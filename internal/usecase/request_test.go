//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"peershare/internal/pkg/clock"
	"peershare/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type requestFixture struct {
	uc       usecase.RequestUseCase
	users    *fakeUserRepo
	items    *fakeItemRepo
	requests *fakeRequestRepo
	clock    *clock.MockClock
}

func newRequestFixture() *requestFixture {
	f := &requestFixture{
		users:    newFakeUserRepo(),
		items:    newFakeItemRepo(),
		requests: newFakeRequestRepo(),
		clock:    clock.NewMockClock(testNow),
	}
	f.uc = usecase.NewRequestUseCase(f.requests, f.items, f.users, f.clock)
	return f
}

func TestRequestCreate(t *testing.T) {
	t.Run("success with empty items", func(t *testing.T) {
		f := newRequestFixture()
		alice := f.users.add("alice", "alice@example.com")

		view, err := f.uc.Create(context.Background(), alice.ID, "need a drill")
		require.NoError(t, err)
		assert.NotZero(t, view.ID)
		assert.Equal(t, "need a drill", view.Description)
		assert.Equal(t, testNow, view.Created)
		assert.NotNil(t, view.Items)
		assert.Empty(t, view.Items)
	})

	t.Run("blank description", func(t *testing.T) {
		f := newRequestFixture()
		alice := f.users.add("alice", "alice@example.com")

		_, err := f.uc.Create(context.Background(), alice.ID, "  ")
		assert.ErrorIs(t, err, usecase.ErrValidation)
	})

	t.Run("unknown requester", func(t *testing.T) {
		f := newRequestFixture()
		_, err := f.uc.Create(context.Background(), 999, "need a drill")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestRequestListOwn(t *testing.T) {
	f := newRequestFixture()
	alice := f.users.add("alice", "alice@example.com")
	bob := f.users.add("bob", "bob@example.com")

	older := f.requests.add(alice.ID, "need a drill", testNow.Add(-2*time.Hour))
	newer := f.requests.add(alice.ID, "need a ladder", testNow.Add(-time.Hour))
	f.requests.add(bob.ID, "need a tent", testNow)

	// One item answers the older request.
	answer := f.items.add(bob.ID, "drill", true)
	answer.RequestID = &older.ID

	views, err := f.uc.ListOwn(context.Background(), alice.ID)
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, newer.ID, views[0].ID)
	assert.Empty(t, views[0].Items)
	assert.NotNil(t, views[0].Items)

	assert.Equal(t, older.ID, views[1].ID)
	require.Len(t, views[1].Items, 1)
	assert.Equal(t, answer.ID, views[1].Items[0].ID)
}

func TestRequestListOthers(t *testing.T) {
	f := newRequestFixture()
	alice := f.users.add("alice", "alice@example.com")
	bob := f.users.add("bob", "bob@example.com")

	f.requests.add(alice.ID, "need a drill", testNow.Add(-time.Hour))
	bobs := f.requests.add(bob.ID, "need a tent", testNow)

	views, err := f.uc.ListOthers(context.Background(), alice.ID, 0, 20)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, bobs.ID, views[0].ID)
}

func TestRequestGet(t *testing.T) {
	f := newRequestFixture()
	alice := f.users.add("alice", "alice@example.com")
	bob := f.users.add("bob", "bob@example.com")

	req := f.requests.add(alice.ID, "need a drill", testNow)

	t.Run("any user may inspect a request", func(t *testing.T) {
		view, err := f.uc.Get(context.Background(), bob.ID, req.ID)
		require.NoError(t, err)
		assert.Equal(t, req.ID, view.ID)
	})

	t.Run("missing request", func(t *testing.T) {
		_, err := f.uc.Get(context.Background(), alice.ID, 999)
		assert.ErrorIs(t, err, usecase.ErrRequestNotFound)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := f.uc.Get(context.Background(), 999, req.ID)
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}
