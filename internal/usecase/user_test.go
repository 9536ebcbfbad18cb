//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"peershare/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserUC() (usecase.UserUseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return usecase.NewUserUseCase(repo), repo
}

func TestUserCreate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc, _ := newUserUC()
		view, err := uc.Create(context.Background(), usecase.CreateUserInput{Name: "alice", Email: "alice@example.com"})
		require.NoError(t, err)
		assert.NotZero(t, view.ID)
		assert.Equal(t, "alice", view.Name)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		uc, repo := newUserUC()
		repo.add("alice", "alice@example.com")

		_, err := uc.Create(context.Background(), usecase.CreateUserInput{Name: "impostor", Email: "alice@example.com"})
		assert.ErrorIs(t, err, usecase.ErrEmailTaken)
	})

	t.Run("invalid email", func(t *testing.T) {
		uc, _ := newUserUC()
		_, err := uc.Create(context.Background(), usecase.CreateUserInput{Name: "alice", Email: "not-an-email"})
		assert.ErrorIs(t, err, usecase.ErrValidation)
	})

	t.Run("blank name", func(t *testing.T) {
		uc, _ := newUserUC()
		_, err := uc.Create(context.Background(), usecase.CreateUserInput{Name: "  ", Email: "a@example.com"})
		assert.ErrorIs(t, err, usecase.ErrValidation)
	})
}

func TestUserUpdate(t *testing.T) {
	t.Run("partial patch keeps other fields", func(t *testing.T) {
		uc, repo := newUserUC()
		alice := repo.add("alice", "alice@example.com")

		name := "alicia"
		view, err := uc.Update(context.Background(), alice.ID, usecase.UpdateUserInput{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "alicia", view.Name)
		assert.Equal(t, "alice@example.com", view.Email)
	})

	t.Run("taking another user's email conflicts", func(t *testing.T) {
		uc, repo := newUserUC()
		repo.add("alice", "alice@example.com")
		bob := repo.add("bob", "bob@example.com")

		email := "alice@example.com"
		_, err := uc.Update(context.Background(), bob.ID, usecase.UpdateUserInput{Email: &email})
		assert.ErrorIs(t, err, usecase.ErrEmailTaken)
	})

	t.Run("missing user", func(t *testing.T) {
		uc, _ := newUserUC()
		name := "x"
		_, err := uc.Update(context.Background(), 999, usecase.UpdateUserInput{Name: &name})
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserGetDeleteList(t *testing.T) {
	t.Run("get missing user", func(t *testing.T) {
		uc, _ := newUserUC()
		_, err := uc.Get(context.Background(), 999)
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})

	t.Run("delete missing user", func(t *testing.T) {
		uc, _ := newUserUC()
		assert.ErrorIs(t, uc.Delete(context.Background(), 999), usecase.ErrUserNotFound)
	})

	t.Run("delete then get", func(t *testing.T) {
		uc, repo := newUserUC()
		alice := repo.add("alice", "alice@example.com")

		require.NoError(t, uc.Delete(context.Background(), alice.ID))
		_, err := uc.Get(context.Background(), alice.ID)
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})

	t.Run("list returns all users", func(t *testing.T) {
		uc, repo := newUserUC()
		repo.add("alice", "alice@example.com")
		repo.add("bob", "bob@example.com")

		views, err := uc.List(context.Background())
		require.NoError(t, err)
		assert.Len(t, views, 2)
	})
}
