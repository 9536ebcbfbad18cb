package usecase

import (
	"context"

	"peershare/internal/domain/user"
	"peershare/internal/infra"
	"peershare/internal/pkg/errs"
)

type CreateUserInput struct {
	Name  string
	Email string
}

type UpdateUserInput struct {
	Name  *string
	Email *string
}

type UserUseCase interface {
	Create(ctx context.Context, in CreateUserInput) (*UserView, error)
	Update(ctx context.Context, userID int64, in UpdateUserInput) (*UserView, error)
	Delete(ctx context.Context, userID int64) error
	Get(ctx context.Context, userID int64) (*UserView, error)
	List(ctx context.Context) ([]*UserView, error)
}

type userUseCaseImpl struct {
	users UserRepository
}

func NewUserUseCase(users UserRepository) UserUseCase {
	return &userUseCaseImpl{users: users}
}

func (u *userUseCaseImpl) Create(ctx context.Context, in CreateUserInput) (*UserView, error) {
	usr, err := user.New(in.Name, in.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	id, err := u.users.Create(ctx, usr)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	usr.ID = id
	return toUserView(usr), nil
}

func (u *userUseCaseImpl) Update(ctx context.Context, userID int64, in UpdateUserInput) (*UserView, error) {
	usr, err := u.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := usr.Patch(in.Name, in.Email); err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	if err := u.users.Update(ctx, usr); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return toUserView(usr), nil
}

func (u *userUseCaseImpl) Delete(ctx context.Context, userID int64) error {
	if _, err := u.findUser(ctx, userID); err != nil {
		return err
	}
	if err := u.users.Delete(ctx, userID); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *userUseCaseImpl) Get(ctx context.Context, userID int64) (*UserView, error) {
	usr, err := u.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toUserView(usr), nil
}

func (u *userUseCaseImpl) List(ctx context.Context) ([]*UserView, error) {
	users, err := u.users.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	views := make([]*UserView, 0, len(users))
	for _, usr := range users {
		views = append(views, toUserView(usr))
	}
	return views, nil
}

func (u *userUseCaseImpl) findUser(ctx context.Context, userID int64) (*user.User, error) {
	usr, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return usr, nil
}

func toUserView(usr *user.User) *UserView {
	return &UserView{
		ID:    usr.ID,
		Name:  usr.Name,
		Email: usr.Email,
	}
}
