package user

import (
	"errors"
	"strings"
)

var (
	ErrBlankName    = errors.New("name must not be blank")
	ErrInvalidEmail = errors.New("invalid email address")
)

type User struct {
	ID    int64
	Name  string
	Email string
}

func New(name, email string) (*User, error) {
	u := &User{Name: name, Email: email}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

func Reconstruct(id int64, name, email string) *User {
	return &User{ID: id, Name: name, Email: email}
}

func (u *User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return ErrBlankName
	}
	if !strings.Contains(u.Email, "@") {
		return ErrInvalidEmail
	}
	return nil
}

// Patch applies a partial update. Nil fields keep their current value.
func (u *User) Patch(name, email *string) error {
	if name != nil {
		u.Name = *name
	}
	if email != nil {
		u.Email = *email
	}
	return u.Validate()
}
