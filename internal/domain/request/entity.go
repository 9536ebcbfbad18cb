package request

import (
	"errors"
	"strings"
	"time"
)

var ErrBlankDescription = errors.New("request description must not be blank")

// Request is a wish advertised by a user. It is never updated after
// creation; items may reference the request they fulfill.
type Request struct {
	ID          int64
	Description string
	RequesterID int64
	Created     time.Time
}

func New(requesterID int64, description string, created time.Time) (*Request, error) {
	if strings.TrimSpace(description) == "" {
		return nil, ErrBlankDescription
	}
	return &Request{
		Description: description,
		RequesterID: requesterID,
		Created:     created,
	}, nil
}
