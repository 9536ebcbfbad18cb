package comment

import (
	"errors"
	"strings"
	"time"
)

var ErrBlankText = errors.New("comment text must not be blank")

type Comment struct {
	ID       int64
	Text     string
	ItemID   int64
	AuthorID int64
	Created  time.Time
}

func New(itemID, authorID int64, text string, created time.Time) (*Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrBlankText
	}
	return &Comment{
		Text:     text,
		ItemID:   itemID,
		AuthorID: authorID,
		Created:  created,
	}, nil
}
