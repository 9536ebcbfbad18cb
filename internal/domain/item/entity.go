package item

import (
	"errors"
	"strings"
)

var (
	ErrBlankName        = errors.New("item name must not be blank")
	ErrBlankDescription = errors.New("item description must not be blank")
)

// Item is a shareable possession. RequestID links the item request it was
// created in answer to, if any. References are id-based; the owning user is
// resolved through the store at the point of use.
type Item struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   *int64
}

func New(ownerID int64, name, description string, available bool, requestID *int64) (*Item, error) {
	i := &Item{
		Name:        name,
		Description: description,
		Available:   available,
		OwnerID:     ownerID,
		RequestID:   requestID,
	}
	if err := i.Validate(); err != nil {
		return nil, err
	}
	return i, nil
}

func Reconstruct(id, ownerID int64, name, description string, available bool, requestID *int64) *Item {
	return &Item{
		ID:          id,
		Name:        name,
		Description: description,
		Available:   available,
		OwnerID:     ownerID,
		RequestID:   requestID,
	}
}

func (i *Item) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return ErrBlankName
	}
	if strings.TrimSpace(i.Description) == "" {
		return ErrBlankDescription
	}
	return nil
}

func (i *Item) IsOwnedBy(userID int64) bool {
	return i.OwnerID == userID
}

// Patch applies a partial update. Nil fields keep their current value.
func (i *Item) Patch(name, description *string, available *bool) error {
	if name != nil {
		i.Name = *name
	}
	if description != nil {
		i.Description = *description
	}
	if available != nil {
		i.Available = *available
	}
	return i.Validate()
}
