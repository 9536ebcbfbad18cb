package booking

import (
	"errors"
	"time"
)

var (
	ErrInvalidTimeRange = errors.New("booking start must precede end and neither may be in the past")
	ErrNotWaiting       = errors.New("booking is not awaiting approval")
)

type Booking struct {
	ID       int64
	Start    time.Time
	End      time.Time
	ItemID   int64
	BookerID int64
	Status   Status
}

// Summary is the minimal owner-facing projection of a booking, attached to
// item views as lastBooking/nextBooking.
type Summary struct {
	ID       int64
	BookerID int64
}

// ValidateRange enforces the creation-time window invariant: strict
// start < end, with both bounds at or after now.
func ValidateRange(start, end, now time.Time) error {
	if !start.Before(end) {
		return ErrInvalidTimeRange
	}
	if start.Before(now) || end.Before(now) {
		return ErrInvalidTimeRange
	}
	return nil
}

// New creates a booking in WAITING status.
func New(itemID, bookerID int64, start, end, now time.Time) (*Booking, error) {
	if err := ValidateRange(start, end, now); err != nil {
		return nil, err
	}
	return &Booking{
		Start:    start,
		End:      end,
		ItemID:   itemID,
		BookerID: bookerID,
		Status:   StatusWaiting,
	}, nil
}

func Reconstruct(id, itemID, bookerID int64, start, end time.Time, status Status) *Booking {
	return &Booking{
		ID:       id,
		Start:    start,
		End:      end,
		ItemID:   itemID,
		BookerID: bookerID,
		Status:   status,
	}
}

// Approve resolves a WAITING booking. APPROVED and REJECTED are sinks;
// resolving an already-resolved booking fails and leaves it unchanged.
func (b *Booking) Approve(approved bool) error {
	if b.Status != StatusWaiting {
		return ErrNotWaiting
	}
	b.Status = Resolve(approved)
	return nil
}
