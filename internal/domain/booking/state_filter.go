package booking

import (
	"errors"
	"strings"
	"time"
)

var ErrUnknownState = errors.New("unsupported state")

// StateFilter classifies bookings relative to the current instant and their
// status. Each filter maps to one Criteria; a single repository query
// evaluates all of them instead of six hand-written query methods.
type StateFilter string

const (
	FilterAll      StateFilter = "ALL"
	FilterCurrent  StateFilter = "CURRENT"
	FilterPast     StateFilter = "PAST"
	FilterFuture   StateFilter = "FUTURE"
	FilterWaiting  StateFilter = "WAITING"
	FilterRejected StateFilter = "REJECTED"
)

func ParseStateFilter(s string) (StateFilter, error) {
	switch StateFilter(strings.ToUpper(s)) {
	case FilterAll:
		return FilterAll, nil
	case FilterCurrent:
		return FilterCurrent, nil
	case FilterPast:
		return FilterPast, nil
	case FilterFuture:
		return FilterFuture, nil
	case FilterWaiting:
		return FilterWaiting, nil
	case FilterRejected:
		return FilterRejected, nil
	default:
		return "", ErrUnknownState
	}
}

// Criteria is the predicate a StateFilter evaluates to at a given instant.
// Nil bounds are unconstrained. Results are always ordered by start
// descending regardless of filter.
type Criteria struct {
	Status          *Status
	StartAtOrBefore *time.Time // start <= t
	StartAfter      *time.Time // start > t
	EndBefore       *time.Time // end < t
	EndAfter        *time.Time // end > t
}

func (f StateFilter) Criteria(now time.Time) Criteria {
	switch f {
	case FilterCurrent:
		// start <= now < end
		return Criteria{StartAtOrBefore: &now, EndAfter: &now}
	case FilterPast:
		return Criteria{EndBefore: &now}
	case FilterFuture:
		return Criteria{StartAfter: &now}
	case FilterWaiting:
		st := StatusWaiting
		return Criteria{Status: &st}
	case FilterRejected:
		st := StatusRejected
		return Criteria{Status: &st}
	default:
		return Criteria{}
	}
}

// Matches reports whether a booking satisfies the criteria. The repository
// translates Criteria to SQL; Matches keeps the semantics testable without
// a database.
func (c Criteria) Matches(b *Booking) bool {
	if c.Status != nil && b.Status != *c.Status {
		return false
	}
	if c.StartAtOrBefore != nil && b.Start.After(*c.StartAtOrBefore) {
		return false
	}
	if c.StartAfter != nil && !b.Start.After(*c.StartAfter) {
		return false
	}
	if c.EndBefore != nil && !b.End.Before(*c.EndBefore) {
		return false
	}
	if c.EndAfter != nil && !b.End.After(*c.EndAfter) {
		return false
	}
	return true
}
