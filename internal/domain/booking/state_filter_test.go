//go:build unit

package booking_test

import (
	"testing"
	"time"

	"peershare/internal/domain/booking"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStateFilter(t *testing.T) {
	cases := []struct {
		raw    string
		expect booking.StateFilter
		errIs  error
	}{
		{raw: "ALL", expect: booking.FilterAll},
		{raw: "all", expect: booking.FilterAll},
		{raw: "Current", expect: booking.FilterCurrent},
		{raw: "past", expect: booking.FilterPast},
		{raw: "FUTURE", expect: booking.FilterFuture},
		{raw: "waiting", expect: booking.FilterWaiting},
		{raw: "rejected", expect: booking.FilterRejected},
		{raw: "APPROVED", errIs: booking.ErrUnknownState},
		{raw: "bogus", errIs: booking.ErrUnknownState},
		{raw: "", errIs: booking.ErrUnknownState},
	}

	for _, tc := range cases {
		t.Run("parse "+tc.raw, func(t *testing.T) {
			f, err := booking.ParseStateFilter(tc.raw)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expect, f)
		})
	}
}

func TestCriteriaMapping(t *testing.T) {
	waiting := booking.StatusWaiting
	rejected := booking.StatusRejected

	cases := []struct {
		filter booking.StateFilter
		expect booking.Criteria
	}{
		{filter: booking.FilterAll, expect: booking.Criteria{}},
		{filter: booking.FilterCurrent, expect: booking.Criteria{StartAtOrBefore: &now, EndAfter: &now}},
		{filter: booking.FilterPast, expect: booking.Criteria{EndBefore: &now}},
		{filter: booking.FilterFuture, expect: booking.Criteria{StartAfter: &now}},
		{filter: booking.FilterWaiting, expect: booking.Criteria{Status: &waiting}},
		{filter: booking.FilterRejected, expect: booking.Criteria{Status: &rejected}},
	}

	for _, tc := range cases {
		t.Run(string(tc.filter), func(t *testing.T) {
			got := tc.filter.Criteria(now)
			if diff := cmp.Diff(tc.expect, got); diff != "" {
				t.Errorf("criteria mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCriteria(t *testing.T) {
	mk := func(start, end time.Time, status booking.Status) *booking.Booking {
		return booking.Reconstruct(1, 1, 1, start, end, status)
	}

	current := mk(now.Add(-time.Hour), now.Add(time.Hour), booking.StatusApproved)
	past := mk(now.Add(-3*time.Hour), now.Add(-2*time.Hour), booking.StatusApproved)
	future := mk(now.Add(2*time.Hour), now.Add(3*time.Hour), booking.StatusApproved)
	waiting := mk(now.Add(2*time.Hour), now.Add(3*time.Hour), booking.StatusWaiting)
	rejected := mk(now.Add(2*time.Hour), now.Add(3*time.Hour), booking.StatusRejected)

	all := []*booking.Booking{current, past, future, waiting, rejected}

	matching := func(f booking.StateFilter) []*booking.Booking {
		crit := f.Criteria(now)
		var out []*booking.Booking
		for _, b := range all {
			if crit.Matches(b) {
				out = append(out, b)
			}
		}
		return out
	}

	t.Run("ALL matches everything", func(t *testing.T) {
		assert.Len(t, matching(booking.FilterAll), len(all))
	})

	t.Run("CURRENT spans now", func(t *testing.T) {
		assert.Equal(t, []*booking.Booking{current}, matching(booking.FilterCurrent))
	})

	t.Run("PAST ended before now", func(t *testing.T) {
		assert.Equal(t, []*booking.Booking{past}, matching(booking.FilterPast))
	})

	t.Run("FUTURE starts after now", func(t *testing.T) {
		assert.Equal(t, []*booking.Booking{future, waiting, rejected}, matching(booking.FilterFuture))
	})

	t.Run("WAITING matches by status regardless of time", func(t *testing.T) {
		assert.Equal(t, []*booking.Booking{waiting}, matching(booking.FilterWaiting))
	})

	t.Run("REJECTED matches by status regardless of time", func(t *testing.T) {
		assert.Equal(t, []*booking.Booking{rejected}, matching(booking.FilterRejected))
	})

	t.Run("booking starting exactly now is current, not future", func(t *testing.T) {
		edge := mk(now, now.Add(time.Hour), booking.StatusApproved)
		assert.True(t, booking.FilterCurrent.Criteria(now).Matches(edge))
		assert.False(t, booking.FilterFuture.Criteria(now).Matches(edge))
	})
}
