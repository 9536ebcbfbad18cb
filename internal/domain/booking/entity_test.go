//go:build unit

package booking_test

import (
	"testing"
	"time"

	"peershare/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestValidateRange(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		errIs error
	}{
		{
			name:  "valid future window",
			start: now.Add(time.Hour),
			end:   now.Add(2 * time.Hour),
		},
		{
			name:  "start at now",
			start: now,
			end:   now.Add(time.Hour),
		},
		{
			name:  "end before start",
			start: now.Add(2 * time.Hour),
			end:   now.Add(time.Hour),
			errIs: booking.ErrInvalidTimeRange,
		},
		{
			name:  "start equals end",
			start: now.Add(time.Hour),
			end:   now.Add(time.Hour),
			errIs: booking.ErrInvalidTimeRange,
		},
		{
			name:  "start in the past",
			start: now.Add(-time.Minute),
			end:   now.Add(time.Hour),
			errIs: booking.ErrInvalidTimeRange,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := booking.ValidateRange(tc.start, tc.end, now)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("starts waiting", func(t *testing.T) {
		b, err := booking.New(1, 2, now.Add(time.Hour), now.Add(2*time.Hour), now)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusWaiting, b.Status)
		assert.Equal(t, int64(1), b.ItemID)
		assert.Equal(t, int64(2), b.BookerID)
	})

	t.Run("rejects invalid window", func(t *testing.T) {
		_, err := booking.New(1, 2, now.Add(2*time.Hour), now.Add(time.Hour), now)
		assert.ErrorIs(t, err, booking.ErrInvalidTimeRange)
	})
}

func TestApprove(t *testing.T) {
	newWaiting := func() *booking.Booking {
		b, err := booking.New(1, 2, now.Add(time.Hour), now.Add(2*time.Hour), now)
		require.NoError(t, err)
		return b
	}

	t.Run("approve resolves to approved", func(t *testing.T) {
		b := newWaiting()
		require.NoError(t, b.Approve(true))
		assert.Equal(t, booking.StatusApproved, b.Status)
	})

	t.Run("reject resolves to rejected", func(t *testing.T) {
		b := newWaiting()
		require.NoError(t, b.Approve(false))
		assert.Equal(t, booking.StatusRejected, b.Status)
	})

	t.Run("resolved bookings are sinks", func(t *testing.T) {
		b := newWaiting()
		require.NoError(t, b.Approve(true))

		err := b.Approve(false)
		assert.ErrorIs(t, err, booking.ErrNotWaiting)
		assert.Equal(t, booking.StatusApproved, b.Status)
	})
}
