package usecase

import (
	"peershare/internal/pkg/errs"
)

var (
	ErrUserNotFound    = errs.New("user not found")
	ErrItemNotFound    = errs.New("item not found")
	ErrBookingNotFound = errs.New("booking not found")
	ErrRequestNotFound = errs.New("item request not found")

	ErrItemUnavailable   = errs.New("item unavailable")
	ErrBookingNotWaiting = errs.New("booking not awaiting approval")
	ErrInvalidTimeRange  = errs.New("invalid booking time range")
	ErrNotRented         = errs.New("user has not rented item")
	ErrValidation        = errs.New("validation failed")

	ErrEmailTaken = errs.New("email already in use")

	// ErrNotItemOwner is a true access failure: item mutation by a
	// non-owner answers 403. Booking-side ownership failures are masked
	// as not-found instead (see PolicyConfig.MaskOwnershipAsNotFound).
	ErrNotItemOwner = errs.New("user is not the item owner")
	ErrAccessDenied = errs.New("access denied")

	ErrDatabaseOperationFailed = errs.New("database operation failed")
)
