package service

import "errors"

var (
	// ErrPastSlot rejects bookings for slots already behind the clock.
	ErrPastSlot = errors.New("slot time already passed")
	// ErrCourtFull means the slot reached overall court capacity.
	ErrCourtFull = errors.New("court full for this slot")
	// ErrInstructorBusy means the slot reached instructor capacity.
	ErrInstructorBusy = errors.New("instructor fully booked for this slot")
	// ErrNotFound means no pending reservation matches the code.
	ErrNotFound = errors.New("pending reservation not found")
	// ErrInvalidCode means the check-in target is missing or in a
	// state that cannot be checked in.
	ErrInvalidCode = errors.New("invalid confirmation code")
	// ErrInvalidLogin covers both unknown email and bad password.
	ErrInvalidLogin = errors.New("invalid email or password")
	// ErrInvalidInput marks malformed dates, clock strings and kinds.
	ErrInvalidInput = errors.New("invalid input")
	// ErrEmailTaken means a staff account with that email exists.
	ErrEmailTaken = errors.New("email already registered")

	// ErrCodeTaken is returned by stores when the generated
	// confirmation code collides with an existing one. The booking
	// service retries it internally; it is never surfaced.
	ErrCodeTaken = errors.New("confirmation code taken")
)
