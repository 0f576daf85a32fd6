package model

import "errors"

var (
	// ErrNotFound signals that no record matched the lookup. It is an
	// absence marker, not a failure.
	ErrNotFound = errors.New("not found")
	// ErrEmailTaken signals a uniqueness conflict on the user email.
	ErrEmailTaken = errors.New("email already taken")
	// ErrHoroscopeExists signals that content for the (sign, date) pair
	// is already published.
	ErrHoroscopeExists = errors.New("horoscope already exists for sign and date")
	// ErrInvalidCredentials signals a failed email/password check.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrSessionExpired signals an expired but still stored session.
	ErrSessionExpired = errors.New("session expired")
)
