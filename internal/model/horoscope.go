package model

import (
	"context"
	"time"
)

// HoroscopeStore defines persistence operations for horoscopes.
type HoroscopeStore interface {
	Create(ctx context.Context, params CreateHoroscopeParams) (Horoscope, error)
	GetByID(ctx context.Context, id int64) (Horoscope, error)
	GetBySignAndDate(ctx context.Context, sign ZodiacSign, date time.Time) (Horoscope, error)
}

// Horoscope represents one day's content for one sign. Records are
// immutable once created; there is at most one per (sign, date).
type Horoscope struct {
	ID        int64
	Sign      ZodiacSign
	ForDate   time.Time
	Content   string
	CreatedAt time.Time
}

// CreateHoroscopeParams contains parameters to create a horoscope.
type CreateHoroscopeParams struct {
	Sign    ZodiacSign
	ForDate time.Time
	Content string
}

// DateOnly truncates t to its UTC calendar day. Horoscope lookups key on
// the day, so both stores normalize ForDate through this before
// comparing or persisting.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
