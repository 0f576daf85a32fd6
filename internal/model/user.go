package model

import (
	"context"
	"time"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByID(ctx context.Context, id int64) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Create(ctx context.Context, params CreateUserParams) (User, error)
	Update(ctx context.Context, id int64, params UpdateUserParams) (User, error)
	GetByZodiacSign(ctx context.Context, sign ZodiacSign) ([]User, error)
	// GetForDailyDelivery returns the full candidate set for the daily
	// push. Eligibility policy (opt-in, phone presence) is applied by the
	// delivery service, not the store.
	GetForDailyDelivery(ctx context.Context) ([]User, error)
}

// User represents a stored subscriber.
type User struct {
	ID              int64
	Email           string
	PasswordHash    *string
	FirstName       *string
	LastName        *string
	Birthdate       *time.Time
	Phone           *string
	ZodiacSign      ZodiacSign
	SMSOptIn        bool
	NewsletterOptIn bool
	CreatedAt       time.Time
}

// CreateUserParams contains parameters to create a user. Nil optional
// fields stay null; nil opt-in flags take their defaults (SMS off,
// newsletter on). ID and CreatedAt are assigned by the store.
type CreateUserParams struct {
	Email           string
	ZodiacSign      ZodiacSign
	PasswordHash    *string
	FirstName       *string
	LastName        *string
	Birthdate       *time.Time
	Phone           *string
	SMSOptIn        *bool
	NewsletterOptIn *bool
}

// UpdateUserParams contains a partial update. Nil fields are left
// untouched. ID and CreatedAt cannot be changed.
type UpdateUserParams struct {
	Email           *string
	ZodiacSign      *ZodiacSign
	PasswordHash    *string
	FirstName       *string
	LastName        *string
	Birthdate       *time.Time
	Phone           *string
	SMSOptIn        *bool
	NewsletterOptIn *bool
}
