package model

import (
	"context"
	"time"
)

// Delivery channels and outcomes recorded on a log entry.
const (
	ChannelSMS = "sms"

	DeliverySent   = "sent"
	DeliveryFailed = "failed"
)

// DeliveryLogStore defines persistence operations for delivery logs.
type DeliveryLogStore interface {
	Create(ctx context.Context, params CreateDeliveryLogParams) (DeliveryLog, error)
	GetByUserID(ctx context.Context, userID int64) ([]DeliveryLog, error)
}

// DeliveryLog records one attempted content delivery to one user.
// Entries are append-only; nothing updates or deletes them.
type DeliveryLog struct {
	ID          int64
	UserID      int64
	HoroscopeID int64
	Channel     string
	Status      string
	CreatedAt   time.Time
}

// CreateDeliveryLogParams contains parameters to create a delivery log.
type CreateDeliveryLogParams struct {
	UserID      int64
	HoroscopeID int64
	Channel     string
	Status      string
}
