package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/astroline/astroline-server/internal/logger"
	"github.com/astroline/astroline-server/internal/model"
	"github.com/astroline/astroline-server/internal/notify"
)

// DeliveryReport summarizes one delivery run.
type DeliveryReport struct {
	Candidates int
	Sent       int
	Failed     int
	Skipped    int
}

// Delivery pushes daily content to subscribers and records the outcome.
type Delivery struct {
	userStore      model.UserStore
	horoscopeStore model.HoroscopeStore
	logStore       model.DeliveryLogStore
	sender         notify.Sender
	logger         *logger.Logger
}

func NewDelivery(
	userStore model.UserStore,
	horoscopeStore model.HoroscopeStore,
	logStore model.DeliveryLogStore,
	sender notify.Sender,
	logger *logger.Logger,
) *Delivery {
	return &Delivery{
		userStore:      userStore,
		horoscopeStore: horoscopeStore,
		logStore:       logStore,
		sender:         sender,
		logger:         logger,
	}
}

// Run delivers the given day's horoscope to every eligible subscriber.
// The store hands back the full candidate set; eligibility (SMS opt-in
// and a phone number on file) is decided here. Per-user failures are
// recorded and do not abort the run.
func (d *Delivery) Run(ctx context.Context, date time.Time) (DeliveryReport, error) {
	day := model.DateOnly(date)
	d.logger.Info("Delivery service: starting run",
		"for_date", day)

	users, err := d.userStore.GetForDailyDelivery(ctx)
	if err != nil {
		d.logger.Error("Delivery service: failed to load candidates",
			"error", err.Error())
		return DeliveryReport{}, fmt.Errorf("failed to load delivery candidates: %w", err)
	}

	report := DeliveryReport{Candidates: len(users)}
	for _, user := range users {
		if !user.SMSOptIn || user.Phone == nil {
			report.Skipped++
			continue
		}

		horoscope, err := d.horoscopeStore.GetBySignAndDate(ctx, user.ZodiacSign, day)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				d.logger.Warn("Delivery service: no content for sign",
					"sign", user.ZodiacSign,
					"for_date", day)
				report.Skipped++
				continue
			}
			d.logger.Error("Delivery service: failed to load horoscope",
				"sign", user.ZodiacSign,
				"for_date", day,
				"error", err.Error())
			return report, fmt.Errorf("failed to load horoscope: %w", err)
		}

		status := model.DeliverySent
		if err := d.sender.Send(ctx, notify.Message{Phone: *user.Phone, Body: horoscope.Content}); err != nil {
			d.logger.Error("Delivery service: send failed",
				"user_id", user.ID,
				"error", err.Error())
			status = model.DeliveryFailed
		}

		if _, err := d.logStore.Create(ctx, model.CreateDeliveryLogParams{
			UserID:      user.ID,
			HoroscopeID: horoscope.ID,
			Channel:     model.ChannelSMS,
			Status:      status,
		}); err != nil {
			d.logger.Error("Delivery service: failed to record delivery",
				"user_id", user.ID,
				"error", err.Error())
			return report, fmt.Errorf("failed to record delivery: %w", err)
		}

		if status == model.DeliverySent {
			report.Sent++
		} else {
			report.Failed++
		}
	}

	d.logger.Info("Delivery service: run complete",
		"for_date", day,
		"candidates", report.Candidates,
		"sent", report.Sent,
		"failed", report.Failed,
		"skipped", report.Skipped)

	return report, nil
}

// History returns a user's delivery log entries.
func (d *Delivery) History(ctx context.Context, userID int64) ([]model.DeliveryLog, error) {
	return d.logStore.GetByUserID(ctx, userID)
}
