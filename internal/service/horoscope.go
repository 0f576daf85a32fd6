package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/astroline/astroline-server/internal/logger"
	"github.com/astroline/astroline-server/internal/model"
)

// Horoscope exposes content publishing and lookup.
type Horoscope struct {
	horoscopeStore model.HoroscopeStore
	logger         *logger.Logger
}

func NewHoroscope(horoscopeStore model.HoroscopeStore, logger *logger.Logger) *Horoscope {
	return &Horoscope{
		horoscopeStore: horoscopeStore,
		logger:         logger,
	}
}

// Publish stores a new day's content for a sign.
func (h *Horoscope) Publish(ctx context.Context, params model.CreateHoroscopeParams) (model.Horoscope, error) {
	if !params.Sign.Valid() {
		return model.Horoscope{}, fmt.Errorf("invalid zodiac sign %q", params.Sign)
	}
	if params.Content == "" {
		return model.Horoscope{}, fmt.Errorf("horoscope content is empty")
	}

	horoscope, err := h.horoscopeStore.Create(ctx, params)
	if err != nil {
		if errors.Is(err, model.ErrHoroscopeExists) {
			h.logger.Info("Horoscope service: already published",
				"sign", params.Sign,
				"for_date", model.DateOnly(params.ForDate))
			return model.Horoscope{}, model.ErrHoroscopeExists
		}
		h.logger.Error("Horoscope service: failed to publish",
			"sign", params.Sign,
			"for_date", model.DateOnly(params.ForDate),
			"error", err.Error())
		return model.Horoscope{}, fmt.Errorf("failed to publish horoscope: %w", err)
	}

	h.logger.Info("Horoscope service: published",
		"sign", horoscope.Sign,
		"for_date", horoscope.ForDate,
		"horoscope_id", horoscope.ID)

	return horoscope, nil
}

func (h *Horoscope) GetByID(ctx context.Context, id int64) (model.Horoscope, error) {
	return h.horoscopeStore.GetByID(ctx, id)
}

func (h *Horoscope) GetBySignAndDate(ctx context.Context, sign model.ZodiacSign, date time.Time) (model.Horoscope, error) {
	if !sign.Valid() {
		return model.Horoscope{}, fmt.Errorf("invalid zodiac sign %q", sign)
	}
	return h.horoscopeStore.GetBySignAndDate(ctx, sign, date)
}

// GetToday returns the current day's content for a sign.
func (h *Horoscope) GetToday(ctx context.Context, sign model.ZodiacSign) (model.Horoscope, error) {
	return h.GetBySignAndDate(ctx, sign, time.Now())
}
