package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astroline/astroline-server/internal/model"
	"github.com/astroline/astroline-server/internal/repository/memory"
	"github.com/astroline/astroline-server/internal/testutil"
)

func TestHoroscope_PublishAndGet(t *testing.T) {
	ctx := context.Background()
	svc := NewHoroscope(memory.NewHoroscopeRepository(memory.NewStore()), testutil.MakeNoopLogger())

	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	published, err := svc.Publish(ctx, model.CreateHoroscopeParams{
		Sign:    model.SignLeo,
		ForDate: date,
		Content: "A bold day.",
	})
	require.NoError(t, err)
	assert.NotZero(t, published.ID)

	got, err := svc.GetBySignAndDate(ctx, model.SignLeo, date)
	require.NoError(t, err)
	assert.Equal(t, published.ID, got.ID)

	byID, err := svc.GetByID(ctx, published.ID)
	require.NoError(t, err)
	assert.Equal(t, published, byID)

	_, err = svc.GetBySignAndDate(ctx, model.SignVirgo, date)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestHoroscope_PublishValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewHoroscope(memory.NewHoroscopeRepository(memory.NewStore()), testutil.MakeNoopLogger())

	_, err := svc.Publish(ctx, model.CreateHoroscopeParams{
		Sign:    "ophiuchus",
		ForDate: time.Now(),
		Content: "x",
	})
	require.Error(t, err)

	_, err = svc.Publish(ctx, model.CreateHoroscopeParams{
		Sign:    model.SignLeo,
		ForDate: time.Now(),
	})
	require.Error(t, err)
}

func TestHoroscope_PublishDuplicate(t *testing.T) {
	ctx := context.Background()
	svc := NewHoroscope(memory.NewHoroscopeRepository(memory.NewStore()), testutil.MakeNoopLogger())

	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.Publish(ctx, model.CreateHoroscopeParams{Sign: model.SignLeo, ForDate: date, Content: "first"})
	require.NoError(t, err)

	_, err = svc.Publish(ctx, model.CreateHoroscopeParams{Sign: model.SignLeo, ForDate: date, Content: "second"})
	assert.ErrorIs(t, err, model.ErrHoroscopeExists)
}

func TestHoroscope_GetBySignAndDateInvalidSign(t *testing.T) {
	ctx := context.Background()
	svc := NewHoroscope(memory.NewHoroscopeRepository(memory.NewStore()), testutil.MakeNoopLogger())

	_, err := svc.GetBySignAndDate(ctx, "dragon", time.Now())
	require.Error(t, err)
}

func TestHoroscope_GetToday(t *testing.T) {
	ctx := context.Background()
	svc := NewHoroscope(memory.NewHoroscopeRepository(memory.NewStore()), testutil.MakeNoopLogger())

	published, err := svc.Publish(ctx, model.CreateHoroscopeParams{
		Sign:    model.SignPisces,
		ForDate: time.Now(),
		Content: "Go with the current.",
	})
	require.NoError(t, err)

	got, err := svc.GetToday(ctx, model.SignPisces)
	require.NoError(t, err)
	assert.Equal(t, published.ID, got.ID)
}
