package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/astroline/astroline-server/internal/model"
)

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) GetByID(ctx context.Context, id int64) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *mockUserStore) Create(ctx context.Context, params model.CreateUserParams) (model.User, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *mockUserStore) Update(ctx context.Context, id int64, params model.UpdateUserParams) (model.User, error) {
	args := m.Called(ctx, id, params)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *mockUserStore) GetByZodiacSign(ctx context.Context, sign model.ZodiacSign) ([]model.User, error) {
	args := m.Called(ctx, sign)
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *mockUserStore) GetForDailyDelivery(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.User), args.Error(1)
}

type mockSessionStore struct {
	mock.Mock
}

func (m *mockSessionStore) Create(ctx context.Context, session model.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *mockSessionStore) GetByID(ctx context.Context, id string) (model.Session, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Session), args.Error(1)
}

func (m *mockSessionStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockHoroscopeStore struct {
	mock.Mock
}

func (m *mockHoroscopeStore) Create(ctx context.Context, params model.CreateHoroscopeParams) (model.Horoscope, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Horoscope), args.Error(1)
}

func (m *mockHoroscopeStore) GetByID(ctx context.Context, id int64) (model.Horoscope, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Horoscope), args.Error(1)
}

func (m *mockHoroscopeStore) GetBySignAndDate(ctx context.Context, sign model.ZodiacSign, date time.Time) (model.Horoscope, error) {
	args := m.Called(ctx, sign, date)
	return args.Get(0).(model.Horoscope), args.Error(1)
}
