package memory

import (
	"context"
	"time"

	"github.com/astroline/astroline-server/internal/model"
)

var _ model.HoroscopeStore = (*HoroscopeRepository)(nil)

type HoroscopeRepository struct {
	store *Store
}

func NewHoroscopeRepository(store *Store) *HoroscopeRepository {
	return &HoroscopeRepository{
		store: store,
	}
}

func (r *HoroscopeRepository) Create(_ context.Context, params model.CreateHoroscopeParams) (model.Horoscope, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	day := model.DateOnly(params.ForDate)
	for _, existing := range r.store.horoscopes {
		if existing.Sign == params.Sign && existing.ForDate.Equal(day) {
			return model.Horoscope{}, model.ErrHoroscopeExists
		}
	}

	horoscope := model.Horoscope{
		ID:        r.store.nextHoroscopeID,
		Sign:      params.Sign,
		ForDate:   day,
		Content:   params.Content,
		CreatedAt: time.Now(),
	}
	r.store.nextHoroscopeID++
	r.store.horoscopes[horoscope.ID] = horoscope

	return horoscope, nil
}

func (r *HoroscopeRepository) GetByID(_ context.Context, id int64) (model.Horoscope, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	horoscope, ok := r.store.horoscopes[id]
	if !ok {
		return model.Horoscope{}, model.ErrNotFound
	}
	return horoscope, nil
}

// GetBySignAndDate returns the horoscope for the compound key. Create
// rejects duplicates for the key, so at most one record can match.
func (r *HoroscopeRepository) GetBySignAndDate(_ context.Context, sign model.ZodiacSign, date time.Time) (model.Horoscope, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	day := model.DateOnly(date)
	for _, horoscope := range r.store.horoscopes {
		if horoscope.Sign == sign && horoscope.ForDate.Equal(day) {
			return horoscope, nil
		}
	}
	return model.Horoscope{}, model.ErrNotFound
}
