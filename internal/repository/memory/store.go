// Package memory provides a process-local entity store for development
// and tests, observably equivalent to the postgres backend.
package memory

import (
	"sync"

	"github.com/astroline/astroline-server/internal/model"
)

// Store holds all entity state behind a single mutex, shared by the
// per-entity repositories. Id assignment and record insertion happen
// under one lock hold, so concurrent creations can never observe the
// same counter value.
type Store struct {
	mu sync.Mutex

	users      map[int64]model.User
	horoscopes map[int64]model.Horoscope
	logs       map[int64]model.DeliveryLog

	nextUserID      int64
	nextHoroscopeID int64
	nextLogID       int64
}

func NewStore() *Store {
	return &Store{
		users:           make(map[int64]model.User),
		horoscopes:      make(map[int64]model.Horoscope),
		logs:            make(map[int64]model.DeliveryLog),
		nextUserID:      1,
		nextHoroscopeID: 1,
		nextLogID:       1,
	}
}

// findByEmail scans the user map; callers must hold s.mu.
func (s *Store) findByEmail(email string) (model.User, bool) {
	for _, user := range s.users {
		if user.Email == email {
			return user, true
		}
	}
	return model.User{}, false
}
