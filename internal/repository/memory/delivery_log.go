package memory

import (
	"context"
	"sort"
	"time"

	"github.com/astroline/astroline-server/internal/model"
)

var _ model.DeliveryLogStore = (*DeliveryLogRepository)(nil)

type DeliveryLogRepository struct {
	store *Store
}

func NewDeliveryLogRepository(store *Store) *DeliveryLogRepository {
	return &DeliveryLogRepository{
		store: store,
	}
}

func (r *DeliveryLogRepository) Create(_ context.Context, params model.CreateDeliveryLogParams) (model.DeliveryLog, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	log := model.DeliveryLog{
		ID:          r.store.nextLogID,
		UserID:      params.UserID,
		HoroscopeID: params.HoroscopeID,
		Channel:     params.Channel,
		Status:      params.Status,
		CreatedAt:   time.Now(),
	}
	r.store.nextLogID++
	r.store.logs[log.ID] = log

	return log, nil
}

func (r *DeliveryLogRepository) GetByUserID(_ context.Context, userID int64) ([]model.DeliveryLog, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	logs := make([]model.DeliveryLog, 0)
	for _, log := range r.store.logs {
		if log.UserID == userID {
			logs = append(logs, log)
		}
	}
	sort.Slice(logs, func(i, j int) bool { return logs[i].ID < logs[j].ID })

	return logs, nil
}
