package postgres

import (
	"context"
	"fmt"

	"github.com/astroline/astroline-server/internal/model"
)

var _ model.DeliveryLogStore = (*DeliveryLogRepository)(nil)

type DeliveryLogRepository struct {
	db *Connection
}

func NewDeliveryLogRepository(db *Connection) *DeliveryLogRepository {
	return &DeliveryLogRepository{
		db: db,
	}
}

func (r *DeliveryLogRepository) Create(ctx context.Context, params model.CreateDeliveryLogParams) (model.DeliveryLog, error) {
	query := `INSERT INTO delivery_logs (user_id, horoscope_id, channel, status)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, user_id, horoscope_id, channel, status, created_at`

	var log model.DeliveryLog
	err := r.db.QueryRow(ctx, query,
		params.UserID, params.HoroscopeID, params.Channel, params.Status,
	).Scan(
		&log.ID, &log.UserID, &log.HoroscopeID, &log.Channel, &log.Status, &log.CreatedAt,
	)
	if err != nil {
		return model.DeliveryLog{}, fmt.Errorf("failed to create delivery log: %w", err)
	}

	return log, nil
}

func (r *DeliveryLogRepository) GetByUserID(ctx context.Context, userID int64) ([]model.DeliveryLog, error) {
	query := `SELECT id, user_id, horoscope_id, channel, status, created_at
			  FROM delivery_logs WHERE user_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get delivery logs by user: %w", err)
	}
	defer rows.Close()

	var logs []model.DeliveryLog
	for rows.Next() {
		var log model.DeliveryLog
		err := rows.Scan(
			&log.ID, &log.UserID, &log.HoroscopeID, &log.Channel, &log.Status, &log.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan delivery log: %w", err)
		}
		logs = append(logs, log)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read delivery logs: %w", err)
	}

	return logs, nil
}
