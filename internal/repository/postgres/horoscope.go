package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/astroline/astroline-server/internal/model"
)

var _ model.HoroscopeStore = (*HoroscopeRepository)(nil)

type HoroscopeRepository struct {
	db *Connection
}

func NewHoroscopeRepository(db *Connection) *HoroscopeRepository {
	return &HoroscopeRepository{
		db: db,
	}
}

func (r *HoroscopeRepository) Create(ctx context.Context, params model.CreateHoroscopeParams) (model.Horoscope, error) {
	query := `INSERT INTO horoscopes (sign, for_date, content)
			  VALUES ($1, $2, $3)
			  RETURNING id, sign, for_date, content, created_at`

	var horoscope model.Horoscope
	err := r.db.QueryRow(ctx, query,
		string(params.Sign), model.DateOnly(params.ForDate), params.Content,
	).Scan(
		&horoscope.ID, &horoscope.Sign, &horoscope.ForDate, &horoscope.Content, &horoscope.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.Horoscope{}, model.ErrHoroscopeExists
		}
		return model.Horoscope{}, fmt.Errorf("failed to create horoscope: %w", err)
	}

	return horoscope, nil
}

func (r *HoroscopeRepository) GetByID(ctx context.Context, id int64) (model.Horoscope, error) {
	query := `SELECT id, sign, for_date, content, created_at
			  FROM horoscopes WHERE id = $1`

	var horoscope model.Horoscope
	err := r.db.QueryRow(ctx, query, id).Scan(
		&horoscope.ID, &horoscope.Sign, &horoscope.ForDate, &horoscope.Content, &horoscope.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Horoscope{}, model.ErrNotFound
		}
		return model.Horoscope{}, fmt.Errorf("failed to get horoscope by id: %w", err)
	}

	return horoscope, nil
}

func (r *HoroscopeRepository) GetBySignAndDate(ctx context.Context, sign model.ZodiacSign, date time.Time) (model.Horoscope, error) {
	query := `SELECT id, sign, for_date, content, created_at
			  FROM horoscopes WHERE sign = $1 AND for_date = $2`

	var horoscope model.Horoscope
	err := r.db.QueryRow(ctx, query, string(sign), model.DateOnly(date)).Scan(
		&horoscope.ID, &horoscope.Sign, &horoscope.ForDate, &horoscope.Content, &horoscope.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Horoscope{}, model.ErrNotFound
		}
		return model.Horoscope{}, fmt.Errorf("failed to get horoscope by sign and date: %w", err)
	}

	return horoscope, nil
}
