package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/astroline/astroline-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

const userColumns = `id, email, password_hash, first_name, last_name, birthdate, phone,
			  zodiac_sign, sms_opt_in, newsletter_opt_in, created_at`

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func scanUser(row pgx.Row) (model.User, error) {
	var user model.User
	err := row.Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.FirstName, &user.LastName,
		&user.Birthdate, &user.Phone, &user.ZodiacSign, &user.SMSOptIn,
		&user.NewsletterOptIn, &user.CreatedAt,
	)
	return user, err
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, params model.CreateUserParams) (model.User, error) {
	// Opt-in defaults live in the query so a single statement both
	// assigns the id and settles unset flags.
	query := `INSERT INTO users (email, password_hash, first_name, last_name, birthdate, phone,
			  zodiac_sign, sms_opt_in, newsletter_opt_in)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, COALESCE($8, FALSE), COALESCE($9, TRUE))
			  RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRow(ctx, query,
		params.Email, params.PasswordHash, params.FirstName, params.LastName,
		params.Birthdate, params.Phone, string(params.ZodiacSign),
		params.SMSOptIn, params.NewsletterOptIn,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.User{}, model.ErrEmailTaken
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (r *UserRepository) Update(ctx context.Context, id int64, params model.UpdateUserParams) (model.User, error) {
	// Nil parameters collapse to the stored value; id and created_at are
	// not part of the SET list and cannot change.
	query := `UPDATE users SET
			  email = COALESCE($2, email),
			  password_hash = COALESCE($3, password_hash),
			  first_name = COALESCE($4, first_name),
			  last_name = COALESCE($5, last_name),
			  birthdate = COALESCE($6, birthdate),
			  phone = COALESCE($7, phone),
			  zodiac_sign = COALESCE($8, zodiac_sign),
			  sms_opt_in = COALESCE($9, sms_opt_in),
			  newsletter_opt_in = COALESCE($10, newsletter_opt_in)
			  WHERE id = $1
			  RETURNING ` + userColumns

	var sign *string
	if params.ZodiacSign != nil {
		s := string(*params.ZodiacSign)
		sign = &s
	}

	user, err := scanUser(r.db.QueryRow(ctx, query,
		id, params.Email, params.PasswordHash, params.FirstName, params.LastName,
		params.Birthdate, params.Phone, sign, params.SMSOptIn, params.NewsletterOptIn,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.User{}, model.ErrEmailTaken
		}
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByZodiacSign(ctx context.Context, sign model.ZodiacSign) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE zodiac_sign = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, string(sign))
	if err != nil {
		return nil, fmt.Errorf("failed to get users by zodiac sign: %w", err)
	}
	defer rows.Close()

	return collectUsers(rows)
}

func (r *UserRepository) GetForDailyDelivery(ctx context.Context) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get users for daily delivery: %w", err)
	}
	defer rows.Close()

	return collectUsers(rows)
}

func collectUsers(rows pgx.Rows) ([]model.User, error) {
	var users []model.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}

	return users, nil
}
