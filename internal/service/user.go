package service

import (
	"context"
	"fmt"

	"github.com/astroline/astroline-server/internal/logger"
	"github.com/astroline/astroline-server/internal/model"
)

// User exposes profile reads and partial updates.
type User struct {
	userStore model.UserStore
	logger    *logger.Logger
}

func NewUser(userStore model.UserStore, logger *logger.Logger) *User {
	return &User{
		userStore: userStore,
		logger:    logger,
	}
}

func (u *User) Get(ctx context.Context, id int64) (model.User, error) {
	return u.userStore.GetByID(ctx, id)
}

func (u *User) GetByEmail(ctx context.Context, email string) (model.User, error) {
	return u.userStore.GetByEmail(ctx, email)
}

// UpdateProfile applies a partial update. Only supplied fields change;
// a supplied zodiac sign must be one of the twelve.
func (u *User) UpdateProfile(ctx context.Context, id int64, params model.UpdateUserParams) (model.User, error) {
	if params.ZodiacSign != nil && !params.ZodiacSign.Valid() {
		return model.User{}, fmt.Errorf("invalid zodiac sign %q", *params.ZodiacSign)
	}

	user, err := u.userStore.Update(ctx, id, params)
	if err != nil {
		return model.User{}, err
	}

	u.logger.Info("User service: profile updated",
		"user_id", id)

	return user, nil
}

func (u *User) ListBySign(ctx context.Context, sign model.ZodiacSign) ([]model.User, error) {
	if !sign.Valid() {
		return nil, fmt.Errorf("invalid zodiac sign %q", sign)
	}
	return u.userStore.GetByZodiacSign(ctx, sign)
}
