package memory

import (
	"context"
	"sort"
	"time"

	"github.com/astroline/astroline-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{
		store: store,
	}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// cloneUser detaches the pointer-typed optional fields. Both writes and
// reads go through it so no caller ever aliases a stored record.
func cloneUser(user model.User) model.User {
	user.PasswordHash = clonePtr(user.PasswordHash)
	user.FirstName = clonePtr(user.FirstName)
	user.LastName = clonePtr(user.LastName)
	user.Birthdate = clonePtr(user.Birthdate)
	user.Phone = clonePtr(user.Phone)
	return user
}

func (r *UserRepository) GetByID(_ context.Context, id int64) (model.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user, ok := r.store.users[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return cloneUser(user), nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (model.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user, ok := r.store.findByEmail(email)
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return cloneUser(user), nil
}

func (r *UserRepository) Create(_ context.Context, params model.CreateUserParams) (model.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, taken := r.store.findByEmail(params.Email); taken {
		return model.User{}, model.ErrEmailTaken
	}

	user := model.User{
		ID:              r.store.nextUserID,
		Email:           params.Email,
		PasswordHash:    clonePtr(params.PasswordHash),
		FirstName:       clonePtr(params.FirstName),
		LastName:        clonePtr(params.LastName),
		Birthdate:       clonePtr(params.Birthdate),
		Phone:           clonePtr(params.Phone),
		ZodiacSign:      params.ZodiacSign,
		SMSOptIn:        false,
		NewsletterOptIn: true,
		CreatedAt:       time.Now(),
	}
	if params.SMSOptIn != nil {
		user.SMSOptIn = *params.SMSOptIn
	}
	if params.NewsletterOptIn != nil {
		user.NewsletterOptIn = *params.NewsletterOptIn
	}

	r.store.nextUserID++
	r.store.users[user.ID] = user

	return cloneUser(user), nil
}

func (r *UserRepository) Update(_ context.Context, id int64, params model.UpdateUserParams) (model.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user, ok := r.store.users[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}

	if params.Email != nil && *params.Email != user.Email {
		if _, taken := r.store.findByEmail(*params.Email); taken {
			return model.User{}, model.ErrEmailTaken
		}
		user.Email = *params.Email
	}
	if params.PasswordHash != nil {
		user.PasswordHash = clonePtr(params.PasswordHash)
	}
	if params.FirstName != nil {
		user.FirstName = clonePtr(params.FirstName)
	}
	if params.LastName != nil {
		user.LastName = clonePtr(params.LastName)
	}
	if params.Birthdate != nil {
		user.Birthdate = clonePtr(params.Birthdate)
	}
	if params.Phone != nil {
		user.Phone = clonePtr(params.Phone)
	}
	if params.ZodiacSign != nil {
		user.ZodiacSign = *params.ZodiacSign
	}
	if params.SMSOptIn != nil {
		user.SMSOptIn = *params.SMSOptIn
	}
	if params.NewsletterOptIn != nil {
		user.NewsletterOptIn = *params.NewsletterOptIn
	}

	r.store.users[id] = user

	return cloneUser(user), nil
}

func (r *UserRepository) GetByZodiacSign(_ context.Context, sign model.ZodiacSign) ([]model.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var users []model.User
	for _, user := range r.store.users {
		if user.ZodiacSign == sign {
			users = append(users, cloneUser(user))
		}
	}
	sortUsers(users)

	return users, nil
}

func (r *UserRepository) GetForDailyDelivery(_ context.Context) ([]model.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	users := make([]model.User, 0, len(r.store.users))
	for _, user := range r.store.users {
		users = append(users, cloneUser(user))
	}
	sortUsers(users)

	return users, nil
}

// List order is ascending id. Not part of the store contract, matches
// the postgres backend for easier parity testing.
func sortUsers(users []model.User) {
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
}
