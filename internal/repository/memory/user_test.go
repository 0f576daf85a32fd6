package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astroline/astroline-server/internal/model"
)

func strPtr(s string) *string    { return &s }
func boolPtr(b bool) *bool       { return &b }
func signPtr(s model.ZodiacSign) *model.ZodiacSign { return &s }

func TestUserRepository_CreateDefaults(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())

	user, err := repo.Create(ctx, model.CreateUserParams{
		Email:      "a@x.com",
		ZodiacSign: model.SignLeo,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, model.SignLeo, user.ZodiacSign)
	assert.False(t, user.SMSOptIn)
	assert.True(t, user.NewsletterOptIn)
	assert.Nil(t, user.PasswordHash)
	assert.Nil(t, user.FirstName)
	assert.Nil(t, user.LastName)
	assert.Nil(t, user.Birthdate)
	assert.Nil(t, user.Phone)
	assert.False(t, user.CreatedAt.IsZero())

	second, err := repo.Create(ctx, model.CreateUserParams{
		Email:           "b@x.com",
		ZodiacSign:      model.SignVirgo,
		SMSOptIn:        boolPtr(true),
		NewsletterOptIn: boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)
	assert.True(t, second.SMSOptIn)
	assert.False(t, second.NewsletterOptIn)
}

func TestUserRepository_CreateDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())

	_, err := repo.Create(ctx, model.CreateUserParams{Email: "a@x.com", ZodiacSign: model.SignLeo})
	require.NoError(t, err)

	_, err = repo.Create(ctx, model.CreateUserParams{Email: "a@x.com", ZodiacSign: model.SignVirgo})
	assert.ErrorIs(t, err, model.ErrEmailTaken)
}

func TestUserRepository_GetRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())

	created, err := repo.Create(ctx, model.CreateUserParams{Email: "a@x.com", ZodiacSign: model.SignLeo})
	require.NoError(t, err)

	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, byID)

	byEmail, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	// No intervening write: a second read returns the same record.
	again, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, byID, again)

	_, err = repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = repo.GetByEmail(ctx, "missing@x.com")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestUserRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())

	created, err := repo.Create(ctx, model.CreateUserParams{Email: "a@x.com", ZodiacSign: model.SignLeo})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, model.UpdateUserParams{
		FirstName: strPtr("X"),
	})
	require.NoError(t, err)

	assert.Equal(t, "X", *updated.FirstName)
	// Everything else is untouched, including id and created-at.
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.Email, updated.Email)
	assert.Equal(t, created.ZodiacSign, updated.ZodiacSign)
	assert.Equal(t, created.SMSOptIn, updated.SMSOptIn)
	assert.Equal(t, created.NewsletterOptIn, updated.NewsletterOptIn)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	optedIn, err := repo.Update(ctx, created.ID, model.UpdateUserParams{SMSOptIn: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, optedIn.SMSOptIn)
	assert.Equal(t, "X", *optedIn.FirstName)
}

func TestUserRepository_UpdateNotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())

	_, err := repo.Update(ctx, 42, model.UpdateUserParams{FirstName: strPtr("X")})
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestUserRepository_UpdateEmailConflict(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())

	first, err := repo.Create(ctx, model.CreateUserParams{Email: "a@x.com", ZodiacSign: model.SignLeo})
	require.NoError(t, err)
	_, err = repo.Create(ctx, model.CreateUserParams{Email: "b@x.com", ZodiacSign: model.SignLeo})
	require.NoError(t, err)

	_, err = repo.Update(ctx, first.ID, model.UpdateUserParams{Email: strPtr("b@x.com")})
	assert.ErrorIs(t, err, model.ErrEmailTaken)

	// Re-supplying the current email is not a conflict.
	same, err := repo.Update(ctx, first.ID, model.UpdateUserParams{Email: strPtr("a@x.com")})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", same.Email)
}

func TestUserRepository_GetByZodiacSign(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())

	for i, sign := range []model.ZodiacSign{model.SignPisces, model.SignLeo, model.SignPisces} {
		_, err := repo.Create(ctx, model.CreateUserParams{
			Email:      fmt.Sprintf("user%d@x.com", i),
			ZodiacSign: sign,
		})
		require.NoError(t, err)
	}

	pisces, err := repo.GetByZodiacSign(ctx, model.SignPisces)
	require.NoError(t, err)
	require.Len(t, pisces, 2)
	assert.Equal(t, int64(1), pisces[0].ID)
	assert.Equal(t, int64(3), pisces[1].ID)

	aries, err := repo.GetByZodiacSign(ctx, model.SignAries)
	require.NoError(t, err)
	assert.Empty(t, aries)
}

func TestUserRepository_GetForDailyDelivery(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())

	_, err := repo.Create(ctx, model.CreateUserParams{Email: "a@x.com", ZodiacSign: model.SignLeo, SMSOptIn: boolPtr(true)})
	require.NoError(t, err)
	_, err = repo.Create(ctx, model.CreateUserParams{Email: "b@x.com", ZodiacSign: model.SignLeo})
	require.NoError(t, err)

	// The store returns everyone; eligibility filtering is the delivery
	// service's job.
	users, err := repo.GetForDailyDelivery(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserRepository_ConcurrentCreateDistinctIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())

	const n = 100
	ids := make(chan int64, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user, err := repo.Create(ctx, model.CreateUserParams{
				Email:      fmt.Sprintf("user%d@x.com", i),
				ZodiacSign: model.SignLeo,
			})
			assert.NoError(t, err)
			ids <- user.ID
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

func TestUserRepository_UpdatePartialFields(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())

	created, err := repo.Create(ctx, model.CreateUserParams{Email: "a@x.com", ZodiacSign: model.SignLeo})
	require.NoError(t, err)
	require.Equal(t, int64(1), created.ID)

	updated, err := repo.Update(ctx, 1, model.UpdateUserParams{SMSOptIn: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, updated.SMSOptIn)

	want := created
	want.SMSOptIn = true
	assert.Equal(t, want, updated)
}

func TestUserRepository_UpdateSign(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())

	created, err := repo.Create(ctx, model.CreateUserParams{Email: "a@x.com", ZodiacSign: model.SignLeo})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, model.UpdateUserParams{ZodiacSign: signPtr(model.SignVirgo)})
	require.NoError(t, err)
	assert.Equal(t, model.SignVirgo, updated.ZodiacSign)
}

func TestUserRepository_ReadsAreCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())

	created, err := repo.Create(ctx, model.CreateUserParams{Email: "a@x.com", ZodiacSign: model.SignLeo})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	got.Email = "mutated@x.com"

	again, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", again.Email)
}

func TestUserRepository_PointerFieldsNotAliased(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())

	created, err := repo.Create(ctx, model.CreateUserParams{
		Email:      "ada@x.com",
		ZodiacSign: model.SignLeo,
		FirstName:  strPtr("Ada"),
		Phone:      strPtr("+15550001"),
	})
	require.NoError(t, err)

	// writing through a returned pointer must not touch the stored record
	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	*got.FirstName = "mutated"
	*got.Phone = "+10000000"

	again, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", *again.FirstName)
	assert.Equal(t, "+15550001", *again.Phone)

	// the Create return value must not alias the stored record either
	*created.FirstName = "also mutated"
	again, err = repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", *again.FirstName)
}

func TestUserRepository_ParamsBufferReuse(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())

	name := "Ada"
	createParams := model.CreateUserParams{
		Email:      "ada@x.com",
		ZodiacSign: model.SignLeo,
		FirstName:  &name,
	}
	created, err := repo.Create(ctx, createParams)
	require.NoError(t, err)

	name = "reused for someone else"

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", *got.FirstName)

	last := "Lovelace"
	_, err = repo.Update(ctx, created.ID, model.UpdateUserParams{LastName: &last})
	require.NoError(t, err)

	last = "overwritten"

	got, err = repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lovelace", *got.LastName)
}

func TestUserRepository_ListReadsAreCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())

	_, err := repo.Create(ctx, model.CreateUserParams{
		Email:      "leo@x.com",
		ZodiacSign: model.SignLeo,
		Phone:      strPtr("+15550001"),
	})
	require.NoError(t, err)

	listed, err := repo.GetByZodiacSign(ctx, model.SignLeo)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	*listed[0].Phone = "mutated"

	all, err := repo.GetForDailyDelivery(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "+15550001", *all[0].Phone)
}

func TestUserRepository_CreatedAtMonotonicSanity(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())

	before := time.Now()
	user, err := repo.Create(ctx, model.CreateUserParams{Email: "a@x.com", ZodiacSign: model.SignLeo})
	require.NoError(t, err)
	after := time.Now()

	assert.False(t, user.CreatedAt.Before(before))
	assert.False(t, user.CreatedAt.After(after))
}
