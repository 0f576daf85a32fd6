package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astroline/astroline-server/internal/model"
	"github.com/astroline/astroline-server/internal/repository/memory"
	"github.com/astroline/astroline-server/internal/testutil"
	"github.com/astroline/astroline-server/internal/token"
)

func newAuthFixture(t *testing.T) (*Auth, *memory.UserRepository, *memory.SessionStore) {
	t.Helper()
	users := memory.NewUserRepository(memory.NewStore())
	sessions := memory.NewSessionStore(time.Hour)
	t.Cleanup(sessions.Stop)

	auth := NewAuth(users, sessions, token.NewJWT("test-secret", time.Hour), time.Hour, testutil.MakeNoopLogger())
	return auth, users, sessions
}

func TestAuth_RegisterAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	auth, _, _ := newAuthFixture(t)

	user, tokenString, err := auth.Register(ctx, RegisterParams{
		Email:      "a@x.com",
		Password:   "hunter22",
		ZodiacSign: model.SignLeo,
	})
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.NotZero(t, user.ID)
	require.NotNil(t, user.PasswordHash)
	assert.NotEqual(t, "hunter22", *user.PasswordHash)

	userID, err := auth.Authenticate(ctx, tokenString)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestAuth_RegisterInvalidSign(t *testing.T) {
	ctx := context.Background()
	auth, _, _ := newAuthFixture(t)

	_, _, err := auth.Register(ctx, RegisterParams{
		Email:      "a@x.com",
		Password:   "hunter22",
		ZodiacSign: "ophiuchus",
	})
	require.Error(t, err)
}

func TestAuth_RegisterEmailTaken(t *testing.T) {
	ctx := context.Background()
	auth, _, _ := newAuthFixture(t)

	_, _, err := auth.Register(ctx, RegisterParams{Email: "a@x.com", Password: "pw", ZodiacSign: model.SignLeo})
	require.NoError(t, err)

	_, _, err = auth.Register(ctx, RegisterParams{Email: "a@x.com", Password: "pw", ZodiacSign: model.SignVirgo})
	assert.ErrorIs(t, err, model.ErrEmailTaken)
}

func TestAuth_Login(t *testing.T) {
	ctx := context.Background()
	auth, _, _ := newAuthFixture(t)

	registered, _, err := auth.Register(ctx, RegisterParams{Email: "a@x.com", Password: "hunter22", ZodiacSign: model.SignLeo})
	require.NoError(t, err)

	user, tokenString, err := auth.Login(ctx, "a@x.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	require.NotEmpty(t, tokenString)

	userID, err := auth.Authenticate(ctx, tokenString)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, userID)
}

func TestAuth_LoginBadPassword(t *testing.T) {
	ctx := context.Background()
	auth, _, _ := newAuthFixture(t)

	_, _, err := auth.Register(ctx, RegisterParams{Email: "a@x.com", Password: "hunter22", ZodiacSign: model.SignLeo})
	require.NoError(t, err)

	_, _, err = auth.Login(ctx, "a@x.com", "wrong")
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestAuth_LoginUnknownEmail(t *testing.T) {
	ctx := context.Background()
	auth, _, _ := newAuthFixture(t)

	_, _, err := auth.Login(ctx, "nobody@x.com", "pw")
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestAuth_AuthenticateGarbageToken(t *testing.T) {
	ctx := context.Background()
	auth, _, _ := newAuthFixture(t)

	_, err := auth.Authenticate(ctx, "garbage")
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestAuth_LogoutInvalidatesSession(t *testing.T) {
	ctx := context.Background()
	auth, _, _ := newAuthFixture(t)

	_, tokenString, err := auth.Register(ctx, RegisterParams{Email: "a@x.com", Password: "pw", ZodiacSign: model.SignLeo})
	require.NoError(t, err)

	require.NoError(t, auth.Logout(ctx, tokenString))

	_, err = auth.Authenticate(ctx, tokenString)
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestAuth_AuthenticateSurfacesStoreFault(t *testing.T) {
	ctx := context.Background()
	users := &mockUserStore{}
	sessions := &mockSessionStore{}
	manager := token.NewJWT("test-secret", time.Hour)

	tokenString, err := manager.GenerateSessionToken("sess-1", 7)
	require.NoError(t, err)

	storeErr := errors.New("connection refused")
	sessions.On("GetByID", ctx, "sess-1").Return(model.Session{}, storeErr)

	auth := NewAuth(users, sessions, manager, time.Hour, testutil.MakeNoopLogger())

	_, err = auth.Authenticate(ctx, tokenString)
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrInvalidCredentials)
	assert.ErrorIs(t, err, storeErr)
}
