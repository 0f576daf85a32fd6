package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/astroline/astroline-server/internal/logger"
	"github.com/astroline/astroline-server/internal/model"
)

// Auth handles signup, login and session validation.
type Auth struct {
	userStore    model.UserStore
	sessionStore model.SessionStore
	tokenManager model.TokenManager
	sessionTTL   time.Duration
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	sessionStore model.SessionStore,
	tokenManager model.TokenManager,
	sessionTTL time.Duration,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		sessionStore: sessionStore,
		tokenManager: tokenManager,
		sessionTTL:   sessionTTL,
		logger:       logger,
	}
}

// RegisterParams contains signup input.
type RegisterParams struct {
	Email           string
	Password        string
	ZodiacSign      model.ZodiacSign
	FirstName       *string
	LastName        *string
	Birthdate       *time.Time
	Phone           *string
	SMSOptIn        *bool
	NewsletterOptIn *bool
}

// Register creates a user and an initial session, returning the signed
// session token alongside the stored user.
func (a *Auth) Register(ctx context.Context, params RegisterParams) (model.User, string, error) {
	a.logger.Debug("Auth service: starting user registration",
		"email", params.Email)

	if !params.ZodiacSign.Valid() {
		return model.User{}, "", fmt.Errorf("invalid zodiac sign %q", params.ZodiacSign)
	}

	var passwordHash *string
	if params.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
		if err != nil {
			a.logger.Error("Auth service: failed to hash password",
				"email", params.Email,
				"error", err.Error())
			return model.User{}, "", fmt.Errorf("failed to hash password: %w", err)
		}
		s := string(hashed)
		passwordHash = &s
	}

	user, err := a.userStore.Create(ctx, model.CreateUserParams{
		Email:           params.Email,
		ZodiacSign:      params.ZodiacSign,
		PasswordHash:    passwordHash,
		FirstName:       params.FirstName,
		LastName:        params.LastName,
		Birthdate:       params.Birthdate,
		Phone:           params.Phone,
		SMSOptIn:        params.SMSOptIn,
		NewsletterOptIn: params.NewsletterOptIn,
	})
	if err != nil {
		if errors.Is(err, model.ErrEmailTaken) {
			a.logger.Info("Auth service: email already taken",
				"email", params.Email)
			return model.User{}, "", model.ErrEmailTaken
		}
		a.logger.Error("Auth service: failed to create user",
			"email", params.Email,
			"error", err.Error())
		return model.User{}, "", fmt.Errorf("failed to create user: %w", err)
	}

	tokenString, err := a.issueSession(ctx, user.ID)
	if err != nil {
		return model.User{}, "", err
	}

	a.logger.Info("Auth service: user registered",
		"email", params.Email,
		"user_id", user.ID)

	return user, tokenString, nil
}

// Login verifies credentials and issues a fresh session.
func (a *Auth) Login(ctx context.Context, email, password string) (model.User, string, error) {
	a.logger.Debug("Auth service: starting login",
		"email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, "", model.ErrInvalidCredentials
		}
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.User{}, "", fmt.Errorf("failed to get user by email: %w", err)
	}

	if user.PasswordHash == nil {
		return model.User{}, "", model.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		return model.User{}, "", model.ErrInvalidCredentials
	}

	tokenString, err := a.issueSession(ctx, user.ID)
	if err != nil {
		return model.User{}, "", err
	}

	a.logger.Info("Auth service: login succeeded",
		"email", email,
		"user_id", user.ID)

	return user, tokenString, nil
}

// Authenticate resolves a session token to a user id. Bad signatures,
// unknown or expired sessions, and mismatched users all read as
// invalid credentials to the caller.
func (a *Auth) Authenticate(ctx context.Context, tokenString string) (int64, error) {
	sessionID, userID, err := a.tokenManager.ParseSessionToken(tokenString)
	if err != nil {
		return 0, model.ErrInvalidCredentials
	}

	session, err := a.sessionStore.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrSessionExpired) {
			return 0, model.ErrInvalidCredentials
		}
		a.logger.Error("Auth service: failed to get session",
			"session_id", sessionID,
			"error", err.Error())
		return 0, fmt.Errorf("failed to get session: %w", err)
	}

	if session.UserID != userID {
		return 0, model.ErrInvalidCredentials
	}

	return session.UserID, nil
}

// Logout drops the session referenced by the token. An invalid token is
// not an error; there is nothing to drop.
func (a *Auth) Logout(ctx context.Context, tokenString string) error {
	sessionID, _, err := a.tokenManager.ParseSessionToken(tokenString)
	if err != nil {
		return nil
	}

	if err := a.sessionStore.Delete(ctx, sessionID); err != nil {
		a.logger.Error("Auth service: failed to delete session",
			"session_id", sessionID,
			"error", err.Error())
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

func (a *Auth) issueSession(ctx context.Context, userID int64) (string, error) {
	now := time.Now()
	session := model.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		ExpiresAt: now.Add(a.sessionTTL),
		CreatedAt: now,
	}

	if err := a.sessionStore.Create(ctx, session); err != nil {
		a.logger.Error("Auth service: failed to create session",
			"user_id", userID,
			"error", err.Error())
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	tokenString, err := a.tokenManager.GenerateSessionToken(session.ID, userID)
	if err != nil {
		a.logger.Error("Auth service: failed to sign session token",
			"user_id", userID,
			"error", err.Error())
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, nil
}
