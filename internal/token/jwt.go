package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/astroline/astroline-server/internal/model"
)

// Claims represents JWT claims carrying the session and user identity.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"user_id"`
}

// JWT implements TokenManager backed by symmetric HMAC. The token is a
// signed envelope around the session id; session validity itself is
// decided by the session store.
type JWT struct {
	secretKey string
	ttl       time.Duration
}

// NewJWT creates a new JWT token manager with the provided secret key
// and token lifetime.
func NewJWT(secretKey string, ttl time.Duration) model.TokenManager {
	return &JWT{secretKey: secretKey, ttl: ttl}
}

// GenerateSessionToken signs a token referencing the given session.
func (j *JWT) GenerateSessionToken(sessionID string, userID int64) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, nil
}

// ParseSessionToken validates the signature and expiry and extracts the
// session id and user id.
func (j *JWT) ParseSessionToken(tokenString string) (string, int64, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return "", 0, fmt.Errorf("failed to parse session token: %w", err)
	}
	if !parsed.Valid {
		return "", 0, fmt.Errorf("invalid session token")
	}
	if claims.ID == "" {
		return "", 0, fmt.Errorf("session token missing session id")
	}

	return claims.ID, claims.UserID, nil
}
