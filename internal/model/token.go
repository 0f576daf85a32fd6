package model

// TokenManager generates and validates session tokens.
type TokenManager interface {
	GenerateSessionToken(sessionID string, userID int64) (string, error)
	ParseSessionToken(token string) (sessionID string, userID int64, err error)
}
