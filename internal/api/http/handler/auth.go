package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/astroline/astroline-server/internal/logger"
	"github.com/astroline/astroline-server/internal/model"
	"github.com/astroline/astroline-server/internal/service"
)

// Auth serves signup, login and logout.
type Auth struct {
	authService *service.Auth
	logger      *logger.Logger
}

func NewAuth(authService *service.Auth, logger *logger.Logger) *Auth {
	return &Auth{authService: authService, logger: logger}
}

type signupRequest struct {
	Email           string  `json:"email"`
	Password        string  `json:"password"`
	ZodiacSign      string  `json:"zodiacSign"`
	FirstName       *string `json:"firstName"`
	LastName        *string `json:"lastName"`
	Birthdate       *string `json:"birthdate"`
	Phone           *string `json:"phone"`
	SMSOptIn        *bool   `json:"smsOptIn"`
	NewsletterOptIn *bool   `json:"newsletterOptIn"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

func (h *Auth) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondBadRequest(w, "email and password are required")
		return
	}

	sign := model.ZodiacSign(strings.ToLower(req.ZodiacSign))
	if !sign.Valid() {
		respondBadRequest(w, "invalid zodiac sign")
		return
	}

	var birthdate *time.Time
	if req.Birthdate != nil {
		parsed, err := time.Parse(dateLayout, *req.Birthdate)
		if err != nil {
			respondBadRequest(w, "birthdate must be YYYY-MM-DD")
			return
		}
		birthdate = &parsed
	}

	h.logger.Debug("Auth handler: processing signup request",
		"email", req.Email)

	user, tokenString, err := h.authService.Register(r.Context(), service.RegisterParams{
		Email:           req.Email,
		Password:        req.Password,
		ZodiacSign:      sign,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Birthdate:       birthdate,
		Phone:           req.Phone,
		SMSOptIn:        req.SMSOptIn,
		NewsletterOptIn: req.NewsletterOptIn,
	})
	if err != nil {
		h.logger.Error("Auth handler: signup failed",
			"email", req.Email,
			"error", err.Error())
		respondError(w, err)
		return
	}

	h.logger.Info("Auth handler: signup completed",
		"email", user.Email,
		"user_id", user.ID)

	respondJSON(w, http.StatusCreated, authResponse{Token: tokenString, User: toUserResponse(user)})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	user, tokenString, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Debug("Auth handler: login failed",
			"email", req.Email,
			"error", err.Error())
		respondError(w, err)
		return
	}

	h.logger.Info("Auth handler: login completed",
		"user_id", user.ID)

	respondJSON(w, http.StatusOK, authResponse{Token: tokenString, User: toUserResponse(user)})
}

func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	tokenString := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if err := h.authService.Logout(r.Context(), tokenString); err != nil {
		h.logger.Error("Auth handler: logout failed",
			"error", err.Error())
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
