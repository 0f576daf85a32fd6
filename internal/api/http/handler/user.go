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

// User serves the authenticated user's profile and delivery history.
type User struct {
	userService     *service.User
	deliveryService *service.Delivery
	contextManager  model.ContextManager
	logger          *logger.Logger
}

func NewUser(
	userService *service.User,
	deliveryService *service.Delivery,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *User {
	return &User{
		userService:     userService,
		deliveryService: deliveryService,
		contextManager:  contextManager,
		logger:          logger,
	}
}

func (h *User) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		respondError(w, model.ErrInvalidCredentials)
		return
	}

	user, err := h.userService.Get(r.Context(), userID)
	if err != nil {
		h.logger.Error("User handler: failed to load profile",
			"user_id", userID,
			"error", err.Error())
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toUserResponse(user))
}

type updateProfileRequest struct {
	FirstName       *string `json:"firstName"`
	LastName        *string `json:"lastName"`
	Birthdate       *string `json:"birthdate"`
	Phone           *string `json:"phone"`
	ZodiacSign      *string `json:"zodiacSign"`
	SMSOptIn        *bool   `json:"smsOptIn"`
	NewsletterOptIn *bool   `json:"newsletterOptIn"`
}

func (h *User) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		respondError(w, model.ErrInvalidCredentials)
		return
	}

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	params := model.UpdateUserParams{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Phone:           req.Phone,
		SMSOptIn:        req.SMSOptIn,
		NewsletterOptIn: req.NewsletterOptIn,
	}
	if req.Birthdate != nil {
		parsed, err := time.Parse(dateLayout, *req.Birthdate)
		if err != nil {
			respondBadRequest(w, "birthdate must be YYYY-MM-DD")
			return
		}
		params.Birthdate = &parsed
	}
	if req.ZodiacSign != nil {
		sign := model.ZodiacSign(strings.ToLower(*req.ZodiacSign))
		if !sign.Valid() {
			respondBadRequest(w, "invalid zodiac sign")
			return
		}
		params.ZodiacSign = &sign
	}

	user, err := h.userService.UpdateProfile(r.Context(), userID, params)
	if err != nil {
		h.logger.Error("User handler: profile update failed",
			"user_id", userID,
			"error", err.Error())
		respondError(w, err)
		return
	}

	h.logger.Info("User handler: profile updated",
		"user_id", userID)

	respondJSON(w, http.StatusOK, toUserResponse(user))
}

func (h *User) Deliveries(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		respondError(w, model.ErrInvalidCredentials)
		return
	}

	logs, err := h.deliveryService.History(r.Context(), userID)
	if err != nil {
		h.logger.Error("User handler: failed to load delivery history",
			"user_id", userID,
			"error", err.Error())
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toDeliveryLogResponses(logs))
}
