package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/astroline/astroline-server/internal/model"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// respondError maps domain errors to HTTP statuses. Anything
// unrecognized is an internal error; the body never leaks its details.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		respondJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, model.ErrEmailTaken):
		respondJSON(w, http.StatusConflict, errorResponse{Error: "email already taken"})
	case errors.Is(err, model.ErrHoroscopeExists):
		respondJSON(w, http.StatusConflict, errorResponse{Error: "horoscope already published for this sign and date"})
	case errors.Is(err, model.ErrInvalidCredentials):
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
	default:
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func respondBadRequest(w http.ResponseWriter, msg string) {
	respondJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}
