package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/astroline/astroline-server/internal/logger"
	"github.com/astroline/astroline-server/internal/model"
	"github.com/astroline/astroline-server/internal/service"
)

// Horoscope serves daily content reads and the publish endpoint.
type Horoscope struct {
	horoscopeService *service.Horoscope
	logger           *logger.Logger
}

func NewHoroscope(horoscopeService *service.Horoscope, logger *logger.Logger) *Horoscope {
	return &Horoscope{horoscopeService: horoscopeService, logger: logger}
}

func (h *Horoscope) Today(w http.ResponseWriter, r *http.Request) {
	sign := model.ZodiacSign(strings.ToLower(r.URL.Query().Get("sign")))
	if !sign.Valid() {
		respondBadRequest(w, "invalid zodiac sign")
		return
	}

	horoscope, err := h.horoscopeService.GetToday(r.Context(), sign)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toHoroscopeResponse(horoscope))
}

func (h *Horoscope) BySignAndDate(w http.ResponseWriter, r *http.Request) {
	sign := model.ZodiacSign(strings.ToLower(chi.URLParam(r, "sign")))
	if !sign.Valid() {
		respondBadRequest(w, "invalid zodiac sign")
		return
	}

	date, err := time.Parse(dateLayout, chi.URLParam(r, "date"))
	if err != nil {
		respondBadRequest(w, "date must be YYYY-MM-DD")
		return
	}

	horoscope, err := h.horoscopeService.GetBySignAndDate(r.Context(), sign, date)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toHoroscopeResponse(horoscope))
}

type publishRequest struct {
	Sign    string `json:"sign"`
	ForDate string `json:"forDate"`
	Content string `json:"content"`
}

func (h *Horoscope) Publish(w http.ResponseWriter, r *http.Request) {
	var req publishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	sign := model.ZodiacSign(strings.ToLower(req.Sign))
	if !sign.Valid() {
		respondBadRequest(w, "invalid zodiac sign")
		return
	}
	if req.Content == "" {
		respondBadRequest(w, "content is required")
		return
	}

	date, err := time.Parse(dateLayout, req.ForDate)
	if err != nil {
		respondBadRequest(w, "forDate must be YYYY-MM-DD")
		return
	}

	horoscope, err := h.horoscopeService.Publish(r.Context(), model.CreateHoroscopeParams{
		Sign:    sign,
		ForDate: date,
		Content: req.Content,
	})
	if err != nil {
		h.logger.Error("Horoscope handler: publish failed",
			"sign", sign,
			"for_date", req.ForDate,
			"error", err.Error())
		respondError(w, err)
		return
	}

	h.logger.Info("Horoscope handler: published",
		"sign", sign,
		"for_date", req.ForDate,
		"horoscope_id", horoscope.ID)

	respondJSON(w, http.StatusCreated, toHoroscopeResponse(horoscope))
}
