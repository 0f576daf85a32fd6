package handler

import (
	"time"

	"github.com/astroline/astroline-server/internal/model"
)

const dateLayout = "2006-01-02"

type userResponse struct {
	ID              int64   `json:"id"`
	Email           string  `json:"email"`
	FirstName       *string `json:"firstName"`
	LastName        *string `json:"lastName"`
	Birthdate       *string `json:"birthdate"`
	Phone           *string `json:"phone"`
	ZodiacSign      string  `json:"zodiacSign"`
	SMSOptIn        bool    `json:"smsOptIn"`
	NewsletterOptIn bool    `json:"newsletterOptIn"`
	CreatedAt       string  `json:"createdAt"`
}

func toUserResponse(user model.User) userResponse {
	resp := userResponse{
		ID:              user.ID,
		Email:           user.Email,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		Phone:           user.Phone,
		ZodiacSign:      string(user.ZodiacSign),
		SMSOptIn:        user.SMSOptIn,
		NewsletterOptIn: user.NewsletterOptIn,
		CreatedAt:       user.CreatedAt.UTC().Format(time.RFC3339),
	}
	if user.Birthdate != nil {
		b := user.Birthdate.Format(dateLayout)
		resp.Birthdate = &b
	}
	return resp
}

type horoscopeResponse struct {
	ID        int64  `json:"id"`
	Sign      string `json:"sign"`
	ForDate   string `json:"forDate"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

func toHoroscopeResponse(horoscope model.Horoscope) horoscopeResponse {
	return horoscopeResponse{
		ID:        horoscope.ID,
		Sign:      string(horoscope.Sign),
		ForDate:   horoscope.ForDate.Format(dateLayout),
		Content:   horoscope.Content,
		CreatedAt: horoscope.CreatedAt.UTC().Format(time.RFC3339),
	}
}

type deliveryLogResponse struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"userId"`
	HoroscopeID int64  `json:"horoscopeId"`
	Channel     string `json:"channel"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}

func toDeliveryLogResponses(logs []model.DeliveryLog) []deliveryLogResponse {
	out := make([]deliveryLogResponse, 0, len(logs))
	for _, log := range logs {
		out = append(out, deliveryLogResponse{
			ID:          log.ID,
			UserID:      log.UserID,
			HoroscopeID: log.HoroscopeID,
			Channel:     log.Channel,
			Status:      log.Status,
			CreatedAt:   log.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return out
}
