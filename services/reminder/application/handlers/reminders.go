package handlers

import (
	"net/http"
	"strconv"

	"cloud.google.com/go/civil"

	"github.com/ghuser/wardrobe/pkg/apperr"
	"github.com/ghuser/wardrobe/pkg/auth"
	"github.com/ghuser/wardrobe/pkg/errhttp"
	"github.com/ghuser/wardrobe/pkg/httpx"
	"github.com/ghuser/wardrobe/pkg/logger"
	pkgvalidator "github.com/ghuser/wardrobe/pkg/validator"
	appsvcs "github.com/ghuser/wardrobe/services/reminder/application/services"
	reminderdomain "github.com/ghuser/wardrobe/services/reminder/domain"
)

// ForecastDay is one day of GET /weather.
type ForecastDay struct {
	Date            string  `json:"date"             example:"2025-01-06"`
	TempMin         float64 `json:"temp_min"         example:"18"`
	TempMax         float64 `json:"temp_max"         example:"25"`
	Description     string  `json:"description"      example:"Partly cloudy"`
	RainProbability float64 `json:"rain_probability" example:"10"`
	Suggestion      string  `json:"suggestion"       example:"Mild: long sleeves, maybe a thin layer for the evening."`
} // @name ForecastDay

// WeatherResponse is the forecast for the user's primary city.
type WeatherResponse struct {
	City string        `json:"city" example:"Taishan"`
	Days []ForecastDay `json:"days"`
} // @name WeatherResponse

// TestReminderRequest is the request body for POST /reminders/test.
type TestReminderRequest struct {
	Date string `json:"date" validate:"omitempty,isodate" example:"2025-01-06"`
} // @name TestReminderRequest

// PreviewResponse is a rendered reminder that was not sent.
type PreviewResponse struct {
	Subject  string `json:"subject"   example:"Daily outfit reminder - 2025/01/06"`
	TextBody string `json:"text_body"`
	HTMLBody string `json:"html_body"`
} // @name PreviewResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"user has no email address"`
} // @name ErrorResponse

type ReminderHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

func NewReminderHandler(svc *appsvcs.Services, log logger.Logger) *ReminderHandler {
	return &ReminderHandler{svc: svc, log: log}
}

// Weather returns the forecast for the user's first location.
//
//	@Summary	Weather forecast
//	@Tags		reminders
//	@Produce	json
//	@Param		days	query		int	false	"1-16, default 1"
//	@Success	200		{object}	WeatherResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/weather [get]
func (h *ReminderHandler) Weather(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	days := 1
	if raw := r.URL.Query().Get("days"); raw != "" {
		if days, err = strconv.Atoi(raw); err != nil {
			errhttp.WriteError(w, r, h.log, apperr.Invalid(reminderdomain.ErrInvalidRequest, "days must be an integer"))
			return
		}
	}

	city, forecasts, err := h.svc.Reminders.Forecast(r.Context(), ownerID, days)
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	resp := WeatherResponse{City: city, Days: make([]ForecastDay, len(forecasts))}
	for i, f := range forecasts {
		resp.Days[i] = ForecastDay{
			Date:            f.Date.String(),
			TempMin:         f.TempMin,
			TempMax:         f.TempMax,
			Description:     f.Description,
			RainProbability: f.RainProbability,
			Suggestion:      f.Suggestion(),
		}
	}
	httpx.JSON(w, http.StatusOK, resp)
}

// Preview renders the reminder for a date without sending it.
//
//	@Summary	Preview reminder
//	@Tags		reminders
//	@Produce	json
//	@Param		date	query		string	false	"YYYY-MM-DD, defaults to today"
//	@Success	200		{object}	PreviewResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/reminders/preview [get]
func (h *ReminderHandler) Preview(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	date, err := h.date(r.URL.Query().Get("date"))
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	msg, err := h.svc.Reminders.Preview(r.Context(), ownerID, date)
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, PreviewResponse{Subject: msg.Subject, TextBody: msg.TextBody, HTMLBody: msg.HTMLBody})
}

// SendTest emails the reminder for a date to the signed-in user right away.
//
//	@Summary	Send test reminder
//	@Tags		reminders
//	@Accept		json
//	@Param		request	body	TestReminderRequest	false	"Date, defaults to today"
//	@Success	202
//	@Failure	422	{object}	ErrorResponse
//	@Router		/reminders/test [post]
func (h *ReminderHandler) SendTest(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[TestReminderRequest](w, r)
	if !ok {
		return
	}
	date, err := h.date(req.Date)
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	if err := h.svc.Reminders.SendForUser(r.Context(), ownerID, date); err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (h *ReminderHandler) date(raw string) (civil.Date, error) {
	if raw == "" {
		return h.svc.Reminders.Today(), nil
	}
	d, err := civil.ParseDate(raw)
	if err != nil || !d.IsValid() {
		return civil.Date{}, apperr.Invalid(reminderdomain.ErrInvalidRequest, "%q is not a YYYY-MM-DD date", raw)
	}
	return d, nil
}
