package handlers

import (
	"net/http"

	"github.com/ghuser/wardrobe/pkg/auth"
	"github.com/ghuser/wardrobe/pkg/errhttp"
	"github.com/ghuser/wardrobe/pkg/httpx"
	"github.com/ghuser/wardrobe/pkg/logger"
	appsvcs "github.com/ghuser/wardrobe/services/outfit/application/services"
)

// DayResponse is one column of the weekly calendar.
type DayResponse struct {
	Date    string        `json:"date"     example:"2025-01-06"`
	Weekday string        `json:"weekday"  example:"Monday"`
	ItemIDs []int64       `json:"item_ids" example:"1,2"`
	Items   []ItemSummary `json:"items"`
} // @name DayResponse

// WeekResponse is a Monday-to-Sunday calendar page.
type WeekResponse struct {
	Offset int           `json:"offset" example:"0"`
	Title  string        `json:"title"  example:"this week"`
	Start  string        `json:"start"  example:"2025-01-06"`
	End    string        `json:"end"    example:"2025-01-12"`
	Days   []DayResponse `json:"days"`
} // @name WeekResponse

type CalendarHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

func NewCalendarHandler(svc *appsvcs.Services, log logger.Logger) *CalendarHandler {
	return &CalendarHandler{svc: svc, log: log}
}

// Week renders one week of planned outfits.
//
//	@Summary		Weekly calendar
//	@Description	week=0 is the week containing today, negative values go back in time. Offsets are limited to ±5000.
//	@Tags			calendar
//	@Produce		json
//	@Param			week	query		int	false	"Week offset from the current week"
//	@Success		200		{object}	WeekResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/calendar [get]
func (h *CalendarHandler) Week(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	offset, err := queryInt(r, "week", 0)
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	view, err := h.svc.Planner.Week(r.Context(), ownerID, h.svc.Planner.Today(), offset)
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}

	resp := WeekResponse{
		Offset: view.Offset,
		Title:  view.Title,
		Start:  view.Start.String(),
		End:    view.End.String(),
		Days:   make([]DayResponse, len(view.Days)),
	}
	for i, d := range view.Days {
		resp.Days[i] = DayResponse{
			Date:    d.Date.String(),
			Weekday: d.Weekday.String(),
			ItemIDs: d.ItemIDs,
			Items:   summarize(d.Items),
		}
	}
	httpx.JSON(w, http.StatusOK, resp)
}
