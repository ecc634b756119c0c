package handlers

import (
	"net/http"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"github.com/ghuser/wardrobe/pkg/auth"
	"github.com/ghuser/wardrobe/pkg/errhttp"
	"github.com/ghuser/wardrobe/pkg/httpx"
	"github.com/ghuser/wardrobe/pkg/logger"
	pkgvalidator "github.com/ghuser/wardrobe/pkg/validator"
	appsvcs "github.com/ghuser/wardrobe/services/outfit/application/services"
)

// SaveOutfitRequest is the request body for POST /outfits/{date}.
type SaveOutfitRequest struct {
	ItemIDs []int64 `json:"item_ids" validate:"dive,gt=0" example:"1,2"`
} // @name SaveOutfitRequest

// OutfitResponse is the outfit planned for one date.
type OutfitResponse struct {
	Date    string        `json:"date"     example:"2025-01-06"`
	ItemIDs []int64       `json:"item_ids" example:"1,2,3"`
	Items   []ItemSummary `json:"items"`
} // @name OutfitResponse

// OutfitRangeResponse maps each date that has a record to its ids.
type OutfitRangeResponse struct {
	From    string             `json:"from"    example:"2025-01-06"`
	To      string             `json:"to"      example:"2025-01-12"`
	Outfits map[string][]int64 `json:"outfits"`
} // @name OutfitRangeResponse

// PastOutfit is one entry of GET /outfits/past.
type PastOutfit struct {
	Date    string  `json:"date"     example:"2025-01-05"`
	ItemIDs []int64 `json:"item_ids" example:"1,2"`
} // @name PastOutfit

// PlanDateResponse is one selectable planning date.
type PlanDateResponse struct {
	Date    string `json:"date"    example:"2025-01-06"`
	Weekday string `json:"weekday" example:"Monday"`
} // @name PlanDateResponse

type OutfitHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

func NewOutfitHandler(svc *appsvcs.Services, log logger.Logger) *OutfitHandler {
	return &OutfitHandler{svc: svc, log: log}
}

// Get returns the outfit for a date.
//
//	@Summary	Get outfit
//	@Tags		outfits
//	@Produce	json
//	@Param		date	path		string	true	"YYYY-MM-DD"
//	@Success	200		{object}	OutfitResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/outfits/{date} [get]
func (h *OutfitHandler) Get(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	date, err := pathDate(r)
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	h.writeOutfit(w, r, ownerID, date)
}

// Save merges items into the outfit for a date. Items already planned stay.
//
//	@Summary		Add items to outfit
//	@Description	Unions the given ids into the date's outfit. Nothing is ever removed by this call; use DELETE to clear.
//	@Tags			outfits
//	@Accept			json
//	@Produce		json
//	@Param			date	path		string				true	"YYYY-MM-DD"
//	@Param			request	body		SaveOutfitRequest	true	"Ids to add"
//	@Success		200		{object}	OutfitResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/outfits/{date} [post]
func (h *OutfitHandler) Save(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	date, err := pathDate(r)
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[SaveOutfitRequest](w, r)
	if !ok {
		return
	}
	if _, err := h.svc.Planner.Save(r.Context(), ownerID, date, req.ItemIDs); err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	h.log.InfoContext(r.Context(), "outfit saved", "date", date.String(), "added", len(req.ItemIDs))
	h.writeOutfit(w, r, ownerID, date)
}

// Clear empties the outfit for a date.
//
//	@Summary	Clear outfit
//	@Tags		outfits
//	@Param		date	path	string	true	"YYYY-MM-DD"
//	@Success	204
//	@Failure	422	{object}	ErrorResponse
//	@Router		/outfits/{date} [delete]
func (h *OutfitHandler) Clear(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	date, err := pathDate(r)
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	if err := h.svc.Planner.Clear(r.Context(), ownerID, date); err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	httpx.NoContent(w)
}

// Range lists the outfits recorded between two dates, inclusive.
//
//	@Summary	List outfits in range
//	@Tags		outfits
//	@Produce	json
//	@Param		from	query		string	true	"YYYY-MM-DD"
//	@Param		to		query		string	true	"YYYY-MM-DD"
//	@Success	200		{object}	OutfitRangeResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/outfits [get]
func (h *OutfitHandler) Range(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	from, err := parseDate(r.URL.Query().Get("from"))
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	to, err := parseDate(r.URL.Query().Get("to"))
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	byDate, err := h.svc.Planner.GetRange(r.Context(), ownerID, from, to)
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	out := make(map[string][]int64, len(byDate))
	for d, ids := range byDate {
		out[d.String()] = ids
	}
	httpx.JSON(w, http.StatusOK, OutfitRangeResponse{From: from.String(), To: to.String(), Outfits: out})
}

// Past lists outfits dated before a day, newest first.
//
//	@Summary	List past outfits
//	@Tags		outfits
//	@Produce	json
//	@Param		as_of	query	string	false	"YYYY-MM-DD, defaults to today"
//	@Success	200		{array}	PastOutfit
//	@Router		/outfits/past [get]
func (h *OutfitHandler) Past(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	asOf := h.svc.Planner.Today()
	if raw := r.URL.Query().Get("as_of"); raw != "" {
		if asOf, err = parseDate(raw); err != nil {
			errhttp.WriteError(w, r, h.log, err)
			return
		}
	}
	records, err := h.svc.Planner.ListPast(r.Context(), ownerID, asOf)
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	out := make([]PastOutfit, len(records))
	for i, o := range records {
		out[i] = PastOutfit{Date: o.Date.String(), ItemIDs: o.ItemIDs}
	}
	httpx.JSON(w, http.StatusOK, out)
}

// Upcoming lists the dates offered for planning.
//
//	@Summary	Upcoming planning dates
//	@Tags		outfits
//	@Produce	json
//	@Param		days	query	int	false	"Number of dates, default 14"
//	@Success	200		{array}	PlanDateResponse
//	@Router		/outfits/upcoming [get]
func (h *OutfitHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	n, err := queryInt(r, "days", 0)
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	if n > 366 {
		n = 366
	}
	dates := h.svc.Planner.UpcomingDates(n)
	out := make([]PlanDateResponse, len(dates))
	for i, d := range dates {
		out[i] = PlanDateResponse{Date: d.Date.String(), Weekday: d.Weekday.String()}
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *OutfitHandler) writeOutfit(w http.ResponseWriter, r *http.Request, ownerID uuid.UUID, date civil.Date) {
	ids, err := h.svc.Planner.Get(r.Context(), ownerID, date)
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	items, err := h.svc.Planner.Items(r.Context(), ownerID, date)
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, OutfitResponse{Date: date.String(), ItemIDs: ids, Items: summarize(items)})
}
