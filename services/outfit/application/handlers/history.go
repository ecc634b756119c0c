package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/wardrobe/pkg/apperr"
	"github.com/ghuser/wardrobe/pkg/auth"
	"github.com/ghuser/wardrobe/pkg/errhttp"
	"github.com/ghuser/wardrobe/pkg/httpx"
	"github.com/ghuser/wardrobe/pkg/logger"
	appsvcs "github.com/ghuser/wardrobe/services/outfit/application/services"
	outfitdomain "github.com/ghuser/wardrobe/services/outfit/domain"
)

// CompanionResponse is an item worn together with the subject item.
type CompanionResponse struct {
	ItemID int64 `json:"item_id" example:"7"`
	Count  int   `json:"count"   example:"3"`
} // @name CompanionResponse

// ItemHistoryResponse is the wear history of a single item.
type ItemHistoryResponse struct {
	ItemID     int64               `json:"item_id"     example:"42"`
	UsageCount int                 `json:"usage_count" example:"4"`
	Dates      []string            `json:"dates"`
	Companions []CompanionResponse `json:"companions"`
} // @name ItemHistoryResponse

// ReportCompanion is a resolved companion in a usage report.
type ReportCompanion struct {
	Item  ItemSummary `json:"item"`
	Count int         `json:"count" example:"3"`
} // @name ReportCompanion

// ItemReportResponse is one entry of GET /history/report. Item is null when
// the id no longer exists.
type ItemReportResponse struct {
	ItemID     int64             `json:"item_id"     example:"42"`
	Item       *ItemSummary      `json:"item"`
	UsageCount int               `json:"usage_count" example:"4"`
	Companions []ReportCompanion `json:"companions"`
} // @name ItemReportResponse

type HistoryHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

func NewHistoryHandler(svc *appsvcs.Services, log logger.Logger) *HistoryHandler {
	return &HistoryHandler{svc: svc, log: log}
}

// Item returns the wear history of one clothing item.
//
//	@Summary	Item history
//	@Tags		history
//	@Produce	json
//	@Param		id	path		int	true	"Clothing ID"
//	@Success	200	{object}	ItemHistoryResponse
//	@Failure	400	{object}	ErrorResponse
//	@Router		/history/{id} [get]
func (h *HistoryHandler) Item(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.JSONError(w, http.StatusBadRequest, "invalid clothing id")
		return
	}

	history, err := h.svc.History.ItemHistory(r.Context(), ownerID, id)
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	ranked, err := h.svc.History.CompanionFrequency(r.Context(), ownerID, id)
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}

	resp := ItemHistoryResponse{
		ItemID:     id,
		UsageCount: len(history),
		Dates:      make([]string, len(history)),
		Companions: make([]CompanionResponse, len(ranked)),
	}
	for i, o := range history {
		resp.Dates[i] = o.Date.String()
	}
	for i, c := range ranked {
		resp.Companions[i] = CompanionResponse{ItemID: c.ItemID, Count: c.Count}
	}
	httpx.JSON(w, http.StatusOK, resp)
}

// Report summarizes usage and top companions for several items.
//
//	@Summary	Usage report
//	@Tags		history
//	@Produce	json
//	@Param		ids	query	string	true	"Comma-separated clothing ids"
//	@Param		top	query	int		false	"Companions per item, default 5"
//	@Success	200	{array}	ItemReportResponse
//	@Failure	422	{object}	ErrorResponse
//	@Router		/history/report [get]
func (h *HistoryHandler) Report(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	ids, err := parseIDs(r.URL.Query().Get("ids"))
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	if len(ids) == 0 {
		errhttp.WriteError(w, r, h.log, apperr.Invalid(outfitdomain.ErrInvalidOutfit, "ids is required"))
		return
	}
	top, err := queryInt(r, "top", 0)
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}

	reports, err := h.svc.History.Report(r.Context(), ownerID, ids, top)
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	out := make([]ItemReportResponse, len(reports))
	for i, rep := range reports {
		entry := ItemReportResponse{
			ItemID:     rep.ItemID,
			UsageCount: rep.UsageCount,
			Companions: make([]ReportCompanion, len(rep.Companions)),
		}
		if rep.Item != nil {
			s := summary(rep.Item)
			entry.Item = &s
		}
		for j, c := range rep.Companions {
			entry.Companions[j] = ReportCompanion{Item: summary(c.Item), Count: c.Count}
		}
		out[i] = entry
	}
	httpx.JSON(w, http.StatusOK, out)
}
