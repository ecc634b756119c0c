package handlers

import (
	"net/http"

	"github.com/ghuser/wardrobe/pkg/auth"
	"github.com/ghuser/wardrobe/pkg/errhttp"
	"github.com/ghuser/wardrobe/pkg/httpx"
	"github.com/ghuser/wardrobe/pkg/logger"
	pkgvalidator "github.com/ghuser/wardrobe/pkg/validator"
	appsvcs "github.com/ghuser/wardrobe/services/taxonomy/application/services"
)

// LocationListResponse lists cities in insertion order.
type LocationListResponse struct {
	Cities []string `json:"cities" example:"Taishan,Banqiao"`
} // @name LocationListResponse

type LocationHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

func NewLocationHandler(svc *appsvcs.Services, log logger.Logger) *LocationHandler {
	return &LocationHandler{svc: svc, log: log}
}

// List returns the user's weather cities.
//
//	@Summary	List locations
//	@Tags		locations
//	@Produce	json
//	@Success	200	{object}	LocationListResponse
//	@Failure	401	{object}	ErrorResponse
//	@Router		/locations [get]
func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	cities, err := h.svc.Locations.List(r.Context(), ownerID)
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, LocationListResponse{Cities: cities})
}

// Add registers a city.
//
//	@Summary	Add location
//	@Tags		locations
//	@Accept		json
//	@Produce	json
//	@Param		request	body		AddValueRequest	true	"City name"
//	@Success	201		{object}	LocationListResponse
//	@Failure	409		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/locations [post]
func (h *LocationHandler) Add(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[AddValueRequest](w, r)
	if !ok {
		return
	}
	if _, err := h.svc.Locations.Add(r.Context(), ownerID, req.Value); err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	cities, err := h.svc.Locations.List(r.Context(), ownerID)
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, LocationListResponse{Cities: cities})
}

// Remove deletes a city. Absent cities succeed.
//
//	@Summary	Remove location
//	@Tags		locations
//	@Param		city	path	string	true	"City name"
//	@Success	204
//	@Router		/locations/{city} [delete]
func (h *LocationHandler) Remove(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	if err := h.svc.Locations.Remove(r.Context(), ownerID, pathParam(r, "city")); err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	httpx.NoContent(w)
}
