package handlers

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/wardrobe/pkg/auth"
	"github.com/ghuser/wardrobe/pkg/errhttp"
	"github.com/ghuser/wardrobe/pkg/httpx"
	"github.com/ghuser/wardrobe/pkg/logger"
	pkgvalidator "github.com/ghuser/wardrobe/pkg/validator"
	appsvcs "github.com/ghuser/wardrobe/services/taxonomy/application/services"
)

// AddValueRequest is the request body for POST /options/{key} and POST /locations.
type AddValueRequest struct {
	Value string `json:"value" validate:"required,max=64" example:"navy"`
} // @name AddValueRequest

// OptionListResponse lists the values under one category key.
type OptionListResponse struct {
	Key    string   `json:"key"    example:"color:top"`
	Values []string `json:"values" example:"black,white"`
} // @name OptionListResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"option already exists"`
} // @name ErrorResponse

// OptionHandler serves the taxonomy option endpoints.
type OptionHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

func NewOptionHandler(svc *appsvcs.Services, log logger.Logger) *OptionHandler {
	return &OptionHandler{svc: svc, log: log}
}

// List returns the values under a category key.
//
//	@Summary		List taxonomy values
//	@Tags			options
//	@Produce		json
//	@Param			key	path		string	true	"Category key, e.g. color:top or occasion"
//	@Success		200	{object}	OptionListResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Router			/options/{key} [get]
func (h *OptionHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	key := pathParam(r, "key")
	values, err := h.svc.Options.List(r.Context(), ownerID, key)
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, OptionListResponse{Key: key, Values: values})
}

// Add appends a value to a category key.
//
//	@Summary		Add taxonomy value
//	@Tags			options
//	@Accept			json
//	@Produce		json
//	@Param			key		path		string			true	"Category key"
//	@Param			request	body		AddValueRequest	true	"Value to add"
//	@Success		201		{object}	OptionListResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/options/{key} [post]
func (h *OptionHandler) Add(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[AddValueRequest](w, r)
	if !ok {
		return
	}
	key := pathParam(r, "key")
	if _, err := h.svc.Options.Add(r.Context(), ownerID, key, req.Value); err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	values, err := h.svc.Options.List(r.Context(), ownerID, key)
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, OptionListResponse{Key: key, Values: values})
}

// Remove deletes a value from a category key. Absent values succeed.
//
//	@Summary		Remove taxonomy value
//	@Tags			options
//	@Param			key		path	string	true	"Category key"
//	@Param			value	path	string	true	"Value to remove"
//	@Success		204
//	@Failure		422	{object}	ErrorResponse
//	@Router			/options/{key}/{value} [delete]
func (h *OptionHandler) Remove(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	if err := h.svc.Options.Remove(r.Context(), ownerID, pathParam(r, "key"), pathParam(r, "value")); err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	httpx.NoContent(w)
}

func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
