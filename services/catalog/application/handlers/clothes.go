package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/wardrobe/pkg/auth"
	"github.com/ghuser/wardrobe/pkg/errhttp"
	"github.com/ghuser/wardrobe/pkg/httpx"
	"github.com/ghuser/wardrobe/pkg/logger"
	pkgvalidator "github.com/ghuser/wardrobe/pkg/validator"
	appsvcs "github.com/ghuser/wardrobe/services/catalog/application/services"
	"github.com/ghuser/wardrobe/services/catalog/domain/models"
)

// ClothingRequest is the request body for POST /clothes and PUT /clothes/{id}.
// Fields the category does not use are accepted and discarded.
type ClothingRequest struct {
	Category    string   `json:"category"     validate:"required,oneof=top bottom outerwear socks" example:"top"`
	Color       string   `json:"color"        validate:"required,max=64"                          example:"white"`
	Material    string   `json:"material"     validate:"max=64"                                   example:"shirt"`
	SubType     string   `json:"sub_type"     validate:"max=64"                                   example:"long-sleeve"`
	Seasons     []string `json:"seasons"      validate:"required,min=1,dive,oneof=spring summer autumn winter"`
	Occasions   []string `json:"occasions"    validate:"dive,max=64"`
	DisplayName string   `json:"display_name" validate:"max=255"                                  example:"Oxford shirt"`
} // @name ClothingRequest

// ClothingResponse is one catalog entry.
type ClothingResponse struct {
	ID          int64     `json:"id"                 example:"42"`
	Category    string    `json:"category"           example:"top"`
	Color       string    `json:"color"              example:"white"`
	Material    string    `json:"material,omitempty" example:"shirt"`
	SubType     string    `json:"sub_type,omitempty" example:"long-sleeve"`
	Seasons     []string  `json:"seasons"`
	Occasions   []string  `json:"occasions"`
	DisplayName string    `json:"display_name"       example:"XXX"`
	Description string    `json:"description"        example:"top - white / shirt / long-sleeve"`
	CreatedAt   time.Time `json:"created_at"         example:"2024-01-15T10:30:00Z"`
} // @name ClothingResponse

// FormOptionsResponse tells a client which fields to show for a category and
// which values to offer.
type FormOptionsResponse struct {
	Category  string            `json:"category" example:"socks"`
	Fields    map[string]string `json:"fields"`
	Colors    []string          `json:"colors"`
	Materials []string          `json:"materials"`
	SubTypes  []string          `json:"sub_types"`
	Occasions []string          `json:"occasions"`
} // @name FormOptionsResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"clothing item not found"`
} // @name ErrorResponse

// ClothesHandler serves the catalog endpoints.
type ClothesHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

func NewClothesHandler(svc *appsvcs.Services, log logger.Logger) *ClothesHandler {
	return &ClothesHandler{svc: svc, log: log}
}

// Create adds a clothing item.
//
//	@Summary		Add clothing item
//	@Description	Validates the item against its category's field rules. Socks never keep a material or occasions; outerwear never keeps a sub type.
//	@Tags			clothes
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ClothingRequest	true	"Clothing item"
//	@Success		201		{object}	ClothingResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/clothes [post]
func (h *ClothesHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[ClothingRequest](w, r)
	if !ok {
		return
	}
	item, err := h.svc.Clothing.Add(r.Context(), ownerID, req.draft())
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	httpx.Created(w, "/api/clothes/"+strconv.FormatInt(item.ID, 10), toResponse(item))
}

// List returns the user's items, newest first.
//
//	@Summary	List clothing items
//	@Tags		clothes
//	@Produce	json
//	@Param		category	query		string	false	"top, bottom, outerwear or socks"
//	@Param		color		query		string	false	"Exact color"
//	@Param		material	query		string	false	"Exact material"
//	@Param		season		query		string	false	"Season the item is worn in"
//	@Param		occasion	query		string	false	"Occasion the item suits"
//	@Success	200			{array}		ClothingResponse
//	@Failure	422			{object}	ErrorResponse
//	@Router		/clothes [get]
func (h *ClothesHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	q := r.URL.Query()
	items, err := h.svc.Clothing.List(r.Context(), ownerID, models.Filter{
		Category: q.Get("category"),
		Color:    q.Get("color"),
		Material: q.Get("material"),
		Season:   q.Get("season"),
		Occasion: q.Get("occasion"),
	})
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	out := make([]ClothingResponse, len(items))
	for i, item := range items {
		out[i] = toResponse(item)
	}
	httpx.JSON(w, http.StatusOK, out)
}

// Get returns one item.
//
//	@Summary	Get clothing item
//	@Tags		clothes
//	@Produce	json
//	@Param		id	path		int	true	"Clothing id"
//	@Success	200	{object}	ClothingResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/clothes/{id} [get]
func (h *ClothesHandler) Get(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	id, ok := clothingID(w, r)
	if !ok {
		return
	}
	item, err := h.svc.Clothing.GetByID(r.Context(), ownerID, id)
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toResponse(item))
}

// Update replaces every editable field of an item.
//
//	@Summary	Update clothing item
//	@Tags		clothes
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"Clothing id"
//	@Param		request	body		ClothingRequest	true	"Replacement fields"
//	@Success	200		{object}	ClothingResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/clothes/{id} [put]
func (h *ClothesHandler) Update(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	id, ok := clothingID(w, r)
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[ClothingRequest](w, r)
	if !ok {
		return
	}
	item, err := h.svc.Clothing.Update(r.Context(), ownerID, id, req.draft())
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toResponse(item))
}

// Delete hard-deletes an item. Outfit records keep its id.
//
//	@Summary	Delete clothing item
//	@Tags		clothes
//	@Param		id	path	int	true	"Clothing id"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/clothes/{id} [delete]
func (h *ClothesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	id, ok := clothingID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Clothing.Delete(r.Context(), ownerID, id); err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	httpx.NoContent(w)
}

// Form returns the entry-form hints for a category.
//
//	@Summary	Entry form hints
//	@Tags		clothes
//	@Produce	json
//	@Param		category	query		string	true	"top, bottom, outerwear or socks"
//	@Success	200			{object}	FormOptionsResponse
//	@Failure	422			{object}	ErrorResponse
//	@Router		/clothes/form [get]
func (h *ClothesHandler) Form(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	opts, err := h.svc.Clothing.FormOptions(r.Context(), ownerID, r.URL.Query().Get("category"))
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, FormOptionsResponse{
		Category: string(opts.Category),
		Fields: map[string]string{
			"material":  ruleName(opts.Policy.Material),
			"sub_type":  ruleName(opts.Policy.SubType),
			"occasions": ruleName(opts.Policy.Occasions),
		},
		Colors:    nonNil(opts.Choices.Colors),
		Materials: nonNil(opts.Choices.Materials),
		SubTypes:  nonNil(opts.Choices.SubTypes),
		Occasions: nonNil(opts.Choices.Occasions),
	})
}

func (req *ClothingRequest) draft() models.Draft {
	return models.Draft{
		Category:    req.Category,
		Color:       req.Color,
		Material:    req.Material,
		SubType:     req.SubType,
		Seasons:     req.Seasons,
		Occasions:   req.Occasions,
		DisplayName: req.DisplayName,
	}
}

func clothingID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.JSONError(w, http.StatusBadRequest, "invalid clothing id")
		return 0, false
	}
	return id, true
}

func toResponse(item *models.ClothingItem) ClothingResponse {
	seasons := make([]string, len(item.Seasons))
	for i, s := range item.Seasons {
		seasons[i] = string(s)
	}
	return ClothingResponse{
		ID:          item.ID,
		Category:    string(item.Category),
		Color:       item.Color,
		Material:    item.Material,
		SubType:     item.SubType,
		Seasons:     seasons,
		Occasions:   nonNil(item.Occasions),
		DisplayName: item.Label(),
		Description: item.Describe(),
		CreatedAt:   item.CreatedAt,
	}
}

func ruleName(r models.Rule) string {
	if r == models.Forbidden {
		return "hidden"
	}
	return "required"
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
