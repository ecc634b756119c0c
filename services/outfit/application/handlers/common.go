package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/wardrobe/pkg/apperr"
	catmodels "github.com/ghuser/wardrobe/services/catalog/domain/models"
	outfitdomain "github.com/ghuser/wardrobe/services/outfit/domain"
	"github.com/ghuser/wardrobe/services/outfit/domain/models"
)

// ItemSummary is the clothing data embedded in outfit and history payloads.
type ItemSummary struct {
	ID          int64  `json:"id"                 example:"42"`
	Category    string `json:"category"           example:"top"`
	Color       string `json:"color"              example:"blue"`
	Material    string `json:"material,omitempty" example:"shirt"`
	SubType     string `json:"sub_type,omitempty" example:"long-sleeve"`
	DisplayName string `json:"display_name"       example:"XXX"`
	Description string `json:"description"        example:"top - blue / shirt / long-sleeve"`
} // @name ItemSummary

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid date"`
} // @name ErrorResponse

func summarize(items []*catmodels.ClothingItem) []ItemSummary {
	out := make([]ItemSummary, len(items))
	for i, item := range items {
		out[i] = summary(item)
	}
	return out
}

func summary(item *catmodels.ClothingItem) ItemSummary {
	return ItemSummary{
		ID:          item.ID,
		Category:    string(item.Category),
		Color:       item.Color,
		Material:    item.Material,
		SubType:     item.SubType,
		DisplayName: item.Label(),
		Description: item.Describe(),
	}
}

func pathDate(r *http.Request) (civil.Date, error) {
	return parseDate(chi.URLParam(r, "date"))
}

func parseDate(s string) (civil.Date, error) {
	d, err := models.ParseDate(s)
	if err != nil {
		return civil.Date{}, apperr.Invalid(outfitdomain.ErrInvalidDate, "%s", err)
	}
	return d, nil
}

// queryInt reads an optional integer query parameter.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.Invalid(apperr.ErrValidation, "%s must be an integer", name)
	}
	return n, nil
}

// parseIDs reads a comma-separated id list such as "1,2,3".
func parseIDs(raw string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil || id <= 0 {
			return nil, apperr.Invalid(outfitdomain.ErrInvalidOutfit, "%q is not a clothing id", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
