package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/wardrobe/pkg/auth"
	"github.com/ghuser/wardrobe/pkg/logger"
	appsvcs "github.com/ghuser/wardrobe/services/catalog/application/services"
	"github.com/ghuser/wardrobe/services/catalog/infrastructure/persistence/memory"
	taxsvcs "github.com/ghuser/wardrobe/services/taxonomy/application/services"
	taxmemory "github.com/ghuser/wardrobe/services/taxonomy/infrastructure/persistence/memory"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	owner := uuid.New()
	options := taxsvcs.NewOptionService(taxmemory.NewOptionRepository())
	require.NoError(t, options.SeedDefaults(t.Context(), owner))

	svcs := &appsvcs.Services{
		Clothing: appsvcs.NewClothingService(memory.NewClothingRepository(), nil, options, logger.Discard()),
	}
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(auth.WithUserID(req.Context(), owner)))
		})
	})
	CatalogRoutes(r, svcs, logger.Discard())
	return r
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestClothesLifecycle(t *testing.T) {
	h := newRouter(t)

	w := do(h, http.MethodPost, "/clothes/", `{
		"category":"socks","color":"white","material":"wool","sub_type":"crew",
		"seasons":["winter"],"occasions":["sport"]
	}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "/api/clothes/1", w.Header().Get("Location"))
	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "XXX", created["display_name"])
	assert.NotContains(t, created, "material")
	assert.Equal(t, []any{}, created["occasions"])
	assert.Equal(t, "socks - white / crew", created["description"])

	w = do(h, http.MethodGet, "/clothes/1", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(h, http.MethodGet, "/clothes/?category=socks&season=winter", "")
	require.Equal(t, http.StatusOK, w.Code)
	var listed []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Len(t, listed, 1)

	w = do(h, http.MethodDelete, "/clothes/1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(h, http.MethodGet, "/clothes/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClothesValidation(t *testing.T) {
	h := newRouter(t)

	w := do(h, http.MethodPost, "/clothes/", `{"category":"top","color":"white","seasons":[]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(h, http.MethodPost, "/clothes/", `{"category":"top","color":"white","seasons":["summer"],"occasions":["casual"]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(h, http.MethodGet, "/clothes/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClothesForm(t *testing.T) {
	h := newRouter(t)

	w := do(h, http.MethodGet, "/clothes/form?category=outerwear", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var form map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &form))
	assert.Equal(t, map[string]any{"material": "required", "sub_type": "hidden", "occasions": "required"}, form["fields"])
	assert.Equal(t, []any{}, form["sub_types"])
}
