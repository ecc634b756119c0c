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
	appsvcs "github.com/ghuser/wardrobe/services/taxonomy/application/services"
	"github.com/ghuser/wardrobe/services/taxonomy/infrastructure/persistence/memory"
)

func newRouter(owner uuid.UUID) http.Handler {
	svcs := &appsvcs.Services{
		Options:   appsvcs.NewOptionService(memory.NewOptionRepository()),
		Locations: appsvcs.NewLocationService(memory.NewLocationRepository()),
	}
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(auth.WithUserID(req.Context(), owner)))
		})
	})
	TaxonomyRoutes(r, svcs, logger.Discard())
	return r
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestOptionRoutes(t *testing.T) {
	h := newRouter(uuid.New())

	w := do(h, http.MethodPost, "/options/color:top/", `{"value":"navy"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(h, http.MethodPost, "/options/color:top/", `{"value":"navy"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(h, http.MethodGet, "/options/color:top/", "")
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []any{"navy"}, body["values"])

	w = do(h, http.MethodDelete, "/options/color:top/navy", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(h, http.MethodGet, "/options/size:top/", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestLocationRoutes(t *testing.T) {
	h := newRouter(uuid.New())

	w := do(h, http.MethodPost, "/locations/", `{"value":"Hsinchu"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(h, http.MethodPost, "/locations/", `{"value":""}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(h, http.MethodDelete, "/locations/Hsinchu", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(h, http.MethodGet, "/locations/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"cities":[]}`, w.Body.String())
}
