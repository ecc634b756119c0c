package validator_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgvalidator "github.com/ghuser/wardrobe/pkg/validator"
)

type clothingReq struct {
	OwnerID string `json:"owner_id" validate:"required,uuid"`
	Color   string `json:"color" validate:"required,max=10"`
	Email   string `json:"email" validate:"omitempty,email"`
}

func TestFormatValidationErrors(t *testing.T) {
	const owner = "550e8400-e29b-41d4-a716-446655440000"
	tests := []struct {
		name string
		req  clothingReq
		want map[string]string
	}{
		{"valid", clothingReq{OwnerID: owner, Color: "navy"}, map[string]string{}},
		{"missing", clothingReq{}, map[string]string{
			"owner_id": "This field is required",
			"color":    "This field is required",
		}},
		{"bad uuid", clothingReq{OwnerID: "nope", Color: "navy"}, map[string]string{"owner_id": "Must be a valid UUID"}},
		{"too long", clothingReq{OwnerID: owner, Color: "ultramarine"}, map[string]string{"color": "Maximum length is 10"}},
		{"bad email", clothingReq{OwnerID: owner, Color: "navy", Email: "x@"}, map[string]string{"email": "Must be a valid email address"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pkgvalidator.FormatValidationErrors(pkgvalidator.Validate(&tt.req)))
		})
	}
}

func TestFormatValidationErrors_NonValidationError(t *testing.T) {
	assert.Empty(t, pkgvalidator.FormatValidationErrors(http.ErrNoCookie))
	assert.Empty(t, pkgvalidator.FormatValidationErrors(nil))
}

type reminderReq struct {
	Time   string   `json:"time" validate:"required,clock"`
	Date   string   `json:"date" validate:"omitempty,isodate"`
	Season []string `json:"seasons" validate:"omitempty,dive,oneof=spring summer autumn winter"`
}

func TestValidate_CustomTags(t *testing.T) {
	tests := []struct {
		name      string
		req       reminderReq
		wantField string
		wantMsg   string
	}{
		{"valid", reminderReq{Time: "07:00", Date: "2025-01-06", Season: []string{"winter"}}, "", ""},
		{"midnight", reminderReq{Time: "00:00"}, "", ""},
		{"hour out of range", reminderReq{Time: "24:00"}, "time", "Must be a time in HH:MM format"},
		{"missing leading zero", reminderReq{Time: "7:00"}, "time", "Must be a time in HH:MM format"},
		{"bad date", reminderReq{Time: "07:00", Date: "2025-02-30"}, "date", "Must be a date in YYYY-MM-DD format"},
		{"unknown season", reminderReq{Time: "07:00", Season: []string{"monsoon"}}, "seasons[0]", "Must be one of: spring, summer, autumn, winter"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := pkgvalidator.Validate(&tt.req)
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantMsg, pkgvalidator.FormatValidationErrors(err)[tt.wantField])
		})
	}
}

func TestVar(t *testing.T) {
	assert.NoError(t, pkgvalidator.Var("06:45", "clock"))
	assert.Error(t, pkgvalidator.Var("6:45pm", "clock"))
	assert.NoError(t, pkgvalidator.Var("alice@example.com", "email"))
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		limit    int64
		wantOK   bool
		wantCode int
		wantErr  string
	}{
		{"valid", `{"owner_id":"550e8400-e29b-41d4-a716-446655440000","color":"navy"}`, 0, true, http.StatusOK, ""},
		{"malformed", `{bad json`, 0, false, http.StatusBadRequest, "Invalid JSON"},
		{"empty", ``, 0, false, http.StatusBadRequest, "Invalid JSON: empty body"},
		{"missing field", `{"color":"navy"}`, 0, false, http.StatusUnprocessableEntity, "Validation failed"},
		{"too large", `{"owner_id":"550e8400-e29b-41d4-a716-446655440000","color":"navy"}`, 8, false, http.StatusRequestEntityTooLarge, "Request body too large"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/clothes", strings.NewReader(tt.body))
			if tt.limit > 0 {
				r.Body = http.MaxBytesReader(w, r.Body, tt.limit)
			}

			got, ok := pkgvalidator.ValidateRequest[clothingReq](w, r)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, "navy", got.Color)
				return
			}
			assert.Nil(t, got)
			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantErr, decodeBody(t, w)["error"])
		})
	}
}

func TestValidateRequest_FieldMap(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/clothes", strings.NewReader(`{"owner_id":"nope","color":"navy"}`))

	_, ok := pkgvalidator.ValidateRequest[clothingReq](w, r)
	require.False(t, ok)

	fields, _ := decodeBody(t, w)["fields"].(map[string]any)
	assert.Equal(t, "Must be a valid UUID", fields["owner_id"])
}
