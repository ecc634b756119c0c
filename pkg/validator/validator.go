// Package validator decodes JSON request bodies and checks them against
// go-playground/validator struct tags. Field names in error maps follow the
// json tag, so clients see the same keys they sent.
package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ghuser/wardrobe/pkg/httpx"
)

var (
	validate = newValidate()
	clockRe  = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// clock: 24h wall-clock "HH:MM".
	_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		return clockRe.MatchString(fl.Field().String())
	})
	// isodate: calendar date "YYYY-MM-DD".
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(time.DateOnly, fl.Field().String())
		return err == nil
	})

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// Validate checks s against its validate tags.
func Validate(s any) error {
	return validate.Struct(s)
}

// Var checks a single value against tag, e.g. "email" or "clock".
func Var(v any, tag string) error {
	return validate.Var(v, tag)
}

// fixed messages; tags with a parameter are handled in describe.
var messages = map[string]string{
	"required": "This field is required",
	"uuid":     "Must be a valid UUID",
	"uuid4":    "Must be a valid UUID",
	"email":    "Must be a valid email address",
	"url":      "Must be a valid URL",
	"numeric":  "Must be a numeric value",
	"alpha":    "Must contain only letters",
	"alphanum": "Must contain only letters and numbers",
	"clock":    "Must be a time in HH:MM format",
	"isodate":  "Must be a date in YYYY-MM-DD format",
}

// FormatValidationErrors maps each failing field to a readable message. Errors
// that did not come from the validator produce an empty map.
func FormatValidationErrors(err error) map[string]string {
	out := make(map[string]string)
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return out
	}
	for _, fe := range ve {
		out[fe.Field()] = describe(fe)
	}
	return out
}

func describe(fe validator.FieldError) string {
	if msg, ok := messages[fe.Tag()]; ok {
		return msg
	}
	switch fe.Tag() {
	case "min":
		return "Minimum length is " + fe.Param()
	case "max":
		return "Maximum length is " + fe.Param()
	case "gte":
		return "Must be greater than or equal to " + fe.Param()
	case "lte":
		return "Must be less than or equal to " + fe.Param()
	case "oneof":
		return "Must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	}
	return fmt.Sprintf("Validation failed on '%s'", fe.Tag())
}

// ValidateRequest decodes r's JSON body into a T and validates it. On failure
// it writes the response itself (400 for bad JSON, 413 past the body limit,
// 422 with a per-field map) and returns false.
func ValidateRequest[T any](w http.ResponseWriter, r *http.Request) (*T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			httpx.JSONError(w, http.StatusRequestEntityTooLarge, "Request body too large")
		case errors.Is(err, io.EOF):
			httpx.JSONError(w, http.StatusBadRequest, "Invalid JSON: empty body")
		default:
			httpx.JSONError(w, http.StatusBadRequest, "Invalid JSON")
		}
		return nil, false
	}
	if err := Validate(&req); err != nil {
		httpx.JSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  "Validation failed",
			"fields": FormatValidationErrors(err),
		})
		return nil, false
	}
	return &req, true
}
