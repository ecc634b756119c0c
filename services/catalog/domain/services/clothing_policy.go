// Package services contains stateless domain services for the catalog context.
package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/ghuser/wardrobe/services/catalog/domain/models"
)

const (
	maxValueLength = 64
	maxNameLength  = 255
)

// ApplyPolicy normalizes d and checks it against the policy of its category.
// Values are trimmed, forbidden fields are cleared, seasons are deduplicated
// into calendar order and occasions are deduplicated and sorted. All problems
// are reported together.
func ApplyPolicy(d *models.Draft) error {
	d.Category = strings.ToLower(strings.TrimSpace(d.Category))
	d.Color = strings.TrimSpace(d.Color)
	d.Material = strings.TrimSpace(d.Material)
	d.SubType = strings.TrimSpace(d.SubType)
	d.DisplayName = strings.TrimSpace(d.DisplayName)

	policy, ok := models.Policies[models.Category(d.Category)]
	if !ok {
		return fmt.Errorf("unknown category %q", d.Category)
	}

	var errs []error
	if d.Color == "" {
		errs = append(errs, errors.New("color is required"))
	}
	errs = append(errs, applyRule("material", policy.Material, &d.Material))
	errs = append(errs, applyRule("sub_type", policy.SubType, &d.SubType))

	seasons, err := normalizeSeasons(d.Seasons)
	errs = append(errs, err)
	d.Seasons = seasons

	d.Occasions = normalizeSet(d.Occasions)
	switch policy.Occasions {
	case models.Forbidden:
		d.Occasions = nil
	case models.Required:
		if len(d.Occasions) == 0 {
			errs = append(errs, errors.New("at least one occasion is required"))
		}
	}

	for _, v := range append([]string{d.Color, d.Material, d.SubType}, d.Occasions...) {
		if utf8.RuneCountInString(v) > maxValueLength {
			errs = append(errs, fmt.Errorf("value %q exceeds %d characters", v, maxValueLength))
		}
	}
	if utf8.RuneCountInString(d.DisplayName) > maxNameLength {
		errs = append(errs, fmt.Errorf("display_name exceeds %d characters", maxNameLength))
	}
	return errors.Join(errs...)
}

func applyRule(field string, rule models.Rule, v *string) error {
	switch rule {
	case models.Forbidden:
		*v = ""
	case models.Required:
		if *v == "" {
			return fmt.Errorf("%s is required", field)
		}
	}
	return nil
}

func normalizeSeasons(in []string) ([]string, error) {
	have := make(map[models.Season]bool, len(in))
	for _, raw := range in {
		s := models.Season(strings.ToLower(strings.TrimSpace(raw)))
		if !s.Valid() {
			return nil, fmt.Errorf("unknown season %q", raw)
		}
		have[s] = true
	}
	if len(have) == 0 {
		return nil, errors.New("at least one season is required")
	}
	out := make([]string, 0, len(have))
	for _, s := range models.Seasons {
		if have[s] {
			out = append(out, string(s))
		}
	}
	return out, nil
}

func normalizeSet(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, raw := range in {
		v := strings.TrimSpace(raw)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
