package models

import (
	"fmt"
	"strings"
)

// Facet is the attribute a taxonomy list supplies values for.
type Facet string

const (
	FacetColor    Facet = "color"
	FacetMaterial Facet = "material"
	FacetSubType  Facet = "subtype"
	FacetOccasion Facet = "occasion"
)

// Categories lists the clothing categories taxonomy keys may be scoped to.
var Categories = []string{"top", "bottom", "outerwear", "socks"}

// CategoryKey names one taxonomy list: "<facet>:<category>" such as
// "color:top", or the global "occasion".
type CategoryKey string

// OccasionKey is the single global occasion list.
const OccasionKey CategoryKey = CategoryKey(FacetOccasion)

// KeyFor returns the key of facet's list for category.
func KeyFor(facet Facet, category string) CategoryKey {
	if facet == FacetOccasion {
		return OccasionKey
	}
	return CategoryKey(string(facet) + ":" + category)
}

// ParseCategoryKey validates s as a category key.
func ParseCategoryKey(s string) (CategoryKey, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == string(OccasionKey) {
		return OccasionKey, nil
	}

	facet, category, ok := strings.Cut(s, ":")
	if !ok {
		return "", fmt.Errorf("key %q must look like <facet>:<category> or %q", s, OccasionKey)
	}
	switch Facet(facet) {
	case FacetColor, FacetMaterial, FacetSubType:
	default:
		return "", fmt.Errorf("unknown facet %q", facet)
	}
	if !isCategory(category) {
		return "", fmt.Errorf("unknown category %q", category)
	}
	return CategoryKey(s), nil
}

func (k CategoryKey) String() string { return string(k) }

func isCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
