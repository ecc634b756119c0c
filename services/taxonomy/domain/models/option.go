package models

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const maxValueLength = 64

// NormalizeValue trims v and rejects empty, over-long or control-character values.
// Used for both taxonomy values and city names.
func NormalizeValue(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", fmt.Errorf("value must not be empty")
	}
	if utf8.RuneCountInString(v) > maxValueLength {
		return "", fmt.Errorf("value must not exceed %d characters", maxValueLength)
	}
	for _, r := range v {
		if unicode.IsControl(r) {
			return "", fmt.Errorf("value must not contain control characters")
		}
	}
	return v, nil
}

// Choices are the taxonomy values offered when entering an item of one category.
type Choices struct {
	Colors    []string
	Materials []string
	SubTypes  []string
	Occasions []string
}
