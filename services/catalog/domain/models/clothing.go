package models

import (
	"time"

	"github.com/google/uuid"
)

// Category is the top-level kind of a clothing item.
type Category string

const (
	CategoryTop       Category = "top"
	CategoryBottom    Category = "bottom"
	CategoryOuterwear Category = "outerwear"
	CategorySocks     Category = "socks"
)

// Categories in presentation order.
var Categories = []Category{CategoryTop, CategoryBottom, CategoryOuterwear, CategorySocks}

func (c Category) Valid() bool {
	_, ok := Policies[c]
	return ok
}

type Season string

const (
	Spring Season = "spring"
	Summer Season = "summer"
	Autumn Season = "autumn"
	Winter Season = "winter"
)

// Seasons in calendar order.
var Seasons = []Season{Spring, Summer, Autumn, Winter}

func (s Season) Valid() bool {
	for _, known := range Seasons {
		if s == known {
			return true
		}
	}
	return false
}

// UnnamedLabel stands in for an item without a display name.
const UnnamedLabel = "XXX"

// ClothingItem is one physical garment owned by a user.
// Material and SubType are empty when the category does not use them.
type ClothingItem struct {
	ID          int64
	OwnerID     uuid.UUID
	Category    Category
	Color       string
	Material    string
	SubType     string
	Seasons     []Season
	Occasions   []string
	DisplayName string
	CreatedAt   time.Time
}

// Label is the display name, or UnnamedLabel when none was given.
func (c *ClothingItem) Label() string {
	if c.DisplayName == "" {
		return UnnamedLabel
	}
	return c.DisplayName
}

// Describe renders "category - color / material [/ subType]", omitting absent parts.
func (c *ClothingItem) Describe() string {
	s := string(c.Category) + " - " + c.Color
	if c.Material != "" {
		s += " / " + c.Material
	}
	if c.SubType != "" {
		s += " / " + c.SubType
	}
	return s
}

func (c *ClothingItem) HasSeason(s Season) bool {
	for _, have := range c.Seasons {
		if have == s {
			return true
		}
	}
	return false
}

func (c *ClothingItem) HasOccasion(o string) bool {
	for _, have := range c.Occasions {
		if have == o {
			return true
		}
	}
	return false
}

// Draft carries the editable fields of an item before policy validation.
type Draft struct {
	Category    string
	Color       string
	Material    string
	SubType     string
	Seasons     []string
	Occasions   []string
	DisplayName string
}

// NewClothingItem builds an unsaved item from a draft that already passed
// services.ApplyPolicy.
func NewClothingItem(ownerID uuid.UUID, d Draft) *ClothingItem {
	seasons := make([]Season, len(d.Seasons))
	for i, s := range d.Seasons {
		seasons[i] = Season(s)
	}
	return &ClothingItem{
		OwnerID:     ownerID,
		Category:    Category(d.Category),
		Color:       d.Color,
		Material:    d.Material,
		SubType:     d.SubType,
		Seasons:     seasons,
		Occasions:   append([]string{}, d.Occasions...),
		DisplayName: d.DisplayName,
		CreatedAt:   time.Now().UTC(),
	}
}

// Filter narrows List. Empty fields match everything; set fields AND together.
type Filter struct {
	Category string
	Color    string
	Material string
	Season   string
	Occasion string
}

// Matches reports whether item satisfies every set field of f.
func (f Filter) Matches(item *ClothingItem) bool {
	if f.Category != "" && string(item.Category) != f.Category {
		return false
	}
	if f.Color != "" && item.Color != f.Color {
		return false
	}
	if f.Material != "" && item.Material != f.Material {
		return false
	}
	if f.Season != "" && !item.HasSeason(Season(f.Season)) {
		return false
	}
	if f.Occasion != "" && !item.HasOccasion(f.Occasion) {
		return false
	}
	return true
}
