package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter_Matches(t *testing.T) {
	item := &ClothingItem{
		Category:  CategoryTop,
		Color:     "white",
		Material:  "shirt",
		SubType:   "long-sleeve",
		Seasons:   []Season{Spring, Autumn},
		Occasions: []string{"casual", "formal"},
	}

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{"empty filter", Filter{}, true},
		{"category", Filter{Category: "top"}, true},
		{"wrong category", Filter{Category: "bottom"}, false},
		{"color and material", Filter{Color: "white", Material: "shirt"}, true},
		{"season member", Filter{Season: "autumn"}, true},
		{"season not member", Filter{Season: "summer"}, false},
		{"occasion member", Filter{Occasion: "formal"}, true},
		{"and composition", Filter{Category: "top", Occasion: "sport"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(item))
		})
	}
}

func TestClothingItem_Presentation(t *testing.T) {
	item := &ClothingItem{Category: CategoryOuterwear, Color: "black", Material: "down", DisplayName: "Parka"}
	assert.Equal(t, "Parka", item.Label())
	assert.Equal(t, "outerwear - black / down", item.Describe())

	item = &ClothingItem{Category: CategoryBottom, Color: "black", Material: "denim", SubType: "trousers"}
	assert.Equal(t, UnnamedLabel, item.Label())
	assert.Equal(t, "bottom - black / denim / trousers", item.Describe())
}

func TestPolicies_CoverEveryCategory(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.Valid(), c)
	}
	assert.False(t, Category("hat").Valid())
}
