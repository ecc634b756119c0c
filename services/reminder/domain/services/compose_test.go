package services

import (
	"strings"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catmodels "github.com/ghuser/wardrobe/services/catalog/domain/models"
	"github.com/ghuser/wardrobe/services/reminder/domain/models"
)

var monday = civil.Date{Year: 2025, Month: 1, Day: 6}

func outfit() []*catmodels.ClothingItem {
	return []*catmodels.ClothingItem{
		{ID: 1, Category: catmodels.CategoryTop, Color: "white", Material: "shirt", SubType: "long-sleeve"},
		{ID: 2, Category: catmodels.CategoryBottom, Color: "black", Material: "tailored"},
	}
}

func TestComposeWithForecast(t *testing.T) {
	forecast := &models.DailyForecast{
		Date:            monday,
		TempMin:         18,
		TempMax:         25,
		Description:     "Partly cloudy",
		RainProbability: 10,
	}

	msg, err := Compose(outfit(), forecast, "Taishan", monday)
	require.NoError(t, err)

	assert.Equal(t, "Daily outfit reminder - 2025/01/06", msg.Subject)
	assert.Empty(t, msg.To)
	for _, body := range []string{msg.TextBody, msg.HTMLBody} {
		assert.Contains(t, body, "2025-01-06 (Monday)")
		assert.Contains(t, body, "top - white / shirt / long-sleeve")
		assert.Contains(t, body, "bottom - black / tailored")
		assert.Contains(t, body, "18°C ~ 25°C")
		assert.Contains(t, body, "Partly cloudy")
		assert.Contains(t, body, "Chance of rain: 10%")
		assert.Contains(t, body, "Taishan")
		assert.NotContains(t, body, EmptyOutfitLine)
	}
	assert.Contains(t, msg.TextBody, "1. top - white / shirt / long-sleeve\n2. bottom - black / tailored\n")
}

func TestComposeWithoutForecast(t *testing.T) {
	msg, err := Compose(outfit(), nil, "Taishan", monday)
	require.NoError(t, err)
	assert.NotContains(t, msg.TextBody, "Temperature")
	assert.NotContains(t, msg.HTMLBody, "Temperature")
	assert.NotContains(t, msg.TextBody, "Taishan")
}

func TestComposeEmptyOutfit(t *testing.T) {
	msg, err := Compose(nil, nil, "", monday)
	require.NoError(t, err)
	assert.Contains(t, msg.TextBody, EmptyOutfitLine)
	assert.Contains(t, msg.HTMLBody, EmptyOutfitLine)
}

func TestComposeEscapesHTML(t *testing.T) {
	items := []*catmodels.ClothingItem{
		{ID: 1, Category: catmodels.CategorySocks, Color: "<b>red</b>", SubType: "crew"},
	}
	msg, err := Compose(items, nil, "", monday)
	require.NoError(t, err)
	assert.False(t, strings.Contains(msg.HTMLBody, "<b>red</b>"))
	assert.Contains(t, msg.HTMLBody, "&lt;b&gt;red&lt;/b&gt;")
	assert.Contains(t, msg.TextBody, "socks - <b>red</b> / crew")
}
