package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampDays(t *testing.T) {
	assert.Equal(t, 1, ClampDays(0))
	assert.Equal(t, 1, ClampDays(-3))
	assert.Equal(t, 7, ClampDays(7))
	assert.Equal(t, MaxForecastDays, ClampDays(30))
}

func TestSuggestion(t *testing.T) {
	tests := []struct {
		name     string
		forecast DailyForecast
		want     string
	}{
		{"hot", DailyForecast{TempMin: 27, TempMax: 33}, "Hot day"},
		{"warm", DailyForecast{TempMin: 22, TempMax: 28}, "Warm"},
		{"mild", DailyForecast{TempMin: 18, TempMax: 25}, "Mild"},
		{"cool", DailyForecast{TempMin: 10, TempMax: 16}, "Cool"},
		{"cold", DailyForecast{TempMin: 2, TempMax: 9}, "Cold"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.forecast.Suggestion()
			assert.True(t, strings.HasPrefix(got, tt.want), got)
			assert.NotContains(t, got, "umbrella")
		})
	}

	rainy := DailyForecast{TempMin: 18, TempMax: 25, RainProbability: 80}
	assert.Contains(t, rainy.Suggestion(), "umbrella")
}
