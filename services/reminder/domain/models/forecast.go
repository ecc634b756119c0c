package models

import "cloud.google.com/go/civil"

// MaxForecastDays is the longest forecast a provider is asked for.
const MaxForecastDays = 16

// DailyForecast is one day of weather for a city.
type DailyForecast struct {
	Date            civil.Date
	TempMin         float64
	TempMax         float64
	Description     string
	RainProbability float64
}

// ClampDays bounds a requested forecast length to [1, MaxForecastDays].
func ClampDays(days int) int {
	switch {
	case days < 1:
		return 1
	case days > MaxForecastDays:
		return MaxForecastDays
	}
	return days
}

// Suggestion is a dressing hint for the day's temperatures.
func (f DailyForecast) Suggestion() string {
	avg := (f.TempMin + f.TempMax) / 2
	var s string
	switch {
	case f.TempMax >= 30:
		s = "Hot day: short sleeves and breathable fabrics."
	case avg >= 24:
		s = "Warm: a light top is enough."
	case avg >= 18:
		s = "Mild: long sleeves, maybe a thin layer for the evening."
	case avg >= 12:
		s = "Cool: add a sweater or a light jacket."
	default:
		s = "Cold: wear a warm coat and layers."
	}
	if f.RainProbability >= 50 {
		s += " Bring an umbrella."
	}
	return s
}
