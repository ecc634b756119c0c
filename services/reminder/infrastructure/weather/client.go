// Package weather fetches daily forecasts from the Open-Meteo API.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"cloud.google.com/go/civil"
	"golang.org/x/time/rate"

	"github.com/ghuser/wardrobe/pkg/logger"
	reminderdomain "github.com/ghuser/wardrobe/services/reminder/domain"
	"github.com/ghuser/wardrobe/services/reminder/domain/models"
)

const dailyFields = "temperature_2m_max,temperature_2m_min,precipitation_probability_max,weather_code"

// Config points the client at the geocoding and forecast endpoints.
type Config struct {
	GeocodingURL string
	ForecastURL  string
	Timeout      time.Duration
	RatePerSec   float64
}

// Client resolves city names to coordinates and fetches daily forecasts.
// Outbound calls share one rate limiter.
type Client struct {
	cfg         Config
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	log         logger.Logger

	mu     sync.Mutex
	coords map[string]coordinates
}

type coordinates struct {
	Latitude  float64
	Longitude float64
}

func NewClient(cfg Config, log logger.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.RatePerSec <= 0 {
		cfg.RatePerSec = 5
	}
	return &Client{
		cfg:         cfg,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		rateLimiter: rate.NewLimiter(rate.Limit(cfg.RatePerSec), 1),
		log:         log,
		coords:      make(map[string]coordinates),
	}
}

// Forecast returns up to days daily forecasts for city starting today in the
// city's own time zone. days is clamped to [1, 16]; the provider may return
// fewer entries than asked for.
func (c *Client) Forecast(ctx context.Context, city string, days int) ([]models.DailyForecast, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, reminderdomain.ErrCityNotFound
	}
	days = models.ClampDays(days)

	loc, err := c.locate(ctx, city)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(loc.Latitude, 'f', 4, 64))
	params.Set("longitude", strconv.FormatFloat(loc.Longitude, 'f', 4, 64))
	params.Set("daily", dailyFields)
	params.Set("timezone", "auto")
	params.Set("forecast_days", strconv.Itoa(days))

	var resp forecastResponse
	if err := c.get(ctx, c.cfg.ForecastURL, params, &resp); err != nil {
		return nil, fmt.Errorf("forecast for %s: %w", city, err)
	}
	out, err := resp.Daily.toModels(days)
	if err != nil {
		return nil, fmt.Errorf("forecast for %s: %w", city, err)
	}
	c.log.DebugContext(ctx, "forecast fetched", "city", city, "days", len(out))
	return out, nil
}

func (c *Client) locate(ctx context.Context, city string) (coordinates, error) {
	key := strings.ToLower(city)
	c.mu.Lock()
	loc, ok := c.coords[key]
	c.mu.Unlock()
	if ok {
		return loc, nil
	}

	params := url.Values{}
	params.Set("name", city)
	params.Set("count", "1")
	params.Set("language", "en")
	params.Set("format", "json")

	var resp geocodingResponse
	if err := c.get(ctx, c.cfg.GeocodingURL, params, &resp); err != nil {
		return coordinates{}, fmt.Errorf("geocode %s: %w", city, err)
	}
	if len(resp.Results) == 0 {
		return coordinates{}, fmt.Errorf("geocode %s: %w", city, reminderdomain.ErrCityNotFound)
	}
	loc = coordinates{Latitude: resp.Results[0].Latitude, Longitude: resp.Results[0].Longitude}

	c.mu.Lock()
	c.coords[key] = loc
	c.mu.Unlock()
	return loc, nil
}

func (c *Client) get(ctx context.Context, base string, params url.Values, out any) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

type geocodingResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"results"`
}

type forecastResponse struct {
	Daily dailySeries `json:"daily"`
}

type dailySeries struct {
	Time        []string   `json:"time"`
	TempMax     []*float64 `json:"temperature_2m_max"`
	TempMin     []*float64 `json:"temperature_2m_min"`
	RainProb    []*float64 `json:"precipitation_probability_max"`
	WeatherCode []*int     `json:"weather_code"`
}

func (d dailySeries) toModels(limit int) ([]models.DailyForecast, error) {
	n := min(len(d.Time), limit)
	out := make([]models.DailyForecast, 0, n)
	for i := 0; i < n; i++ {
		date, err := civil.ParseDate(d.Time[i])
		if err != nil {
			return nil, fmt.Errorf("parse forecast date %q: %w", d.Time[i], err)
		}
		out = append(out, models.DailyForecast{
			Date:            date,
			TempMin:         at(d.TempMin, i),
			TempMax:         at(d.TempMax, i),
			Description:     Describe(atInt(d.WeatherCode, i)),
			RainProbability: at(d.RainProb, i),
		})
	}
	return out, nil
}

func at(values []*float64, i int) float64 {
	if i < len(values) && values[i] != nil {
		return *values[i]
	}
	return 0
}

func atInt(values []*int, i int) int {
	if i < len(values) && values[i] != nil {
		return *values[i]
	}
	return -1
}
