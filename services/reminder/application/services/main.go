package services

import (
	"github.com/ghuser/wardrobe/pkg/app"
	"github.com/ghuser/wardrobe/services/reminder/infrastructure/mail"
	"github.com/ghuser/wardrobe/services/reminder/infrastructure/weather"
)

// Services is the application-layer service container for the reminder context.
type Services struct {
	Reminders *ReminderService
}

// New wires the reminder service with the Open-Meteo client and the SMTP
// sender configured in a.Config.
func New(a *app.Application, users UserDirectory, outfits OutfitSource, locations LocationSource) *Services {
	cfg := a.Config
	client := weather.NewClient(weather.Config{
		GeocodingURL: cfg.WeatherGeocodingURL,
		ForecastURL:  cfg.WeatherForecastURL,
		Timeout:      cfg.WeatherTimeout,
		RatePerSec:   cfg.WeatherRatePerSec,
	}, a.Logger)
	sender := mail.NewSMTPSender(mail.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	}, a.Logger)

	return &Services{
		Reminders: NewReminderService(users, outfits, locations, client, sender, a.Logger, Options{
			Location:    cfg.Location(),
			DefaultCity: cfg.DefaultCity,
			Concurrency: cfg.ReminderConcurrency,
		}),
	}
}
