package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ghuser/wardrobe/pkg/apperr"
	"github.com/ghuser/wardrobe/pkg/logger"
	reminderdomain "github.com/ghuser/wardrobe/services/reminder/domain"
	"github.com/ghuser/wardrobe/services/reminder/domain/models"
	domainsvcs "github.com/ghuser/wardrobe/services/reminder/domain/services"
)

// DefaultConcurrency bounds parallel deliveries in DispatchDue.
const DefaultConcurrency = 4

// Options configures a ReminderService.
type Options struct {
	Location    *time.Location
	DefaultCity string
	Concurrency int
}

// DispatchResult counts one DispatchDue run.
type DispatchResult struct {
	Due    int
	Sent   int
	Failed int
}

// ReminderService renders and delivers the daily outfit email.
type ReminderService struct {
	users     UserDirectory
	outfits   OutfitSource
	locations LocationSource
	weather   WeatherProvider
	sender    Sender
	log       logger.Logger
	opts      Options
	now       func() time.Time
	metrics   *metrics
}

func NewReminderService(
	users UserDirectory,
	outfits OutfitSource,
	locations LocationSource,
	weather WeatherProvider,
	sender Sender,
	log logger.Logger,
	opts Options,
) *ReminderService {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	return &ReminderService{
		users:     users,
		outfits:   outfits,
		locations: locations,
		weather:   weather,
		sender:    sender,
		log:       log,
		opts:      opts,
		now:       time.Now,
		metrics:   newMetrics(),
	}
}

// Today is the current date in the reminder time zone.
func (s *ReminderService) Today() civil.Date {
	return civil.DateOf(s.now().In(s.opts.Location))
}

// City is the owner's first location, or the configured default city.
func (s *ReminderService) City(ctx context.Context, ownerID uuid.UUID) (string, error) {
	city, err := s.locations.Primary(ctx, ownerID, s.opts.DefaultCity)
	if err != nil {
		return "", fmt.Errorf("resolve city: %w", err)
	}
	return city, nil
}

// Forecast returns days of weather for the owner's city.
func (s *ReminderService) Forecast(ctx context.Context, ownerID uuid.UUID, days int) (string, []models.DailyForecast, error) {
	city, err := s.City(ctx, ownerID)
	if err != nil {
		return "", nil, err
	}
	forecasts, err := s.weather.Forecast(ctx, city, models.ClampDays(days))
	if err != nil {
		return city, nil, fmt.Errorf("forecast: %w", err)
	}
	return city, forecasts, nil
}

// Preview renders the reminder for ownerID and date without sending it.
// Weather that cannot be fetched is left out of the message.
func (s *ReminderService) Preview(ctx context.Context, ownerID uuid.UUID, date civil.Date) (models.Message, error) {
	if !date.IsValid() {
		return models.Message{}, apperr.Invalid(reminderdomain.ErrInvalidRequest, "%s is not a calendar date", date)
	}
	items, err := s.outfits.Items(ctx, ownerID, date)
	if err != nil {
		return models.Message{}, fmt.Errorf("load outfit: %w", err)
	}
	city, err := s.City(ctx, ownerID)
	if err != nil {
		return models.Message{}, err
	}
	forecast := s.forecastFor(ctx, city, date)
	return domainsvcs.Compose(items, forecast, city, date)
}

// SendForUser renders and sends the reminder for date to userID.
func (s *ReminderService) SendForUser(ctx context.Context, userID uuid.UUID, date civil.Date) error {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}
	if !u.HasEmail() {
		return reminderdomain.ErrNoEmail
	}
	msg, err := s.Preview(ctx, userID, date)
	if err != nil {
		return err
	}
	msg.To = u.Email
	if err := s.sender.Send(ctx, msg); err != nil {
		s.metrics.delivered(ctx, "failed")
		return fmt.Errorf("send reminder: %w", err)
	}
	s.metrics.delivered(ctx, "sent")
	return nil
}

// DispatchDue sends today's reminder to every user whose reminder time is
// at's wall-clock minute in the reminder time zone. A failed delivery is
// logged and counted; it never stops the rest of the batch.
func (s *ReminderService) DispatchDue(ctx context.Context, at time.Time) (DispatchResult, error) {
	local := at.In(s.opts.Location)
	hhmm := local.Format("15:04")
	date := civil.DateOf(local)

	users, err := s.users.ListDue(ctx, hhmm)
	if err != nil {
		return DispatchResult{}, fmt.Errorf("list due users: %w", err)
	}

	var sent, failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Concurrency)
	for _, u := range users {
		g.Go(func() error {
			if err := s.SendForUser(gctx, u.ID, date); err != nil {
				failed.Add(1)
				s.log.ErrorContext(gctx, "reminder delivery failed", "user_id", u.ID, "error", err)
				return nil
			}
			sent.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	res := DispatchResult{Due: len(users), Sent: int(sent.Load()), Failed: int(failed.Load())}
	if res.Due > 0 {
		s.log.InfoContext(ctx, "reminders dispatched", "at", hhmm, "due", res.Due, "sent", res.Sent, "failed", res.Failed)
	}
	return res, nil
}

// forecastFor returns the forecast entry for date, or nil when the provider
// fails or does not cover it.
func (s *ReminderService) forecastFor(ctx context.Context, city string, date civil.Date) *models.DailyForecast {
	ahead := date.DaysSince(s.Today())
	if ahead < 0 || ahead >= models.MaxForecastDays {
		return nil
	}
	forecasts, err := s.weather.Forecast(ctx, city, ahead+1)
	if err != nil {
		s.log.WarnContext(ctx, "forecast unavailable, sending without weather", "city", city, "error", err)
		return nil
	}
	for i := range forecasts {
		if forecasts[i].Date == date {
			return &forecasts[i]
		}
	}
	return nil
}
