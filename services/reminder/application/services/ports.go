package services

import (
	"context"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	catmodels "github.com/ghuser/wardrobe/services/catalog/domain/models"
	"github.com/ghuser/wardrobe/services/reminder/domain/models"
	usermodels "github.com/ghuser/wardrobe/services/user/domain/models"
)

// UserDirectory looks up reminder recipients.
type UserDirectory interface {
	GetByID(ctx context.Context, id uuid.UUID) (*usermodels.User, error)
	ListDue(ctx context.Context, at string) ([]*usermodels.User, error)
}

// OutfitSource resolves the clothing planned for a date.
type OutfitSource interface {
	Items(ctx context.Context, ownerID uuid.UUID, date civil.Date) ([]*catmodels.ClothingItem, error)
}

// LocationSource picks the city whose weather goes into a reminder.
type LocationSource interface {
	Primary(ctx context.Context, ownerID uuid.UUID, fallback string) (string, error)
}

// WeatherProvider returns daily forecasts for a city.
type WeatherProvider interface {
	Forecast(ctx context.Context, city string, days int) ([]models.DailyForecast, error)
}

// Sender delivers a rendered reminder.
type Sender interface {
	Send(ctx context.Context, msg models.Message) error
}
