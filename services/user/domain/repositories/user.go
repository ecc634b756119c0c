package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/wardrobe/services/user/domain/models"
)

// UserRepository persists accounts. Lookups of unknown users return
// domain.ErrUserNotFound; Create returns domain.ErrUsernameTaken on a
// duplicate username.
type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateEmail(ctx context.Context, id uuid.UUID, email string) error
	UpdateReminder(ctx context.Context, id uuid.UUID, at string, enabled bool) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ListDue returns users with reminders enabled, an email on file and a
	// reminder time equal to at ("HH:MM").
	ListDue(ctx context.Context, at string) ([]*models.User, error)
}
