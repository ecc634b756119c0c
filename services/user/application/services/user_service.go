package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ghuser/wardrobe/pkg/apperr"
	"github.com/ghuser/wardrobe/pkg/logger"
	pkgvalidator "github.com/ghuser/wardrobe/pkg/validator"
	userdomain "github.com/ghuser/wardrobe/services/user/domain"
	"github.com/ghuser/wardrobe/services/user/domain/models"
	"github.com/ghuser/wardrobe/services/user/domain/repositories"
)

const (
	minUsername = 3
	maxUsername = 64
	minPassword = 6
	// bcrypt ignores everything past 72 bytes.
	maxPassword = 72
)

// Seeder installs per-user defaults. The taxonomy option and location
// services both satisfy it.
type Seeder interface {
	SeedDefaults(ctx context.Context, ownerID uuid.UUID) error
}

// UserService manages accounts and their credentials.
type UserService struct {
	repo    repositories.UserRepository
	seeders []Seeder
	log     logger.Logger
	cost    int
}

func NewUserService(repo repositories.UserRepository, log logger.Logger, seeders ...Seeder) *UserService {
	return &UserService{repo: repo, seeders: seeders, log: log, cost: bcrypt.DefaultCost}
}

// Register creates an account and seeds its default taxonomy and locations.
// email may be empty; when it is set, daily reminders start out enabled.
//
// A seeding failure does not undo the account. It is logged and the user is
// returned; Seed is idempotent and can be rerun (wardrobectl seed).
func (s *UserService) Register(ctx context.Context, username, password, email string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if err := validateCredentials(username, password); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &models.User{
		ID:               uuid.New(),
		Username:         username,
		PasswordHash:     string(hash),
		Email:            email,
		ReminderTime:     models.DefaultReminderTime,
		RemindersEnabled: email != "",
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	if err := s.Seed(ctx, u.ID); err != nil {
		s.log.ErrorContext(ctx, "seeding defaults for new user failed", "user_id", u.ID, "error", err)
	}
	s.log.InfoContext(ctx, "user registered", "user_id", u.ID)
	return u, nil
}

// Seed installs default taxonomy values and locations for ownerID. Values
// already present are left alone.
func (s *UserService) Seed(ctx context.Context, ownerID uuid.UUID) error {
	for _, seeder := range s.seeders {
		if err := seeder.SeedDefaults(ctx, ownerID); err != nil {
			return fmt.Errorf("seed defaults: %w", err)
		}
	}
	return nil
}

// Authenticate returns the id of the user whose credentials match.
// Unknown usernames and wrong passwords fail the same way.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (uuid.UUID, error) {
	u, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, userdomain.ErrUserNotFound) {
			return uuid.Nil, userdomain.ErrInvalidCredentials
		}
		return uuid.Nil, fmt.Errorf("find user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return uuid.Nil, userdomain.ErrInvalidCredentials
	}
	return u.ID, nil
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	u, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, fmt.Errorf("get user %q: %w", username, err)
	}
	return u, nil
}

// UpdateEmail sets or, when email is empty, removes the reminder address.
func (s *UserService) UpdateEmail(ctx context.Context, id uuid.UUID, email string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateEmail(ctx, id, email); err != nil {
		return nil, fmt.Errorf("update email: %w", err)
	}
	return s.GetByID(ctx, id)
}

// UpdateReminderSettings sets the daily reminder time ("HH:MM", 24h) and
// whether reminders are sent.
func (s *UserService) UpdateReminderSettings(ctx context.Context, id uuid.UUID, at string, enabled bool) (*models.User, error) {
	at = strings.TrimSpace(at)
	if err := pkgvalidator.Var(at, "clock"); err != nil {
		return nil, apperr.Invalid(userdomain.ErrInvalidUser, "reminder time %q is not HH:MM", at)
	}
	if err := s.repo.UpdateReminder(ctx, id, at, enabled); err != nil {
		return nil, fmt.Errorf("update reminder settings: %w", err)
	}
	return s.GetByID(ctx, id)
}

// Delete removes the account and everything it owns.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	s.log.InfoContext(ctx, "user deleted", "user_id", id)
	return nil
}

// ListDue returns the users whose reminder should go out at the wall-clock
// time at ("HH:MM").
func (s *UserService) ListDue(ctx context.Context, at string) ([]*models.User, error) {
	users, err := s.repo.ListDue(ctx, at)
	if err != nil {
		return nil, fmt.Errorf("list due users: %w", err)
	}
	return users, nil
}

func validateCredentials(username, password string) error {
	var errs []error
	if n := utf8.RuneCountInString(username); n < minUsername || n > maxUsername {
		errs = append(errs, fmt.Errorf("username must be %d-%d characters", minUsername, maxUsername))
	}
	if len(password) < minPassword || len(password) > maxPassword {
		errs = append(errs, fmt.Errorf("password must be %d-%d bytes", minPassword, maxPassword))
	}
	if err := errors.Join(errs...); err != nil {
		return apperr.Invalid(userdomain.ErrInvalidUser, "%s", err)
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return nil
	}
	if err := pkgvalidator.Var(email, "email"); err != nil {
		return apperr.Invalid(userdomain.ErrInvalidUser, "%q is not a valid email", email)
	}
	return nil
}
