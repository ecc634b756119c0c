package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/ghuser/wardrobe/pkg/apperr"
	"github.com/ghuser/wardrobe/pkg/database"
	userdomain "github.com/ghuser/wardrobe/services/user/domain"
	"github.com/ghuser/wardrobe/services/user/domain/models"
	"github.com/ghuser/wardrobe/services/user/infrastructure/persistence/postgres/db"
)

// UserRepository implements repositories.UserRepository against PostgreSQL.
// Deleting a user cascades to everything it owns through foreign keys.
type UserRepository struct {
	db *database.Database
}

func NewUserRepository(database *database.Database) *UserRepository {
	return &UserRepository{db: database}
}

func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	row, err := db.New(r.db.DB()).CreateUser(ctx, db.CreateUserParams{
		ID:               u.ID,
		Username:         u.Username,
		PasswordHash:     u.PasswordHash,
		Email:            nullable(u.Email),
		ReminderTime:     u.ReminderTime,
		RemindersEnabled: u.RemindersEnabled,
	})
	if err != nil {
		if database.IsUniqueViolation(err) {
			return userdomain.ErrUsernameTaken
		}
		return apperr.Storage("insert user", err)
	}
	u.CreatedAt = row.CreatedAt
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	row, err := db.New(r.db.DB()).GetUser(ctx, id)
	if err != nil {
		return nil, notFound("get user", err)
	}
	return toDomain(row), nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	row, err := db.New(r.db.DB()).GetUserByUsername(ctx, username)
	if err != nil {
		return nil, notFound("get user by username", err)
	}
	return toDomain(row), nil
}

func (r *UserRepository) UpdateEmail(ctx context.Context, id uuid.UUID, email string) error {
	n, err := db.New(r.db.DB()).UpdateUserEmail(ctx, id, nullable(email))
	return affected("update user email", n, err)
}

func (r *UserRepository) UpdateReminder(ctx context.Context, id uuid.UUID, at string, enabled bool) error {
	n, err := db.New(r.db.DB()).UpdateUserReminder(ctx, id, at, enabled)
	return affected("update reminder settings", n, err)
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := db.New(r.db.DB()).DeleteUser(ctx, id)
	return affected("delete user", n, err)
}

func (r *UserRepository) ListDue(ctx context.Context, at string) ([]*models.User, error) {
	rows, err := db.New(r.db.DB()).ListDueUsers(ctx, at)
	if err != nil {
		return nil, apperr.Storage("list due users", err)
	}
	out := make([]*models.User, len(rows))
	for i, row := range rows {
		out[i] = toDomain(row)
	}
	return out, nil
}

func toDomain(row db.User) *models.User {
	return &models.User{
		ID:               row.ID,
		Username:         row.Username,
		PasswordHash:     row.PasswordHash,
		Email:            row.Email.String,
		ReminderTime:     row.ReminderTime,
		RemindersEnabled: row.RemindersEnabled,
		CreatedAt:        row.CreatedAt,
	}
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func notFound(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return userdomain.ErrUserNotFound
	}
	return apperr.Storage(op, err)
}

func affected(op string, n int64, err error) error {
	if err != nil {
		return apperr.Storage(op, err)
	}
	if n == 0 {
		return userdomain.ErrUserNotFound
	}
	return nil
}
