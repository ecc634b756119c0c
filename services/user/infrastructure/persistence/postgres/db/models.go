package db

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID               uuid.UUID
	Username         string
	PasswordHash     string
	Email            sql.NullString
	ReminderTime     string
	RemindersEnabled bool
	CreatedAt        time.Time
}
