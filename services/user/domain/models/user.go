package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultReminderTime is the wall-clock time new accounts are reminded at.
const DefaultReminderTime = "07:00"

// User is an account. Every wardrobe entity hangs off its ID.
type User struct {
	ID               uuid.UUID
	Username         string
	PasswordHash     string
	Email            string
	ReminderTime     string
	RemindersEnabled bool
	CreatedAt        time.Time
}

// HasEmail reports whether reminders can be delivered to the user.
func (u *User) HasEmail() bool {
	return u.Email != ""
}
