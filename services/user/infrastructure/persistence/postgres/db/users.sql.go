package db

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

const userColumns = `id, username, password_hash, email, reminder_time, reminders_enabled, created_at`

const createUser = `
INSERT INTO users (id, username, password_hash, email, reminder_time, reminders_enabled)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING created_at
`

type CreateUserParams struct {
	ID               uuid.UUID
	Username         string
	PasswordHash     string
	Email            sql.NullString
	ReminderTime     string
	RemindersEnabled bool
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	row := q.db.QueryRowContext(ctx, createUser,
		arg.ID, arg.Username, arg.PasswordHash, arg.Email, arg.ReminderTime, arg.RemindersEnabled)
	u := User{
		ID:               arg.ID,
		Username:         arg.Username,
		PasswordHash:     arg.PasswordHash,
		Email:            arg.Email,
		ReminderTime:     arg.ReminderTime,
		RemindersEnabled: arg.RemindersEnabled,
	}
	err := row.Scan(&u.CreatedAt)
	return u, err
}

const getUser = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

func (q *Queries) GetUser(ctx context.Context, id uuid.UUID) (User, error) {
	return scanUser(q.db.QueryRowContext(ctx, getUser, id))
}

const getUserByUsername = `SELECT ` + userColumns + ` FROM users WHERE username = $1`

func (q *Queries) GetUserByUsername(ctx context.Context, username string) (User, error) {
	return scanUser(q.db.QueryRowContext(ctx, getUserByUsername, username))
}

const updateUserEmail = `UPDATE users SET email = $2 WHERE id = $1`

func (q *Queries) UpdateUserEmail(ctx context.Context, id uuid.UUID, email sql.NullString) (int64, error) {
	res, err := q.db.ExecContext(ctx, updateUserEmail, id, email)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const updateUserReminder = `
UPDATE users SET reminder_time = $2, reminders_enabled = $3
WHERE id = $1
`

func (q *Queries) UpdateUserReminder(ctx context.Context, id uuid.UUID, at string, enabled bool) (int64, error) {
	res, err := q.db.ExecContext(ctx, updateUserReminder, id, at, enabled)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const deleteUser = `DELETE FROM users WHERE id = $1`

func (q *Queries) DeleteUser(ctx context.Context, id uuid.UUID) (int64, error) {
	res, err := q.db.ExecContext(ctx, deleteUser, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const listDueUsers = `
SELECT ` + userColumns + ` FROM users
WHERE reminders_enabled AND email IS NOT NULL AND email <> '' AND reminder_time = $1
ORDER BY username
`

func (q *Queries) ListDueUsers(ctx context.Context, at string) ([]User, error) {
	rows, err := q.db.QueryContext(ctx, listDueUsers, at)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, u)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (User, error) {
	var u User
	err := s.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.ReminderTime, &u.RemindersEnabled, &u.CreatedAt)
	return u, err
}
