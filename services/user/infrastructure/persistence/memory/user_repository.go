// Package memory holds a map-backed user repository for tests and local tooling.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	userdomain "github.com/ghuser/wardrobe/services/user/domain"
	"github.com/ghuser/wardrobe/services/user/domain/models"
)

type UserRepository struct {
	mu    sync.Mutex
	users map[uuid.UUID]models.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[uuid.UUID]models.User)}
}

func (r *UserRepository) Create(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return userdomain.ErrUsernameTaken
		}
	}
	u.CreatedAt = time.Now().UTC()
	r.users[u.ID] = *u
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, userdomain.ErrUserNotFound
	}
	return &u, nil
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, userdomain.ErrUserNotFound
}

func (r *UserRepository) UpdateEmail(_ context.Context, id uuid.UUID, email string) error {
	return r.update(id, func(u *models.User) { u.Email = email })
}

func (r *UserRepository) UpdateReminder(_ context.Context, id uuid.UUID, at string, enabled bool) error {
	return r.update(id, func(u *models.User) {
		u.ReminderTime = at
		u.RemindersEnabled = enabled
	})
}

func (r *UserRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return userdomain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *UserRepository) ListDue(_ context.Context, at string) ([]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.User
	for _, u := range r.users {
		if u.RemindersEnabled && u.HasEmail() && u.ReminderTime == at {
			u := u
			out = append(out, &u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (r *UserRepository) update(id uuid.UUID, fn func(*models.User)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return userdomain.ErrUserNotFound
	}
	fn(&u)
	r.users[id] = u
	return nil
}
