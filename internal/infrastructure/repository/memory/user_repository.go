package memory

import (
	"context"

	"github.com/playfield/tournament-service/internal/domain/storage"
	"github.com/playfield/tournament-service/internal/domain/user"
)

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Create(_ context.Context, item user.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if field := r.collision(item); field != "" {
		return storage.NewConflict(field)
	}

	r.store.users[item.ID] = item
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, userID string) (user.User, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.users[userID]
	return item, ok, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (user.User, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	normalized := user.NormalizeEmail(email)
	for _, item := range r.store.users {
		if user.NormalizeEmail(item.Email) == normalized {
			return item, true, nil
		}
	}
	return user.User{}, false, nil
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (user.User, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, item := range r.store.users {
		if item.Username == username {
			return item, true, nil
		}
	}
	return user.User{}, false, nil
}

func (r *UserRepository) Update(_ context.Context, item user.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.users[item.ID]; !ok {
		return nil
	}
	if field := r.collision(item); field != "" {
		return storage.NewConflict(field)
	}

	r.store.users[item.ID] = item
	return nil
}

// collision scans for another user holding the same username or normalized
// email. Caller must hold the write lock.
func (r *UserRepository) collision(item user.User) string {
	email := user.NormalizeEmail(item.Email)
	for _, existing := range r.store.users {
		if existing.ID == item.ID {
			continue
		}
		if existing.Username == item.Username {
			return "username"
		}
		if user.NormalizeEmail(existing.Email) == email {
			return "email"
		}
	}
	return ""
}
