package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/kennelhouse/kennel-backend/internal/model"
	"github.com/kennelhouse/kennel-backend/internal/repository"
)

type userRepo struct {
	mu     sync.RWMutex
	nextID int
	byName map[string]model.User
}

func NewUserRepository() repository.UserRepository {
	return &userRepo{byName: make(map[string]model.User)}
}

func (r *userRepo) GetByCredentials(_ context.Context, username, passwordHash string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byName[username]
	if !ok || u.PasswordHash != passwordHash {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *userRepo) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[user.Username]; exists {
		return errors.New("username already exists")
	}
	r.nextID++
	user.ID = r.nextID
	r.byName[user.Username] = *user
	return nil
}
