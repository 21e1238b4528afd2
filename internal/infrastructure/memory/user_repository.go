package memory

import (
	"context"

	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo usuarios en memoria.
type UserRepo struct {
	s *Store
}

// Create inserta el usuario; username único.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Username == user.Username {
			return domain.WithDetail(domain.ErrDuplicatedUsername, user.Username)
		}
	}
	cp := *user
	r.s.users[user.ID] = &cp
	return nil
}

// GetByUsername devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// Update reemplaza el usuario completo bajo un único lock.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[user.ID]; !ok {
		return domain.ErrInvalidUsernameOrPassword
	}
	for id, u := range r.s.users {
		if id != user.ID && u.Username == user.Username {
			return domain.WithDetail(domain.ErrDuplicatedUsername, user.Username)
		}
	}
	cp := *user
	r.s.users[user.ID] = &cp
	return nil
}
