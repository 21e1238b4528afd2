package repository

import (
	"context"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create devuelve domain.ErrDuplicatedUsername si el username ya existe.
	Create(ctx context.Context, user *entity.User) error
	// GetByUsername devuelve (nil, nil) si no existe.
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// Update reemplaza username, digest y salt en una sola escritura atómica.
	// Devuelve domain.ErrDuplicatedUsername si el nuevo username ya está tomado.
	Update(ctx context.Context, user *entity.User) error
}
