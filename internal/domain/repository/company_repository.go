package repository

import (
	"context"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// Toda consulta va filtrada por usuario.
type CompanyRepository interface {
	// Create devuelve domain.ErrDuplicatedCnpj si el par (usuario, CNPJ) ya existe.
	Create(ctx context.Context, company *entity.Company) error
	ExistsByUserAndCNPJ(ctx context.Context, userID, cnpj string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Company, error)
}
