package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
	"github.com/jhoicas/backoffice-api/pkg/cnpj"
)

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create registra una empresa para el usuario. Devuelve ErrInvalidCnpj si los dígitos
// verificadores no cuadran y ErrDuplicatedCnpj si el usuario ya tiene ese CNPJ.
func (uc *CompanyUseCase) Create(ctx context.Context, userID string, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if !cnpj.IsValid(in.CNPJ) {
		return nil, domain.WithDetail(domain.ErrInvalidCnpj, in.CNPJ)
	}
	registered, err := uc.IsCnpjRegisteredToUser(ctx, userID, in.CNPJ)
	if err != nil {
		return nil, err
	}
	if registered {
		return nil, domain.WithDetail(domain.ErrDuplicatedCnpj, in.CNPJ)
	}
	company := &entity.Company{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      in.Name,
		CNPJ:      in.CNPJ,
		CreatedAt: time.Now(),
	}
	// Dos altas concurrentes pueden pasar el chequeo; el índice único (user_id, cnpj) decide.
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// IsCnpjRegisteredToUser informa si el usuario ya tiene una empresa con ese CNPJ.
func (uc *CompanyUseCase) IsCnpjRegisteredToUser(ctx context.Context, userID, cnpj string) (bool, error) {
	return uc.repo.ExistsByUserAndCNPJ(ctx, userID, cnpj)
}

// ListByUser todas las empresas del usuario, en el orden de almacenamiento.
func (uc *CompanyUseCase) ListByUser(ctx context.Context, userID string) ([]dto.CompanyResponse, error) {
	list, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCompanyResponse(c))
	}
	return items, nil
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		CNPJ:      c.CNPJ,
		CreatedAt: c.CreatedAt,
	}
}
