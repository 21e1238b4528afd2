package usecase

import (
	"context"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

// companyLister lo implementa *CompanyUseCase.
type companyLister interface {
	ListByUser(ctx context.Context, userID string) ([]dto.CompanyResponse, error)
}

// SummaryUseCase resumen de pedidos activos por empresa del usuario.
type SummaryUseCase struct {
	companies companyLister
	orders    repository.OrderRepository
}

// NewSummaryUseCase construye el caso de uso.
func NewSummaryUseCase(companies companyLister, orders repository.OrderRepository) *SummaryUseCase {
	return &SummaryUseCase{companies: companies, orders: orders}
}

// Get devuelve una entrada por empresa del usuario (también las que no tienen pedidos, con 0).
// El conteo cruza por CNPJ y siempre filtrado por el mismo usuario.
func (uc *SummaryUseCase) Get(ctx context.Context, userID string) ([]dto.SummaryItem, error) {
	companies, err := uc.companies.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SummaryItem, 0, len(companies))
	if len(companies) == 0 {
		return items, nil
	}
	cnpjs := make([]string, 0, len(companies))
	for _, c := range companies {
		cnpjs = append(cnpjs, c.CNPJ)
	}
	counts, err := uc.orders.CountActiveByCNPJ(ctx, userID, cnpjs)
	if err != nil {
		return nil, err
	}
	for _, c := range companies {
		items = append(items, dto.SummaryItem{Name: c.Name, CNPJ: c.CNPJ, Orders: counts[c.CNPJ]})
	}
	return items, nil
}
