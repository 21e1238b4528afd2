package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/usecase"
	"github.com/jhoicas/backoffice-api/internal/infrastructure/catalog"
	"github.com/jhoicas/backoffice-api/internal/infrastructure/memory"
)

const (
	cnpjA = "11222333000181"
	cnpjB = "11444777000161"
	cnpjC = "12345678000195"

	userAna = "user-ana"
	userBia = "user-bia"
)

type fixture struct {
	store     *memory.Store
	companies *usecase.CompanyUseCase
	orders    *usecase.OrderUseCase
	summary   *usecase.SummaryUseCase
	products  *usecase.ProductUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	cat, err := catalog.New("Caneta", "Lápis", "Caderno")
	require.NoError(t, err)

	companies := usecase.NewCompanyUseCase(store.Companies())
	return &fixture{
		store:     store,
		companies: companies,
		orders:    usecase.NewOrderUseCase(companies, cat, store.Orders(), store),
		summary:   usecase.NewSummaryUseCase(companies, store.Orders()),
		products:  usecase.NewProductUseCase(cat),
	}
}

func (f *fixture) company(t *testing.T, userID, name, cnpj string) {
	t.Helper()
	_, err := f.companies.Create(context.Background(), userID, dto.CreateCompanyRequest{Name: name, CNPJ: cnpj})
	require.NoError(t, err)
}

func (f *fixture) order(t *testing.T, userID, cnpj string) int64 {
	t.Helper()
	out, err := f.orders.Create(context.Background(), userID, orderRequest(cnpj, "Caneta"))
	require.NoError(t, err)
	return out.Code
}

func orderRequest(cnpj string, products ...string) dto.CreateOrderRequest {
	in := dto.CreateOrderRequest{CNPJ: cnpj}
	for _, p := range products {
		in.Products = append(in.Products, dto.OrderItemRequest{Name: p, Quantity: decimal.NewFromInt(2)})
	}
	return in
}
