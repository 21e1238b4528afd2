package usecase

import (
	"context"
	"strconv"
	"time"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

// cnpjRegistry lo implementa *CompanyUseCase.
type cnpjRegistry interface {
	IsCnpjRegisteredToUser(ctx context.Context, userID, cnpj string) (bool, error)
}

// OrderUseCase alta y baja lógica de pedidos.
type OrderUseCase struct {
	companies cnpjRegistry
	catalog   repository.ProductCatalog
	orders    repository.OrderRepository
	txRunner  repository.OrderTxRunner
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	companies cnpjRegistry,
	catalog repository.ProductCatalog,
	orders repository.OrderRepository,
	txRunner repository.OrderTxRunner,
) *OrderUseCase {
	return &OrderUseCase{
		companies: companies,
		catalog:   catalog,
		orders:    orders,
		txRunner:  txRunner,
	}
}

// Create valida, en orden: que el usuario tenga una empresa con ese CNPJ (ErrInexistentCnpj),
// que todos los productos existan (ErrInexistentProduct con el primero que falte) y luego
// asigna el siguiente código global y persiste el pedido activo en la misma transacción.
func (uc *OrderUseCase) Create(ctx context.Context, userID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	registered, err := uc.companies.IsCnpjRegisteredToUser(ctx, userID, in.CNPJ)
	if err != nil {
		return nil, err
	}
	if !registered {
		return nil, domain.WithDetail(domain.ErrInexistentCnpj, in.CNPJ)
	}

	names := make([]string, 0, len(in.Products))
	items := make([]entity.OrderItem, 0, len(in.Products))
	for _, p := range in.Products {
		names = append(names, p.Name)
		items = append(items, entity.OrderItem{Name: p.Name, Quantity: p.Quantity})
	}
	if missing, ok := uc.catalog.FirstMissing(names); ok {
		return nil, domain.WithDetail(domain.ErrInexistentProduct, missing)
	}

	now := time.Now()
	order := &entity.Order{
		UserID:    userID,
		CNPJ:      in.CNPJ,
		Items:     items,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err = uc.txRunner.RunOrder(ctx, func(orders repository.OrderRepository, seq repository.OrderSequence) error {
		code, err := seq.Next(ctx)
		if err != nil {
			return err
		}
		order.Code = code
		return orders.Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	return &dto.OrderResponse{Code: order.Code}, nil
}

// Exclude da de baja lógica el pedido activo del usuario. Pedido inexistente, ajeno o ya
// dado de baja producen el mismo ErrInexistentOrder. El código nunca se reasigna.
func (uc *OrderUseCase) Exclude(ctx context.Context, userID string, code int64) error {
	done, err := uc.orders.Deactivate(ctx, userID, code)
	if err != nil {
		return err
	}
	if !done {
		return domain.WithDetail(domain.ErrInexistentOrder, strconv.FormatInt(code, 10))
	}
	return nil
}
