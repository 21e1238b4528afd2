package repository

import (
	"context"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order (DIP).
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	// Deactivate marca inactivo el pedido activo con ese código del usuario.
	// Devuelve false si no hay tal pedido (inexistente, ajeno o ya dado de baja).
	Deactivate(ctx context.Context, userID string, code int64) (bool, error)
	// CountActiveByCNPJ cuenta pedidos activos del usuario agrupados por CNPJ.
	CountActiveByCNPJ(ctx context.Context, userID string, cnpjs []string) (map[string]int, error)
}

// OrderSequence contador global de códigos de pedido: 1, 2, 3... sin reutilizar.
type OrderSequence interface {
	Next(ctx context.Context) (int64, error)
}

// OrderTxRunner ejecuta fn en una transacción con el repositorio de pedidos y la secuencia
// atados a ella: si fn falla, el incremento del contador se revierte junto con el insert.
type OrderTxRunner interface {
	RunOrder(ctx context.Context, fn func(orders OrderRepository, seq OrderSequence) error) error
}
