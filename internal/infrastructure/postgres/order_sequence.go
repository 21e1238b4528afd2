package postgres

import (
	"context"

	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ repository.OrderSequence = (*OrderSequence)(nil)

// OrderSequence contador global de códigos sobre la fila única de order_code_counter.
type OrderSequence struct {
	q Querier
}

func NewOrderSequence(q Querier) *OrderSequence {
	return &OrderSequence{q: q}
}

// Next incrementa y devuelve el contador. Dentro de una tx la fila queda bloqueada hasta el commit.
func (s *OrderSequence) Next(ctx context.Context) (int64, error) {
	var code int64
	err := s.q.QueryRow(ctx,
		`UPDATE order_code_counter SET value = value + 1 WHERE id RETURNING value`,
	).Scan(&code)
	if err != nil {
		return 0, wrapError("next order code", err)
	}
	return code, nil
}
