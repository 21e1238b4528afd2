package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var (
	_ repository.OrderRepository = (*OrderRepo)(nil)
	_ repository.OrderSequence   = (*Sequence)(nil)
)

// OrderRepo pedidos en memoria.
type OrderRepo struct {
	s *Store
}

// Create inserta el pedido; el código debe venir asignado y no repetirse.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.orders[order.Code]; exists {
		return fmt.Errorf("insert order: código %d duplicado", order.Code)
	}
	cp := *order
	cp.Items = append([]entity.OrderItem(nil), order.Items...)
	r.s.orders[order.Code] = &cp
	return nil
}

func (r *OrderRepo) Deactivate(ctx context.Context, userID string, code int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	o, ok := r.s.orders[code]
	if !ok || !o.Active || o.UserID != userID {
		return false, nil
	}
	o.Active = false
	o.UpdatedAt = time.Now()
	return true, nil
}

func (r *OrderRepo) CountActiveByCNPJ(ctx context.Context, userID string, cnpjs []string) (map[string]int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	wanted := make(map[string]struct{}, len(cnpjs))
	for _, c := range cnpjs {
		wanted[c] = struct{}{}
	}
	counts := make(map[string]int)
	for _, o := range r.s.orders {
		if !o.Active || o.UserID != userID {
			continue
		}
		if _, ok := wanted[o.CNPJ]; ok {
			counts[o.CNPJ]++
		}
	}
	return counts, nil
}

// Get devuelve una copia del pedido (tests y diagnóstico).
func (r *OrderRepo) Get(code int64) (*entity.Order, bool) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	o, ok := r.s.orders[code]
	if !ok {
		return nil, false
	}
	cp := *o
	cp.Items = append([]entity.OrderItem(nil), o.Items...)
	return &cp, true
}

// Sequence contador global en memoria.
type Sequence struct {
	s *Store
}

// Next incrementa y devuelve el contador (el primero es 1).
func (q *Sequence) Next(ctx context.Context) (int64, error) {
	q.s.mu.Lock()
	defer q.s.mu.Unlock()

	q.s.lastCode++
	return q.s.lastCode, nil
}
