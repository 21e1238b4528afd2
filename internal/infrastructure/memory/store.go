// Package memory implementa los puertos de persistencia en memoria (desarrollo y tests).
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ repository.OrderTxRunner = (*Store)(nil)

// Store agrupa los datos en memoria. Cada repositorio devuelve copias para que
// los llamadores no puedan mutar el estado interno.
type Store struct {
	mu        sync.RWMutex
	users     map[string]*entity.User // por ID
	companies []*entity.Company
	orders    map[int64]*entity.Order
	lastCode  int64

	// txMu serializa RunOrder: el contador se revierte si fn falla.
	txMu sync.Mutex
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		users:  make(map[string]*entity.User),
		orders: make(map[int64]*entity.Order),
	}
}

// Users devuelve el repositorio de usuarios.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

// Companies devuelve el repositorio de empresas.
func (s *Store) Companies() *CompanyRepo { return &CompanyRepo{s: s} }

// Orders devuelve el repositorio de pedidos.
func (s *Store) Orders() *OrderRepo { return &OrderRepo{s: s} }

// Sequence devuelve el contador de códigos de pedido.
func (s *Store) Sequence() *Sequence { return &Sequence{s: s} }

// RunOrder ejecuta fn de forma serializada; si falla, el contador vuelve a su valor previo.
func (s *Store) RunOrder(ctx context.Context, fn func(orders repository.OrderRepository, seq repository.OrderSequence) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	saved := s.lastCode
	s.mu.RUnlock()

	if err := fn(s.Orders(), s.Sequence()); err != nil {
		s.mu.Lock()
		s.lastCode = saved
		s.mu.Unlock()
		return err
	}
	return nil
}
