package memory

import (
	"context"

	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo empresas en memoria.
type CompanyRepo struct {
	s *Store
}

// Create verifica e inserta bajo el mismo lock, equivalente al índice único (user_id, cnpj).
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, c := range r.s.companies {
		if c.UserID == company.UserID && c.CNPJ == company.CNPJ {
			return domain.WithDetail(domain.ErrDuplicatedCnpj, company.CNPJ)
		}
	}
	cp := *company
	r.s.companies = append(r.s.companies, &cp)
	return nil
}

func (r *CompanyRepo) ExistsByUserAndCNPJ(ctx context.Context, userID, cnpj string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, c := range r.s.companies {
		if c.UserID == userID && c.CNPJ == cnpj {
			return true, nil
		}
	}
	return false, nil
}

// ListByUser en orden de inserción.
func (r *CompanyRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var list []*entity.Company
	for _, c := range r.s.companies {
		if c.UserID == userID {
			cp := *c
			list = append(list, &cp)
		}
	}
	return list, nil
}
