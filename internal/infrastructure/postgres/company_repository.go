package postgres

import (
	"context"

	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persiste una empresa. El índice único (user_id, cnpj) resuelve altas concurrentes.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	query := `
		INSERT INTO companies (id, user_id, name, cnpj, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		company.ID, company.UserID, company.Name, company.CNPJ, company.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.WithDetail(domain.ErrDuplicatedCnpj, company.CNPJ)
		}
		return wrapError("insert company", err)
	}
	return nil
}

func (r *CompanyRepo) ExistsByUserAndCNPJ(ctx context.Context, userID, cnpj string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM companies WHERE user_id = $1 AND cnpj = $2)`,
		userID, cnpj,
	).Scan(&exists)
	if err != nil {
		return false, wrapError("exists company", err)
	}
	return exists, nil
}

// ListByUser lista las empresas del usuario por orden de alta.
func (r *CompanyRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Company, error) {
	query := `
		SELECT id, user_id, name, cnpj, created_at
		FROM companies WHERE user_id = $1 ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, wrapError("list companies", err)
	}
	defer rows.Close()
	list := []*entity.Company{}
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.CNPJ, &c.CreatedAt); err != nil {
			return nil, wrapError("scan company", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
