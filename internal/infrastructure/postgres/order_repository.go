package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Create debe ir dentro de una tx (ver TxRunner.RunOrder).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create inserta la cabecera y sus líneas en un único batch.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	b := &pgx.Batch{}
	b.Queue(`
		INSERT INTO orders (code, user_id, cnpj, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		order.Code, order.UserID, order.CNPJ, order.Active, order.CreatedAt, order.UpdatedAt,
	)
	for i, item := range order.Items {
		b.Queue(`
			INSERT INTO order_items (order_code, position, name, quantity)
			VALUES ($1, $2, $3, $4)`,
			order.Code, i, item.Name, item.Quantity,
		)
	}

	br := r.q.SendBatch(ctx, b)
	for i := 0; i < b.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return wrapError("insert order", err)
		}
	}
	if err := br.Close(); err != nil {
		return wrapError("insert order", err)
	}
	return nil
}

// Deactivate baja lógica condicionada: solo afecta al pedido activo del usuario.
func (r *OrderRepo) Deactivate(ctx context.Context, userID string, code int64) (bool, error) {
	tag, err := r.q.Exec(ctx, `
		UPDATE orders SET active = FALSE, updated_at = now()
		WHERE code = $1 AND user_id = $2 AND active`,
		code, userID,
	)
	if err != nil {
		return false, wrapError("deactivate order", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *OrderRepo) CountActiveByCNPJ(ctx context.Context, userID string, cnpjs []string) (map[string]int, error) {
	counts := make(map[string]int, len(cnpjs))
	if len(cnpjs) == 0 {
		return counts, nil
	}
	rows, err := r.q.Query(ctx, `
		SELECT cnpj, COUNT(*) FROM orders
		WHERE user_id = $1 AND active AND cnpj = ANY($2)
		GROUP BY cnpj`,
		userID, cnpjs,
	)
	if err != nil {
		return nil, wrapError("count orders", err)
	}
	defer rows.Close()
	for rows.Next() {
		var cnpj string
		var n int
		if err := rows.Scan(&cnpj, &n); err != nil {
			return nil, wrapError("scan count", err)
		}
		counts[cnpj] = n
	}
	return counts, rows.Err()
}

// GetItems líneas del pedido en su orden original.
func (r *OrderRepo) GetItems(ctx context.Context, code int64) ([]entity.OrderItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT name, quantity FROM order_items WHERE order_code = $1 ORDER BY position`, code)
	if err != nil {
		return nil, wrapError("get order items", err)
	}
	defer rows.Close()
	var items []entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.Name, &it.Quantity); err != nil {
			return nil, wrapError("scan order item", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
