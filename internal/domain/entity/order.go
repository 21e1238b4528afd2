package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order pedido de un usuario contra una de sus empresas (referenciada por CNPJ).
// Code es global, creciente y nunca se reutiliza. La baja es lógica (Active=false).
type Order struct {
	Code      int64
	UserID    string
	CNPJ      string
	Items     []OrderItem
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderItem línea del pedido; Quantity > 0.
type OrderItem struct {
	Name     string
	Quantity decimal.Decimal
}
