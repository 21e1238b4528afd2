package dto

import "github.com/shopspring/decimal"

// OrderItemRequest línea del pedido.
type OrderItemRequest struct {
	Name     string          `json:"name" validate:"required"`
	Quantity decimal.Decimal `json:"quantity" validate:"gt=0"`
}

// CreateOrderRequest entrada para crear un pedido.
type CreateOrderRequest struct {
	CNPJ     string             `json:"cnpj" validate:"required,len=14"`
	Products []OrderItemRequest `json:"products" validate:"required,min=1,dive"`
}

// OrderResponse salida tras crear un pedido.
type OrderResponse struct {
	Code int64 `json:"code"`
}
