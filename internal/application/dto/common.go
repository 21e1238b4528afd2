package dto

// ErrorResponse cuerpo de error HTTP. Detail lleva el valor ofensor cuando aplica
// (producto inexistente, CNPJ, código de pedido).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}
