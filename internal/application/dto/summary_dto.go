package dto

// SummaryItem pedidos activos de una empresa del usuario.
type SummaryItem struct {
	Name   string `json:"name"`
	CNPJ   string `json:"cnpj"`
	Orders int    `json:"orders"`
}
