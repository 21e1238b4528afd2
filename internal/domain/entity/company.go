package entity

import "time"

// Company empresa registrada por un usuario. El par (UserID, CNPJ) es único;
// el mismo CNPJ puede existir para usuarios distintos. El CNPJ no cambia tras crearse:
// los pedidos se vinculan a la empresa por ese valor.
type Company struct {
	ID        string
	UserID    string
	Name      string
	CNPJ      string // 14 dígitos, sin separadores
	CreatedAt time.Time
}
