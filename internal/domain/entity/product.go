package entity

// Product entrada del catálogo fijo; no tiene dueño.
type Product struct {
	Name string
}
