package repository

import "github.com/jhoicas/backoffice-api/internal/domain/entity"

// ProductCatalog catálogo fijo de productos, de solo lectura.
type ProductCatalog interface {
	List() []entity.Product
	// FirstMissing devuelve el primer nombre, en el orden recibido, que no está en el catálogo.
	FirstMissing(names []string) (string, bool)
}
