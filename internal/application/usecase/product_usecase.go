package usecase

import (
	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

// ProductUseCase expone el catálogo fijo de productos.
type ProductUseCase struct {
	catalog repository.ProductCatalog
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(catalog repository.ProductCatalog) *ProductUseCase {
	return &ProductUseCase{catalog: catalog}
}

// List devuelve todos los productos del catálogo.
func (uc *ProductUseCase) List() []dto.ProductResponse {
	products := uc.catalog.List()
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ProductResponse{Name: p.Name})
	}
	return out
}
