package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

var _ repository.ProductCatalog = (*Catalog)(nil)

// File formato del archivo de catálogo (lo escribe también cmd/seed_catalog).
type File struct {
	Products []FileProduct `yaml:"products"`
}

// FileProduct entrada del archivo de catálogo.
type FileProduct struct {
	Name string `yaml:"name"`
}

// Catalog catálogo inmutable en memoria. Seguro para uso concurrente: solo lectura tras construirse.
type Catalog struct {
	products []entity.Product
	names    map[string]struct{}
}

// Load lee el catálogo desde path; con path vacío usa el embebido.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Parse(defaultCatalog)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("leer catálogo %s: %w", path, err)
	}
	return Parse(data)
}

// Parse construye el catálogo desde YAML. Rechaza nombres vacíos o repetidos.
func Parse(data []byte) (*Catalog, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decodificar catálogo: %w", err)
	}
	names := make([]string, 0, len(f.Products))
	for _, p := range f.Products {
		names = append(names, p.Name)
	}
	return New(names...)
}

// New construye el catálogo a partir de nombres de producto.
func New(names ...string) (*Catalog, error) {
	c := &Catalog{
		products: make([]entity.Product, 0, len(names)),
		names:    make(map[string]struct{}, len(names)),
	}
	for i, name := range names {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("catálogo: producto %d sin nombre", i)
		}
		if _, dup := c.names[name]; dup {
			return nil, fmt.Errorf("catálogo: producto repetido %q", name)
		}
		c.names[name] = struct{}{}
		c.products = append(c.products, entity.Product{Name: name})
	}
	return c, nil
}

// List devuelve una copia de los productos en el orden del archivo.
func (c *Catalog) List() []entity.Product {
	out := make([]entity.Product, len(c.products))
	copy(out, c.products)
	return out
}

// FirstMissing devuelve el primer nombre que no existe en el catálogo.
func (c *Catalog) FirstMissing(names []string) (string, bool) {
	for _, name := range names {
		if _, ok := c.names[name]; !ok {
			return name, true
		}
	}
	return "", false
}
