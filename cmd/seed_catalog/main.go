// seed_catalog genera el archivo YAML del catálogo de productos a partir de la
// exportación XML del sistema legado (codificada en ISO-8859-1).
//
// Uso: go run ./cmd/seed_catalog [ruta/produtos.xml] [salida.yaml]
// Por defecto lee produtos.xml del directorio actual y escribe
// internal/infrastructure/catalog/default_catalog.yaml.
package main

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/backoffice-api/internal/infrastructure/catalog"
)

type exportacao struct {
	Produtos []produto `xml:"produto"`
}

type produto struct {
	Nome  string `xml:"nome,attr"`
	Ativo string `xml:"ativo,attr"`
}

func main() {
	xmlPath := "produtos.xml"
	if len(os.Args) > 1 {
		xmlPath = os.Args[1]
	}
	outPath := filepath.Join(findModuleRoot(), "internal", "infrastructure", "catalog", "default_catalog.yaml")
	if len(os.Args) > 2 {
		outPath = os.Args[2]
	}

	f, err := os.Open(xmlPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir XML: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	file, err := convert(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Convertir: %v\n", err)
		os.Exit(1)
	}

	data, err := yaml.Marshal(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Codificar YAML: %v\n", err)
		os.Exit(1)
	}
	// Validar antes de escribir: el servidor rechazaría un catálogo inválido al arrancar.
	if _, err := catalog.Parse(data); err != nil {
		fmt.Fprintf(os.Stderr, "Catálogo inválido: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir archivo: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d productos\n", outPath, len(file.Products))
}

// convert decodifica la exportación y conserva los productos activos, sin repetidos,
// en el orden del archivo.
func convert(r io.Reader) (catalog.File, error) {
	var exp exportacao
	dec := xml.NewDecoder(r)
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		if strings.EqualFold(charset, "ISO-8859-1") || strings.EqualFold(charset, "ISO8859-1") {
			return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
		}
		return input, nil
	}
	if err := dec.Decode(&exp); err != nil {
		return catalog.File{}, fmt.Errorf("decodificar XML: %w", err)
	}

	var out catalog.File
	seen := make(map[string]bool)
	for _, p := range exp.Produtos {
		name := strings.TrimSpace(p.Nome)
		if name == "" || seen[name] || strings.EqualFold(p.Ativo, "N") {
			continue
		}
		seen[name] = true
		out.Products = append(out.Products, catalog.FileProduct{Name: name})
	}
	return out, nil
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
