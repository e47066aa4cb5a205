package yaml

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vsinha/procure/pkg/domain/entities"
	"github.com/vsinha/procure/pkg/infrastructure/repositories/memory"
)

// Document is the on-disk shape of a single-file catalog
type Document struct {
	Parts     []*entities.Part              `yaml:"parts"`
	Inventory []*entities.InternalInventory `yaml:"inventory"`
	Forecasts []*entities.Forecast          `yaml:"forecasts"`
}

// Loader reads a catalog from a YAML document
type Loader struct{}

// NewLoader creates a new YAML loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadCatalogFile loads a catalog from a YAML file
func (l *Loader) LoadCatalogFile(filename string) (*memory.Catalog, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file %s: %w", filename, err)
	}
	defer file.Close()

	return l.LoadCatalog(file)
}

// LoadCatalog decodes a catalog document and loads it into memory
func (l *Loader) LoadCatalog(r io.Reader) (*memory.Catalog, error) {
	var doc Document
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog YAML: %w", err)
	}

	if len(doc.Parts) == 0 {
		return nil, fmt.Errorf("catalog YAML must contain at least one part")
	}

	return memory.LoadCatalog(doc.Parts, doc.Inventory, doc.Forecasts)
}

// WriteCatalog encodes a catalog as a YAML document
func (l *Loader) WriteCatalog(w io.Writer, doc Document) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode catalog YAML: %w", err)
	}
	return encoder.Close()
}
