package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/inference-sim/units/units"
)

// CatalogFile represents the full unit catalog YAML structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type CatalogFile struct {
	Version string      `yaml:"version"`
	Units   []UnitEntry `yaml:"units"`
}

// UnitEntry defines one concrete unit.
type UnitEntry struct {
	Name      string  `yaml:"name"`
	Dimension string  `yaml:"dimension"`
	Factor    float64 `yaml:"factor"` // base units per one of this unit
}

// loadCatalog returns the built-in catalog for an empty path, otherwise the
// catalog described by the YAML file at path.
func loadCatalog(path string) (*units.Catalog, error) {
	if path == "" {
		return units.Builtin(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %q: %w", path, err)
	}
	cat, err := parseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %q: %w", path, err)
	}
	logrus.Infof("Loaded unit catalog %s: %d units", path, cat.Len())
	return cat, nil
}

// parseCatalog decodes a catalog with strict field checking: typos must cause errors.
func parseCatalog(data []byte) (*units.Catalog, error) {
	var file CatalogFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	if len(file.Units) == 0 {
		return nil, fmt.Errorf("no units defined")
	}
	kinds := make([]units.Kind, len(file.Units))
	for i, u := range file.Units {
		kinds[i] = units.Kind{Name: u.Name, Factor: u.Factor, Dimension: units.Dimension(u.Dimension)}
	}
	return units.NewCatalog(kinds...)
}
