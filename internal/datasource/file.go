package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileSource reads the collections from a directory of JSON documents:
// orders.json, users.json, companies.json and optionally rates.json.
type FileSource struct {
	dir string
}

var _ Source = (*FileSource)(nil)
var _ RateSource = (*FileSource)(nil)

// NewFileSource creates a source reading from dir.
func NewFileSource(dir string) *FileSource {
	return &FileSource{dir: dir}
}

// Load reads and decodes the three collection documents.
func (s *FileSource) Load(_ context.Context) (Collections, error) {
	var c Collections

	if err := s.readJSON("orders.json", &c.Orders); err != nil {
		return Collections{}, err
	}
	if err := s.readJSON("users.json", &c.Users); err != nil {
		return Collections{}, err
	}
	if err := s.readJSON("companies.json", &c.Companies); err != nil {
		return Collections{}, err
	}
	return c, nil
}

// LoadRates reads rates.json, a {"rates": {...}} document.
func (s *FileSource) LoadRates(_ context.Context) (map[string]float64, error) {
	var doc ratesDocument
	if err := s.readJSON("rates.json", &doc); err != nil {
		return nil, err
	}
	return doc.Rates, nil
}

func (s *FileSource) readJSON(name string, target any) error {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
