package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Store manages the durable asset directory (logos, signatures) and the
// export directory (generated CSV/PDF/XLSX files). Both survive restarts.
type Store struct {
	root      string
	exportDir string
}

// New creates a Store, ensuring both directories exist.
func New(root, exportDir string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("storage: failed to create %s: %w", root, err)
	}
	if err := os.MkdirAll(exportDir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: failed to create %s: %w", exportDir, err)
	}
	return &Store{root: root, exportDir: exportDir}, nil
}

// Root returns the durable asset directory.
func (s *Store) Root() string {
	return s.root
}

// ExportDir returns the export directory.
func (s *Store) ExportDir() string {
	return s.exportDir
}

// SaveAsset writes data to a timestamped file in the asset directory, e.g.
// "signature_1735689600000.png", and returns its path. Existing assets are
// never overwritten or deleted.
func (s *Store) SaveAsset(prefix, ext string, data []byte) (string, error) {
	name := fmt.Sprintf("%s_%d%s", prefix, time.Now().UnixMilli(), ext)
	path := filepath.Join(s.root, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("storage: failed to write %s: %w", path, err)
	}
	return path, nil
}

// WriteExport writes an export file under the export directory, overwriting
// any previous file with the same name, and returns its path.
func (s *Store) WriteExport(name string, data []byte) (string, error) {
	path := filepath.Join(s.exportDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("storage: failed to write %s: %w", path, err)
	}
	return path, nil
}

// ReadAsset reads a referenced asset file (logo or signature) by its URI.
func (s *Store) ReadAsset(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("storage: failed to read %s: %w", path, err)
	}
	return data, nil
}
