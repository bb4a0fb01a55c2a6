package request

import (
	"fmt"
	"os"
	"path/filepath"
)

// Load reads and decodes the request document at path. The returned request
// remembers where it was loaded from.
func Load(path string) (*Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read request file: %w", err)
	}

	r, err := Decode(data)
	if err != nil {
		return nil, err
	}
	r.Path = path
	return r, nil
}

// Save encodes the request and writes it to path, creating missing parent
// directories and overwriting any existing file. On success the request
// remembers path as its location.
func (r *Request) Save(path string) error {
	data, err := Encode(r)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	r.Path = path
	return nil
}
