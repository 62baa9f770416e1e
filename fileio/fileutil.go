package fileio

import (
	"os"
	"path/filepath"
)

// CreateFile creates a file, making parent directories on demand.
func CreateFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, err
	}
	return os.Create(path)
}
