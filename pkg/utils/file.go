package utils

import (
	"os"

	"github.com/pkg/errors"
)

// WriteFile writes content to a file
func WriteFile(path string, data []byte) error {
	// Security: Use 0600 permissions to restrict access to the file owner
	return os.WriteFile(path, data, 0600)
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsureDir creates dir and any missing parents
func EnsureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "failed to create output directory %s", dir)
	}
	return nil
}
