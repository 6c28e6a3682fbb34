// Package report persists problems reports on disk.
package report

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileWriter implements domain.ReportWriter.
type FileWriter struct{}

func New() *FileWriter {
	return &FileWriter{}
}

// Write replaces the file at path, creating its directory as needed.
func (w *FileWriter) Write(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
