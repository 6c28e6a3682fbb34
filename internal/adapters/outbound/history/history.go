package history

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/openkraft/cleanuml/internal/domain"
)

const historyFile = ".cleanuml/history/runs.json"

// FileHistory implements domain.RunHistory using JSON file storage.
type FileHistory struct{}

func New() *FileHistory {
	return &FileHistory{}
}

func (h *FileHistory) Save(dir string, entry domain.RunEntry) error {
	entries, err := h.Load(dir)
	if err != nil {
		return err
	}

	entries = append(entries, entry)

	fp := filepath.Join(dir, historyFile)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(fp, data, 0644)
}

func (h *FileHistory) Load(dir string) ([]domain.RunEntry, error) {
	fp := filepath.Join(dir, historyFile)

	data, err := os.ReadFile(fp)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.RunEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

