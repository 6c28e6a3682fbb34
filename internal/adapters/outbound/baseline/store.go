package baseline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/openkraft/cleanuml/internal/domain"
)

// Store is a file-based implementation of domain.BaselineStore. Baselines
// live next to the model, one file per model.
type Store struct{}

// New creates a new file-based baseline store.
func New() *Store {
	return &Store{}
}

// Load reads the baseline of a model. Returns (nil, nil) if none exists.
func (s *Store) Load(modelPath string) (*domain.Baseline, error) {
	data, err := os.ReadFile(baselinePath(modelPath))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading baseline: %w", err)
	}

	var b domain.Baseline
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("decoding baseline: %w", err)
	}
	return &b, nil
}

// Save writes the baseline, creating directories as needed.
func (s *Store) Save(b *domain.Baseline) error {
	if err := os.MkdirAll(baselineDir(b.ModelPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(baselinePath(b.ModelPath), data, 0644)
}

// Invalidate removes the baseline of a model.
func (s *Store) Invalidate(modelPath string) error {
	if err := os.Remove(baselinePath(modelPath)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func baselineDir(modelPath string) string {
	return filepath.Join(filepath.Dir(modelPath), ".cleanuml", "baseline")
}

func baselinePath(modelPath string) string {
	base := filepath.Base(modelPath)
	return filepath.Join(baselineDir(modelPath), strings.TrimSuffix(base, filepath.Ext(base))+".json")
}
