package baseline_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openkraft/cleanuml/internal/adapters/outbound/baseline"
	"github.com/openkraft/cleanuml/internal/domain"
)

func TestStore_SaveAndLoad(t *testing.T) {
	store := baseline.New()
	modelPath := filepath.Join(t.TempDir(), "grid.eap")

	original := &domain.Baseline{
		ModelPath:    modelPath,
		ModelHash:    "abc123",
		ConfigHash:   "def456",
		Fingerprints: []string{"ClassesMissingDoc|TC57CIM::Switch|"},
	}
	require.NoError(t, store.Save(original))

	loaded, err := store.Load(modelPath)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, original, loaded)
}

func TestStore_LoadNonExistent(t *testing.T) {
	store := baseline.New()

	loaded, err := store.Load(filepath.Join(t.TempDir(), "grid.eap"))
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestStore_LoadCorrupt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".cleanuml", "baseline"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".cleanuml", "baseline", "grid.json"), []byte("{"), 0644))

	_, err := baseline.New().Load(filepath.Join(dir, "grid.eap"))
	assert.ErrorContains(t, err, "decoding baseline")
}

func TestStore_Invalidate(t *testing.T) {
	store := baseline.New()
	modelPath := filepath.Join(t.TempDir(), "grid.eap")

	require.NoError(t, store.Save(&domain.Baseline{ModelPath: modelPath, ConfigHash: "abc"}))
	require.NoError(t, store.Invalidate(modelPath))

	loaded, err := store.Load(modelPath)
	assert.NoError(t, err)
	assert.Nil(t, loaded)

	assert.NoError(t, store.Invalidate(modelPath), "invalidating twice is harmless")
}

func TestStore_OneFilePerModel(t *testing.T) {
	store := baseline.New()
	dir := t.TempDir()
	grid := filepath.Join(dir, "grid.eap")
	iec := filepath.Join(dir, "iec61850.xmi")

	require.NoError(t, store.Save(&domain.Baseline{ModelPath: grid, ConfigHash: "a"}))
	require.NoError(t, store.Save(&domain.Baseline{ModelPath: iec, ConfigHash: "b"}))

	assert.FileExists(t, filepath.Join(dir, ".cleanuml", "baseline", "grid.json"))
	assert.FileExists(t, filepath.Join(dir, ".cleanuml", "baseline", "iec61850.json"))

	loaded, err := store.Load(grid)
	require.NoError(t, err)
	assert.Equal(t, "a", loaded.ConfigHash)
}
