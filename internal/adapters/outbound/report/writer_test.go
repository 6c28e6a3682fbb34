package report_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openkraft/cleanuml/internal/adapters/outbound/report"
)

func TestFileWriter_CreatesDirectoryAndReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "problemsReport-grid.csv")
	w := report.New()

	require.NoError(t, w.Write(path, []byte("first")))
	require.NoError(t, w.Write(path, []byte("second")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestFileWriter_FailsOnUnwritablePath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	err := report.New().Write(filepath.Join(blocker, "report.csv"), []byte("x"))
	assert.ErrorContains(t, err, "creating report directory")
}
