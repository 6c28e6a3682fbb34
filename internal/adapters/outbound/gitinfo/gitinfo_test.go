package gitinfo_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/openkraft/cleanuml/internal/adapters/outbound/gitinfo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGitInfo_IsGitRepo_True(t *testing.T) {
	dir := t.TempDir()
	runGit(t, dir, "init")

	gi := gitinfo.New()
	assert.True(t, gi.IsGitRepo(dir))
}

func TestGitInfo_IsGitRepo_Subdirectory(t *testing.T) {
	dir := t.TempDir()
	runGit(t, dir, "init")
	sub := filepath.Join(dir, "models", "cim")
	require.NoError(t, os.MkdirAll(sub, 0755))

	assert.True(t, gitinfo.New().IsGitRepo(sub))
}

func TestGitInfo_IsGitRepo_False(t *testing.T) {
	dir := t.TempDir()
	gi := gitinfo.New()
	assert.False(t, gi.IsGitRepo(dir))
}

func TestGitInfo_Revision_CleanAndDirty(t *testing.T) {
	dir := commitModel(t)
	model := filepath.Join(dir, "grid.yaml")

	gi := gitinfo.New()
	rev, err := gi.Revision(model)
	require.NoError(t, err)
	assert.Len(t, rev, 7, "should be an abbreviated SHA-1 hash")

	require.NoError(t, os.WriteFile(model, []byte("packages: []\n"), 0644))
	dirty, err := gi.Revision(model)
	require.NoError(t, err)
	assert.Equal(t, rev+"-dirty", dirty)
}

func TestGitInfo_Revision_NotGitRepo(t *testing.T) {
	dir := t.TempDir()
	gi := gitinfo.New()
	_, err := gi.Revision(dir)
	assert.Error(t, err)
}

func TestGitInfo_Revision_NoCommits(t *testing.T) {
	dir := t.TempDir()
	runGit(t, dir, "init")

	_, err := gitinfo.New().Revision(dir)
	assert.ErrorContains(t, err, "getting HEAD")
}

func commitModel(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	runGit(t, dir, "init")
	runGit(t, dir, "config", "user.email", "test@test.com")
	runGit(t, dir, "config", "user.name", "Test")

	f := filepath.Join(dir, "grid.yaml")
	require.NoError(t, os.WriteFile(f, []byte("packages:\n  - name: TC57CIM\n"), 0644))
	runGit(t, dir, "add", ".")
	runGit(t, dir, "commit", "-m", "init")
	return dir
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, string(out))
}
