package gitinfo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// shortHashLen is the length of the abbreviated revision.
const shortHashLen = 7

// GitInfoAdapter implements domain.GitInfo using go-git.
type GitInfoAdapter struct{}

func New() *GitInfoAdapter {
	return &GitInfoAdapter{}
}

// IsGitRepo reports whether path, or one of its parents, is in a repository.
func (g *GitInfoAdapter) IsGitRepo(path string) bool {
	_, err := open(path)
	return err == nil
}

// Revision returns the abbreviated HEAD hash of the repository holding
// path, suffixed with "-dirty" when the work tree has local changes.
func (g *GitInfoAdapter) Revision(path string) (string, error) {
	repo, err := open(path)
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}
	rev := head.Hash().String()[:shortHashLen]

	wt, err := repo.Worktree()
	if err != nil {
		return rev, nil
	}
	status, err := wt.Status()
	if err != nil {
		return "", fmt.Errorf("getting status: %w", err)
	}
	if !status.IsClean() {
		rev += "-dirty"
	}
	return rev, nil
}

// open accepts a file or a directory and searches upwards for .git.
func open(path string) (*git.Repository, error) {
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		path = filepath.Dir(path)
	}
	return git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
}
