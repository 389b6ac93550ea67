// Package testutil provides common test helpers for the jumpr project.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	gogit "github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing"
)

// TempGitRepo creates a git repository named name inside a fresh temp
// directory with HEAD pointing at branch, and returns the repository path.
func TempGitRepo(t *testing.T, name, branch string) string {
	t.Helper()

	dir := filepath.Join(t.TempDir(), name)
	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("TempGitRepo: init failed: %v", err)
	}

	head := plumbing.NewSymbolicReference(plumbing.HEAD, plumbing.NewBranchReferenceName(branch))
	if err := repo.Storer.SetReference(head); err != nil {
		t.Fatalf("TempGitRepo: set HEAD failed: %v", err)
	}
	return dir
}

// TempWorktree creates a linked worktree layout for repoDir: a metadata
// directory under .git/worktrees/<name> holding HEAD, and a checkout
// directory next to the repository whose .git file points at it.
// gitdirLine is written verbatim into the pointer file; pass "" to use an
// absolute gitdir. Returns the checkout path.
func TempWorktree(t *testing.T, repoDir, name, branch, gitdirLine string) string {
	t.Helper()

	metaDir := filepath.Join(repoDir, ".git", "worktrees", name)
	MkdirAll(t, metaDir)
	WriteFile(t, filepath.Join(metaDir, "HEAD"), "ref: refs/heads/"+branch+"\n")

	checkout := filepath.Join(filepath.Dir(repoDir), name)
	MkdirAll(t, checkout)
	if gitdirLine == "" {
		gitdirLine = "gitdir: " + metaDir
	}
	WriteFile(t, filepath.Join(checkout, ".git"), gitdirLine+"\n")
	return checkout
}

// MkdirAll creates dir and its parents or fails the test.
func MkdirAll(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	MkdirAll(t, filepath.Dir(path))
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

// TempConfigFile creates a temporary config.json with the given content
// and returns its path.
func TempConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	WriteFile(t, path, content)
	return path
}

// TempCacheFile creates a temporary repos.json with the given content
// and returns its path.
func TempCacheFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "repos.json")
	WriteFile(t, path, content)
	return path
}
