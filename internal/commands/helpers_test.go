package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// chdirTemp moves the test into a fresh working directory
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

// initRepo creates a git repository in a fresh working directory
func initRepo(t *testing.T) (string, *git.Repository) {
	t.Helper()
	dir := chdirTemp(t)
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("failed to init git repository: %v", err)
	}
	return dir, repo
}

// commitFile commits a single file with the given message
func commitFile(t *testing.T, repo *git.Repository, dir, msg string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte(msg), 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("failed to get worktree: %v", err)
	}
	if _, err := wt.Add("README.md"); err != nil {
		t.Fatalf("failed to add file: %v", err)
	}
	_, err = wt.Commit(msg, &git.CommitOptions{
		Author: &object.Signature{Name: "Test User", Email: "test@example.com", When: time.Now()},
	})
	if err != nil {
		t.Fatalf("failed to commit: %v", err)
	}
}

// writeFile writes content to name inside dir and returns its path
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// capture points a command's output at a buffer
func capture(bc *BaseCommand) *bytes.Buffer {
	buf := &bytes.Buffer{}
	bc.Out = buf
	return buf
}

// addWorktree lays out a linked worktree the way "git worktree add" does,
// moves the test into it and returns its path
func addWorktree(t *testing.T, repo *git.Repository, dir, name string) string {
	t.Helper()
	head, err := repo.Head()
	if err != nil {
		t.Fatalf("failed to resolve HEAD: %v", err)
	}

	wtDir := filepath.Join(t.TempDir(), name)
	wtGitDir := filepath.Join(dir, ".git", "worktrees", name)
	writeFile(t, wtGitDir, "HEAD", head.Hash().String()+"\n")
	writeFile(t, wtGitDir, "commondir", "../..\n")
	writeFile(t, wtGitDir, "gitdir", filepath.Join(wtDir, ".git")+"\n")
	writeFile(t, wtDir, ".git", "gitdir: "+wtGitDir+"\n")

	t.Chdir(wtDir)
	return wtDir
}
