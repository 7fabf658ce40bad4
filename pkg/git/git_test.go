package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

const testHookScript = "#!/bin/sh\n# Generated by go-commit-msg\nexec commit-msg check \"$1\"\n"

// setupTestRepo creates a repository with a single commit carrying message
func setupTestRepo(t *testing.T, message string) string {
	t.Helper()
	tempDir := t.TempDir()

	repo, err := git.PlainInit(tempDir, false)
	if err != nil {
		t.Fatalf("Failed to initialize git repo: %v", err)
	}

	if err := os.WriteFile(filepath.Join(tempDir, "file1.txt"), []byte("content1"), 0o644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Failed to get worktree: %v", err)
	}
	if _, err := worktree.Add("file1.txt"); err != nil {
		t.Fatalf("Failed to add files: %v", err)
	}
	_, err = worktree.Commit(message, &git.CommitOptions{
		Author: &object.Signature{Name: "Test User", Email: "test@example.com", When: time.Now()},
	})
	if err != nil {
		t.Fatalf("Failed to commit files: %v", err)
	}

	return tempDir
}

// addLinkedWorktree lays out a linked worktree of repoDir the way
// "git worktree add" does and returns the new work tree
func addLinkedWorktree(t *testing.T, repoDir, name string) string {
	t.Helper()

	raw, err := git.PlainOpen(repoDir)
	if err != nil {
		t.Fatalf("Failed to open repository: %v", err)
	}
	head, err := raw.Head()
	if err != nil {
		t.Fatalf("Failed to resolve HEAD: %v", err)
	}

	wtDir := filepath.Join(t.TempDir(), name)
	wtGitDir := filepath.Join(repoDir, ".git", "worktrees", name)
	if err := os.MkdirAll(wtGitDir, 0o755); err != nil {
		t.Fatalf("Failed to create worktree git dir: %v", err)
	}
	if err := os.MkdirAll(wtDir, 0o755); err != nil {
		t.Fatalf("Failed to create worktree: %v", err)
	}

	files := map[string]string{
		filepath.Join(wtGitDir, "HEAD"):      head.Hash().String() + "\n",
		filepath.Join(wtGitDir, "commondir"): "../..\n",
		filepath.Join(wtGitDir, "gitdir"):    filepath.Join(wtDir, ".git") + "\n",
		filepath.Join(wtDir, ".git"):         "gitdir: " + wtGitDir + "\n",
	}
	for path, content := range files {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write %s: %v", path, err)
		}
	}
	return wtDir
}

func TestFindGitRoot(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	subDir := filepath.Join(tempDir, "subdir", "deep")
	if err := os.MkdirAll(subDir, 0o755); err != nil {
		t.Fatalf("Failed to create test directory: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(tempDir, ".git"), 0o755); err != nil {
		t.Fatalf("Failed to create .git directory: %v", err)
	}

	tests := []struct {
		name      string
		path      string
		expected  string
		expectErr bool
	}{
		{name: "find root from root directory", path: tempDir, expected: tempDir},
		{name: "find root from subdirectory", path: subDir, expected: tempDir},
		{name: "non-git directory fails", path: t.TempDir(), expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			root, err := FindGitRoot(tt.path)
			if tt.expectErr {
				if err == nil {
					t.Errorf("Expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if root != tt.expected {
				t.Errorf("Expected root %s, got %s", tt.expected, root)
			}
		})
	}
}

func TestFindGitRootWithGitFile(t *testing.T) {
	t.Parallel()

	// Worktree scenario where .git is a file
	tempDir := t.TempDir()
	gitContent := "gitdir: /some/other/path/.git/worktrees/branch"
	if err := os.WriteFile(filepath.Join(tempDir, ".git"), []byte(gitContent), 0o644); err != nil {
		t.Fatalf("Failed to create .git file: %v", err)
	}

	root, err := FindGitRoot(tempDir)
	if err != nil {
		t.Errorf("Unexpected error with .git file: %v", err)
	}
	if root != tempDir {
		t.Errorf("Expected root %s, got %s", tempDir, root)
	}

	dir, ok := gitDirAt(tempDir)
	if !ok || dir != "/some/other/path/.git/worktrees/branch" {
		t.Errorf("Expected worktree git dir, got %q (ok=%v)", dir, ok)
	}
}

func TestNewRepository(t *testing.T) {
	t.Parallel()

	if _, err := NewRepository(t.TempDir()); err == nil {
		t.Error("Expected error for non-git directory")
	}

	repoDir := setupTestRepo(t, "chore: initial commit\n")
	repo, err := NewRepository(repoDir)
	if err != nil {
		t.Fatalf("Failed to open repository: %v", err)
	}
	if repo.Root != repoDir {
		t.Errorf("Expected root %s, got %s", repoDir, repo.Root)
	}
}

func TestRepository_MessagePath(t *testing.T) {
	t.Parallel()

	repoDir := setupTestRepo(t, "chore: initial commit\n")
	repo, err := NewRepository(repoDir)
	if err != nil {
		t.Fatalf("Failed to open repository: %v", err)
	}

	expected := filepath.Join(repoDir, ".git", CommitMessageFile)
	if got := repo.MessagePath(); got != expected {
		t.Errorf("Expected message path %s, got %s", expected, got)
	}
}

func TestRepository_InstallUninstallHook(t *testing.T) {
	t.Parallel()

	repoDir := setupTestRepo(t, "chore: initial commit\n")
	repo, err := NewRepository(repoDir)
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}

	hookName := "commit-msg"
	if repo.HasHook(hookName) {
		t.Error("Hook should not exist initially")
	}

	if installErr := repo.InstallHook(hookName, testHookScript); installErr != nil {
		t.Fatalf("Failed to install hook: %v", installErr)
	}
	if !repo.HasHook(hookName) {
		t.Error("Hook should exist after installation")
	}
	if !repo.IsManagedHook(hookName, "Generated by go-commit-msg") {
		t.Error("Installed hook should carry the marker")
	}
	if repo.IsManagedHook(hookName, "something else") {
		t.Error("Marker check should not match arbitrary text")
	}

	hookPath := filepath.Join(repoDir, ".git", "hooks", hookName)
	content, err := os.ReadFile(hookPath)
	if err != nil {
		t.Fatalf("Failed to read hook file: %v", err)
	}
	if string(content) != testHookScript {
		t.Errorf("Hook content mismatch. Expected %s, got %s", testHookScript, string(content))
	}

	info, err := os.Stat(hookPath)
	if err != nil {
		t.Fatalf("Failed to stat hook file: %v", err)
	}
	if info.Mode()&0o100 == 0 {
		t.Error("Hook file should be executable")
	}

	if err := repo.UninstallHook(hookName); err != nil {
		t.Errorf("Failed to uninstall hook: %v", err)
	}
	if repo.HasHook(hookName) {
		t.Error("Hook should not exist after uninstallation")
	}

	// Removing a missing hook is not an error
	if err := repo.UninstallHook(hookName); err != nil {
		t.Errorf("Uninstalling a missing hook should succeed: %v", err)
	}
}

func TestRepository_HooksDir_CoreHooksPath(t *testing.T) {
	t.Parallel()

	repoDir := setupTestRepo(t, "chore: initial commit\n")
	raw, err := git.PlainOpen(repoDir)
	if err != nil {
		t.Fatalf("Failed to open repository: %v", err)
	}
	cfg, err := raw.Config()
	if err != nil {
		t.Fatalf("Failed to read config: %v", err)
	}
	cfg.Raw.Section("core").SetOption("hooksPath", ".githooks")
	if err := raw.SetConfig(cfg); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	repo, err := NewRepository(repoDir)
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}

	expected := filepath.Join(repoDir, ".githooks")
	if got := repo.HooksDir(); got != expected {
		t.Errorf("Expected hooks dir %s, got %s", expected, got)
	}
	if err := repo.InstallHook("commit-msg", testHookScript); err != nil {
		t.Fatalf("Failed to install hook: %v", err)
	}
	if _, err := os.Stat(filepath.Join(expected, "commit-msg")); err != nil {
		t.Errorf("Hook should be written to core.hooksPath: %v", err)
	}
}

func TestRepository_HooksDir_LinkedWorktree(t *testing.T) {
	t.Parallel()

	repoDir := setupTestRepo(t, "chore: initial commit\n")
	wtDir := addLinkedWorktree(t, repoDir, "wt")

	repo, err := NewRepository(wtDir)
	if err != nil {
		t.Fatalf("Failed to open worktree: %v", err)
	}

	commonHooks := filepath.Join(repoDir, ".git", "hooks")
	if got := repo.HooksDir(); got != commonHooks {
		t.Errorf("Expected hooks dir %s, got %s", commonHooks, got)
	}
	expectedMessage := filepath.Join(repoDir, ".git", "worktrees", "wt", CommitMessageFile)
	if got := repo.MessagePath(); got != expectedMessage {
		t.Errorf("Expected message path %s, got %s", expectedMessage, got)
	}

	if err := repo.InstallHook("commit-msg", testHookScript); err != nil {
		t.Fatalf("Failed to install hook from worktree: %v", err)
	}
	if _, err := os.Stat(filepath.Join(commonHooks, "commit-msg")); err != nil {
		t.Errorf("Hook should be written to the common hooks dir: %v", err)
	}
	if !repo.HasHook("commit-msg") || !repo.IsManagedHook("commit-msg", "# Generated by go-commit-msg") {
		t.Error("Worktree should see the installed hook")
	}

	if err := repo.UninstallHook("commit-msg"); err != nil {
		t.Fatalf("Failed to uninstall hook from worktree: %v", err)
	}
	if _, err := os.Stat(filepath.Join(commonHooks, "commit-msg")); !os.IsNotExist(err) {
		t.Error("Hook should be removed from the common hooks dir")
	}
}

func TestRepository_HooksDir_SubmoduleGitFile(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	moduleGitDir := filepath.Join(tempDir, ".git", "modules", "sub")
	subDir := filepath.Join(tempDir, "sub")
	for _, dir := range []string{moduleGitDir, subDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}
	if err := os.WriteFile(filepath.Join(subDir, ".git"), []byte("gitdir: ../.git/modules/sub\n"), 0o644); err != nil {
		t.Fatalf("Failed to create .git file: %v", err)
	}

	repo := &Repository{Root: subDir}
	if got := repo.CommonDir(); got != moduleGitDir {
		t.Errorf("Expected common dir %s, got %s", moduleGitDir, got)
	}
	if got, expected := repo.HooksDir(), filepath.Join(moduleGitDir, "hooks"); got != expected {
		t.Errorf("Expected hooks dir %s, got %s", expected, got)
	}
}

func TestRepository_CommitMessage(t *testing.T) {
	t.Parallel()

	message := "feat: add login\n\nimplements oauth [#123]\n"
	repoDir := setupTestRepo(t, message)
	repo, err := NewRepository(repoDir)
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}

	got, err := repo.CommitMessage("HEAD")
	if err != nil {
		t.Fatalf("Failed to read HEAD message: %v", err)
	}
	if got != message {
		t.Errorf("Expected message %q, got %q", message, got)
	}

	if _, err := repo.CommitMessage("does-not-exist"); err == nil {
		t.Error("Expected error for unknown revision")
	}
}

func TestRepository_NilRepository(t *testing.T) {
	repo := &Repository{Root: t.TempDir()}

	if _, err := repo.CommitMessage("HEAD"); err == nil {
		t.Error("Expected error for uninitialized repository")
	}
	if got := repo.HooksDir(); got != filepath.Join(repo.Root, ".git", "hooks") {
		t.Errorf("Unexpected hooks dir %s", got)
	}
}
