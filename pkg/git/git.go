// Package git provides the Git repository operations a commit-msg hook needs.
package git

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// CommitMessageFile is the file git writes the message being committed to
const CommitMessageFile = "COMMIT_EDITMSG"

// Repository represents a git repository
type Repository struct {
	repo *git.Repository
	Root string
}

// NewRepository creates a new Repository instance
func NewRepository(path string) (*Repository, error) {
	root, err := FindGitRoot(path)
	if err != nil {
		return nil, err
	}

	repo, err := git.PlainOpenWithOptions(root, &git.PlainOpenOptions{EnableDotGitCommonDir: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository: %w", err)
	}

	return &Repository{
		Root: root,
		repo: repo,
	}, nil
}

// FindGitRoot finds the root of the git repository
func FindGitRoot(path string) (string, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %w", err)
		}
	}

	path, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	for {
		if _, ok := gitDirAt(path); ok {
			return path, nil
		}

		parent := filepath.Dir(path)
		if parent == path {
			return "", fmt.Errorf("not in a git repository")
		}
		path = parent
	}
}

// gitDirAt returns the git directory belonging to the work tree at path.
// Worktrees and submodules use a ".git" file pointing elsewhere.
func gitDirAt(path string) (string, bool) {
	gitDir := filepath.Join(path, ".git")
	info, err := os.Stat(gitDir)
	if err != nil {
		return "", false
	}
	if info.IsDir() {
		return gitDir, true
	}

	// #nosec G304 -- reading git metadata
	content, err := os.ReadFile(gitDir)
	if err != nil {
		return "", false
	}
	line := strings.TrimSpace(string(content))
	target, found := strings.CutPrefix(line, "gitdir: ")
	if !found {
		return "", false
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(path, target)
	}
	return target, true
}

// GitDir returns the repository's git directory
func (r *Repository) GitDir() string {
	if dir, ok := gitDirAt(r.Root); ok {
		return dir
	}
	return filepath.Join(r.Root, ".git")
}

// MessagePath returns the path of the message file of the commit in progress
func (r *Repository) MessagePath() string {
	return filepath.Join(r.GitDir(), CommitMessageFile)
}

// HooksDir returns the directory git runs hooks from, honoring core.hooksPath
func (r *Repository) HooksDir() string {
	if r.repo != nil {
		if cfg, err := r.repo.Config(); err == nil {
			if hooksPath := cfg.Raw.Section("core").Option("hooksPath"); hooksPath != "" {
				if !filepath.IsAbs(hooksPath) {
					hooksPath = filepath.Join(r.Root, hooksPath)
				}
				return hooksPath
			}
		}
	}
	return filepath.Join(r.CommonDir(), "hooks")
}

// CommonDir returns the git directory shared by all worktrees. A linked
// worktree's git dir names it in a "commondir" file; otherwise it is GitDir.
func (r *Repository) CommonDir() string {
	gitDir := r.GitDir()
	// #nosec G304 -- reading git metadata
	content, err := os.ReadFile(filepath.Join(gitDir, "commondir"))
	if err != nil {
		return gitDir
	}
	common := strings.TrimSpace(string(content))
	if common == "" {
		return gitDir
	}
	if !filepath.IsAbs(common) {
		common = filepath.Join(gitDir, common)
	}
	return filepath.Clean(common)
}

// InstallHook installs a git hook
func (r *Repository) InstallHook(hookName, script string) error {
	hooksDir := r.HooksDir()
	if err := os.MkdirAll(hooksDir, 0o750); err != nil {
		return fmt.Errorf("failed to create hooks directory: %w", err)
	}

	hookPath := filepath.Join(hooksDir, hookName)
	if err := os.WriteFile(hookPath, []byte(script), 0o600); err != nil {
		return fmt.Errorf("failed to write hook file: %w", err)
	}

	// Make the hook script executable
	// #nosec G302 - Hook scripts need to be executable
	if err := os.Chmod(hookPath, 0o700); err != nil {
		return fmt.Errorf("failed to make hook executable: %w", err)
	}

	return nil
}

// UninstallHook removes a git hook
func (r *Repository) UninstallHook(hookName string) error {
	hookPath := filepath.Join(r.HooksDir(), hookName)
	if err := os.Remove(hookPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove hook: %w", err)
	}
	return nil
}

// HasHook checks if a hook is installed
func (r *Repository) HasHook(hookName string) bool {
	_, err := os.Stat(filepath.Join(r.HooksDir(), hookName))
	return err == nil
}

// IsManagedHook reports whether the installed hook contains marker, i.e.
// whether this tool wrote it
func (r *Repository) IsManagedHook(hookName, marker string) bool {
	// #nosec G304 -- hook path is inside the repository's hooks directory
	content, err := os.ReadFile(filepath.Join(r.HooksDir(), hookName))
	if err != nil {
		return false
	}
	return strings.Contains(string(content), marker)
}

// CommitMessage returns the full message of the commit rev resolves to
func (r *Repository) CommitMessage(rev string) (string, error) {
	if r.repo == nil {
		return "", errors.New("repository is not initialized")
	}

	hash, err := r.resolveReference(rev)
	if err != nil {
		return "", err
	}

	commit, err := r.repo.CommitObject(hash)
	if err != nil {
		return "", fmt.Errorf("failed to get commit %s: %w", rev, err)
	}

	return commit.Message, nil
}

// resolveReference resolves a git reference (branch, tag, commit hash) to a hash
func (r *Repository) resolveReference(ref string) (plumbing.Hash, error) {
	// Try to resolve as a branch or tag first
	if resolvedRef, err := r.repo.ResolveRevision(plumbing.Revision(ref)); err == nil {
		return *resolvedRef, nil
	}

	// Try to parse as a direct hash
	if hash := plumbing.NewHash(ref); !hash.IsZero() {
		return hash, nil
	}

	return plumbing.ZeroHash, fmt.Errorf("unable to resolve reference: %s", ref)
}
