// Package git wraps the go-git operations GitCanvas needs: idempotent
// provisioning of a working copy, dated commits, and pushing the result.
package git

import (
	"fmt"
	"os"
	"time"

	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/rs/zerolog/log"
)

// Fallback identity used when the repository has no user.name/user.email
// configured in any scope.
const (
	defaultAuthorName  = "GitCanvas"
	defaultAuthorEmail = "gitcanvas@localhost"
)

// IsRepo returns true if path holds a git repository.
func IsRepo(path string) bool {
	_, err := gogit.PlainOpen(path)
	return err == nil
}

// Init initializes a new repository at path, creating the directory if
// needed.
func Init(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	if _, err := gogit.PlainInit(path, false); err != nil {
		return fmt.Errorf("failed to init repository at %s: %w", path, err)
	}
	return nil
}

// CloneIfAbsent clones url into path unless path already holds a repository.
// Calling it twice is a no-op the second time.
func CloneIfAbsent(path, url string) error {
	if IsRepo(path) {
		log.Info().Msgf("Repository already exists at %s", path)
		return nil
	}

	log.Info().Msgf("Cloning %s into %s", url, path)
	if _, err := gogit.PlainClone(path, false, &gogit.CloneOptions{URL: url}); err != nil {
		return fmt.Errorf("failed to clone %s: %w", url, err)
	}
	return nil
}

// StagePath stages a file or directory, given relative to the repo root.
func StagePath(repoPath, relativePath string) error {
	repo, err := gogit.PlainOpen(repoPath)
	if err != nil {
		return fmt.Errorf("failed to open repository: %w", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree: %w", err)
	}
	if _, err := wt.Add(relativePath); err != nil {
		return fmt.Errorf("failed to stage %s: %w", relativePath, err)
	}
	return nil
}

// CommitDated creates a commit whose author and committer timestamps are both
// set to when.
func CommitDated(repoPath, message string, when time.Time) error {
	repo, err := gogit.PlainOpen(repoPath)
	if err != nil {
		return fmt.Errorf("failed to open repository: %w", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree: %w", err)
	}

	sig := signature(repo, when)
	_, err = wt.Commit(message, &gogit.CommitOptions{
		Author:    &sig,
		Committer: &sig,
	})
	if err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// Push pushes the branch to the named remote. An already-up-to-date remote is
// not an error.
func Push(repoPath, remote, branch string) error {
	repo, err := gogit.PlainOpen(repoPath)
	if err != nil {
		return fmt.Errorf("failed to open repository: %w", err)
	}

	refSpec := gitconfig.RefSpec(fmt.Sprintf("refs/heads/%s:refs/heads/%s", branch, branch))
	err = repo.Push(&gogit.PushOptions{
		RemoteName: remote,
		RefSpecs:   []gitconfig.RefSpec{refSpec},
	})
	if err == gogit.NoErrAlreadyUpToDate {
		log.Info().Msgf("Remote %s already up to date", remote)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to push to %s/%s: %w", remote, branch, err)
	}
	return nil
}

// CommitCount returns the number of commits reachable from HEAD, or 0 for a
// repository without commits.
func CommitCount(repoPath string) (int, error) {
	repo, err := gogit.PlainOpen(repoPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open repository: %w", err)
	}

	iter, err := repo.Log(&gogit.LogOptions{})
	if err != nil {
		// No HEAD yet means no commits.
		return 0, nil
	}

	count := 0
	err = iter.ForEach(func(*object.Commit) error {
		count++
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to walk commits: %w", err)
	}
	return count, nil
}

// signature builds the commit signature for when, taking the identity from
// the repository/global git config when present.
func signature(repo *gogit.Repository, when time.Time) object.Signature {
	name := defaultAuthorName
	email := defaultAuthorEmail

	if cfg, err := repo.ConfigScoped(gitconfig.SystemScope); err == nil {
		if cfg.User.Name != "" {
			name = cfg.User.Name
		}
		if cfg.User.Email != "" {
			email = cfg.User.Email
		}
	}

	return object.Signature{Name: name, Email: email, When: when}
}
