package repository

import (
	"context"
	"fmt"

	"github.com/go-git/go-git/v5"
)

// gitRepository is the implementation of the GitRepository interface.
type gitRepository struct {
	repo *git.Repository
}

// NewGitRepository opens the repository containing dir, searching parent directories.
func NewGitRepository(dir string) (GitRepository, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository: %w", err)
	}
	return &gitRepository{repo: repo}, nil
}

// RemoteURL returns the first URL of a remote.
func (r *gitRepository) RemoteURL(_ context.Context, name string) (string, error) {
	remote, err := r.repo.Remote(name)
	if err != nil {
		return "", fmt.Errorf("failed to get remote %s: %w", name, err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("remote %s has no URL", name)
	}
	return urls[0], nil
}

// HeadSHA returns the hash of the HEAD commit.
func (r *gitRepository) HeadSHA(_ context.Context) (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}
	return head.Hash().String(), nil
}
