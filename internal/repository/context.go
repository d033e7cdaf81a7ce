package repository

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/compozy/tagrelease/internal/domain"
)

const originRemote = "origin"

// ContextRepository resolves the repository and commit a run belongs to.
type ContextRepository interface {
	Repository(ctx context.Context) (owner, repo string, err error)
	SHA(ctx context.Context) (string, error)
}

// actionsContextRepository reads the workflow environment and falls back to
// the local checkout when a value is missing.
type actionsContextRepository struct {
	repository string
	sha        string
	openGit    func() (GitRepository, error)
}

// NewContextRepository builds a ContextRepository from GITHUB_REPOSITORY and
// GITHUB_SHA values. dir locates the checkout used as fallback.
func NewContextRepository(repository, sha, dir string) ContextRepository {
	return &actionsContextRepository{
		repository: strings.TrimSpace(repository),
		sha:        strings.TrimSpace(sha),
		openGit:    func() (GitRepository, error) { return NewGitRepository(dir) },
	}
}

func (r *actionsContextRepository) Repository(ctx context.Context) (string, string, error) {
	if r.repository != "" {
		owner, repo, _ := strings.Cut(r.repository, "/")
		return owner, repo, nil
	}
	gitRepo, err := r.openGit()
	if err != nil {
		return "", "", fmt.Errorf("%w: unable to determine the repository: %w", domain.ErrInvalidInput, err)
	}
	remote, err := gitRepo.RemoteURL(ctx, originRemote)
	if err != nil {
		return "", "", fmt.Errorf("%w: unable to determine the repository: %w", domain.ErrInvalidInput, err)
	}
	owner, repo, err := parseGitRemoteURL(remote)
	if err != nil {
		return "", "", fmt.Errorf("%w: unable to determine the repository: %w", domain.ErrInvalidInput, err)
	}
	return owner, repo, nil
}

func (r *actionsContextRepository) SHA(ctx context.Context) (string, error) {
	if r.sha != "" {
		return r.sha, nil
	}
	gitRepo, err := r.openGit()
	if err != nil {
		return "", fmt.Errorf("%w: unable to determine the commit: %w", domain.ErrInvalidInput, err)
	}
	sha, err := gitRepo.HeadSHA(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: unable to determine the commit: %w", domain.ErrInvalidInput, err)
	}
	return sha, nil
}

// parseGitRemoteURL extracts owner and name from https, scp-like ssh and path remotes.
func parseGitRemoteURL(remote string) (string, string, error) {
	raw := strings.TrimSpace(remote)
	var path string
	switch {
	case strings.Contains(raw, "://"):
		u, err := url.Parse(raw)
		if err != nil {
			return "", "", fmt.Errorf("invalid remote URL %q: %w", remote, err)
		}
		path = u.Path
	case strings.Contains(raw, "@") && strings.Contains(raw, ":"):
		_, path, _ = strings.Cut(raw, ":")
	default:
		path = filepath.ToSlash(raw)
	}
	path = strings.TrimSuffix(strings.TrimSuffix(path, "/"), ".git")
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) < 2 {
		return "", "", fmt.Errorf("remote URL %q has no owner/name", remote)
	}
	owner, repo := segments[len(segments)-2], segments[len(segments)-1]
	if owner == "" || repo == "" {
		return "", "", fmt.Errorf("remote URL %q has no owner/name", remote)
	}
	return owner, repo, nil
}
