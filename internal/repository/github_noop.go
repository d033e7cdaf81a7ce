package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/compozy/tagrelease/internal/domain"
)

var ErrGithubTokenRequired = errors.New(
	"GITHUB_TOKEN environment variable not found. pass `GITHUB_TOKEN` as env",
)

// githubNoopRepository fails every call; it stands in when no token is configured.
type githubNoopRepository struct{}

func NewGithubNoopRepository() GithubRepository {
	return &githubNoopRepository{}
}

func (r *githubNoopRepository) GetBranch(_ context.Context, owner, repo, _ string) (string, error) {
	return "", r.operationError("get branch", owner, repo)
}

func (r *githubNoopRepository) GetReleaseByTag(_ context.Context, owner, repo, _ string) (*domain.Release, error) {
	return nil, r.operationError("get release", owner, repo)
}

func (r *githubNoopRepository) CreateRelease(
	_ context.Context,
	owner, repo string,
	_ domain.ReleaseRequest,
) (*domain.Release, error) {
	return nil, r.operationError("create release", owner, repo)
}

func (r *githubNoopRepository) GetRef(_ context.Context, owner, repo, _ string) (*domain.Reference, error) {
	return nil, r.operationError("get reference", owner, repo)
}

func (r *githubNoopRepository) CreateTagObject(
	_ context.Context,
	owner, repo string,
	_ domain.TagRequest,
) (string, error) {
	return "", r.operationError("create tag object", owner, repo)
}

func (r *githubNoopRepository) CreateRef(_ context.Context, owner, repo, _, _ string) (*domain.Reference, error) {
	return nil, r.operationError("create reference", owner, repo)
}

func (r *githubNoopRepository) operationError(action, owner, repo string) error {
	return fmt.Errorf("%w: %w: unable to %s for %s/%s",
		domain.ErrInvalidInput, ErrGithubTokenRequired, action, owner, repo)
}
