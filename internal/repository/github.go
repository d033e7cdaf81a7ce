package repository

import (
	"context"

	"github.com/compozy/tagrelease/internal/domain"
)

// GithubRepository defines the hosting API operations a tag/release run needs.
//
// Lookups return a nil result with a nil error when the remote answers with a
// non-200 success status. Not-found responses come back as errors and must be
// classified with IsNotFound.
type GithubRepository interface {
	// GetBranch returns the head commit of a branch
	GetBranch(ctx context.Context, owner, repo, branch string) (string, error)
	// GetReleaseByTag returns the release attached to a tag
	GetReleaseByTag(ctx context.Context, owner, repo, tag string) (*domain.Release, error)
	// CreateRelease publishes a new release
	CreateRelease(ctx context.Context, owner, repo string, req domain.ReleaseRequest) (*domain.Release, error)
	// GetRef returns a reference such as refs/tags/v1.0.0
	GetRef(ctx context.Context, owner, repo, ref string) (*domain.Reference, error)
	// CreateTagObject creates an annotated tag object and returns its sha
	CreateTagObject(ctx context.Context, owner, repo string, req domain.TagRequest) (string, error)
	// CreateRef creates a reference pointing at sha
	CreateRef(ctx context.Context, owner, repo, ref, sha string) (*domain.Reference, error)
}
