package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/compozy/tagrelease/internal/config"
	"github.com/compozy/tagrelease/internal/domain"
	"github.com/google/go-github/v74/github"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// maxBranchRedirects bounds how many renames GetBranch follows.
const maxBranchRedirects = 3

// githubRepository is the implementation of the GithubRepository interface.
type githubRepository struct {
	client *github.Client
	logger *zap.Logger
}

// NewGithubRepository creates a new GithubRepository with validation.
// A non-default apiURL switches the client to GitHub Enterprise endpoints.
func NewGithubRepository(token, apiURL string, logger *zap.Logger) (GithubRepository, error) {
	if err := config.ValidateGitHubToken(token); err != nil {
		return nil, fmt.Errorf("invalid GitHub token: %w", err)
	}
	// Create OAuth2 client with the validated token
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: strings.TrimSpace(token)},
	)
	tc := oauth2.NewClient(context.Background(), ts)
	client := github.NewClient(tc)
	if !config.IsPublicAPIURL(apiURL) {
		var err error
		client, err = client.WithEnterpriseURLs(apiURL, apiURL)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub API URL %s: %w", apiURL, err)
		}
	}
	return newGithubRepositoryWithClient(client, logger), nil
}

func newGithubRepositoryWithClient(client *github.Client, logger *zap.Logger) *githubRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &githubRepository{client: client, logger: logger}
}

// GetBranch returns the sha of the branch head.
func (r *githubRepository) GetBranch(ctx context.Context, owner, repo, branch string) (string, error) {
	r.logger.Debug("GetBranch", zap.String("owner", owner), zap.String("repo", repo), zap.String("branch", branch))
	b, _, err := r.client.Repositories.GetBranch(ctx, owner, repo, branch, maxBranchRedirects)
	if err != nil {
		// Any non-200 reply, 404 included, arrives here as a plain error.
		return "", fmt.Errorf("%w: failed to retrieve branch %s: %w", domain.ErrRemote, branch, err)
	}
	return b.GetCommit().GetSHA(), nil
}

// GetReleaseByTag looks up the release of a tag.
func (r *githubRepository) GetReleaseByTag(ctx context.Context, owner, repo, tag string) (*domain.Release, error) {
	r.logger.Debug("GetReleaseByTag", zap.String("owner", owner), zap.String("repo", repo), zap.String("tag", tag))
	rel, resp, err := r.client.Repositories.GetReleaseByTag(ctx, owner, repo, tag)
	if isAccepted(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get release for tag %s: %w", domain.ErrRemote, tag, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}
	return toDomainRelease(rel), nil
}

// CreateRelease creates a release for the requested tag.
func (r *githubRepository) CreateRelease(
	ctx context.Context,
	owner, repo string,
	req domain.ReleaseRequest,
) (*domain.Release, error) {
	r.logger.Debug("CreateRelease",
		zap.String("owner", owner), zap.String("repo", repo),
		zap.String("tag", req.TagName), zap.String("target", req.Target))
	rel, resp, err := r.client.Repositories.CreateRelease(ctx, owner, repo, &github.RepositoryRelease{
		TagName:              github.Ptr(req.TagName),
		TargetCommitish:      github.Ptr(req.Target),
		Name:                 github.Ptr(req.Name),
		Body:                 github.Ptr(req.Body),
		Draft:                github.Ptr(req.Draft),
		Prerelease:           github.Ptr(req.PreRelease),
		GenerateReleaseNotes: github.Ptr(req.GenerateNotes),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create release: %w", domain.ErrRemote, err)
	}
	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("%w: failed to create release: status %d", domain.ErrRemote, resp.StatusCode)
	}
	return toDomainRelease(rel), nil
}

// GetRef looks up a git reference.
func (r *githubRepository) GetRef(ctx context.Context, owner, repo, ref string) (*domain.Reference, error) {
	r.logger.Debug("GetRef", zap.String("owner", owner), zap.String("repo", repo), zap.String("ref", ref))
	gref, resp, err := r.client.Git.GetRef(ctx, owner, repo, ref)
	if isAccepted(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get reference %s: %w", domain.ErrRemote, ref, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}
	return toDomainReference(gref), nil
}

// CreateTagObject creates an annotated tag object.
func (r *githubRepository) CreateTagObject(
	ctx context.Context,
	owner, repo string,
	req domain.TagRequest,
) (string, error) {
	r.logger.Debug("CreateTagObject",
		zap.String("owner", owner), zap.String("repo", repo),
		zap.String("tag", req.Tag), zap.String("object", req.Object))
	tag, resp, err := r.client.Git.CreateTag(ctx, owner, repo, &github.Tag{
		Tag:     github.Ptr(req.Tag),
		Message: github.Ptr(req.Message),
		Object: &github.GitObject{
			Type: github.Ptr(req.Type),
			SHA:  github.Ptr(req.Object),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: failed to create tag object: %w", domain.ErrRemote, err)
	}
	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("%w: failed to create tag object: status %d", domain.ErrRemote, resp.StatusCode)
	}
	return tag.GetSHA(), nil
}

// CreateRef creates a reference pointing at sha.
func (r *githubRepository) CreateRef(ctx context.Context, owner, repo, ref, sha string) (*domain.Reference, error) {
	r.logger.Debug("CreateRef",
		zap.String("owner", owner), zap.String("repo", repo),
		zap.String("ref", ref), zap.String("sha", sha))
	gref, resp, err := r.client.Git.CreateRef(ctx, owner, repo, &github.Reference{
		Ref:    github.Ptr(ref),
		Object: &github.GitObject{SHA: github.Ptr(sha)},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create tag reference: %w", domain.ErrRemote, err)
	}
	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("%w: failed to create tag reference: status %d", domain.ErrRemote, resp.StatusCode)
	}
	return toDomainReference(gref), nil
}

// isAccepted reports a 202 reply, which go-github surfaces as an error.
// Lookups treat it like any other non-200 success: the object is absent.
func isAccepted(err error) bool {
	var accepted *github.AcceptedError
	return errors.As(err, &accepted)
}

func toDomainRelease(rel *github.RepositoryRelease) *domain.Release {
	return &domain.Release{
		ID:        rel.GetID(),
		URL:       rel.GetURL(),
		UploadURL: rel.GetUploadURL(),
	}
}

func toDomainReference(ref *github.Reference) *domain.Reference {
	return &domain.Reference{
		Ref:        ref.GetRef(),
		ObjectType: ref.GetObject().GetType(),
		ObjectSHA:  ref.GetObject().GetSHA(),
	}
}
