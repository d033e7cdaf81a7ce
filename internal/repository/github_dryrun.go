package repository

import (
	"context"

	"github.com/compozy/tagrelease/internal/domain"
	"go.uber.org/zap"
)

// githubDryRunRepository forwards lookups and replaces every write with a log line.
type githubDryRunRepository struct {
	GithubRepository
	logger *zap.Logger
}

// NewGithubDryRunRepository wraps next so that no remote object is ever created.
func NewGithubDryRunRepository(next GithubRepository, logger *zap.Logger) GithubRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &githubDryRunRepository{GithubRepository: next, logger: logger}
}

// CreateRelease reports the release that would be created. The result carries no id.
func (r *githubDryRunRepository) CreateRelease(
	_ context.Context,
	owner, repo string,
	req domain.ReleaseRequest,
) (*domain.Release, error) {
	r.logger.Info("dry-run: skipping release creation",
		zap.String("repository", owner+"/"+repo),
		zap.String("tag", req.TagName),
		zap.String("target", req.Target),
		zap.String("name", req.Name),
		zap.Bool("draft", req.Draft),
		zap.Bool("prerelease", req.PreRelease),
		zap.Bool("generate_notes", req.GenerateNotes))
	return &domain.Release{}, nil
}

// CreateTagObject reports the tag object that would be created and hands back the target commit.
func (r *githubDryRunRepository) CreateTagObject(
	_ context.Context,
	owner, repo string,
	req domain.TagRequest,
) (string, error) {
	r.logger.Info("dry-run: skipping tag object creation",
		zap.String("repository", owner+"/"+repo),
		zap.String("tag", req.Tag),
		zap.String("object", req.Object))
	return req.Object, nil
}

// CreateRef reports the reference that would be created.
func (r *githubDryRunRepository) CreateRef(
	_ context.Context,
	owner, repo, ref, sha string,
) (*domain.Reference, error) {
	r.logger.Info("dry-run: skipping reference creation",
		zap.String("repository", owner+"/"+repo),
		zap.String("ref", ref),
		zap.String("sha", sha))
	return &domain.Reference{Ref: ref, ObjectType: domain.ObjectTypeCommit, ObjectSHA: sha}, nil
}
