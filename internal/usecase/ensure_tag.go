package usecase

import (
	"context"
	"fmt"

	"github.com/compozy/tagrelease/internal/domain"
	"github.com/compozy/tagrelease/internal/repository"
	"go.uber.org/zap"
)

// EnsureTagUseCase finds or creates the annotated tag and returns the commit
// its reference points to.
type EnsureTagUseCase struct {
	GithubRepo repository.GithubRepository
	Logger     *zap.Logger
}

// Execute runs the use case.
func (uc *EnsureTagUseCase) Execute(ctx context.Context, s *domain.Settings, commit string) (string, error) {
	logger := loggerOrNop(uc.Logger)
	logger.Info("Creating tag", zap.String("tag", s.Tag))
	existing, err := uc.GithubRepo.GetRef(ctx, s.Owner, s.Repo, s.TagRef())
	if err != nil && !repository.IsNotFound(err) {
		return "", fmt.Errorf("failed to look up tag: %w", err)
	}
	if err == nil && existing != nil {
		// A non-commit target is unusable even when reuse is allowed.
		if existing.ObjectType != domain.ObjectTypeCommit {
			return "", fmt.Errorf("%w: existing tag does not point to a commit", domain.ErrInvalidState)
		}
		if !s.IgnoreExisting {
			return "", fmt.Errorf("%w: a tag with the same name already exists", domain.ErrConflict)
		}
		logger.Info("found existing", zap.String("tag", s.Tag), zap.String("sha", existing.ObjectSHA))
		return existing.ObjectSHA, nil
	}
	tagSHA, err := uc.GithubRepo.CreateTagObject(ctx, s.Owner, s.Repo, domain.TagRequest{
		Tag:     s.Tag,
		Message: s.Message,
		Object:  commit,
		Type:    domain.ObjectTypeCommit,
	})
	if err != nil {
		return "", err
	}
	ref, err := uc.GithubRepo.CreateRef(ctx, s.Owner, s.Repo, s.TagRef(), tagSHA)
	if err != nil {
		return "", err
	}
	return ref.ObjectSHA, nil
}
