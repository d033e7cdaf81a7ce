package usecase

import (
	"context"
	"fmt"

	"github.com/compozy/tagrelease/internal/domain"
	"github.com/compozy/tagrelease/internal/repository"
	"go.uber.org/zap"
)

// EnsureReleaseUseCase finds the release of a tag or creates it.
type EnsureReleaseUseCase struct {
	GithubRepo repository.GithubRepository
	Logger     *zap.Logger
}

// Execute runs the use case.
func (uc *EnsureReleaseUseCase) Execute(ctx context.Context, s *domain.Settings, commit string) (*domain.Release, error) {
	logger := loggerOrNop(uc.Logger)
	logger.Info("Creating release", zap.String("tag", s.Tag))
	existing, err := uc.GithubRepo.GetReleaseByTag(ctx, s.Owner, s.Repo, s.Tag)
	if err != nil && !repository.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up release: %w", err)
	}
	if err == nil && existing != nil && existing.ID != 0 {
		logger.Info("found existing", zap.String("tag", s.Tag), zap.Int64("id", existing.ID))
		return existing, nil
	}
	rel, err := uc.GithubRepo.CreateRelease(ctx, s.Owner, s.Repo, domain.ReleaseRequest{
		TagName:       s.Tag,
		Target:        commit,
		Name:          s.ReleaseName(),
		Body:          s.ReleaseBody(),
		Draft:         s.Draft,
		PreRelease:    s.PreRelease,
		GenerateNotes: s.AutoNotes,
	})
	if err != nil {
		return nil, err
	}
	return rel, nil
}

func loggerOrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
