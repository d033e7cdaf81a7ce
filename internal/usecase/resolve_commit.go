package usecase

import (
	"context"
	"fmt"

	"github.com/compozy/tagrelease/internal/domain"
	"github.com/compozy/tagrelease/internal/repository"
)

// ResolveCommitUseCase picks the commit the tag and release target.
// Priority is the explicit sha, then the branch head, then the triggering commit.
type ResolveCommitUseCase struct {
	GithubRepo  repository.GithubRepository
	ContextRepo repository.ContextRepository
}

// Execute runs the use case.
func (uc *ResolveCommitUseCase) Execute(ctx context.Context, s *domain.Settings) (string, error) {
	switch {
	case s.SHA != "":
		return domain.NormalizeSHA(s.SHA)
	case s.Branch != "":
		sha, err := uc.GithubRepo.GetBranch(ctx, s.Owner, s.Repo, s.Branch)
		if err != nil {
			return "", fmt.Errorf("failed to retrieve last branch commit: %w", err)
		}
		if sha == "" {
			return "", fmt.Errorf("%w: the specified branch has no commits", domain.ErrInvalidInput)
		}
		return sha, nil
	default:
		sha, err := uc.ContextRepo.SHA(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to get triggering commit: %w", err)
		}
		return sha, nil
	}
}
