package usecase

import (
	"context"
	"fmt"

	"github.com/compozy/tagrelease/internal/config"
	"github.com/compozy/tagrelease/internal/domain"
	"github.com/compozy/tagrelease/internal/repository"
)

// ResolveInputsUseCase turns raw action inputs into validated Settings.
type ResolveInputsUseCase struct {
	ContextRepo repository.ContextRepository
}

// Execute runs the use case.
func (uc *ResolveInputsUseCase) Execute(ctx context.Context, in *config.Inputs) (*domain.Settings, error) {
	owner, repo, err := uc.resolveRepository(ctx, in.Repo)
	if err != nil {
		return nil, err
	}
	if in.Tag == "" {
		return nil, fmt.Errorf("%w: no `tag` input", domain.ErrInvalidInput)
	}
	s := &domain.Settings{
		Owner:          owner,
		Repo:           repo,
		Tag:            in.Tag,
		Branch:         in.Branch,
		CreateTag:      config.ParseFlag(in.CreateTag, true),
		CreateRelease:  config.ParseFlag(in.CreateRelease, true),
		IgnoreExisting: config.ParseFlag(in.IgnoreExisting, true),
		Draft:          config.IsYes(in.Draft),
		PreRelease:     config.IsYes(in.PreRelease),
		AutoNotes:      config.IsYes(in.AutoNotes),
		DryRun:         config.IsYes(in.DryRun),
		Name:           in.Name,
		Body:           in.Body,
		Message:        in.Message,
	}
	// A release needs its tag.
	if s.CreateRelease {
		s.CreateTag = true
	}
	if !s.CreateTag && !s.CreateRelease {
		return nil, fmt.Errorf("%w: no action to execute", domain.ErrInvalidInput)
	}
	if in.SHA != "" {
		sha, err := domain.NormalizeSHA(in.SHA)
		if err != nil {
			return nil, err
		}
		s.SHA = sha
	}
	return s, nil
}

func (uc *ResolveInputsUseCase) resolveRepository(ctx context.Context, ownerRepo string) (string, string, error) {
	if ownerRepo != "" {
		return config.ParseOwnerRepo(ownerRepo)
	}
	owner, repo, err := uc.ContextRepo.Repository(ctx)
	if err != nil {
		return "", "", err
	}
	if owner == "" || repo == "" {
		return "", "", fmt.Errorf("%w: unable to determine the repository, set the `repo` input", domain.ErrInvalidInput)
	}
	return owner, repo, nil
}
