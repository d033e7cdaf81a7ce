package orchestrator

import (
	"context"

	"github.com/compozy/tagrelease/internal/config"
	"github.com/compozy/tagrelease/internal/domain"
	"github.com/compozy/tagrelease/internal/repository"
	"github.com/compozy/tagrelease/internal/usecase"
	"go.uber.org/zap"
)

// TagReleaseOrchestrator ensures a tag exists and optionally publishes its release.
type TagReleaseOrchestrator struct {
	githubRepo  repository.GithubRepository
	contextRepo repository.ContextRepository
	outputRepo  repository.OutputRepository
	logger      *zap.Logger
}

// NewTagReleaseOrchestrator creates a new tag/release orchestrator.
func NewTagReleaseOrchestrator(
	githubRepo repository.GithubRepository,
	contextRepo repository.ContextRepository,
	outputRepo repository.OutputRepository,
	logger *zap.Logger,
) *TagReleaseOrchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TagReleaseOrchestrator{
		githubRepo:  githubRepo,
		contextRepo: contextRepo,
		outputRepo:  outputRepo,
		logger:      logger,
	}
}

// Execute runs a single invocation. Outputs are published only when every step
// succeeds; on failure the error is reported to the workflow and returned.
func (o *TagReleaseOrchestrator) Execute(ctx context.Context, in *config.Inputs) (*domain.Outputs, error) {
	runner := NewRunner(o.logger)
	logger := o.logger.With(zap.String("run_id", runner.RunID()))
	runner.logger = logger
	var (
		settings *domain.Settings
		commit   string
		outputs  domain.Outputs
	)
	githubRepo := o.githubRepo
	runner.AddStep(Step{
		Name:  "resolve inputs",
		Stage: domain.StageInputsResolved,
		Execute: func(ctx context.Context) error {
			uc := &usecase.ResolveInputsUseCase{ContextRepo: o.contextRepo}
			s, err := uc.Execute(ctx, in)
			if err != nil {
				return err
			}
			settings = s
			if s.DryRun {
				logger.Info("dry-run enabled, no remote objects will be created")
				githubRepo = repository.NewGithubDryRunRepository(githubRepo, logger)
			}
			return nil
		},
	})
	runner.AddStep(Step{
		Name:  "resolve commit",
		Stage: domain.StageCommitResolved,
		Execute: func(ctx context.Context) error {
			uc := &usecase.ResolveCommitUseCase{GithubRepo: githubRepo, ContextRepo: o.contextRepo}
			sha, err := uc.Execute(ctx, settings)
			if err != nil {
				return err
			}
			commit = sha
			logger.Debug("resolved commit", zap.String("sha", commit))
			return nil
		},
	})
	runner.AddStep(Step{
		Name:  "ensure release",
		Stage: domain.StageReleaseFlow,
		When:  func() bool { return settings.CreateRelease },
		Execute: func(ctx context.Context) error {
			uc := &usecase.EnsureReleaseUseCase{GithubRepo: githubRepo, Logger: logger}
			rel, err := uc.Execute(ctx, settings, commit)
			if err != nil {
				return err
			}
			outputs = domain.ReleaseOutputs(rel)
			return nil
		},
	})
	runner.AddStep(Step{
		Name:  "ensure tag",
		Stage: domain.StageTagFlow,
		When:  func() bool { return !settings.CreateRelease && settings.CreateTag },
		Execute: func(ctx context.Context) error {
			uc := &usecase.EnsureTagUseCase{GithubRepo: githubRepo, Logger: logger}
			sha, err := uc.Execute(ctx, settings, commit)
			if err != nil {
				return err
			}
			outputs = domain.TagOutputs(sha)
			return nil
		},
	})
	runner.AddStep(Step{
		Name:  "emit outputs",
		Stage: domain.StageOutputsEmitted,
		Execute: func(ctx context.Context) error {
			return o.outputRepo.SetOutputs(ctx, outputs)
		},
	})
	if err := runner.Execute(ctx); err != nil {
		state := runner.State()
		logger.Error("run failed", zap.Any("path", state.Path()), zap.Error(err))
		if reportErr := o.outputRepo.SetFailed(ctx, err); reportErr != nil {
			logger.Warn("failed to report failure", zap.Error(reportErr))
		}
		return nil, err
	}
	logger.Info("run finished",
		zap.String("status", string(runner.State().Status)),
		zap.Any("path", runner.State().Path()),
		zap.String("id", outputs.ID),
		zap.String("tag_sha", outputs.TagSHA))
	return &outputs, nil
}
