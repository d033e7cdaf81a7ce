package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/compozy/tagrelease/internal/config"
	"github.com/compozy/tagrelease/internal/orchestrator"
	"github.com/compozy/tagrelease/internal/repository"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// container holds all the dependencies for the application.
type container struct {
	v      *viper.Viper
	cfg    *config.Config
	logger *zap.Logger

	fsRepo      repository.FileSystemRepository
	ghRepo      repository.GithubRepository
	contextRepo repository.ContextRepository
	outputRepo  repository.OutputRepository
}

// newContainer creates a new container with all the dependencies.
func newContainer() (*container, error) {
	v := viper.New()
	cfg, err := config.LoadConfig(v)
	if err != nil {
		return nil, err
	}
	logger, err := config.NewLogger(cfg.EffectiveLogLevel())
	if err != nil {
		return nil, err
	}

	fsRepo := repository.NewOsFileSystem()

	// Without a token every remote call fails with ErrGithubTokenRequired
	var ghRepo repository.GithubRepository
	if cfg.GithubToken != "" {
		ghRepo, err = repository.NewGithubRepository(cfg.GithubToken, cfg.GithubAPIURL, logger)
		if err != nil {
			return nil, err
		}
		if cfg.IsEnterprise() {
			logger.Debug("using GitHub Enterprise API", zap.String("url", cfg.GithubAPIURL))
		}
	} else {
		ghRepo = repository.NewGithubNoopRepository()
	}

	return &container{
		v:           v,
		cfg:         cfg,
		logger:      logger,
		fsRepo:      fsRepo,
		ghRepo:      ghRepo,
		contextRepo: repository.NewContextRepository(cfg.GithubRepository, cfg.GithubSHA, "."),
		outputRepo:  repository.NewOutputRepository(fsRepo, cfg.GithubOutput, os.Stdout),
	}, nil
}

// InitCommands initializes all commands with their dependencies
func InitCommands() error {
	c, err := newContainer()
	if err != nil {
		return err
	}
	orch := orchestrator.NewTagReleaseOrchestrator(c.ghRepo, c.contextRepo, c.outputRepo, c.logger)
	ensureCmd, err := NewEnsureCmd(orch, c.v)
	if err != nil {
		return fmt.Errorf("failed to initialize ensure command: %w", err)
	}
	rootCmd.AddCommand(ensureCmd, newVersionCmd())
	return nil
}

// ReportFailure writes err as a workflow error annotation. It covers failures
// that happen before the orchestrator exists, such as invalid configuration.
func ReportFailure(err error) {
	reportFailure(os.Stdout, err)
}

func reportFailure(w io.Writer, err error) {
	outputRepo := repository.NewOutputRepository(repository.NewOsFileSystem(), "", w)
	if reportErr := outputRepo.SetFailed(context.Background(), err); reportErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to report failure: %v\n", reportErr)
	}
}
