package orchestrator

import (
	"context"
	"fmt"

	"github.com/compozy/tagrelease/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Step represents a single step of a run
type Step struct {
	Name string
	// Stage is entered once Execute succeeds
	Stage domain.Stage
	// When guards the step; a nil When always runs
	When    func() bool
	Execute func(ctx context.Context) error
}

// Runner executes steps strictly in order and stops at the first failure.
// Nothing already done is undone.
type Runner struct {
	state  *domain.RunState
	steps  []Step
	logger *zap.Logger
}

// NewRunner creates a runner with a fresh run id
func NewRunner(logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		state:  domain.NewRunState(uuid.New().String()),
		steps:  []Step{},
		logger: logger,
	}
}

// RunID returns the id of this run
func (r *Runner) RunID() string {
	return r.state.RunID
}

// State returns the run state
func (r *Runner) State() *domain.RunState {
	return r.state
}

// AddStep adds a step to the run
func (r *Runner) AddStep(step Step) {
	r.steps = append(r.steps, step)
}

// Execute runs every step, then marks the run done.
func (r *Runner) Execute(ctx context.Context) error {
	r.state.Status = domain.WorkflowStatusRunning
	for _, step := range r.steps {
		if step.When != nil && !step.When() {
			r.logger.Debug("skipping step", zap.String("step", step.Name))
			continue
		}
		if err := ctx.Err(); err != nil {
			r.state.Fail(err)
			return fmt.Errorf("step '%s' not started: %w", step.Name, err)
		}
		r.logger.Debug("running step", zap.String("step", step.Name))
		if err := step.Execute(ctx); err != nil {
			r.state.Fail(err)
			return err
		}
		r.state.Advance(step.Stage)
	}
	r.state.Complete()
	return nil
}
