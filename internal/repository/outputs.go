package repository

import (
	"context"

	"github.com/compozy/tagrelease/internal/domain"
)

// OutputRepository publishes step results to the workflow runner.
type OutputRepository interface {
	SetOutputs(ctx context.Context, outputs domain.Outputs) error
	SetFailed(ctx context.Context, err error) error
}
