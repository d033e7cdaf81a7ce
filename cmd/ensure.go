package cmd

import (
	"context"

	"github.com/compozy/tagrelease/internal/config"
	"github.com/compozy/tagrelease/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Executor runs a tag/release invocation.
type Executor interface {
	Execute(ctx context.Context, in *config.Inputs) (*domain.Outputs, error)
}

// NewEnsureCmd creates the ensure command
func NewEnsureCmd(orch Executor, v *viper.Viper) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "ensure",
		Short: "Ensure the tag exists and optionally create its release",
		Long: `Ensure the tag exists and optionally create its release.

Inputs are read from flags, then INPUT_<NAME> environment variables (hyphen or
underscore spelling), then .tag-release.yaml:

- With create-release (default) the release of the tag is looked up and
  created when missing; GitHub creates the tag on the target commit.
- With create-release=false an annotated tag and its reference are created
  unless the tag already exists and ignore-existing is set.

The target commit is the sha input, else the head of branch, else GITHUB_SHA.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := orch.Execute(cmd.Context(), config.LoadInputs(v))
			return err
		},
	}
	config.RegisterInputFlags(cmd.Flags())
	if err := config.BindInputs(v, cmd.Flags()); err != nil {
		return nil, err
	}
	return cmd, nil
}
