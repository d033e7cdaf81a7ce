package cmd

import (
	"github.com/compozy/tagrelease/pkg/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tag-release",
	Short: "Ensure a git tag exists and optionally publish its GitHub release",
	Long: `tag-release runs as a workflow step: it resolves the target commit, creates the
tag or release when missing, and reports id, url, upload-url and tag-sha outputs.`,
	Version:       version.Summary(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}
