package cmd

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/compozy/tagrelease/pkg/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print tag-release build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(out, version.Summary())
				return nil
			}
			fmt.Fprintf(out, "tag-release %s\n", safeValue(version.Version, "dev"))
			fmt.Fprintf(out, "  commit:\t%s\n", safeValue(version.CommitHash, "unknown"))
			fmt.Fprintf(out, "  built:\t%s\n", safeValue(version.BuildDate, "unknown"))
			fmt.Fprintf(out, "  go:\t\t%s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "Print only the version")
	return cmd
}

func safeValue(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}
