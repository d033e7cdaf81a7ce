package main

import (
	"fmt"
	"os"

	"github.com/compozy/tagrelease/cmd"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code.
func run() int {
	if err := cmd.InitCommands(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize tag-release: %v\n", err)
		cmd.ReportFailure(err)
		return 1
	}
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
