package repository

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/compozy/tagrelease/internal/domain"
	"github.com/google/uuid"
)

const outputFilePermissions = 0644

// actionsOutputRepository writes outputs to the $GITHUB_OUTPUT file, or as
// workflow commands on stdout when no file is configured.
type actionsOutputRepository struct {
	fs           FileSystemRepository
	outputPath   string
	stdout       io.Writer
	newDelimiter func() string
}

// NewOutputRepository creates an OutputRepository. An empty outputPath selects
// the legacy ::set-output command.
func NewOutputRepository(fs FileSystemRepository, outputPath string, stdout io.Writer) OutputRepository {
	return &actionsOutputRepository{
		fs:         fs,
		outputPath: outputPath,
		stdout:     stdout,
		newDelimiter: func() string {
			return "ghadelimiter_" + uuid.NewString()
		},
	}
}

func (r *actionsOutputRepository) SetOutputs(_ context.Context, outputs domain.Outputs) error {
	if r.outputPath == "" {
		for _, kv := range outputs.Pairs() {
			if _, err := fmt.Fprintf(r.stdout, "::set-output name=%s::%s\n",
				escapeProperty(kv[0]), escapeData(kv[1])); err != nil {
				return fmt.Errorf("failed to write output %s: %w", kv[0], err)
			}
		}
		return nil
	}
	var sb strings.Builder
	for _, kv := range outputs.Pairs() {
		delimiter := r.newDelimiter()
		if strings.Contains(kv[0], delimiter) || strings.Contains(kv[1], delimiter) {
			return fmt.Errorf("%w: output %s contains the delimiter", domain.ErrInvalidState, kv[0])
		}
		fmt.Fprintf(&sb, "%s<<%s\n%s\n%s\n", kv[0], delimiter, kv[1], delimiter)
	}
	f, err := r.fs.OpenFile(r.outputPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, outputFilePermissions)
	if err != nil {
		return fmt.Errorf("failed to open output file %s: %w", r.outputPath, err)
	}
	if _, err := f.WriteString(sb.String()); err != nil {
		f.Close()
		return fmt.Errorf("failed to write output file %s: %w", r.outputPath, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file %s: %w", r.outputPath, err)
	}
	return nil
}

// SetFailed reports err as an error annotation on the run.
func (r *actionsOutputRepository) SetFailed(_ context.Context, err error) error {
	if err == nil {
		return nil
	}
	if _, werr := fmt.Fprintf(r.stdout, "::error::%s\n", escapeData(err.Error())); werr != nil {
		return fmt.Errorf("failed to write error annotation: %w", werr)
	}
	return nil
}

func escapeData(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	s = strings.ReplaceAll(s, "\r", "%0D")
	return strings.ReplaceAll(s, "\n", "%0A")
}

func escapeProperty(s string) string {
	s = escapeData(s)
	s = strings.ReplaceAll(s, ":", "%3A")
	return strings.ReplaceAll(s, ",", "%2C")
}
