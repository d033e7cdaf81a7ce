package domain

import (
	"fmt"
	"regexp"
	"strings"
)

var shaRegex = regexp.MustCompile(`^[0-9a-f]{40}$`)

// Settings is the validated configuration of a single run.
type Settings struct {
	Owner string
	Repo  string
	Tag   string
	// SHA is an explicit target commit, already normalized to lowercase.
	SHA    string
	Branch string

	CreateTag      bool
	CreateRelease  bool
	IgnoreExisting bool
	Draft          bool
	PreRelease     bool
	AutoNotes      bool
	DryRun         bool

	Name    string
	Body    string
	Message string
}

// TagRef returns the fully qualified reference name of the configured tag.
func (s *Settings) TagRef() string {
	return TagRefPrefix + s.Tag
}

// ReleaseName returns the explicit release name or the computed default.
func (s *Settings) ReleaseName() string {
	if s.Name != "" {
		return s.Name
	}
	return DefaultReleaseName(s.Tag, s.PreRelease)
}

// ReleaseBody returns the explicit release body, falling back to the release name.
func (s *Settings) ReleaseBody() string {
	if s.Body != "" {
		return s.Body
	}
	return s.ReleaseName()
}

// DefaultReleaseName builds "Release <tag>" or "Pre-release <tag>".
func DefaultReleaseName(tag string, preRelease bool) string {
	if preRelease {
		return "Pre-release " + tag
	}
	return "Release " + tag
}

// NormalizeSHA validates a 40 character hex commit hash, accepting either case,
// and returns it in lowercase.
func NormalizeSHA(sha string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(sha))
	if !shaRegex.MatchString(normalized) {
		return "", fmt.Errorf("%w: the specified `sha` is invalid: %q", ErrInvalidInput, sha)
	}
	return normalized, nil
}
