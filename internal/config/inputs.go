package config

import (
	"fmt"
	"strings"

	"github.com/compozy/tagrelease/internal/domain"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// input describes one action input: its viper key, its flag name and the
// environment variables it is read from.
type input struct {
	key   string
	flag  string
	usage string
}

var inputs = []input{
	{key: "repo", flag: "repo", usage: "Target repository as owner/repo (defaults to the current repository)"},
	{key: "tag", flag: "tag", usage: "Name of the tag to ensure (required)"},
	{key: "create_tag", flag: "create-tag", usage: "Create the tag if it does not exist (default true)"},
	{key: "create_release", flag: "create-release", usage: "Create a release for the tag (default true)"},
	{key: "ignore_existing", flag: "ignore-existing", usage: "Reuse an existing tag instead of failing (default true)"},
	{key: "sha", flag: "sha", usage: "Commit hash the tag should point to"},
	{key: "branch", flag: "branch", usage: "Branch whose head commit the tag should point to"},
	{key: "draft", flag: "draft", usage: "Create the release as a draft (default false)"},
	{key: "pre_release", flag: "pre-release", usage: "Mark the release as a pre-release (default false)"},
	{key: "auto_notes", flag: "auto-notes", usage: "Let GitHub generate release notes (default false)"},
	{key: "name", flag: "name", usage: "Release name (defaults to \"Release <tag>\")"},
	{key: "body", flag: "body", usage: "Release body (defaults to the release name)"},
	{key: "message", flag: "message", usage: "Annotated tag message"},
	{key: "dry_run", flag: "dry-run", usage: "Skip all write calls and report what would be created (default false)"},
}

// Inputs holds the raw, untyped action inputs.
type Inputs struct {
	Repo           string
	Tag            string
	CreateTag      string
	CreateRelease  string
	IgnoreExisting string
	SHA            string
	Branch         string
	Draft          string
	PreRelease     string
	AutoNotes      string
	Name           string
	Body           string
	Message        string
	DryRun         string
}

// envNames returns the INPUT_ variables for a flag, in hyphen and underscore spelling.
func envNames(flag string) []string {
	upper := strings.ToUpper(flag)
	names := []string{"INPUT_" + upper}
	if underscored := strings.ReplaceAll(upper, "-", "_"); underscored != upper {
		names = append(names, "INPUT_"+underscored)
	}
	return names
}

// RegisterInputFlags declares one string flag per action input.
func RegisterInputFlags(flags *pflag.FlagSet) {
	for _, in := range inputs {
		flags.String(in.flag, "", in.usage)
	}
}

// BindInputs wires flags and INPUT_ environment variables into v.
// Flags win over environment, environment over the config file.
func BindInputs(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, in := range inputs {
		args := append([]string{in.key}, envNames(in.flag)...)
		if err := v.BindEnv(args...); err != nil {
			return fmt.Errorf("failed to bind %s env: %w", in.key, err)
		}
		if flags == nil {
			continue
		}
		if f := flags.Lookup(in.flag); f != nil {
			if err := v.BindPFlag(in.key, f); err != nil {
				return fmt.Errorf("failed to bind %s flag: %w", in.flag, err)
			}
		}
	}
	return nil
}

// LoadInputs reads all action inputs from v. Values are trimmed.
func LoadInputs(v *viper.Viper) *Inputs {
	get := func(key string) string {
		return strings.TrimSpace(v.GetString(key))
	}
	return &Inputs{
		Repo:           get("repo"),
		Tag:            get("tag"),
		CreateTag:      get("create_tag"),
		CreateRelease:  get("create_release"),
		IgnoreExisting: get("ignore_existing"),
		SHA:            get("sha"),
		Branch:         get("branch"),
		Draft:          get("draft"),
		PreRelease:     get("pre_release"),
		AutoNotes:      get("auto_notes"),
		Name:           get("name"),
		Body:           get("body"),
		Message:        get("message"),
		DryRun:         get("dry_run"),
	}
}

// IsYes reports whether a boolean-like input is affirmative.
func IsYes(value string) bool {
	switch strings.ToLower(value) {
	case "true", "yes", "y", "1":
		return true
	}
	return false
}

// ParseFlag returns def for an empty input and IsYes otherwise.
func ParseFlag(value string, def bool) bool {
	if value == "" {
		return def
	}
	return IsYes(value)
}

// ParseOwnerRepo splits an "owner/repo" string into its two trimmed segments.
func ParseOwnerRepo(value string) (string, string, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("%w: the specified `repo` is invalid: %q", domain.ErrInvalidInput, value)
	}
	owner := strings.TrimSpace(parts[0])
	repo := strings.TrimSpace(parts[1])
	if owner == "" || repo == "" {
		return "", "", fmt.Errorf("%w: the specified `repo` is invalid: %q", domain.ErrInvalidInput, value)
	}
	return owner, repo, nil
}
