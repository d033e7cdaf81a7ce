package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// DefaultGithubAPIURL is the public GitHub REST endpoint.
const DefaultGithubAPIURL = "https://api.github.com/"

type Config struct {
	GithubToken      string `mapstructure:"github_token"`
	GithubAPIURL     string `mapstructure:"github_api_url"`
	GithubRepository string `mapstructure:"github_repository"`
	GithubSHA        string `mapstructure:"github_sha"`
	GithubOutput     string `mapstructure:"github_output"`
	LogLevel         string `mapstructure:"log_level"`
	RunnerDebug      string `mapstructure:"runner_debug"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		GithubAPIURL: DefaultGithubAPIURL,
		LogLevel:     "info",
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	// GitHub token is optional here; its absence surfaces on the first remote call
	if c.GithubToken != "" {
		if err := ValidateGitHubToken(c.GithubToken); err != nil {
			return fmt.Errorf("invalid github_token: %w", err)
		}
	}
	if c.GithubAPIURL == "" {
		return fmt.Errorf("github_api_url cannot be empty")
	}
	if !strings.HasPrefix(c.GithubAPIURL, "https://") && !strings.HasPrefix(c.GithubAPIURL, "http://") {
		return fmt.Errorf("github_api_url must be an http(s) URL: %s", c.GithubAPIURL)
	}
	return nil
}

// EffectiveLogLevel returns the configured level, forced to debug when the
// runner has step debugging enabled.
func (c *Config) EffectiveLogLevel() string {
	if c.RunnerDebug == "1" {
		return "debug"
	}
	if c.LogLevel == "" {
		return "info"
	}
	return c.LogLevel
}

// IsEnterprise reports whether the API URL points somewhere other than github.com
func (c *Config) IsEnterprise() bool {
	return !IsPublicAPIURL(c.GithubAPIURL)
}

// IsPublicAPIURL reports whether apiURL is the github.com REST endpoint. An empty URL counts as public.
func IsPublicAPIURL(apiURL string) bool {
	return apiURL == "" || strings.TrimSuffix(apiURL, "/") == strings.TrimSuffix(DefaultGithubAPIURL, "/")
}

// ValidateGitHubToken validates that a token is usable as a bearer credential (exported for reuse)
func ValidateGitHubToken(token string) error {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return fmt.Errorf("token cannot be empty")
	}
	if strings.ContainsAny(trimmed, " \t\r\n") {
		return fmt.Errorf("invalid token format: contains whitespace")
	}
	return nil
}

// LoadConfig reads the global configuration into v and returns it
func LoadConfig(v *viper.Viper) (*Config, error) {
	v.SetConfigName(".tag-release")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	// Configure environment variables
	v.SetEnvPrefix("TAG_RELEASE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	// BindEnv allows multiple env vars - it will check them in order
	bindings := map[string][]string{
		"github_token":      {"GITHUB_TOKEN", "TAG_RELEASE_GITHUB_TOKEN"},
		"github_api_url":    {"GITHUB_API_URL", "TAG_RELEASE_GITHUB_API_URL"},
		"github_repository": {"GITHUB_REPOSITORY"},
		"github_sha":        {"GITHUB_SHA"},
		"github_output":     {"GITHUB_OUTPUT"},
		"log_level":         {"TAG_RELEASE_LOG_LEVEL"},
		"runner_debug":      {"RUNNER_DEBUG"},
	}
	for key, envs := range bindings {
		args := append([]string{key}, envs...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("failed to bind %s env: %w", key, err)
		}
	}
	// Set defaults
	defaults := DefaultConfig()
	v.SetDefault("github_api_url", defaults.GithubAPIURL)
	v.SetDefault("log_level", defaults.LogLevel)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &config, nil
}
