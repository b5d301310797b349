package config

import (
	"os"
	"testing"
	"time"
)

// unsetenv clears a variable for one test while letting t.Setenv
// restore the original value afterwards.
func unsetenv(t *testing.T, key string) {
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadDefaults(t *testing.T) {
	unsetenv(t, "PORT")
	unsetenv(t, "GITHUB_API_URL")
	unsetenv(t, "CACHE_TTL")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.GithubAPIURL != "https://api.github.com/graphql" {
		t.Errorf("GithubAPIURL = %q", cfg.GithubAPIURL)
	}
	if cfg.CacheTTL != time.Hour {
		t.Errorf("CacheTTL = %v, want 1h", cfg.CacheTTL)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GITHUB_USERNAME", "octocat")
	t.Setenv("CACHE_TTL", "30m")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.GithubUsername != "octocat" {
		t.Errorf("GithubUsername = %q, want octocat", cfg.GithubUsername)
	}
	if cfg.CacheTTL != 30*time.Minute {
		t.Errorf("CacheTTL = %v, want 30m", cfg.CacheTTL)
	}
}

func TestValidate(t *testing.T) {
	cfg := Load()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}

	cfg.GithubAPIURL = "not a url"
	if err := cfg.Validate(); err == nil {
		t.Error("expected a validation error for a malformed API URL")
	}
}
