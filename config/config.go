package config

import (
	"main/utils"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config carries everything the adapters and server need. It is loaded
// once at startup and injected into constructors so handlers stay
// testable without environment mutation.
type Config struct {
	Port string `validate:"required"`

	// GitHub contribution calendar upstream
	GithubUsername string
	GithubToken    string
	GithubAPIURL   string `validate:"required,url"`

	// WakaTime statistics upstream
	WakatimeUsername string
	WakatimeAPIKey   string
	WakatimeAPIURL   string `validate:"required,url"`

	// Response cache
	RedisURL string
	CacheTTL time.Duration

	UpstreamTimeout time.Duration
}

func Load() Config {
	return Config{
		Port:             utils.GetEnvAsString("PORT", "8080"),
		GithubUsername:   utils.GetEnvAsString("GITHUB_USERNAME", ""),
		GithubToken:      utils.GetEnvAsString("GITHUB_TOKEN", ""),
		GithubAPIURL:     utils.GetEnvAsString("GITHUB_API_URL", "https://api.github.com/graphql"),
		WakatimeUsername: utils.GetEnvAsString("WAKATIME_USERNAME", ""),
		WakatimeAPIKey:   utils.GetEnvAsString("WAKATIME_API_KEY", ""),
		WakatimeAPIURL:   utils.GetEnvAsString("WAKATIME_API_URL", "https://wakatime.com/api/v1"),
		RedisURL:         utils.GetEnvAsString("REDIS_URL", ""),
		CacheTTL:         utils.GetEnvAsDuration("CACHE_TTL", time.Hour),
		UpstreamTimeout:  utils.GetEnvAsDuration("UPSTREAM_TIMEOUT", 10*time.Second),
	}
}

// Validate checks the fields that must always be present. Missing
// upstream credentials are not startup errors: the adapters report
// those per request.
func (c Config) Validate() error {
	return validator.New().Struct(c)
}
