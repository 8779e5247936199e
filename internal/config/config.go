package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/shouri123/WRAP-YOUR-GIT/pkg/logger"
)

type Config struct {
	// Port is the listen address for the API server.
	Port string
	// GitHubToken is an optional server-side fallback credential. It is
	// forwarded on profile and event lookups when the caller supplies no
	// token of their own. It is never used for repository listings, since
	// /user/repos would return the token owner's repos, not the requested
	// user's.
	GitHubToken string
	// Managed marks a managed-platform deployment where the environment is
	// injected by the platform and no .env file exists.
	Managed bool
}

// * LoadConfiguration reads the configuration from the environment (and a
// * local .env file outside managed deployments) and returns a Config
func LoadConfiguration() (*Config, error) {
	managed := os.Getenv("MANAGED_DEPLOYMENT") == "true"
	if !managed {
		_ = godotenv.Load(".env")
	}

	cfg := &Config{
		Port:        os.Getenv("SERVER_PORT"),
		GitHubToken: os.Getenv("GITHUB_TOKEN"),
		Managed:     managed,
	}

	if cfg.Port == "" {
		cfg.Port = ":5000"
	}

	if cfg.GitHubToken == "" {
		logger.Warn("GITHUB_TOKEN not set; unauthenticated GitHub rate limits apply")
	}

	logger.Info("✅ env content loaded successfully 🎉")
	return cfg, nil
}
