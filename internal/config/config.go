// Package config loads the run context from the GitHub Actions environment.
package config

import (
	"fmt"
	"os"

	"github.com/ericfisherdev/stalesweep/internal/domain/model"
)

// Config holds the ambient run context: the repository the action runs
// against and where side files live. Action inputs themselves are resolved
// separately by the options package.
type Config struct {
	Repo       model.Repo
	OutputPath string // GITHUB_OUTPUT file; empty when not running under Actions.
	DBPath     string
}

// Load reads the run context from environment variables and returns a
// validated Config. GITHUB_REPOSITORY is required.
// Optional variables with defaults: STALESWEEP_DB_PATH (stalesweep.db).
func Load() (*Config, error) {
	rawRepo := os.Getenv("GITHUB_REPOSITORY")
	if rawRepo == "" {
		return nil, fmt.Errorf("GITHUB_REPOSITORY is required")
	}
	repo, err := model.ParseRepo(rawRepo)
	if err != nil {
		return nil, fmt.Errorf("GITHUB_REPOSITORY: %w", err)
	}

	dbPath := "stalesweep.db"
	if v, ok := os.LookupEnv("STALESWEEP_DB_PATH"); ok {
		dbPath = v
	}

	return &Config{
		Repo:       repo,
		OutputPath: os.Getenv("GITHUB_OUTPUT"),
		DBPath:     dbPath,
	}, nil
}
