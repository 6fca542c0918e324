// Package project locates the base directory all relative configuration
// paths are anchored at.
package project

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// environment holds the env-var overrides recognized by the tool.
type environment struct {
	// ProjectRoot overrides the project base directory.
	// Env: TRANSKEYS_PROJECT_ROOT
	ProjectRoot string `env:"TRANSKEYS_PROJECT_ROOT"`
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library via the `env` struct tags.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// Resolver supplies the project base directory. Resolution order: the
// explicit value (command flag), the TRANSKEYS_PROJECT_ROOT environment
// variable, then the current working directory.
type Resolver struct {
	explicit string
}

// NewResolver returns a Resolver. explicit may be empty, in which case the
// environment and the working directory are consulted.
func NewResolver(explicit string) *Resolver {
	return &Resolver{explicit: explicit}
}

// BasePath returns the project base directory.
func (r *Resolver) BasePath() (string, error) {
	if r.explicit != "" {
		return r.explicit, nil
	}

	var e environment
	if err := parseEnv(&e); err != nil {
		return "", err
	}
	if e.ProjectRoot != "" {
		return e.ProjectRoot, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("error resolving working directory: %w", err)
	}

	return wd, nil
}
