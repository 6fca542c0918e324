// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"

	"transkeys/internal/logger"
)

// BasePathResolver supplies the project base directory used as the anchor
// for all relative path resolution.
type BasePathResolver interface {
	BasePath() (string, error)
}

// GlobalProvider supplies the external transloco configuration, or an empty
// one when the project has none.
type GlobalProvider interface {
	GlobalConfig() (*Global, error)
}

// ScopeProvider supplies the opaque scopes value attached to the resolved
// configuration.
type ScopeProvider interface {
	Scopes() any
}

// Resolver is the public entry point of the package. It sequences
// merge → path resolution → validation and attaches the scopes value.
// Collaborators are injected so tests can substitute them.
type Resolver struct {
	base   BasePathResolver
	global GlobalProvider
	scopes ScopeProvider
	log    *logger.Logger
}

// NewResolver returns a Resolver using the given collaborators.
func NewResolver(base BasePathResolver, global GlobalProvider, scopes ScopeProvider, log *logger.Logger) *Resolver {
	return &Resolver{
		base:   base,
		global: global,
		scopes: scopes,
		log:    log,
	}
}

// Resolve produces the effective configuration for one invocation: it
// merges the inline overrides with the global configuration and the
// built-in defaults, resolves every path field to absolute form anchored at
// the project base directory, validates that required directories exist,
// and attaches the scopes value.
//
// A validation failure is returned as a *FatalError; callers are expected
// to report it and terminate rather than continue. Every configuration
// object is constructed fresh per call, nothing is shared between
// invocations.
func (r *Resolver) Resolve(inline *Config) (*Config, error) {
	basePath, err := r.base.BasePath()
	if err != nil {
		return nil, fmt.Errorf("error resolving project base path: %w", err)
	}

	global, err := r.global.GlobalConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading global config: %w", err)
	}

	cfg, err := Merge(global, inline)
	if err != nil {
		return nil, err
	}

	paths := NewPathResolver(basePath, r.log)
	if cfg.Input, err = paths.ResolveMany(cfg.Input); err != nil {
		return nil, err
	}
	if cfg.Output, err = paths.ResolveOne(cfg.Output); err != nil {
		return nil, err
	}
	if cfg.TranslationsPath, err = paths.ResolveOne(cfg.TranslationsPath); err != nil {
		return nil, err
	}

	if ferr := Validate(cfg); ferr != nil {
		return nil, ferr
	}

	cfg.Scopes = r.scopes.Scopes()

	return cfg, nil
}
