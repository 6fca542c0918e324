// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"transkeys/internal/logger"
)

// PathResolver converts relative or already-prefixed path strings into
// absolute paths anchored at the project base directory. It is pure apart
// from warnings emitted through the logger.
type PathResolver struct {
	base string
	log  *logger.Logger
}

// NewPathResolver returns a PathResolver anchored at base. Relative paths
// are resolved against base, which is in turn resolved against the current
// working directory.
func NewPathResolver(base string, log *logger.Logger) *PathResolver {
	return &PathResolver{
		base: filepath.Clean(base),
		log:  log,
	}
}

// ResolveOne converts a single path to absolute form.
//
// A path that already starts with the project base directory is taken
// as-is rather than anchored again; re-anchoring would silently produce a
// doubled prefix. The case is reported as a warning so the caller can drop
// the redundant prefix from its configuration.
func (r *PathResolver) ResolveOne(path string) (string, error) {
	cleaned := filepath.Clean(path)

	if r.alreadyPrefixed(cleaned) {
		r.log.Warn().
			Str("path", path).
			Str("base", r.base).
			Msg("path is already prefixed with the project base directory, skipping re-anchoring")

		return r.abs(cleaned)
	}

	if filepath.IsAbs(cleaned) {
		return cleaned, nil
	}

	return r.abs(filepath.Join(r.base, cleaned))
}

// ResolveMany converts every entry of paths to absolute form, preserving
// order. Each already-prefixed entry produces its own warning.
func (r *PathResolver) ResolveMany(paths []string) ([]string, error) {
	resolved := make([]string, 0, len(paths))
	for _, path := range paths {
		abs, err := r.ResolveOne(path)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, abs)
	}

	return resolved, nil
}

func (r *PathResolver) alreadyPrefixed(cleaned string) bool {
	if r.base == "." {
		return false
	}

	return cleaned == r.base ||
		strings.HasPrefix(cleaned, r.base+string(filepath.Separator))
}

func (r *PathResolver) abs(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("error resolving absolute path for %q: %w", path, err)
	}

	return abs, nil
}
