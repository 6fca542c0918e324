package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transkeys/internal/logger"
)

// newCapturingLogger returns a logger whose output can be inspected by the
// test, along with the capture buffer.
func newCapturingLogger() (*logger.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return &logger.Logger{Logger: zerolog.New(&buf)}, &buf
}

func warningCount(buf *bytes.Buffer) int {
	return strings.Count(buf.String(), "already prefixed")
}

// ── ResolveOne ────────────────────────────────────────────────────────────────

// TestResolveOne_RelativePath verifies that a relative path is anchored at
// the project base directory and made absolute.
func TestResolveOne_RelativePath(t *testing.T) {
	r := NewPathResolver("project", logger.Nop())

	got, err := r.ResolveOne("src")
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "project", "src"), got)
}

// TestResolveOne_AbsoluteBase verifies resolution against an absolute
// project base directory.
func TestResolveOne_AbsoluteBase(t *testing.T) {
	base := t.TempDir()
	r := NewPathResolver(base, logger.Nop())

	got, err := r.ResolveOne("src")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "src"), got)
}

// TestResolveOne_AlreadyPrefixed verifies that a path already starting with
// the project base directory is not anchored a second time and that exactly
// one warning is emitted.
func TestResolveOne_AlreadyPrefixed(t *testing.T) {
	log, buf := newCapturingLogger()
	r := NewPathResolver("project", log)

	got, err := r.ResolveOne(filepath.Join("project", "src"))
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "project", "src"), got)
	assert.Equal(t, 1, warningCount(buf))
}

// TestResolveOne_PrefixedAbsoluteBase verifies prefix detection when the
// base directory is absolute.
func TestResolveOne_PrefixedAbsoluteBase(t *testing.T) {
	base := t.TempDir()
	log, buf := newCapturingLogger()
	r := NewPathResolver(base, log)

	got, err := r.ResolveOne(filepath.Join(base, "src"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "src"), got)
	assert.Equal(t, 1, warningCount(buf))
}

// TestResolveOne_NoWarningForCleanPath verifies that an ordinary relative
// path produces no warning.
func TestResolveOne_NoWarningForCleanPath(t *testing.T) {
	log, buf := newCapturingLogger()
	r := NewPathResolver("project", log)

	_, err := r.ResolveOne("src")
	require.NoError(t, err)
	assert.Equal(t, 0, warningCount(buf))
}

// TestResolveOne_SimilarPrefixIsNotPrefixed verifies that a sibling
// directory sharing a name prefix with the base is not mistaken for an
// already-rooted path.
func TestResolveOne_SimilarPrefixIsNotPrefixed(t *testing.T) {
	log, buf := newCapturingLogger()
	r := NewPathResolver("project", log)

	got, err := r.ResolveOne("project-docs/src")
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "project", "project-docs", "src"), got)
	assert.Equal(t, 0, warningCount(buf))
}

// TestResolveOne_DotBase verifies that with the working directory as base
// every relative path resolves against it without prefix warnings.
func TestResolveOne_DotBase(t *testing.T) {
	log, buf := newCapturingLogger()
	r := NewPathResolver(".", log)

	got, err := r.ResolveOne("src")
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "src"), got)
	assert.Equal(t, 0, warningCount(buf))
}

// TestResolveOne_UnrelatedAbsolutePath verifies that an absolute path
// outside the base is returned as-is.
func TestResolveOne_UnrelatedAbsolutePath(t *testing.T) {
	other := t.TempDir()
	r := NewPathResolver("project", logger.Nop())

	got, err := r.ResolveOne(other)
	require.NoError(t, err)
	assert.Equal(t, other, got)
}

// ── ResolveMany ───────────────────────────────────────────────────────────────

// TestResolveMany_PreservesOrder verifies that entries are resolved in
// input order.
func TestResolveMany_PreservesOrder(t *testing.T) {
	base := t.TempDir()
	r := NewPathResolver(base, logger.Nop())

	got, err := r.ResolveMany([]string{"b", "a"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(base, "b"),
		filepath.Join(base, "a"),
	}, got)
}

// TestResolveMany_WarnsPerPrefixedEntry verifies that each already-rooted
// entry produces exactly one warning and clean entries produce none.
func TestResolveMany_WarnsPerPrefixedEntry(t *testing.T) {
	log, buf := newCapturingLogger()
	r := NewPathResolver("project", log)

	_, err := r.ResolveMany([]string{
		filepath.Join("project", "src"),
		"lib",
		filepath.Join("project", "app"),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, warningCount(buf))
}

// TestResolveMany_Empty verifies that an empty sequence resolves to an
// empty sequence.
func TestResolveMany_Empty(t *testing.T) {
	r := NewPathResolver("project", logger.Nop())

	got, err := r.ResolveMany(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
