// SPDX-License-Identifier: Apache-2.0

package config

import "os"

// FailureKind classifies a fatal path validation failure.
type FailureKind string

// The two path-related failure kinds. Both are fatal and non-recoverable at
// this layer; the CLI entry point converts them into a styled report and a
// non-zero process exit.
const (
	PathDoesntExist FailureKind = "pathDoesntExist"
	PathIsNotDir    FailureKind = "pathIsNotDir"
)

var kindMessages = map[FailureKind]string{
	PathDoesntExist: "path doesn't exist",
	PathIsNotDir:    "path is not a directory",
}

// FatalError reports the first path validation failure found in a resolved
// configuration. It is returned instead of terminating the process so the
// core stays testable; callers decide how to exit.
type FatalError struct {
	// Kind classifies the failure.
	Kind FailureKind

	// Subject labels the offending configuration field ("Input",
	// "Translations").
	Subject string

	// Path is the offending absolute path.
	Path string
}

// Error formats the failure as "<Subject> <message-for-kind>".
func (e *FatalError) Error() string {
	return e.Subject + " " + kindMessages[e.Kind]
}

// Validate checks that the path-valued fields of a resolved configuration
// point to existing directories. Rules:
//
//   - every Input entry must exist and be a directory (subject "Input");
//   - TranslationsPath is checked the same way unless the command is the
//     extraction command, for which it is an output target (subject
//     "Translations");
//   - Output is a write target and is never checked.
//
// Validation stops at the first failure. Returns nil when the configuration
// is valid.
func Validate(cfg *Config) *FatalError {
	for _, path := range cfg.Input {
		if ferr := checkDir("Input", path); ferr != nil {
			return ferr
		}
	}

	if cfg.Command != CommandExtract {
		if ferr := checkDir("Translations", cfg.TranslationsPath); ferr != nil {
			return ferr
		}
	}

	return nil
}

func checkDir(subject, path string) *FatalError {
	info, err := os.Stat(path)
	if err != nil {
		return &FatalError{Kind: PathDoesntExist, Subject: subject, Path: path}
	}

	if !info.IsDir() {
		return &FatalError{Kind: PathIsNotDir, Subject: subject, Path: path}
	}

	return nil
}
