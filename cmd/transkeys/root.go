// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"transkeys/internal/config"
	"transkeys/internal/console"
	"transkeys/internal/logger"
	"transkeys/internal/project"
	"transkeys/internal/transloco"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "transkeys",
		Short: "Translation keys manager for transloco projects",
		Long: `transkeys scans a project's sources for translation keys and keeps the
translation files in sync with them.

Configuration is resolved per invocation from three layers: command flags,
the project's transloco.config.json, and built-in defaults.`,
		Version: versionString(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.AddCommand(newExtractCommand())
	rootCmd.AddCommand(newFindCommand())

	return rootCmd
}

// commandFlags collects the flag values shared by the extract and find
// commands. Only flags the user actually set become part of the inline
// configuration layer, so unset flags fall through to the global config
// and the defaults.
type commandFlags struct {
	projectRoot      string
	input            []string
	output           string
	translationsPath string
	outputFormat     string
	fileFormat       string
	defaultValue     string
	marker           string
	langs            []string
	sort             bool
	removeExtraKeys  bool
	unflat           bool
}

func (f *commandFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.projectRoot, "project-root", "", "Project base directory (defaults to TRANSKEYS_PROJECT_ROOT or the working directory)")
	flags.StringSliceVarP(&f.input, "input", "i", nil, "Source directories scanned for translation keys")
	flags.StringVarP(&f.output, "output", "o", "", "Directory the generated translation files are written to")
	flags.StringVar(&f.translationsPath, "translations-path", "", "Directory holding the existing translation files")
	flags.StringVar(&f.outputFormat, "output-format", "", "Serialization format of generated files")
	flags.StringVar(&f.fileFormat, "file-format", "", "Extension of translation files")
	flags.StringVar(&f.defaultValue, "default-value", "", "Placeholder written for untranslated keys")
	flags.StringVar(&f.marker, "marker", "", "Function or attribute name marking a translatable key")
	flags.StringSliceVarP(&f.langs, "langs", "l", nil, "Language codes translation files are maintained for")
	flags.BoolVar(&f.sort, "sort", false, "Sort keys alphabetically in generated files")
	flags.BoolVar(&f.removeExtraKeys, "remove-extra-keys", false, "Delete keys no longer present in the sources")
	flags.BoolVar(&f.unflat, "unflat", false, "Expand dotted keys into nested objects")
}

// inline builds the inline configuration layer from the flags the user set
// on this invocation. cmd.Flags().Changed keeps untouched flags out of the
// layer so they do not shadow lower layers with zero values.
func (f *commandFlags) inline(cmd *cobra.Command, command string) *config.Config {
	inline := &config.Config{Command: command}

	set := cmd.Flags().Changed
	if set("input") {
		inline.Input = f.input
	}
	if set("output") {
		inline.Output = f.output
	}
	if set("translations-path") {
		inline.TranslationsPath = f.translationsPath
	}
	if set("output-format") {
		inline.OutputFormat = f.outputFormat
	}
	if set("file-format") {
		inline.FileFormat = f.fileFormat
	}
	if set("default-value") {
		inline.DefaultValue = f.defaultValue
	}
	if set("marker") {
		inline.Marker = f.marker
	}
	if set("langs") {
		inline.Langs = f.langs
	}
	if set("sort") {
		inline.Sort = f.sort
	}
	if set("remove-extra-keys") {
		inline.RemoveExtraKeys = f.removeExtraKeys
	}
	if set("unflat") {
		inline.Unflat = f.unflat
	}

	return inline
}

// resolveConfig runs the merge → resolve → validate pipeline for one
// command invocation. A validation failure is reported as a styled alert
// and terminates the process with a non-zero exit code; an invalid path
// makes the rest of the run meaningless.
func resolveConfig(cmd *cobra.Command, flags *commandFlags, command string, log *logger.Logger) (*config.Config, error) {
	basePath, err := project.NewResolver(flags.projectRoot).BasePath()
	if err != nil {
		return nil, err
	}

	provider := transloco.NewProvider(basePath)
	resolver := config.NewResolver(project.NewResolver(basePath), provider, provider, log)

	cfg, err := resolver.Resolve(flags.inline(cmd, command))

	var ferr *config.FatalError
	if errors.As(err, &ferr) {
		console.Default().Alert(ferr.Error())
		log.Error().
			Str("kind", string(ferr.Kind)).
			Str("subject", ferr.Subject).
			Str("path", ferr.Path).
			Msg("configuration validation failed")
		os.Exit(1)
	}
	if err != nil {
		return nil, err
	}

	log.Debug().Any("config", cfg).Msg("resolved configs")

	return cfg, nil
}
