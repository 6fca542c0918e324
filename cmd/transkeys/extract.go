// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/spf13/cobra"

	"transkeys/internal/config"
	"transkeys/internal/logger"
)

func newExtractCommand() *cobra.Command {
	flags := &commandFlags{}

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract translation keys from the sources",
		Long: `Scans the input directories for translation keys and writes the
generated translation files to the output directory. The translations
directory is a write target for this command and need not exist yet.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.NewLogger("extract")

			cfg, err := resolveConfig(cmd, flags, config.CommandExtract, log)
			if err != nil {
				return err
			}

			return runExtract(cfg, log)
		},
	}

	flags.register(cmd)

	return cmd
}

func runExtract(cfg *config.Config, log *logger.Logger) error {
	log.Info().
		Strs("input", cfg.Input).
		Str("output", cfg.Output).
		Strs("langs", cfg.Langs).
		Msg("starting key extraction")

	// TODO: port the scanner that walks cfg.Input for cfg.Marker calls and
	// writes per-lang files to cfg.Output.
	return nil
}
