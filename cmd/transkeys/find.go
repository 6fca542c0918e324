// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/spf13/cobra"

	"transkeys/internal/config"
	"transkeys/internal/logger"
)

func newFindCommand() *cobra.Command {
	flags := &commandFlags{}

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find unused translation keys",
		Long: `Compares the keys present in the translation files against the keys
referenced by the sources and reports the ones no longer used. The
translations directory must exist for this command.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.NewLogger("find")

			cfg, err := resolveConfig(cmd, flags, config.CommandFind, log)
			if err != nil {
				return err
			}

			return runFind(cfg, log)
		},
	}

	flags.register(cmd)

	return cmd
}

func runFind(cfg *config.Config, log *logger.Logger) error {
	log.Info().
		Strs("input", cfg.Input).
		Str("translations", cfg.TranslationsPath).
		Msg("searching for unused keys")

	// TODO: port the comparator that diffs translation file keys against
	// the keys collected from cfg.Input.
	return nil
}
