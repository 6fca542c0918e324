// SPDX-License-Identifier: Apache-2.0

package config

// Commands understood by the tool. Validation rules differ between them:
// during extraction the translations directory is a write target and need
// not pre-exist, while every other command reads from it.
const (
	CommandExtract = "extract"
	CommandFind    = "find"
)

// Config is the canonical flat configuration object consumed by every
// command. The same type doubles as a partial layer: a zero field means
// "not set by this layer" and falls through to the layer beneath it.
type Config struct {
	// Input lists the source directories scanned for translation keys.
	// Always a sequence in the merged result, even when a contributing
	// layer expressed it as a single path.
	Input []string

	// Output is the directory the generated translation files are written
	// to. Being a write target it is never required to pre-exist.
	Output string

	// TranslationsPath is the directory holding the existing translation
	// files. Required to exist for every command except extraction.
	TranslationsPath string

	// OutputFormat selects the serialization of generated files ("json").
	OutputFormat string

	// FileFormat selects the extension of translation files read from
	// TranslationsPath.
	FileFormat string

	// DefaultValue is the placeholder written for keys that have no
	// translation yet.
	DefaultValue string

	// Langs lists the language codes translation files are maintained for.
	Langs []string

	// Marker is the function or attribute name that marks a translatable
	// key in the scanned sources.
	Marker string

	// Sort orders keys alphabetically in the generated files.
	Sort bool

	// RemoveExtraKeys deletes keys found in translation files but no
	// longer present in the sources.
	RemoveExtraKeys bool

	// Unflat expands dotted keys into nested objects on output.
	Unflat bool

	// Command is the command mode the configuration is resolved for.
	Command string

	// Scopes is an opaque value supplied by the scope provider and passed
	// through to the commands unmodified. It never participates in
	// merging or validation.
	Scopes any
}

// Global is the external tool-wide configuration in the transloco shape.
// Its fields map onto [Config] fields under different names; see asLayer.
type Global struct {
	// RootTranslationsPath maps onto Config.TranslationsPath.
	RootTranslationsPath string

	// Langs maps onto Config.Langs unchanged.
	Langs []string

	// KeysManager groups the settings specific to this tool.
	KeysManager KeysManager
}

// KeysManager is the tool-specific sub-record of [Global].
type KeysManager struct {
	// DefaultValue maps onto Config.DefaultValue.
	DefaultValue string

	// Input maps onto Config.Input. Providers normalize a single-string
	// value to a one-element sequence before it reaches the merger.
	Input []string

	// Output maps onto Config.Output.
	Output string
}

// asLayer maps the transloco field names onto the canonical [Config] shape
// so the global configuration can be merged as an ordinary layer.
func (g *Global) asLayer() *Config {
	if g == nil {
		return &Config{}
	}

	return &Config{
		Input:            g.KeysManager.Input,
		Output:           g.KeysManager.Output,
		TranslationsPath: g.RootTranslationsPath,
		DefaultValue:     g.KeysManager.DefaultValue,
		Langs:            g.Langs,
	}
}

// Default returns the built-in configuration all other layers override.
// Constructed fresh per call so callers may mutate the result freely.
func Default() *Config {
	return &Config{
		Input:            []string{"src"},
		Output:           "src/assets/i18n",
		TranslationsPath: "src/assets/i18n",
		OutputFormat:     "json",
		FileFormat:       "json",
		DefaultValue:     "missing value",
		Langs:            []string{"en"},
		Marker:           "t",
	}
}
