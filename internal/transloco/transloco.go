// Package transloco loads the external transloco configuration file a
// project may carry and exposes it through the collaborator interfaces the
// config resolver expects.
package transloco

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"transkeys/internal/config"
)

// ConfigFileName is the file looked up in the project base directory.
const ConfigFileName = "transloco.config.json"

// fileConfig mirrors the on-disk shape of the transloco configuration.
// Only the fields this tool consumes are declared; unknown fields are
// ignored by the decoder.
type fileConfig struct {
	RootTranslationsPath string   `json:"rootTranslationsPath"`
	Langs                []string `json:"langs"`

	KeysManager struct {
		DefaultValue string     `json:"defaultValue"`
		Input        StringList `json:"input"`
		Output       string     `json:"output"`
	} `json:"keysManager"`

	Scopes json.RawMessage `json:"scopes"`
}

// Provider reads the transloco configuration for one project and implements
// [config.GlobalProvider] and [config.ScopeProvider]. The file is read at
// most once per Provider; invocations are single-threaded.
type Provider struct {
	root   string
	loaded bool
	file   fileConfig
}

// NewProvider returns a Provider rooted at the project base directory.
func NewProvider(root string) *Provider {
	return &Provider{root: root}
}

// GlobalConfig returns the project's transloco configuration mapped onto
// the canonical global shape. A project without a config file yields an
// empty configuration, not an error.
func (p *Provider) GlobalConfig() (*config.Global, error) {
	if err := p.load(); err != nil {
		return nil, err
	}

	global := &config.Global{
		RootTranslationsPath: p.file.RootTranslationsPath,
		Langs:                p.file.Langs,
		KeysManager: config.KeysManager{
			DefaultValue: p.file.KeysManager.DefaultValue,
			Input:        p.file.KeysManager.Input,
			Output:       p.file.KeysManager.Output,
		},
	}

	return global, nil
}

// Scopes returns the raw scopes value from the configuration file, decoded
// into generic JSON form, or nil when the file defines none. The value is
// passed through to the commands unmodified.
func (p *Provider) Scopes() any {
	if err := p.load(); err != nil {
		return nil
	}

	if len(p.file.Scopes) == 0 {
		return nil
	}

	var scopes any
	if err := json.Unmarshal(p.file.Scopes, &scopes); err != nil {
		return nil
	}

	return scopes
}

func (p *Provider) load() error {
	if p.loaded {
		return nil
	}

	file, err := os.Open(filepath.Join(p.root, ConfigFileName))
	if errors.Is(err, fs.ErrNotExist) {
		p.loaded = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("error reading transloco config: %w", err)
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(&p.file); err != nil {
		return fmt.Errorf("error decoding transloco config: %w", err)
	}

	p.loaded = true
	return nil
}

// StringList is a sequence of strings that unmarshals from either a single
// JSON string or an array of strings. The transloco config allows the
// single-string form for keysManager.input; normalizing here keeps the
// merger free of shape special cases.
type StringList []string

func (l *StringList) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case string:
		*l = StringList{value}
		return nil
	case []any:
		list := make(StringList, 0, len(value))
		for _, item := range value {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("string list contains non-string entry %v", item)
			}
			list = append(list, s)
		}
		*l = list
		return nil
	default:
		return fmt.Errorf("string list must be a string or an array of strings, got %T", v)
	}
}

func (l StringList) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string(l))
}
