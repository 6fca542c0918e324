package config

import (
	"fmt"

	"dario.cat/mergo"
)

type layerMerger struct {
	layers []*Config
}

func newLayerMerger() *layerMerger {
	return &layerMerger{
		layers: make([]*Config, 0, 3),
	}
}

// merge folds the accumulated layers into a single Config. Layers are
// appended highest-priority first; mergo only fills fields that are still
// zero, so an earlier layer's non-zero field survives every later layer.
func (m *layerMerger) merge() (*Config, error) {
	config := new(Config)
	for _, layer := range m.layers {
		if layer == nil {
			continue
		}
		if err := mergo.Merge(config, layer); err != nil {
			return nil, fmt.Errorf("error merging config layers: %w", err)
		}
	}

	return config, nil
}

func (m *layerMerger) withInline(inline *Config) *layerMerger {
	m.layers = append(m.layers, inline)
	return m
}

func (m *layerMerger) withGlobal(global *Global) *layerMerger {
	m.layers = append(m.layers, global.asLayer())
	return m
}

func (m *layerMerger) withDefaults() *layerMerger {
	m.layers = append(m.layers, Default())
	return m
}

// Merge combines the built-in defaults, the global transloco configuration,
// and the caller's inline overrides into one flat Config. Precedence is
// strictly defaults < global < inline, applied per-field: a caller
// overriding only DefaultValue leaves every other field to fall through to
// the global layer and then the defaults. Absent layers (nil) are treated
// as empty overrides. No validation or path resolution happens here.
func Merge(global *Global, inline *Config) (*Config, error) {
	return newLayerMerger().
		withInline(inline).
		withGlobal(global).
		withDefaults().
		merge()
}
