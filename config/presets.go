// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var defaultPresetsYAML []byte

// DefaultPreset is the preset shipped with the embedded presets file.
const DefaultPreset = "mycobacterium_tuberculosis"

// ErrUnknownPreset is returned when a preset name is not in the presets file.
var ErrUnknownPreset = errors.New("config: unknown clustering preset")

// Preset is one named set of run-wide defaults. Nil pointers are keys the
// preset leaves unset.
type Preset struct {
	ClusterThreshold *float64 `yaml:"cluster_threshold"`
	MaxDistance      *float64 `yaml:"max_distance"`
	ClusteringType   string   `yaml:"clustering_type"`
}

// Presets maps preset names to their values.
type Presets map[string]Preset

// ParsePresets decodes a presets YAML document. Unknown keys are rejected
// and an empty document yields no presets.
func ParsePresets(data []byte) (Presets, error) {
	var ps Presets
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&ps); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse presets: %w", err)
	}
	if ps == nil {
		ps = Presets{}
	}

	return ps, nil
}

// DefaultPresets returns the embedded presets.
func DefaultPresets() Presets {
	ps, err := ParsePresets(defaultPresetsYAML)
	if err != nil {
		panic(err) // embedded file is part of the build
	}

	return ps
}

// LoadPresets reads presets from path, or returns DefaultPresets when path
// is empty.
func LoadPresets(path string) (Presets, error) {
	if path == "" {
		return DefaultPresets(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read presets: %w", err)
	}

	return ParsePresets(data)
}

// Names returns the preset names sorted ascending.
func (ps Presets) Names() []string {
	out := make([]string, 0, len(ps))
	for name := range ps {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Get returns the named preset.
func (ps Presets) Get(name string) (Preset, error) {
	p, ok := ps[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q (known: %v)", ErrUnknownPreset, name, ps.Names())
	}

	return p, nil
}
