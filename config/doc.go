// SPDX-License-Identifier: MIT

// Package config resolves the parameters of a clustering run.
//
// Presets are read from YAML; an embedded presets.yaml is used when no
// presets file is given. Explicit values (command-line flags) override the
// preset, and the result is checked by Params.Validate:
//
//	threshold    >= 0
//	max_distance >= threshold (when set, zero included)
//	separator    non-empty
//
// A max_distance below LowMaxDistance is accepted but reported as a notice.
package config
