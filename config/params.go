// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	// DefaultThreshold applies when neither a flag nor the preset sets one.
	DefaultThreshold = 10.0

	// DefaultSeparator joins the parts of merged cluster names.
	DefaultSeparator = "|"

	// LowMaxDistance is the max_distance below which a notice is raised.
	LowMaxDistance = 50.0
)

// ErrInvalidParams wraps every validation failure.
var ErrInvalidParams = errors.New("config: invalid parameters")

var validate = validator.New()

// Params are the resolved parameters of one clustering run.
type Params struct {
	Preset    string
	Threshold float64 `validate:"gte=0"`

	// MaxDistance is nil when the preset does not set it. A set value,
	// zero included, must not be below Threshold.
	MaxDistance    *float64 `validate:"omitnil,gtefield=Threshold"`
	ClusteringType string
	Separator      string `validate:"required"`
}

// Overrides carries explicitly requested values. A nil Threshold and an
// empty Separator mean "not given".
type Overrides struct {
	Preset    string
	Threshold *float64
	Separator string
}

// Resolve merges overrides over the named preset. An empty preset name
// selects no preset. notices lists non-fatal remarks for the caller to log.
//
// Precedence for the threshold: override > preset > DefaultThreshold.
func Resolve(ps Presets, o Overrides) (p Params, notices []string, err error) {
	p = Params{Preset: o.Preset, Threshold: DefaultThreshold, Separator: DefaultSeparator}

	thresholdSet := false
	if o.Preset != "" {
		pr, err := ps.Get(o.Preset)
		if err != nil {
			return Params{}, nil, err
		}
		p.MaxDistance = pr.MaxDistance
		p.ClusteringType = pr.ClusteringType
		if pr.ClusterThreshold != nil {
			p.Threshold = *pr.ClusterThreshold
			thresholdSet = true
		}
	}
	if o.Threshold != nil {
		p.Threshold = *o.Threshold
		thresholdSet = true
	}
	if !thresholdSet {
		notices = append(notices, fmt.Sprintf("threshold not set, using default value of %g", DefaultThreshold))
	}
	if o.Separator != "" {
		p.Separator = o.Separator
	}

	if err := p.Validate(); err != nil {
		return Params{}, nil, err
	}

	return p, append(notices, p.Notices()...), nil
}

// Validate checks the parameter constraints.
func (p Params) Validate() error {
	if math.IsNaN(p.Threshold) {
		return fmt.Errorf("%w: threshold must be a number", ErrInvalidParams)
	}
	if err := validate.Struct(p); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// Notices returns non-fatal remarks about p.
func (p Params) Notices() []string {
	if p.MaxDistance != nil && *p.MaxDistance < LowMaxDistance {
		return []string{fmt.Sprintf(
			"max_distance %g is low and might remove a lot of information; it is not the clustering threshold",
			*p.MaxDistance)}
	}

	return nil
}

// formatValidationError turns validator errors into one readable error.
func formatValidationError(err error) error {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	msgs := make([]string, 0, len(ves))
	for _, fe := range ves {
		msgs = append(msgs, formatFieldError(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalidParams, strings.Join(msgs, "; "))
}

func formatFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "gtefield":
		return fmt.Sprintf("%s must not be smaller than %s", field, strings.ToLower(fe.Param()))
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
