package entity

import "github.com/schedcu/solver/internal/solvererr"

// ConstraintSpec is one configuration entry in a solve's constraint_specs
// map. Missing entries default to {Enabled: true, IsHard: true, Weight: 100,
// Parameters: {}} -- see DefaultConstraintSpec.
type ConstraintSpec struct {
	Enabled    bool
	IsHard     bool
	Weight     float64
	Parameters map[string]any
}

// DefaultConstraintSpec returns the spec used for a constraint id with no
// explicit entry in config.ConstraintSpecs.
func DefaultConstraintSpec() ConstraintSpec {
	return ConstraintSpec{Enabled: true, IsHard: true, Weight: 100, Parameters: map[string]any{}}
}

// NewConstraintSpec validates that Weight is non-negative.
func NewConstraintSpec(enabled, isHard bool, weight float64, parameters map[string]any) (ConstraintSpec, error) {
	if weight < 0 {
		return ConstraintSpec{}, solvererr.NewConfigurationError("weight", "must be non-negative")
	}
	if parameters == nil {
		parameters = map[string]any{}
	}
	return ConstraintSpec{Enabled: enabled, IsHard: isHard, Weight: weight, Parameters: parameters}, nil
}

// IntParam reads a positive-int parameter, falling back to def if absent.
// It returns a ConfigurationError if the stored value is not a positive int.
func (c ConstraintSpec) IntParam(name string, def int) (int, error) {
	raw, ok := c.Parameters[name]
	if !ok {
		return def, nil
	}
	n, ok := toInt(raw)
	if !ok || n <= 0 {
		return 0, solvererr.NewConfigurationError(name, "must be a positive integer")
	}
	return n, nil
}

// StringSliceParam reads a []string parameter, returning nil if absent.
func (c ConstraintSpec) StringSliceParam(name string) ([]string, error) {
	raw, ok := c.Parameters[name]
	if !ok {
		return nil, nil
	}
	switch v := raw.(type) {
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, solvererr.NewConfigurationError(name, "must be a list of strings")
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, solvererr.NewConfigurationError(name, "must be a list of strings")
	}
}

func toInt(raw any) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), v == float64(int(v))
	default:
		return 0, false
	}
}
