package questioner

import (
	"errors"
	"fmt"
	"strconv"
)

// Number collects a numeric value by specializing the input engine with a
// parse/bounds validator. Integer configs reject fractional input; Min
// and Max are inclusive.
func (q *Questioner) Number(cfg NumberConfig) (float64, error) {
	raw, err := q.Input(InputConfig{
		Message:  cfg.Message,
		Default:  cfg.Default,
		Required: cfg.Required,
		Validate: numberValidator(cfg),
	})
	if err != nil {
		return 0, err
	}
	if raw == "" {
		return 0, nil
	}
	return parseNumber(raw, cfg.Integer)
}

func numberValidator(cfg NumberConfig) func(string) error {
	return func(value string) error {
		if value == "" {
			if cfg.Required {
				return errors.New("a number is required")
			}
			return nil
		}
		n, err := parseNumber(value, cfg.Integer)
		if err != nil {
			if cfg.Integer {
				return errors.New("enter a whole number")
			}
			return errors.New("enter a number")
		}
		if cfg.Min != nil && n < *cfg.Min {
			return fmt.Errorf("must be at least %s", formatBound(*cfg.Min, cfg.Integer))
		}
		if cfg.Max != nil && n > *cfg.Max {
			return fmt.Errorf("must be at most %s", formatBound(*cfg.Max, cfg.Integer))
		}
		return nil
	}
}

func parseNumber(value string, integer bool) (float64, error) {
	if integer {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return 0, err
		}
		return float64(n), nil
	}
	return strconv.ParseFloat(value, 64)
}

func formatBound(v float64, integer bool) string {
	if integer {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
