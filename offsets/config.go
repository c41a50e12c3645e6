package offsets

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned for configuration values out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the options of config.yaml.
type Config struct {
	// Resolution is the number of samples per spline segment.
	Resolution int `yaml:"resolution"`
	// LayoutGap is the clearance between flattened planks, in feet. Zero
	// keeps the default.
	LayoutGap float64 `yaml:"layout_gap,omitempty"`
}

// ReadConfig reads and validates a configuration.
func ReadConfig(r io.Reader) (Config, error) {
	var c Config
	data, err := io.ReadAll(r)
	if err != nil {
		return c, err
	}
	if err = yaml.Unmarshal(data, &c); err != nil {
		return c, err
	}
	if c.Resolution < 1 {
		return c, fmt.Errorf("%w: resolution must be at least 1, is %d", ErrInvalidConfig, c.Resolution)
	}
	if c.LayoutGap < 0 {
		return c, fmt.Errorf("%w: negative layout gap %g", ErrInvalidConfig, c.LayoutGap)
	}
	return c, nil
}
