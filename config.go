package springcurve

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrInvalidConfig is returned by Validate and LoadConfig for values the
// renderer cannot work with.
var ErrInvalidConfig = errors.New("springcurve: invalid config")

// Smallest sampling increments accepted by Validate. The renderer clamps to
// them as well.
const (
	MinStep        = 1e-4
	MinTangentStep = 1e-3
)

// SimulationConfig holds the constants of the simulation and the sampling
// used to draw it. A Scene copies its config at construction; it is never
// mutated afterwards.
type SimulationConfig struct {
	Step          float64 `json:"step"`          // curve sampling increment in t
	TangentStep   float64 `json:"tangentStep"`   // tangent tick increment in t
	TangentLength float64 `json:"tangentLength"` // full length of a tangent tick
	SpringK       float64 `json:"springK"`       // spring stiffness
	Damping       float64 `json:"damping"`       // per-step velocity multiplier
	PointRadius   float64 `json:"pointRadius"`   // control point marker radius
	PointerOffset float64 `json:"pointerOffset"` // horizontal offset of B and C from the pointer
}

// DefaultConfig returns the tuned constants. The spring values were chosen
// empirically for a 60 TPS tick.
func DefaultConfig() SimulationConfig {
	return SimulationConfig{
		Step:          0.012,
		TangentStep:   0.11,
		TangentLength: 38,
		SpringK:       0.048,
		Damping:       0.86,
		PointRadius:   6,
		PointerOffset: 100,
	}
}

// Validate reports whether the sampling values are usable. Steps below
// MinStep and MinTangentStep (or NaN) are rejected. Spring constants are a
// tuning contract and only checked for sign.
func (c SimulationConfig) Validate() error {
	switch {
	case !(c.Step >= MinStep):
		return fmt.Errorf("%w: step must be at least %v, got %v", ErrInvalidConfig, MinStep, c.Step)
	case !(c.TangentStep >= MinTangentStep):
		return fmt.Errorf("%w: tangentStep must be at least %v, got %v", ErrInvalidConfig, MinTangentStep, c.TangentStep)
	case c.TangentLength < 0:
		return fmt.Errorf("%w: tangentLength must not be negative, got %v", ErrInvalidConfig, c.TangentLength)
	case c.PointRadius < 0:
		return fmt.Errorf("%w: pointRadius must not be negative, got %v", ErrInvalidConfig, c.PointRadius)
	case c.SpringK < 0 || c.Damping < 0:
		return fmt.Errorf("%w: springK and damping must not be negative", ErrInvalidConfig)
	}
	return nil
}

// fileConfig is the top-level JSON structure of a config file. Absent fields
// keep their defaults.
type fileConfig struct {
	Simulation *SimulationConfig `json:"simulation"`
	Style      *StyleSpec        `json:"style"`
}

// ParseConfig decodes JSON config data on top of DefaultConfig and
// DefaultStyle.
func ParseConfig(data []byte) (SimulationConfig, Style, error) {
	cfg := DefaultConfig()
	sp := DefaultStyleSpec()
	fc := fileConfig{Simulation: &cfg, Style: &sp}
	if err := json.Unmarshal(data, &fc); err != nil {
		return SimulationConfig{}, Style{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return SimulationConfig{}, Style{}, err
	}
	style, err := sp.Style()
	if err != nil {
		return SimulationConfig{}, Style{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, style, nil
}

// LoadConfig reads a JSON config file. See ParseConfig.
func LoadConfig(path string) (SimulationConfig, Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SimulationConfig{}, Style{}, fmt.Errorf("load config: %w", err)
	}
	return ParseConfig(data)
}
