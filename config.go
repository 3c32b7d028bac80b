package utf16any

import "github.com/coregx/utf16any/simd"

// Strategy selects the search kernel. See simd.Strategy.
type Strategy = simd.Strategy

// Strategies.
const (
	Auto      = simd.Auto
	Scalar    = simd.Scalar
	Vector128 = simd.Vector128
	Vector256 = simd.Vector256
)

// ParseStrategy parses "auto", "scalar", "vec128" or "vec256".
func ParseStrategy(name string) (Strategy, error) {
	return simd.ParseStrategy(name)
}

// Config controls kernel selection.
//
// Example:
//
//	config := utf16any.DefaultConfig()
//	config.Strategy = utf16any.Scalar // force the baseline kernel
//	sc, err := utf16any.CompileWithConfig(chars, config)
type Config struct {
	// Strategy forces a kernel. Auto lets the dispatcher pick the widest
	// vector width the CPU supports.
	// Default: Auto
	Strategy Strategy

	// MinVectorLen is the shortest range, in code units, handed to a vector
	// kernel. Shorter ranges use the scalar kernel, where vector setup
	// costs more than it saves. Ignored when Strategy is not Auto.
	// Default: 16
	MinVectorLen int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Strategy:     Auto,
		MinVectorLen: 16,
	}
}

// Validate checks if the configuration is valid.
//
// Valid ranges:
//   - Strategy: Auto, Scalar, Vector128, Vector256
//   - MinVectorLen: 0 to 4096
func (c Config) Validate() error {
	if c.Strategy > Vector256 {
		return &ConfigError{
			Field:   "Strategy",
			Message: "unknown strategy " + c.Strategy.String(),
		}
	}
	if c.MinVectorLen < 0 || c.MinVectorLen > 4096 {
		return &ConfigError{
			Field:   "MinVectorLen",
			Message: "must be between 0 and 4096",
		}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "utf16any: invalid config: " + e.Field + ": " + e.Message
}
