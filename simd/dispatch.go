// Package simd implements the vectorized multi-character locator over UTF-16
// code units.
//
// Three interchangeable strategies share one contract:
//   - Scalar: nested linear scan, always available
//   - Vector128: eight code units per step (SSE2 / NEON register width)
//   - Vector256: sixteen code units per step (AVX2 register width)
//
// The vector strategies are written in pure Go over register-shaped lane
// values (see lanes.go) and keep the aligned head / body / tail structure of
// a hardware implementation. Every strategy returns exactly the same records
// in exactly the same order.
//
// Functions in this package do not validate their arguments: start and
// count must describe a range inside text, the CharSet must be non-nil, and
// out must hold count*cs.MaxRepeat() records. The utf16any package is the
// validating boundary.
package simd

import "fmt"

// Strategy identifies a search kernel.
type Strategy uint8

const (
	// Auto picks the widest strategy the CPU supports.
	Auto Strategy = iota

	// Scalar is the nested linear scan.
	Scalar

	// Vector128 compares eight code units per step.
	Vector128

	// Vector256 compares sixteen code units per step.
	Vector256
)

// String returns the strategy name accepted by ParseStrategy.
func (s Strategy) String() string {
	switch s {
	case Auto:
		return "auto"
	case Scalar:
		return "scalar"
	case Vector128:
		return "vec128"
	case Vector256:
		return "vec256"
	default:
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}
}

// ParseStrategy parses a strategy name as printed by Strategy.String.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "auto", "":
		return Auto, nil
	case "scalar":
		return Scalar, nil
	case "vec128":
		return Vector128, nil
	case "vec256":
		return Vector256, nil
	}
	return Auto, fmt.Errorf("simd: unknown strategy %q", name)
}

// Select returns the strategy Auto resolves to on this CPU.
func Select() Strategy {
	return SelectFor(Detect())
}

// SelectFor maps capabilities to a strategy: the widest available width,
// falling back to Scalar.
func SelectFor(c Capabilities) Strategy {
	switch {
	case c.Has256:
		return Vector256
	case c.Has128:
		return Vector128
	default:
		return Scalar
	}
}

// IndexAll writes every match in text[start:start+count] to out and returns
// the number of records written. Records are ordered by position, then by
// query index.
func IndexAll(text []uint16, cs *CharSet, start, count int, out []Match) int {
	return IndexAllWith(Auto, text, cs, start, count, out)
}

// IndexAllWith is IndexAll with an explicit strategy.
func IndexAllWith(strategy Strategy, text []uint16, cs *CharSet, start, count int, out []Match) int {
	if count == 0 || len(cs.uniq) == 0 {
		return 0
	}
	if strategy == Auto {
		strategy = Select()
	}
	switch strategy {
	case Vector256:
		return indexAll256(text, cs, start, count, out)
	case Vector128:
		return indexAll128(text, cs, start, count, out)
	default:
		return indexAllScalar(text, cs, start, count, out)
	}
}

// IndexAny returns the first position in text[start:start+count] holding
// any character of cs, or -1.
func IndexAny(text []uint16, cs *CharSet, start, count int) int {
	return IndexAnyWith(Auto, text, cs, start, count)
}

// IndexAnyWith is IndexAny with an explicit strategy.
func IndexAnyWith(strategy Strategy, text []uint16, cs *CharSet, start, count int) int {
	if count == 0 || len(cs.uniq) == 0 {
		return -1
	}
	if strategy == Auto {
		strategy = Select()
	}
	switch strategy {
	case Vector256:
		return indexAny256(text, cs, start, count)
	case Vector128:
		return indexAny128(text, cs, start, count)
	default:
		return indexAnyScalar(text, cs, start, count)
	}
}
