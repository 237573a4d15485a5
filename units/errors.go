package units

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeAmount is returned when a unit is built with a negative, NaN or infinite amount.
	ErrNegativeAmount = errors.New("unit amounts must be finite and non-negative")
	// ErrTypeMismatch is returned when an operand is not a usable unit value.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrDimensionMismatch is returned when operands belong to different physical dimensions.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrShapeMismatch is returned when one ratio has a denominator and the other does not.
	ErrShapeMismatch = errors.New("shape mismatch")
	// ErrIncompatibleOperand is returned for structurally disallowed combinations,
	// such as adding a bare scalar to a ratio.
	ErrIncompatibleOperand = errors.New("incompatible operand")
	// ErrUnknownKind is returned when a catalog has no unit with the requested name.
	ErrUnknownKind = errors.New("unknown unit")
	// ErrInvalidKind is returned for malformed unit definitions.
	ErrInvalidKind = errors.New("invalid unit definition")
)

// describe names the variant of v for error messages.
func describe(v Value) string {
	switch x := v.(type) {
	case Scalar:
		if !valid(x) {
			return "unit without a kind"
		}
		return fmt.Sprintf("unit %q", x.String())
	case Compound:
		if !x.valid() {
			return "empty compound unit"
		}
		return fmt.Sprintf("compound unit %q", x.String())
	default:
		return "non-unit value"
	}
}

func typeMismatch(op string, a, b Value) error {
	return fmt.Errorf("%w: cannot %s %s and %s", ErrTypeMismatch, op, describe(a), describe(b))
}
