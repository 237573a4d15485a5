package units

import (
	"fmt"
	"math"
)

// Scalar is an amount expressed in a single Kind, e.g. 5 Meter.
// The zero Scalar has no Kind; the package-level operators treat it as not a unit.
type Scalar struct {
	amount float64
	kind   Kind
}

// NewScalar validates kind and amount and returns the Scalar.
func NewScalar(amount float64, kind Kind) (Scalar, error) {
	if err := kind.Validate(); err != nil {
		return Scalar{}, err
	}
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Scalar{}, fmt.Errorf("%w: got %v %s", ErrNegativeAmount, amount, kind.Name)
	}
	return Scalar{amount: amount, kind: kind}, nil
}

func (s Scalar) Amount() float64 { return s.amount }

func (s Scalar) Kind() Kind { return s.kind }

func (s Scalar) Dimension() Dimension { return s.kind.Dimension }

// Base returns the amount expressed in base units of the dimension.
func (s Scalar) Base() float64 {
	return s.kind.Factor * s.amount
}

// To converts s into kind. See Convert.
func (s Scalar) To(kind Kind) (Scalar, error) {
	return Convert(s, kind)
}

// Add returns s+o expressed in s's kind.
func (s Scalar) Add(o Scalar) (Scalar, error) {
	return s.combine(plus, o)
}

// Sub returns s-o expressed in s's kind. A negative result is an error.
func (s Scalar) Sub(o Scalar) (Scalar, error) {
	return s.combine(minus, o)
}

// Mul returns the product s*o. Dimensions may differ.
func (s Scalar) Mul(o Scalar) Compound {
	return Compound{num: []Value{s, o}}
}

// Div returns the ratio s/o. Dimensions may differ.
func (s Scalar) Div(o Scalar) Compound {
	return Compound{num: []Value{s}, den: o}
}

// Equal reports whether s and o share dimension, amount and conversion factor.
// The kind name is not compared.
func (s Scalar) Equal(o Scalar) bool {
	return s.kind.Dimension == o.kind.Dimension &&
		s.amount == o.amount &&
		s.kind.Factor == o.kind.Factor
}

func (s Scalar) String() string {
	return fmt.Sprintf("%.6g %s", s.amount, s.kind.Name)
}

func (Scalar) value() {}

// combine normalizes both operands to base units, applies op and
// re-expresses the result in s's kind.
func (s Scalar) combine(op additive, o Scalar) (Scalar, error) {
	if s.kind.Dimension != o.kind.Dimension {
		return Scalar{}, fmt.Errorf("%w: cannot %s %s and %s (%s vs %s)",
			ErrDimensionMismatch, op, s, o, s.kind.Dimension, o.kind.Dimension)
	}
	return NewScalar(op.apply(s.Base(), o.Base())/s.kind.Factor, s.kind)
}
