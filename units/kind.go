package units

import (
	"fmt"
	"math"
)

// Dimension tags the physical category of a Kind, e.g. "length".
// Two kinds are compatible iff their dimensions are equal.
type Dimension string

// Kind is a concrete unit definition: one Kind equals Factor base units of Dimension.
type Kind struct {
	Name      string
	Factor    float64
	Dimension Dimension
}

// Validate reports whether k can be used to build scalars.
func (k Kind) Validate() error {
	switch {
	case k.Name == "":
		return fmt.Errorf("%w: unit name must not be empty", ErrInvalidKind)
	case k.Dimension == "":
		return fmt.Errorf("%w: unit %q has no dimension", ErrInvalidKind, k.Name)
	case math.IsNaN(k.Factor) || math.IsInf(k.Factor, 0) || k.Factor <= 0:
		return fmt.Errorf("%w: unit %q factor must be a finite positive number, got %v", ErrInvalidKind, k.Name, k.Factor)
	}
	return nil
}

// Compatible reports whether k and other measure the same dimension.
func (k Kind) Compatible(other Kind) bool {
	return k.Dimension == other.Dimension
}

// Of builds a Scalar of amount k.
func (k Kind) Of(amount float64) (Scalar, error) {
	return NewScalar(amount, k)
}

// Must is like Of but panics on error. Intended for constants and tests.
func (k Kind) Must(amount float64) Scalar {
	s, err := NewScalar(amount, k)
	if err != nil {
		panic(err)
	}
	return s
}

func (k Kind) String() string {
	return k.Name
}
