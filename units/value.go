package units

import "fmt"

// Value is either a Scalar or a Compound. The set is closed: no other type
// implements Value.
type Value interface {
	fmt.Stringer
	value()
}

// Equal compares two values of the same variant. Comparing a Scalar with a
// Compound, or either with a nil Value, is a TypeMismatch rather than false.
func Equal(a, b Value) (bool, error) {
	switch x := a.(type) {
	case Scalar:
		if y, ok := b.(Scalar); ok && valid(x) && valid(y) {
			return x.Equal(y), nil
		}
	case Compound:
		if y, ok := b.(Compound); ok && x.valid() && y.valid() {
			return x.equal(y)
		}
	}
	return false, typeMismatch("compare", a, b)
}

// valid reports whether v is a Scalar with a usable Kind or a non-empty Compound.
func valid(v Value) bool {
	switch x := v.(type) {
	case Scalar:
		return x.kind.Validate() == nil
	case Compound:
		return x.valid()
	}
	return false
}

// hasDenominator reports whether v is a ratio.
func hasDenominator(v Value) bool {
	c, ok := v.(Compound)
	return ok && c.den != nil
}
