package units

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Compatible reports whether a and b may be added or subtracted.
//
// DefaultEngine requires two compounds whose numerators, and denominators
// when present, are plain scalars; it does not look inside nested compounds.
// StrictEngine accepts any two values with equal dimension signatures.
func (e Engine) Compatible(a, b Value) error {
	if !valid(a) || !valid(b) {
		return typeMismatch("combine", a, b)
	}
	if e.Strict {
		sa, sb := SignatureOf(a), SignatureOf(b)
		if !sa.Equal(sb) {
			return fmt.Errorf("%w: %s has dimension %s, %s has dimension %s", ErrDimensionMismatch, a, sa, b, sb)
		}
		return nil
	}
	x, xok := a.(Compound)
	y, yok := b.(Compound)
	if !xok || !yok {
		return typeMismatch("combine", a, b)
	}
	return checkOneLevel(x, y)
}

func checkOneLevel(a, b Compound) error {
	an, aok := a.scalarNumerator()
	bn, bok := b.scalarNumerator()
	if !aok || !bok || !scalarOrAbsent(a.den) || !scalarOrAbsent(b.den) {
		logrus.Debugf("compatibility of %s and %s not checked below the first level; StrictEngine handles nested compounds", a, b)
		return fmt.Errorf("%w: can only add/subtract compounds whose numerator and denominator are plain units", ErrTypeMismatch)
	}
	if an.Dimension() != bn.Dimension() {
		return fmt.Errorf("%w: numerators %s and %s differ (%s vs %s)", ErrDimensionMismatch, an, bn, an.Dimension(), bn.Dimension())
	}
	switch {
	case a.den != nil && b.den != nil:
		ad, bd := a.den.(Scalar), b.den.(Scalar)
		if ad.Dimension() != bd.Dimension() {
			return fmt.Errorf("%w: denominators %s and %s differ (%s vs %s)", ErrDimensionMismatch, ad, bd, ad.Dimension(), bd.Dimension())
		}
	case a.den != nil || b.den != nil:
		return fmt.Errorf("%w: %s and %s: one has a denominator, the other does not", ErrShapeMismatch, a, b)
	}
	return nil
}

func scalarOrAbsent(v Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(Scalar)
	return ok
}
