package units

import (
	"fmt"
	"slices"
	"strings"
)

// Compound is a product of numerator factors, optionally divided by a
// denominator. Factors and denominator may themselves be compounds.
//
// Numerator factors are kept flat: a product used as a numerator
// contributes its factors rather than nesting. Ratios stay nested.
type Compound struct {
	num []Value
	den Value // nil for a pure product
}

// NewCompound builds numerator/denominator. A nil denominator yields a
// product with no denominator.
func NewCompound(numerator, denominator Value) (Compound, error) {
	if !valid(numerator) {
		return Compound{}, fmt.Errorf("%w: compound numerator must be a unit, got %s", ErrTypeMismatch, describe(numerator))
	}
	if denominator != nil && !valid(denominator) {
		return Compound{}, fmt.Errorf("%w: compound denominator must be a unit, got %s", ErrTypeMismatch, describe(denominator))
	}
	return compound(numerator, denominator), nil
}

// Product builds the product of factors, in the given order.
func Product(factors ...Value) (Compound, error) {
	if len(factors) == 0 {
		return Compound{}, fmt.Errorf("%w: product needs at least one factor", ErrTypeMismatch)
	}
	var num []Value
	for _, f := range factors {
		if !valid(f) {
			return Compound{}, fmt.Errorf("%w: product factor must be a unit, got %s", ErrTypeMismatch, describe(f))
		}
		num = append(num, flatten(f)...)
	}
	return Compound{num: num}, nil
}

func compound(num, den Value) Compound {
	return Compound{num: flatten(num), den: den}
}

// flatten returns the numerator factors contributed by v.
func flatten(v Value) []Value {
	if c, ok := v.(Compound); ok && c.den == nil {
		return slices.Clone(c.num)
	}
	return []Value{v}
}

// Numerator returns the single numerator factor, or the product of all of
// them when there are several.
func (c Compound) Numerator() Value {
	if len(c.num) == 1 {
		return c.num[0]
	}
	return Compound{num: slices.Clone(c.num)}
}

// Factors returns the numerator factors in order.
func (c Compound) Factors() []Value {
	return slices.Clone(c.num)
}

// Denominator returns the denominator and whether one is present.
func (c Compound) Denominator() (Value, bool) {
	return c.den, c.den != nil
}

// IsProduct reports whether c has no denominator.
func (c Compound) IsProduct() bool {
	return c.den == nil
}

func (c Compound) String() string {
	factors := make([]string, len(c.num))
	for i, f := range c.num {
		factors[i] = f.String()
		if len(c.num) > 1 && hasDenominator(f) {
			factors[i] = "(" + factors[i] + ")"
		}
	}
	num := strings.Join(factors, "*")
	if c.den == nil {
		return num
	}
	if len(c.num) > 1 || isCompound(c.num[0]) {
		num = "(" + num + ")"
	}
	den := c.den.String()
	if isCompound(c.den) {
		den = "(" + den + ")"
	}
	return num + "/" + den
}

func (Compound) value() {}

func (c Compound) valid() bool {
	return len(c.num) > 0
}

// equal compares factor by factor. Factor lists of different length, or one
// side lacking a denominator, compare unequal; mismatched variants in the same
// slot are a TypeMismatch.
func (c Compound) equal(o Compound) (bool, error) {
	if len(c.num) != len(o.num) {
		return false, nil
	}
	for i := range c.num {
		eq, err := Equal(c.num[i], o.num[i])
		if err != nil || !eq {
			return false, err
		}
	}
	switch {
	case c.den == nil && o.den == nil:
		return true, nil
	case c.den == nil || o.den == nil:
		return false, nil
	}
	return Equal(c.den, o.den)
}

// scalarNumerator returns the numerator when it is a single Scalar.
func (c Compound) scalarNumerator() (Scalar, bool) {
	if len(c.num) != 1 {
		return Scalar{}, false
	}
	s, ok := c.num[0].(Scalar)
	return s, ok
}

func isCompound(v Value) bool {
	_, ok := v.(Compound)
	return ok
}
