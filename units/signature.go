package units

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"
)

// Signature maps each dimension to its exponent, e.g. length/time is
// {length: 1, time: -1}. Zero exponents are omitted.
type Signature map[Dimension]int

// SignatureOf returns the dimension signature of v.
func SignatureOf(v Value) Signature {
	sig := Signature{}
	sig.add(v, 1)
	return sig
}

func (s Signature) add(v Value, sign int) {
	switch x := v.(type) {
	case Scalar:
		s[x.kind.Dimension] += sign
		if s[x.kind.Dimension] == 0 {
			delete(s, x.kind.Dimension)
		}
	case Compound:
		for _, f := range x.num {
			s.add(f, sign)
		}
		if x.den != nil {
			s.add(x.den, -sign)
		}
	}
}

// Equal reports whether s and o have the same exponents.
func (s Signature) Equal(o Signature) bool {
	return maps.Equal(s, o)
}

// String renders s as "length*mass/time^2"; a dimensionless signature is "1".
func (s Signature) String() string {
	var num, den []string
	for _, d := range slices.Sorted(maps.Keys(s)) {
		term := string(d)
		exp := s[d]
		if exp < 0 {
			exp = -exp
		}
		if exp != 1 {
			term = fmt.Sprintf("%s^%d", d, exp)
		}
		if s[d] > 0 {
			num = append(num, term)
		} else {
			den = append(den, term)
		}
	}
	out := strings.Join(num, "*")
	if out == "" {
		out = "1"
	}
	if len(den) > 0 {
		out += "/" + strings.Join(den, "*")
	}
	return out
}

// Magnitude returns v expressed in base units: the product of numerator
// factor magnitudes divided by the denominator magnitude.
func Magnitude(v Value) float64 {
	switch x := v.(type) {
	case Scalar:
		return x.Base()
	case Compound:
		m := 1.0
		for _, f := range x.num {
			m *= Magnitude(f)
		}
		if x.den != nil {
			m /= Magnitude(x.den)
		}
		return m
	}
	return math.NaN()
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
