package units

import (
	"fmt"
	"slices"
)

// additive selects between addition and subtraction.
type additive int

const (
	plus additive = iota
	minus
)

func (op additive) apply(a, b float64) float64 {
	if op == minus {
		return a - b
	}
	return a + b
}

func (op additive) String() string {
	if op == minus {
		return "subtract"
	}
	return "add"
}

// Engine implements arithmetic over Values. The zero Engine is the
// one-level-deep compatibility mode; set Strict for recursive checking.
type Engine struct {
	// Strict compares dimension signatures recursively and adds or
	// subtracts magnitudes in base units. Mul and Div ignore it.
	Strict bool
}

var (
	// DefaultEngine checks compatibility one level deep.
	DefaultEngine = Engine{}
	// StrictEngine checks compatibility recursively.
	StrictEngine = Engine{Strict: true}
)

// Add returns a+b using DefaultEngine.
func Add(a, b Value) (Value, error) { return DefaultEngine.Add(a, b) }

// Sub returns a-b using DefaultEngine.
func Sub(a, b Value) (Value, error) { return DefaultEngine.Sub(a, b) }

// Mul returns a*b.
func Mul(a, b Value) (Value, error) { return DefaultEngine.Mul(a, b) }

// Div returns a/b.
func Div(a, b Value) (Value, error) { return DefaultEngine.Div(a, b) }

// Add returns a+b. Scalar+Scalar requires equal dimensions and is expressed
// in a's kind. A bare Scalar can only be added to a Compound without a
// denominator.
func (e Engine) Add(a, b Value) (Value, error) {
	if e.Strict {
		return e.strict(plus, a, b)
	}
	return e.oneLevel(plus, a, b)
}

// Sub returns a-b, mirroring Add. Subtracting a bare Scalar from a ratio is
// rejected with ErrIncompatibleOperand.
func (e Engine) Sub(a, b Value) (Value, error) {
	if e.Strict {
		return e.strict(minus, a, b)
	}
	return e.oneLevel(minus, a, b)
}

func (e Engine) oneLevel(op additive, a, b Value) (Value, error) {
	if !valid(a) || !valid(b) {
		return nil, typeMismatch(op.String(), a, b)
	}
	switch x := a.(type) {
	case Scalar:
		switch y := b.(type) {
		case Scalar:
			return x.combine(op, y)
		case Compound:
			if op == plus {
				return e.oneLevel(op, y, x)
			}
			if y.den != nil {
				return nil, fmt.Errorf("%w: cannot %s %s and %s: a bare unit does not combine with a ratio",
					ErrIncompatibleOperand, op, x, y)
			}
			return e.oneLevel(op, Compound{num: []Value{x}}, y)
		}
	case Compound:
		switch y := b.(type) {
		case Scalar:
			if x.den != nil {
				return nil, fmt.Errorf("%w: cannot %s %s and %s: a bare unit does not combine with a ratio",
					ErrIncompatibleOperand, op, y, x)
			}
			if len(x.num) != 1 {
				return nil, fmt.Errorf("%w: cannot %s %s and %s: a bare unit does not combine with a product",
					ErrIncompatibleOperand, op, y, x)
			}
			n, err := e.oneLevel(op, x.num[0], y)
			if err != nil {
				return nil, err
			}
			return compound(n, nil), nil
		case Compound:
			if err := checkOneLevel(x, y); err != nil {
				return nil, err
			}
			xn, _ := x.scalarNumerator()
			yn, _ := y.scalarNumerator()
			n, err := xn.combine(op, yn)
			if err != nil {
				return nil, err
			}
			return Compound{num: []Value{n}, den: x.den}, nil
		}
	}
	return nil, typeMismatch(op.String(), a, b)
}

// strict combines a and b by base magnitude and re-expresses the result in
// a's shape.
func (e Engine) strict(op additive, a, b Value) (Value, error) {
	if !valid(a) || !valid(b) {
		return nil, typeMismatch(op.String(), a, b)
	}
	_, aScalar := a.(Scalar)
	_, bScalar := b.(Scalar)
	if (aScalar && hasDenominator(b)) || (bScalar && hasDenominator(a)) {
		return nil, fmt.Errorf("%w: cannot %s %s and %s: a bare unit does not combine with a ratio",
			ErrIncompatibleOperand, op, a, b)
	}
	if err := e.Compatible(a, b); err != nil {
		return nil, err
	}
	return rescale(a, op.apply(Magnitude(a), Magnitude(b)))
}

// rescale returns v with its leading scalar adjusted so that the magnitude
// of the result is target.
func rescale(v Value, target float64) (Value, error) {
	if !isFinite(target) {
		return nil, fmt.Errorf("%w: result magnitude %v is not finite", ErrIncompatibleOperand, target)
	}
	switch x := v.(type) {
	case Scalar:
		return NewScalar(target/x.kind.Factor, x.kind)
	case Compound:
		rest := 1.0
		for _, f := range x.num[1:] {
			rest *= Magnitude(f)
		}
		if x.den != nil {
			rest /= Magnitude(x.den)
		}
		if rest == 0 || !isFinite(rest) {
			return nil, fmt.Errorf("%w: cannot express a magnitude of %v in the shape of %s",
				ErrIncompatibleOperand, target, x)
		}
		lead, err := rescale(x.num[0], target/rest)
		if err != nil {
			return nil, err
		}
		num := slices.Clone(x.num)
		num[0] = lead
		return Compound{num: num, den: x.den}, nil
	}
	return nil, fmt.Errorf("%w: cannot rescale %s", ErrTypeMismatch, describe(v))
}

// Mul returns a*b. Two values without denominators form a product; ratios
// multiply numerators together and denominators together.
func (e Engine) Mul(a, b Value) (Value, error) {
	if !valid(a) || !valid(b) {
		return nil, typeMismatch("multiply", a, b)
	}
	return times(a, b), nil
}

// Div returns a/b. A Scalar divided by anything is the plain ratio a/b;
// ratio by ratio cross-multiplies: (N1/D1)/(N2/D2) = (N1*D2)/(D1*N2).
func (e Engine) Div(a, b Value) (Value, error) {
	if !valid(a) || !valid(b) {
		return nil, typeMismatch("divide", a, b)
	}
	x, ok := a.(Compound)
	if !ok {
		return compound(a, b), nil
	}
	switch y := b.(type) {
	case Scalar:
		if x.den == nil {
			return compound(x.Numerator(), y), nil
		}
		return compound(x.Numerator(), times(x.den, y)), nil
	case Compound:
		num, den := x.Numerator(), y.Numerator()
		if y.den != nil {
			num = times(num, y.den)
		}
		if x.den != nil {
			den = times(x.den, den)
		}
		return compound(num, den), nil
	}
	return nil, typeMismatch("divide", a, b)
}

// times multiplies two valid values. Operand order is preserved.
func times(a, b Value) Value {
	ad, bd := hasDenominator(a), hasDenominator(b)
	switch {
	case !ad && !bd:
		return Compound{num: append(flatten(a), flatten(b)...)}
	case ad && !bd:
		x := a.(Compound)
		return compound(times(x.Numerator(), b), x.den)
	case !ad && bd:
		y := b.(Compound)
		return compound(times(a, y.Numerator()), y.den)
	}
	x, y := a.(Compound), b.(Compound)
	return compound(times(x.Numerator(), y.Numerator()), times(x.den, y.den))
}
