package units

import "fmt"

// Convert re-expresses source in target, which must measure the same
// dimension. The result amount is source.amount*source.factor/target.factor.
func Convert(source Scalar, target Kind) (Scalar, error) {
	if err := target.Validate(); err != nil {
		return Scalar{}, err
	}
	if source.kind.Dimension != target.Dimension {
		return Scalar{}, fmt.Errorf("%w: cannot convert %s to %s (%s vs %s)",
			ErrDimensionMismatch, source, target.Name, source.kind.Dimension, target.Dimension)
	}
	return NewScalar(source.amount*source.kind.Factor/target.Factor, target)
}
