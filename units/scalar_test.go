package units_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/units/units"
)

func TestNewScalar_NegativeAmount_Rejected(t *testing.T) {
	for _, k := range units.Builtin().Kinds() {
		t.Run(k.Name, func(t *testing.T) {
			_, err := k.Of(-1)
			assert.ErrorIs(t, err, units.ErrNegativeAmount)
		})
	}
}

func TestNewScalar_NaN_Rejected(t *testing.T) {
	_, err := units.NewScalar(math.NaN(), units.Meter)
	assert.ErrorIs(t, err, units.ErrNegativeAmount)
}

func TestNewScalar_Infinite_Rejected(t *testing.T) {
	for _, amount := range []float64{math.Inf(1), math.Inf(-1)} {
		_, err := units.NewScalar(amount, units.Meter)
		assert.ErrorIs(t, err, units.ErrNegativeAmount)
	}
	assert.Panics(t, func() { units.Meter.Must(math.Inf(1)) })
}

func TestConvert_Overflow_Rejected(t *testing.T) {
	// GIVEN an amount whose conversion overflows float64
	_, err := units.Kilometer.Must(math.MaxFloat64).To(units.Centimeter)

	// THEN no infinite scalar is produced
	assert.ErrorIs(t, err, units.ErrNegativeAmount)
}

func TestNewScalar_InvalidKind_Rejected(t *testing.T) {
	_, err := units.NewScalar(1, units.Kind{Name: "Broken", Dimension: units.Length})
	assert.ErrorIs(t, err, units.ErrInvalidKind)
}

func TestNewScalar_ZeroAmount_Allowed(t *testing.T) {
	s, err := units.Meter.Of(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, s.Amount())
}

func TestScalar_Accessors(t *testing.T) {
	s := units.Kilometer.Must(2)
	assert.Equal(t, 2.0, s.Amount())
	assert.Equal(t, units.Kilometer, s.Kind())
	assert.Equal(t, units.Length, s.Dimension())
	assert.Equal(t, 2000.0, s.Base())
}

func TestScalar_Add_MeterPlusCentimeter(t *testing.T) {
	// GIVEN one meter and one hundred centimeters
	got, err := units.Add(units.Meter.Must(1), units.Centimeter.Must(100))
	require.NoError(t, err)

	// THEN the sum is two meters
	eq, err := units.Equal(units.Meter.Must(2), got)
	require.NoError(t, err)
	assert.True(t, eq, "got %s", got)
}

func TestScalar_Add_ExpressedInLeftKind(t *testing.T) {
	got, err := units.Centimeter.Must(100).Add(units.Meter.Must(1))
	require.NoError(t, err)
	assert.Equal(t, units.Centimeter, got.Kind())
	assert.InDelta(t, 200.0, got.Amount(), 1e-9)
}

func TestScalar_Sub(t *testing.T) {
	got, err := units.Meter.Must(2).Sub(units.Centimeter.Must(50))
	require.NoError(t, err)
	assert.InDelta(t, 1.5, got.Amount(), 1e-12)
}

func TestScalar_Sub_NegativeResult_Rejected(t *testing.T) {
	_, err := units.Meter.Must(1).Sub(units.Kilometer.Must(1))
	assert.ErrorIs(t, err, units.ErrNegativeAmount)
}

func TestScalar_Add_DimensionMismatch(t *testing.T) {
	_, err := units.Add(units.Meter.Must(1), units.Second.Must(1))
	assert.ErrorIs(t, err, units.ErrDimensionMismatch)

	_, err = units.Sub(units.Kilogram.Must(1), units.Minute.Must(1))
	assert.ErrorIs(t, err, units.ErrDimensionMismatch)
}

func TestScalar_Equal(t *testing.T) {
	metre := units.Kind{Name: "Metre", Factor: 1, Dimension: units.Length}

	tests := []struct {
		name string
		a, b units.Scalar
		want bool
	}{
		{"same kind and amount", units.Meter.Must(3), units.Meter.Must(3), true},
		{"different amount", units.Meter.Must(3), units.Meter.Must(4), false},
		{"same quantity in other kind", units.Meter.Must(1), units.Centimeter.Must(100), false},
		{"other name, same factor and dimension", units.Meter.Must(3), metre.Must(3), true},
		{"same factor, other dimension", units.Meter.Must(1), units.Second.Must(1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
		})
	}
}

func TestScalar_String(t *testing.T) {
	tests := []struct {
		s    units.Scalar
		want string
	}{
		{units.Meter.Must(5), "5 Meter"},
		{units.Meter.Must(2.5), "2.5 Meter"},
		{units.Second.Must(1.0 / 3), "0.333333 Second"},
		{units.Kilometer.Must(1e6), "1e+06 Kilometer"},
		{units.Gram.Must(0), "0 Gram"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.s.String())
		})
	}
}

func TestKind_Must_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { units.Meter.Must(-1) })
}

func TestKind_Validate(t *testing.T) {
	tests := []struct {
		name string
		kind units.Kind
	}{
		{"empty name", units.Kind{Factor: 1, Dimension: units.Length}},
		{"empty dimension", units.Kind{Name: "X", Factor: 1}},
		{"zero factor", units.Kind{Name: "X", Dimension: units.Length}},
		{"negative factor", units.Kind{Name: "X", Factor: -2, Dimension: units.Length}},
		{"infinite factor", units.Kind{Name: "X", Factor: math.Inf(1), Dimension: units.Length}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.kind.Validate(), units.ErrInvalidKind)
		})
	}
	assert.NoError(t, units.Foot.Validate())
	assert.True(t, units.Foot.Compatible(units.Kilometer))
	assert.False(t, units.Foot.Compatible(units.Pound))
}
