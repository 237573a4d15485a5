// Package units provides value arithmetic for physical quantities.
//
// # Reading Guide
//
// Start with these files to understand the model:
//   - kind.go: Dimension tags and Kind, the concrete unit definition (name, factor, dimension)
//   - scalar.go: Scalar, an amount expressed in one Kind
//   - compound.go: Compound, a product or ratio of other values
//   - arithmetic.go: the Engine implementing +, -, *, / across every pairing of Scalar and Compound
//
// # Values
//
// Value is a closed variant: every Value is either a Scalar or a Compound.
// Values are immutable; arithmetic always returns a new Value. A Compound
// holds a list of numerator factors that are multiplied together and an
// optional denominator. With no denominator it is a plain product such as
// mass*length; with one it is a ratio such as length/time.
//
// # Engines
//
// The package-level Add, Sub, Mul and Div use DefaultEngine, whose
// compatibility check only looks one level deep: a compound can be added to
// another compound only when both numerators and denominators are scalars.
// StrictEngine instead compares dimension signatures recursively and adds
// magnitudes in base units, so nested compounds such as (m/s)/s combine
// correctly. Mul and Div behave the same in both engines.
//
// # Catalogs
//
// Kinds are resolved by name through an immutable Catalog. Builtin returns
// the default metric and imperial units; Metric and Imperial return
// narrower presets. Several catalogs can coexist.
package units
