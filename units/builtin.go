package units

import "sync"

const (
	Length Dimension = "length"
	Mass   Dimension = "mass"
	Time   Dimension = "time"
)

// Built-in kinds. Base units are Meter, Kilogram and Second.
var (
	Meter      = Kind{Name: "Meter", Factor: 1, Dimension: Length}
	Kilometer  = Kind{Name: "Kilometer", Factor: 1000, Dimension: Length}
	Centimeter = Kind{Name: "Centimeter", Factor: 0.01, Dimension: Length}
	Inch       = Kind{Name: "Inch", Factor: 0.0254, Dimension: Length}
	Foot       = Kind{Name: "Foot", Factor: 0.3048, Dimension: Length}

	Kilogram = Kind{Name: "Kilogram", Factor: 1, Dimension: Mass}
	Gram     = Kind{Name: "Gram", Factor: 0.001, Dimension: Mass}
	Pound    = Kind{Name: "Pound", Factor: 0.45359237, Dimension: Mass}

	Second = Kind{Name: "Second", Factor: 1, Dimension: Time}
	Minute = Kind{Name: "Minute", Factor: 60, Dimension: Time}
)

var (
	builtin = sync.OnceValue(func() *Catalog {
		return mustCatalog(Meter, Kilometer, Centimeter, Inch, Foot, Kilogram, Gram, Pound, Second, Minute)
	})
	metric = sync.OnceValue(func() *Catalog {
		return mustCatalog(Meter, Kilometer, Centimeter, Kilogram, Gram, Second, Minute)
	})
	imperial = sync.OnceValue(func() *Catalog {
		return mustCatalog(Inch, Foot, Pound, Second, Minute)
	})
)

// Builtin returns the catalog of every built-in kind.
func Builtin() *Catalog { return builtin() }

// Metric returns the built-in metric kinds plus Second and Minute.
func Metric() *Catalog { return metric() }

// Imperial returns Inch, Foot and Pound plus Second and Minute.
func Imperial() *Catalog { return imperial() }
