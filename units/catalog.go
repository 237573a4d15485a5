package units

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"
)

// Catalog is an immutable registry of kinds, keyed by name. It is safe for
// concurrent use since nothing mutates it after NewCatalog returns.
type Catalog struct {
	byName map[string]Kind
	kinds  []Kind // sorted by dimension, then factor, then name
}

// NewCatalog validates kinds and builds a catalog. Names must be unique.
func NewCatalog(kinds ...Kind) (*Catalog, error) {
	c := &Catalog{byName: make(map[string]Kind, len(kinds))}
	for _, k := range kinds {
		if err := k.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byName[k.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate unit %q", ErrInvalidKind, k.Name)
		}
		c.byName[k.Name] = k
		c.kinds = append(c.kinds, k)
	}
	slices.SortFunc(c.kinds, func(a, b Kind) int {
		return cmp.Or(
			cmp.Compare(a.Dimension, b.Dimension),
			cmp.Compare(a.Factor, b.Factor),
			cmp.Compare(a.Name, b.Name),
		)
	})
	logrus.Debugf("built unit catalog: %d units across %d dimensions", len(c.kinds), len(c.Dimensions()))
	return c, nil
}

func mustCatalog(kinds ...Kind) *Catalog {
	c, err := NewCatalog(kinds...)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of kinds in c.
func (c *Catalog) Len() int { return len(c.kinds) }

// Lookup returns the kind registered under name.
func (c *Catalog) Lookup(name string) (Kind, bool) {
	k, ok := c.byName[name]
	return k, ok
}

// Kind is like Lookup but returns ErrUnknownKind listing the available names.
func (c *Catalog) Kind(name string) (Kind, error) {
	if k, ok := c.byName[name]; ok {
		return k, nil
	}
	available := make([]string, 0, len(c.kinds))
	for _, k := range c.kinds {
		available = append(available, k.Name)
	}
	slices.Sort(available)
	return Kind{}, fmt.Errorf("%w: %q (available: %v)", ErrUnknownKind, name, available)
}

// Kinds returns every kind, ordered by dimension then conversion factor.
func (c *Catalog) Kinds() []Kind {
	return slices.Clone(c.kinds)
}

// Dimensions returns the distinct dimensions in c, sorted.
func (c *Catalog) Dimensions() []Dimension {
	var dims []Dimension
	for _, k := range c.kinds {
		if len(dims) == 0 || dims[len(dims)-1] != k.Dimension {
			dims = append(dims, k.Dimension)
		}
	}
	return dims
}

// Base returns the kind with factor 1 for dim, if c has one.
func (c *Catalog) Base(dim Dimension) (Kind, bool) {
	for _, k := range c.kinds {
		if k.Dimension == dim && k.Factor == 1 {
			return k, true
		}
	}
	return Kind{}, false
}

// New builds a scalar of the named kind.
func (c *Catalog) New(amount float64, name string) (Scalar, error) {
	k, err := c.Kind(name)
	if err != nil {
		return Scalar{}, err
	}
	return NewScalar(amount, k)
}

// Convert re-expresses s in the kind registered under target.
func (c *Catalog) Convert(s Scalar, target string) (Scalar, error) {
	k, err := c.Kind(target)
	if err != nil {
		return Scalar{}, err
	}
	return Convert(s, k)
}
