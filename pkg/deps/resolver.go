package deps

// Flavor selects which dependency list a resolution targets.
type Flavor int

const (
	Normal Flavor = iota // `yarn add`
	Dev                  // `yarn add --dev`
)

// String returns the flavor name used in logs.
func (f Flavor) String() string {
	switch f {
	case Normal:
		return "dependencies"
	case Dev:
		return "dev_dependencies"
	default:
		return "unknown"
	}
}

// Catalog provides the built-in suggestions for a flavor.
type Catalog interface {
	// Names returns the curated names. Callers may modify the returned set.
	Names(f Flavor) Set
}

// Overrides provides user customisation of the catalog.
type Overrides interface {
	// Additions returns names to add for the flavor.
	Additions(f Flavor) Set
	// Exclude returns names removed from every flavor.
	Exclude() Set
}

// Resolver merges a Catalog with Overrides.
type Resolver struct {
	Catalog   Catalog
	Overrides Overrides // nil means no customisation
}

// Resolve returns (catalog ∪ additions) − exclude for the flavor.
func (r Resolver) Resolve(f Flavor) Set {
	var names Set
	if r.Catalog != nil {
		names = r.Catalog.Names(f).Clone()
	} else {
		names = NewSet()
	}
	if r.Overrides == nil {
		return names
	}
	names.Union(r.Overrides.Additions(f))
	return names.Difference(r.Overrides.Exclude())
}

// Render resolves f and joins the result one name per line.
func (r Resolver) Render(f Flavor) string {
	return r.Resolve(f).String()
}
