package deps_test

import (
	"fmt"

	"github.com/matzehuels/yarn-completions/pkg/deps"
)

type staticCatalog map[deps.Flavor][]string

func (c staticCatalog) Names(f deps.Flavor) deps.Set { return deps.NewSet(c[f]...) }

type staticOverrides struct{ add, exclude []string }

func (o staticOverrides) Additions(deps.Flavor) deps.Set { return deps.NewSet(o.add...) }
func (o staticOverrides) Exclude() deps.Set              { return deps.NewSet(o.exclude...) }

func ExampleResolver_Render() {
	r := deps.Resolver{
		Catalog: staticCatalog{deps.Normal: {"react", "axios"}},
		Overrides: staticOverrides{
			add:     []string{"vue", "react"},
			exclude: []string{"axios"},
		},
	}

	fmt.Println(r.Render(deps.Normal))
	// Output:
	// react
	// vue
}

func ExampleSet_Difference() {
	s := deps.NewSet("jest", "gulp", "eslint")
	fmt.Println(s.Difference(deps.NewSet("gulp", "grunt")))
	// Output:
	// eslint
	// jest
}
