// Package deps resolves the package names offered when completing
// `yarn add` and `yarn add --dev`.
//
// # Overview
//
// Suggestions come from two sources:
//
//   - a curated [Catalog] of well-known packages compiled into the binary
//   - user [Overrides] that add names per [Flavor] and exclude names globally
//
// # Resolution
//
// [Resolver.Resolve] starts from the catalog set for the requested flavor,
// unions the override additions for that flavor, then subtracts the exclude
// set. Exclusion applies to every name regardless of where it came from, and
// excluding an absent name is a no-op.
//
//	r := deps.Resolver{Catalog: curated.Catalog, Overrides: custom.NewReader(fs, path)}
//	fmt.Println(r.Render(deps.Normal))
//
// # Sets
//
// [Set] is an unordered collection of names. Rendering sorts it so that the
// same inputs always produce the same completion listing.
package deps
