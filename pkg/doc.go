// Package pkg provides the libraries behind yarn-completions.
//
// # Overview
//
//  1. [deps] - name sets, flavors and the suggestion resolver
//  2. [deps/curated] - the built-in list of well-known packages
//  3. [deps/custom] - the user's override document
//  4. [deps/javascript] - package.json and node_modules readers
//  5. [errors] - error codes shared by the readers
//
// # Data flow
//
//	curated catalog ─┐
//	                 ├─ deps.Resolver ─→ `add` / `add-dev`
//	override file ───┘
//
//	package.json ───→ javascript.ReadManifest ─→ `scripts` / `remove`
//	node_modules ───→ javascript.ScanNodeModules ─→ `why`
//
// Every input is read fresh on each invocation. Nothing is cached.
package pkg
