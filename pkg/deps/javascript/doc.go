// Package javascript reads the parts of a JavaScript project that completion
// needs: the package.json manifest and the installed node_modules tree.
//
// # Manifest
//
// [ReadManifest] decodes <dir>/package.json. Only the keys of dependencies,
// devDependencies and scripts are used; version specs are ignored.
//
//	m, err := javascript.ReadManifest(afero.NewOsFs(), ".")
//	if err != nil {
//	    return ""
//	}
//	fmt.Print(m.RemoveCandidates())
//
// # Installed modules
//
// [ScanNodeModules] lists what is physically present under
// <dir>/node_modules. Scoped packages live one level deeper on disk
// (node_modules/@scope/name) and are reported as "@scope/name".
//
// Both functions report failures with codes from package errors so callers
// can decide whether to degrade to empty output.
package javascript
