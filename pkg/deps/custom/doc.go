// Package custom reads the user's override document, which tailors the
// curated suggestion lists.
//
// # Document
//
// The default location is ~/.yarn-autocompletions.yml:
//
//	dependencies:
//	  - vue
//	dev_dependencies:
//	  - "@babel/core"
//	exclude:
//	  - axios
//	  - gulp
//
// Every field is optional. The format follows the file extension: YAML for
// .yml, .yaml and anything unrecognised, TOML for .toml, JSON for .json.
//
// # Leniency
//
// [Reader] never returns an error. Each accessor reads and decodes the file
// on its own and yields an empty set when the file is missing, unreadable or
// malformed, or when its field is absent or has the wrong shape. A broken
// exclude list therefore does not suppress valid additions, and a broken
// document never blocks completion output.
//
// [Load] is the strict counterpart used for diagnostics.
package custom
