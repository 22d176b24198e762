// Package tomlq provides path-based access into a TOML-shaped document
// tree. Callers address a location with a dotted query string like
//
//	fruit.blah.[0].physical.color
//
// and read, create, or remove the value there without walking the tree by
// hand. A segment of the form [n] indexes an array; every other segment
// names a table entry. The separator defaults to '.' and can be chosen
// per call.
//
// Read returns nil for a well-typed path whose target simply does not
// exist; structural mismatches (indexing a table, naming into an array,
// descending through a scalar) are errors, discriminated with errors.Is
// against the sentinels in the resolve package.
//
// The document tree has one logical owner. Concurrent Read calls against
// the same unchanging document are safe; anything obtained from ReadMut,
// ReadOrCreate, Set, Insert, Delete or Patch requires exclusive access to
// the document while in use.
package tomlq
