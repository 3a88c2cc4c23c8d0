package collect

import (
	"github.com/standardbeagle/jsem/internal/symbols"
)

// fileDecl is the declaration-level summary of one compilation unit,
// produced by the tree-sitter extraction and cached per content hash.
// Supertype references stay textual here; they are linked against the
// collected types once every file has been seen.
type fileDecl struct {
	path  string
	pkg   string
	types []*typeDecl
}

type typeDecl struct {
	name       string
	flags      symbols.Flags
	superclass string
	interfaces []string
	fields     []memberDecl
	methods    []memberDecl
	nested     []*typeDecl
	loc        symbols.Location
}

type memberDecl struct {
	name  string
	flags symbols.Flags
	loc   symbols.Location
}
