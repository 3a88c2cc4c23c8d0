package resolve

import (
	"github.com/standardbeagle/jsem/internal/symbols"
)

// Status says how a lookup ended. Values are ordered by specificity so
// the resolver can keep the most informative failure discovered across
// multiple search branches: an access error found deep in a superclass
// beats a plain not-found from a later branch.
type Status int

const (
	StatusNotFound Status = iota
	StatusAmbiguous
	StatusInaccessible
	StatusFound
)

var statusStrings = map[Status]string{
	StatusNotFound:     "not found",
	StatusAmbiguous:    "ambiguous",
	StatusInaccessible: "inaccessible",
	StatusFound:        "found",
}

// String returns a string representation of the status
func (s Status) String() string {
	if name, ok := statusStrings[s]; ok {
		return name
	}
	return "unknown"
}

// Outcome is the result of a lookup. Resolution failure is a value,
// never an error: callers branch on Status. Sym carries the resolved
// symbol for StatusFound and the rejected candidate for
// StatusInaccessible; it is nil otherwise.
type Outcome struct {
	Status Status
	Sym    *symbols.Symbol
}

// Found wraps a successfully resolved symbol.
func Found(sym *symbols.Symbol) Outcome {
	return Outcome{Status: StatusFound, Sym: sym}
}

// NotFound is the least specific failure outcome.
func NotFound() Outcome {
	return Outcome{Status: StatusNotFound}
}

// Ambiguous reports two or more equally valid candidates.
func Ambiguous() Outcome {
	return Outcome{Status: StatusAmbiguous}
}

// Inaccessible reports a real declaration whose access rules forbid the
// reference, wrapping the rejected symbol for diagnostics.
func Inaccessible(sym *symbols.Symbol) Outcome {
	return Outcome{Status: StatusInaccessible, Sym: sym}
}

// Ok reports whether the lookup produced a real declaration.
func (o Outcome) Ok() bool {
	return o.Status == StatusFound
}

// betterThan orders outcomes for best-so-far tracking. Strict, so the
// first outcome at a given specificity wins.
func (o Outcome) betterThan(other Outcome) bool {
	return o.Status > other.Status
}
