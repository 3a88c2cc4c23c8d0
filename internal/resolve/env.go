package resolve

import (
	"github.com/standardbeagle/jsem/internal/symbols"
)

// EnvID addresses an environment record inside an Arena.
type EnvID int32

// NoEnv marks the absence of an enclosing environment.
const NoEnv EnvID = -1

// envRecord is one node of the environment chain. next links the
// immediately enclosing lexical environment (block nesting); outer
// links the environment enclosing the current class.
type envRecord struct {
	next  EnvID
	outer EnvID
	pkg   *symbols.Symbol
	class *symbols.Symbol
	scope *symbols.Scope
}

// Arena owns every environment record created for one resolution
// session. Envs are cheap index handles into it, so duplicating an
// environment never aliases mutable state between chains.
type Arena struct {
	records []envRecord
}

// NewArena creates an empty environment arena.
func NewArena() *Arena {
	return &Arena{}
}

func (a *Arena) alloc(r envRecord) Env {
	a.records = append(a.records, r)
	return Env{arena: a, id: EnvID(len(a.records) - 1)}
}

// Push creates the top-level environment of a compilation unit in the
// given package. Its outer is NoEnv, which terminates lexical walks.
func (a *Arena) Push(pkg *symbols.Symbol, scope *symbols.Scope) Env {
	return a.alloc(envRecord{next: NoEnv, outer: NoEnv, pkg: pkg, scope: scope})
}

// Len returns the number of allocated environment records.
func (a *Arena) Len() int {
	return len(a.records)
}

// Env is a handle on one point of the environment chain. The zero Env
// is invalid.
type Env struct {
	arena *Arena
	id    EnvID
}

// Valid reports whether the handle addresses a live record.
func (e Env) Valid() bool {
	return e.arena != nil && e.id >= 0 && int(e.id) < len(e.arena.records)
}

func (e Env) record() *envRecord {
	return &e.arena.records[e.id]
}

// Next returns the immediately enclosing lexical environment. The
// result may be invalid at the head of a chain.
func (e Env) Next() Env {
	return Env{arena: e.arena, id: e.record().next}
}

// Outer returns the environment enclosing the current class. The result
// may be invalid at the top level.
func (e Env) Outer() Env {
	return Env{arena: e.arena, id: e.record().outer}
}

// HasOuter reports whether an enclosing-class environment exists; false
// means e is a top-level compilation-unit environment.
func (e Env) HasOuter() bool {
	return e.record().outer != NoEnv
}

// Package returns the package of the compilation unit.
func (e Env) Package() *symbols.Symbol {
	return e.record().pkg
}

// EnclosingClass returns the class whose body encloses this point, or
// nil at the top level.
func (e Env) EnclosingClass() *symbols.Symbol {
	return e.record().class
}

// Scope returns the declarations local to this environment.
func (e Env) Scope() *symbols.Scope {
	return e.record().scope
}

// Dup allocates a copy sharing outer, package, class and scope, with
// next pointing back at e. Use it when entering a nested block that
// does not change class context.
func (e Env) Dup() Env {
	r := *e.record()
	r.next = e.id
	return e.arena.alloc(r)
}

// EnterScope is Dup with the local scope replaced, for method bodies
// and blocks that declare their own names.
func (e Env) EnterScope(scope *symbols.Scope) Env {
	r := *e.record()
	r.next = e.id
	r.scope = scope
	return e.arena.alloc(r)
}

// EnterClass allocates the environment of a class body: outer becomes
// e, and the local scope becomes the class member scope.
func (e Env) EnterClass(c *symbols.Symbol) Env {
	return e.arena.alloc(envRecord{
		next:  e.id,
		outer: e.id,
		pkg:   e.record().pkg,
		class: c,
		scope: c.Members,
	})
}
