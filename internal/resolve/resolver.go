// Package resolve implements Java name resolution over the collected
// symbol model: given an identifier and the environment chain of the
// point that mentions it, it finds the declaration the identifier
// refers to, honoring scoping, inheritance and access rules.
//
// Naming conventions follow the problem domain: env is the environment
// where the identifier was mentioned, site is the type through which a
// member is referenced, name is the identifier's spelling.
package resolve

import (
	"github.com/standardbeagle/jsem/internal/debug"
	"github.com/standardbeagle/jsem/internal/symbols"
)

// Lookup selects which symbol kinds an identifier lookup may produce.
type Lookup uint8

const (
	LookupVariables Lookup = 1 << iota
	LookupTypes
	LookupPackages
)

// DefaultMaxDepth bounds hierarchy and lexical walks. Valid Java
// declarations stay in the tens; the cap turns a cyclic or pathological
// model into a not-found result instead of unbounded recursion.
const DefaultMaxDepth = 128

// Resolver performs lookups against an immutable symbol model. It keeps
// no per-call state, so one Resolver may serve concurrent lookups once
// the collection pass has completed.
type Resolver struct {
	maxDepth int
}

// New creates a resolver. maxDepth bounds hierarchy recursion; pass 0
// for the default.
func New(maxDepth int) *Resolver {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Resolver{maxDepth: maxDepth}
}

// findField searches type typ and its supertypes for a field named
// name. Only the first matching declaration in typ itself counts;
// inherited members are consulted only when typ declares none.
func (r *Resolver) findField(env Env, site *symbols.Symbol, name string, typ *symbols.Symbol, depth int) Outcome {
	if typ == nil {
		return NotFound()
	}
	if depth > r.maxDepth {
		debug.Printf("resolve: hierarchy depth cap %d hit searching field %s\n", r.maxDepth, name)
		return NotFound()
	}
	for _, sym := range typ.Members.Lookup(name) {
		if sym.Kind == symbols.KindVariable {
			if r.MemberAccessible(env, site, sym) {
				return Found(sym)
			}
			return Inaccessible(sym)
		}
	}
	best := NotFound()
	if typ.Superclass != nil {
		if out := r.findField(env, site, name, typ.Superclass, depth+1); out.betterThan(best) {
			best = out
		}
	}
	for _, iface := range typ.Interfaces {
		if out := r.findField(env, site, name, iface, depth+1); out.betterThan(best) {
			best = out
		}
	}
	return best
}

// findMemberType is findField's shape applied to nested types.
func (r *Resolver) findMemberType(env Env, site *symbols.Symbol, name string, typ *symbols.Symbol, depth int) Outcome {
	if typ == nil {
		return NotFound()
	}
	if depth > r.maxDepth {
		debug.Printf("resolve: hierarchy depth cap %d hit searching member type %s\n", r.maxDepth, name)
		return NotFound()
	}
	for _, sym := range typ.Members.Lookup(name) {
		if sym.Kind == symbols.KindType {
			if r.MemberAccessible(env, site, sym) {
				return Found(sym)
			}
			return Inaccessible(sym)
		}
	}
	best := NotFound()
	if typ.Superclass != nil {
		if out := r.findMemberType(env, site, name, typ.Superclass, depth+1); out.betterThan(best) {
			best = out
		}
	}
	for _, iface := range typ.Interfaces {
		if out := r.findMemberType(env, site, name, iface, depth+1); out.betterThan(best) {
			best = out
		}
	}
	return best
}

// findVar resolves a variable or field reference by walking the
// environment chain outward: local scope first, then the enclosing
// class's fields, then the next enclosing class.
func (r *Resolver) findVar(env Env, name string) Outcome {
	best := NotFound()
	depth := 0
	for e := env; e.HasOuter(); e = e.Outer() {
		if depth > r.maxDepth {
			debug.Printf("resolve: lexical depth cap %d hit searching variable %s\n", r.maxDepth, name)
			break
		}
		depth++

		var sym *symbols.Symbol
		for _, s := range e.Scope().Lookup(name) {
			if s.Kind == symbols.KindVariable {
				sym = s
			}
		}
		var out Outcome
		if sym != nil {
			// Local declarations need no accessibility check.
			out = Found(sym)
		} else {
			out = r.findField(e, e.EnclosingClass(), name, e.EnclosingClass(), 0)
		}
		if out.Ok() {
			return out
		}
		if out.betterThan(best) {
			best = out
		}
	}

	// Known gap: import-based resolution is not implemented.

	return best
}

// findType resolves a type reference by the same outward walk, falling
// back to the compilation unit's package members at the end.
func (r *Resolver) findType(env Env, name string) Outcome {
	best := NotFound()
	depth := 0
	for e := env; e.HasOuter(); e = e.Outer() {
		if depth > r.maxDepth {
			debug.Printf("resolve: lexical depth cap %d hit searching type %s\n", r.maxDepth, name)
			break
		}
		depth++

		for _, sym := range e.Scope().Lookup(name) {
			if sym.Kind == symbols.KindType {
				// A locally declared type needs no accessibility check.
				return Found(sym)
			}
		}
		out := r.findMemberType(e, e.EnclosingClass(), name, e.EnclosingClass(), 0)
		if out.Ok() {
			return out
		}
		if out.betterThan(best) {
			best = out
		}
	}

	// Known gap: import-based resolution is not implemented.

	if pkg := env.Package(); pkg != nil {
		for _, sym := range pkg.Members.Lookup(name) {
			if out := Found(sym); out.betterThan(best) {
				best = out
			}
		}
	}

	return best
}

// FindIdent resolves a free-standing identifier, trying each requested
// kind in order: variables, then types, then packages.
func (r *Resolver) FindIdent(env Env, name string, kinds Lookup) Outcome {
	best := NotFound()
	if kinds&LookupVariables != 0 {
		out := r.findVar(env, name)
		if out.Ok() {
			return out
		}
		if out.betterThan(best) {
			best = out
		}
	}
	if kinds&LookupTypes != 0 {
		out := r.findType(env, name)
		if out.Ok() {
			return out
		}
		if out.betterThan(best) {
			best = out
		}
	}
	// Known gap: LookupPackages requests fall through to the best
	// failure; package identifiers are not resolved yet.
	return best
}

// FindIdentInType resolves an identifier referenced through a type, as
// in expr.member, restricted to site's member set.
func (r *Resolver) FindIdentInType(env Env, site *symbols.Symbol, name string, kinds Lookup) Outcome {
	best := NotFound()
	if kinds&LookupVariables != 0 {
		out := r.findField(env, site, name, site, 0)
		if out.Ok() {
			return out
		}
		if out.betterThan(best) {
			best = out
		}
	}
	if kinds&LookupTypes != 0 {
		out := r.findMemberType(env, site, name, site, 0)
		if out.Ok() {
			return out
		}
		if out.betterThan(best) {
			best = out
		}
	}
	return best
}

// FindIdentInPackage resolves an identifier referenced through a
// package name. Known gap: not implemented, always not-found.
func (r *Resolver) FindIdentInPackage(env Env, site *symbols.Symbol, name string, kinds Lookup) Outcome {
	return NotFound()
}

// FindMethod resolves a method reference against site's exact enclosing
// class. Known limitation: argument types are not considered, so
// overloads cannot be disambiguated; two accessible candidates yield an
// ambiguous outcome, and supertypes are not searched.
func (r *Resolver) FindMethod(env Env, site *symbols.Symbol, name string) Outcome {
	best := NotFound()
	encl := site.EnclosingClass()
	if encl == nil {
		return best
	}
	for _, sym := range encl.Members.Lookup(name) {
		if sym.Kind == symbols.KindMethod && r.MemberAccessible(env, site, sym) {
			if best.Ok() {
				return Ambiguous()
			}
			best = Found(sym)
		}
	}
	return best
}
