package resolve

import (
	"fmt"

	"github.com/standardbeagle/jsem/internal/debug"
	"github.com/standardbeagle/jsem/internal/symbols"
)

// TypeAccessible reports whether type c may be referenced from env
// under Java's access rules.
func (r *Resolver) TypeAccessible(env Env, c *symbols.Symbol) bool {
	switch c.Flags.Access() {
	case symbols.FlagPrivate:
		// Visible only inside the same top-level compilation unit.
		return env.EnclosingClass().OutermostClass() == c.Owner.OutermostClass()
	case 0:
		return env.Package() == c.Package()
	case symbols.FlagPublic:
		return true
	case symbols.FlagProtected:
		return env.Package() == c.Package() || r.isInnerSubClass(env.EnclosingClass(), c.Owner)
	default:
		panic(fmt.Sprintf("resolve: illegal access flags %q on type %s", c.Flags, c.Name))
	}
}

// MemberAccessible reports whether a member symbol (field, method or
// nested type) may be referenced through site from env. Beyond the type
// rule this requires the member to be inherited into site and not
// shadowed there.
func (r *Resolver) MemberAccessible(env Env, site, member *symbols.Symbol) bool {
	switch member.Flags.Access() {
	case symbols.FlagPrivate:
		// No shadowing check: private members cannot be overridden.
		return env.EnclosingClass().OutermostClass() == member.Owner.OutermostClass() &&
			r.IsInheritedIn(member, site)
	case 0:
		return env.Package() == member.Package() &&
			r.TypeAccessible(env, site) &&
			r.IsInheritedIn(member, site) &&
			notOverriddenIn(site, member)
	case symbols.FlagPublic:
		return r.TypeAccessible(env, site) &&
			notOverriddenIn(site, member)
	case symbols.FlagProtected:
		return (env.Package() == member.Package() || protectedAccessible(member, env.EnclosingClass(), site)) &&
			r.TypeAccessible(env, site) &&
			notOverriddenIn(site, member)
	default:
		panic(fmt.Sprintf("resolve: illegal access flags %q on member %s", member.Flags, member.Name))
	}
}

// IsSubClass reports whether c is base, extends base transitively, or,
// for interface bases, implements base directly or through any
// supertype.
func (r *Resolver) IsSubClass(c, base *symbols.Symbol) bool {
	return r.isSubClass(c, base, 0)
}

func (r *Resolver) isSubClass(c, base *symbols.Symbol, depth int) bool {
	if c == nil {
		// Reached the top of the hierarchy.
		return false
	}
	if depth > r.maxDepth {
		debug.Printf("resolve: hierarchy depth cap %d hit at %s, treating as unrelated\n", r.maxDepth, c.Name)
		return false
	}
	if c == base {
		return true
	}
	if base.Flags&symbols.FlagInterface != 0 {
		for _, iface := range c.Interfaces {
			if r.isSubClass(iface, base, depth+1) {
				return true
			}
		}
	}
	return r.isSubClass(c.Superclass, base, depth+1)
}

// isInnerSubClass reports whether c, or a class enclosing c, is a
// subclass of base. This is the protected-access exception for inner
// classes.
func (r *Resolver) isInnerSubClass(c, base *symbols.Symbol) bool {
	depth := 0
	for c != nil && !r.IsSubClass(c, base) {
		if depth > r.maxDepth {
			debug.Printf("resolve: ownership depth cap %d hit at %s, treating as unrelated\n", r.maxDepth, c.Name)
			return false
		}
		depth++
		c = c.Owner.EnclosingClass()
	}
	return c != nil
}

// IsInheritedIn reports whether member is inherited into clazz.
// Package-private members stop being inherited as soon as the
// superclass chain from clazz up to the declaring class crosses a
// package boundary.
func (r *Resolver) IsInheritedIn(member, clazz *symbols.Symbol) bool {
	switch member.Flags.Access() {
	case symbols.FlagPublic:
		return true
	case symbols.FlagPrivate:
		return member.Owner == clazz
	case symbols.FlagProtected:
		// Known gap: protected members are treated as inherited
		// everywhere until the full model lands.
		return true
	case 0:
		pkg := member.Package()
		depth := 0
		for sup := clazz; sup != nil && sup != member.Owner; sup = sup.Superclass {
			if sup.Package() != pkg {
				return false
			}
			depth++
			if depth > r.maxDepth {
				debug.Printf("resolve: hierarchy depth cap %d hit checking inheritance of %s\n", r.maxDepth, member.Name)
				return false
			}
		}
		return true
	default:
		panic(fmt.Sprintf("resolve: illegal access flags %q on member %s", member.Flags, member.Name))
	}
}

// notOverriddenIn is a known gap: it should report whether site or an
// intermediate superclass declares a same-signature member hiding sym,
// which requires signature comparison this model does not carry yet.
// Every member is treated as visible.
func notOverriddenIn(site, sym *symbols.Symbol) bool {
	return true
}

// protectedAccessible is a known gap: the protected-access rule for
// references through a subclass site is not modeled yet, so it always
// allows the access.
func protectedAccessible(sym, c, site *symbols.Symbol) bool {
	return true
}
