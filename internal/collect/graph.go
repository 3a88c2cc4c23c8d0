package collect

import (
	"sort"
	"strings"

	"github.com/standardbeagle/jsem/internal/debug"
	"github.com/standardbeagle/jsem/internal/symbols"
)

// Graph is the collected symbol model of a source tree: package symbols
// by name, each holding its member types, which in turn hold fields,
// methods and nested types. Once built it is immutable and safe for
// concurrent resolution.
type Graph struct {
	packages map[string]*symbols.Symbol
}

// pendingLink holds a type whose textual supertype references still
// need resolving against the finished package map.
type pendingLink struct {
	sym  *symbols.Symbol
	decl *typeDecl
}

// buildGraph turns per-file declarations into a linked symbol graph.
func buildGraph(files []*fileDecl) *Graph {
	g := &Graph{packages: make(map[string]*symbols.Symbol)}
	var pending []pendingLink
	for _, f := range files {
		pkg := g.ensurePackage(f.pkg)
		for _, td := range f.types {
			pending = declareType(pkg, td, pending)
		}
	}
	g.linkSupertypes(pending)
	return g
}

func declareType(owner *symbols.Symbol, td *typeDecl, pending []pendingLink) []pendingLink {
	t := symbols.NewType(td.name, td.flags, owner)
	t.Location = td.loc
	owner.Members.Declare(t)
	for _, fd := range td.fields {
		f := symbols.NewVariable(fd.name, fd.flags, t)
		f.Location = fd.loc
		t.Members.Declare(f)
	}
	for _, md := range td.methods {
		m := symbols.NewMethod(md.name, md.flags, t)
		m.Location = md.loc
		t.Members.Declare(m)
	}
	pending = append(pending, pendingLink{sym: t, decl: td})
	for _, nested := range td.nested {
		pending = declareType(t, nested, pending)
	}
	return pending
}

// linkSupertypes resolves extends/implements names best-effort: a name
// that matches no collected type stays nil, which resolution treats as
// the top of the hierarchy.
func (g *Graph) linkSupertypes(pending []pendingLink) {
	for _, p := range pending {
		if p.decl.superclass != "" {
			if sup := g.resolveTypeName(p.sym, p.decl.superclass); sup != nil && sup != p.sym {
				p.sym.Superclass = sup
			} else if sup == nil {
				debug.Printf("collect: unresolved superclass %s of %s\n", p.decl.superclass, p.sym.QualifiedName())
			}
		}
		for _, name := range p.decl.interfaces {
			if iface := g.resolveTypeName(p.sym, name); iface != nil && iface != p.sym {
				p.sym.Interfaces = append(p.sym.Interfaces, iface)
			} else if iface == nil {
				debug.Printf("collect: unresolved interface %s of %s\n", name, p.sym.QualifiedName())
			}
		}
	}
}

// resolveTypeName finds the type a supertype reference denotes, looking
// at enclosing types, then the declaring package, then every collected
// package in name order.
func (g *Graph) resolveTypeName(from *symbols.Symbol, name string) *symbols.Symbol {
	if strings.Contains(name, ".") {
		if pkg := from.Package(); pkg != nil && pkg.Name != "" {
			if t := g.LookupType(pkg.Name + "." + name); t != nil {
				return t
			}
		}
		return g.LookupType(name)
	}

	// Sibling nested types and the enclosing types themselves.
	for encl := from.EnclosingClass(); encl != nil; encl = encl.Owner.EnclosingClass() {
		if encl.Name == name && encl != from {
			return encl
		}
		if t := lookupMemberType(encl, name); t != nil && t != from {
			return t
		}
	}

	if pkg := from.Package(); pkg != nil {
		if t := lookupMemberType(pkg, name); t != nil && t != from {
			return t
		}
	}

	for _, pkgName := range g.packageNames() {
		if t := lookupMemberType(g.packages[pkgName], name); t != nil && t != from {
			return t
		}
	}
	return nil
}

func lookupMemberType(owner *symbols.Symbol, name string) *symbols.Symbol {
	for _, s := range owner.Members.Lookup(name) {
		if s.Kind == symbols.KindType {
			return s
		}
	}
	return nil
}

func (g *Graph) ensurePackage(name string) *symbols.Symbol {
	if pkg, ok := g.packages[name]; ok {
		return pkg
	}
	pkg := symbols.NewPackage(name)
	g.packages[name] = pkg
	return pkg
}

// Package returns the package symbol with the given dotted name, or nil.
// The default package is the empty name.
func (g *Graph) Package(name string) *symbols.Symbol {
	return g.packages[name]
}

func (g *Graph) packageNames() []string {
	names := make([]string, 0, len(g.packages))
	for name := range g.packages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Packages returns every collected package in name order.
func (g *Graph) Packages() []*symbols.Symbol {
	out := make([]*symbols.Symbol, 0, len(g.packages))
	for _, name := range g.packageNames() {
		out = append(out, g.packages[name])
	}
	return out
}

// LookupType resolves a qualified type name like p.q.Outer.Inner by
// finding the longest package prefix and walking member scopes for the
// rest. Returns nil when no collected type matches.
func (g *Graph) LookupType(qualified string) *symbols.Symbol {
	if qualified == "" {
		return nil
	}
	parts := strings.Split(qualified, ".")
	for i := len(parts) - 1; i >= 0; i-- {
		pkgName := strings.Join(parts[:i], ".")
		pkg, ok := g.packages[pkgName]
		if !ok {
			continue
		}
		owner := pkg
		var t *symbols.Symbol
		for _, part := range parts[i:] {
			t = lookupMemberType(owner, part)
			if t == nil {
				break
			}
			owner = t
		}
		if t != nil {
			return t
		}
	}
	return nil
}

// Names returns every declared name in the graph, for near-miss
// suggestions. Sorted and de-duplicated.
func (g *Graph) Names() []string {
	seen := make(map[string]bool)
	var walk func(owner *symbols.Symbol)
	walk = func(owner *symbols.Symbol) {
		for _, name := range owner.Members.Names() {
			seen[name] = true
			for _, s := range owner.Members.Lookup(name) {
				if s.Kind == symbols.KindType {
					walk(s)
				}
			}
		}
	}
	for _, pkg := range g.packages {
		walk(pkg)
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
