// Package symbols holds the declaration-level symbol model produced by
// the collection pass and consumed by the resolver: packages, types,
// variables and methods, each with access flags and an owner chain.
package symbols

// Kind discriminates what a declared entity is.
type Kind int

const (
	KindPackage Kind = iota
	KindType
	KindVariable
	KindMethod
)

// kindStrings provides O(1) lookup for kind names
var kindStrings = map[Kind]string{
	KindPackage:  "package",
	KindType:     "type",
	KindVariable: "variable",
	KindMethod:   "method",
}

// String returns a string representation of the kind
func (k Kind) String() string {
	if name, ok := kindStrings[k]; ok {
		return name
	}
	return "unknown"
}

// Flags is the modifier bitset of a declaration. The three explicit
// access flags are mutually exclusive; package-private visibility is the
// absence of all of them.
type Flags uint16

const (
	FlagPrivate Flags = 1 << iota
	FlagProtected
	FlagPublic
	FlagStatic
	FlagInterface
	FlagFinal
	FlagAbstract
)

// AccessMask selects the explicit access flags.
const AccessMask = FlagPrivate | FlagProtected | FlagPublic

// Access returns the explicit access flag, or 0 for package-private.
func (f Flags) Access() Flags {
	return f & AccessMask
}

// Valid reports whether at most one explicit access flag is set. A
// symbol with more than one comes from a corrupted model.
func (f Flags) Valid() bool {
	a := f & AccessMask
	return a&(a-1) == 0
}

// String returns the Java modifier spelling of the flags.
func (f Flags) String() string {
	var out string
	appendMod := func(name string) {
		if out != "" {
			out += " "
		}
		out += name
	}
	switch f.Access() {
	case FlagPrivate:
		appendMod("private")
	case FlagProtected:
		appendMod("protected")
	case FlagPublic:
		appendMod("public")
	}
	if f&FlagAbstract != 0 {
		appendMod("abstract")
	}
	if f&FlagStatic != 0 {
		appendMod("static")
	}
	if f&FlagFinal != 0 {
		appendMod("final")
	}
	if f&FlagInterface != 0 {
		appendMod("interface")
	}
	return out
}

// Location is a position in a source file, 1-based.
type Location struct {
	File   string
	Line   int
	Column int
}

// IsZero reports whether the location is unset (synthetic symbols).
func (l Location) IsZero() bool {
	return l.File == "" && l.Line == 0 && l.Column == 0
}

// Symbol is a named declaration. One struct covers all kinds; Members,
// Superclass and Interfaces are only populated for type and package
// symbols. Symbols are immutable once the collection pass completes.
type Symbol struct {
	Name     string
	Kind     Kind
	Flags    Flags
	Owner    *Symbol
	Location Location

	// Members is the member scope of a type or package symbol.
	Members *Scope

	// Superclass and Interfaces are the declared supertypes of a type
	// symbol. A nil Superclass means the top of the hierarchy as far as
	// the collected model knows.
	Superclass *Symbol
	Interfaces []*Symbol
}

// NewPackage creates a package symbol with an empty member scope.
func NewPackage(name string) *Symbol {
	s := &Symbol{Name: name, Kind: KindPackage}
	s.Members = NewScope(s)
	return s
}

// NewType creates a type symbol owned by a package or an enclosing type,
// with an empty member scope.
func NewType(name string, flags Flags, owner *Symbol) *Symbol {
	s := &Symbol{Name: name, Kind: KindType, Flags: flags, Owner: owner}
	s.Members = NewScope(s)
	return s
}

// NewVariable creates a field or local variable symbol.
func NewVariable(name string, flags Flags, owner *Symbol) *Symbol {
	return &Symbol{Name: name, Kind: KindVariable, Flags: flags, Owner: owner}
}

// NewMethod creates a method symbol owned by a type.
func NewMethod(name string, flags Flags, owner *Symbol) *Symbol {
	return &Symbol{Name: name, Kind: KindMethod, Flags: flags, Owner: owner}
}

// Package returns the package this symbol is declared in, walking the
// owner chain. Package symbols return themselves. Nil-safe.
func (s *Symbol) Package() *Symbol {
	for c := s; c != nil; c = c.Owner {
		if c.Kind == KindPackage {
			return c
		}
	}
	return nil
}

// EnclosingClass returns the innermost type symbol on the owner chain,
// counting the symbol itself when it is a type. Nil for package symbols
// and symbols declared directly in a package scope. Nil-safe.
func (s *Symbol) EnclosingClass() *Symbol {
	for c := s; c != nil; c = c.Owner {
		switch c.Kind {
		case KindType:
			return c
		case KindPackage:
			return nil
		}
	}
	return nil
}

// OutermostClass returns the top-level type enclosing this symbol, i.e.
// the last type on the owner chain before the package. Nil-safe.
func (s *Symbol) OutermostClass() *Symbol {
	var outermost *Symbol
	for c := s; c != nil; c = c.Owner {
		if c.Kind == KindType {
			outermost = c
		}
	}
	return outermost
}

// QualifiedName returns the dotted name from the package root down to
// this symbol. Unnamed (default) packages contribute nothing.
func (s *Symbol) QualifiedName() string {
	if s == nil {
		return ""
	}
	name := s.Name
	for c := s.Owner; c != nil; c = c.Owner {
		if c.Name == "" {
			continue
		}
		name = c.Name + "." + name
	}
	return name
}
