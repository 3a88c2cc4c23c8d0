package symbols

// Scope maps names to the symbols declared under them in one lexical or
// member context. A name maps to an ordered bucket because Java permits
// method overloads, and a variable and a type may share a spelling in
// one scope. Lookup never consults enclosing scopes; the resolver walks
// the environment chain for that.
type Scope struct {
	owner *Symbol
	names map[string][]*Symbol
}

// NewScope creates an empty scope owned by the given declaration
// context (a type, a package, or nil for a block).
func NewScope(owner *Symbol) *Scope {
	return &Scope{owner: owner, names: make(map[string][]*Symbol)}
}

// Owner returns the symbol whose body this scope represents, if any.
func (s *Scope) Owner() *Symbol {
	return s.owner
}

// Declare inserts a symbol into its name bucket, preserving declaration
// order. Duplicate names are allowed; disambiguation happens at lookup
// time by kind.
func (s *Scope) Declare(sym *Symbol) {
	s.names[sym.Name] = append(s.names[sym.Name], sym)
}

// Lookup returns the symbols declared under the exact name in this
// scope, in declaration order. The result may be empty and must not be
// mutated.
func (s *Scope) Lookup(name string) []*Symbol {
	if s == nil {
		return nil
	}
	return s.names[name]
}

// Names returns every name declared in this scope, in no particular
// order.
func (s *Scope) Names() []string {
	out := make([]string, 0, len(s.names))
	for name := range s.names {
		out = append(out, name)
	}
	return out
}

// Len returns the number of declared symbols, counting overloads.
func (s *Scope) Len() int {
	n := 0
	for _, bucket := range s.names {
		n += len(bucket)
	}
	return n
}
