package collect

import (
	"github.com/standardbeagle/jsem/internal/resolve"
	"github.com/standardbeagle/jsem/internal/symbols"
)

// EnvFor builds the environment chain for the body of class c: the
// compilation unit's package environment, then each enclosing class
// from the outermost inward, ending at c itself.
func EnvFor(arena *resolve.Arena, c *symbols.Symbol) resolve.Env {
	pkg := c.Package()
	env := arena.Push(pkg, pkg.Members)

	var chain []*symbols.Symbol
	for t := c; t != nil; t = t.Owner.EnclosingClass() {
		chain = append(chain, t)
	}
	for i := len(chain) - 1; i >= 0; i-- {
		env = env.EnterClass(chain[i])
	}
	return env
}
