package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/jsem/internal/symbols"
)

func TestArenaTopLevelEnv(t *testing.T) {
	pkg := symbols.NewPackage("p")
	arena := NewArena()
	env := arena.Push(pkg, pkg.Members)

	require.True(t, env.Valid())
	assert.False(t, env.HasOuter())
	assert.False(t, env.Outer().Valid())
	assert.Same(t, pkg, env.Package())
	assert.Nil(t, env.EnclosingClass())
	assert.Same(t, pkg.Members, env.Scope())
	assert.Equal(t, 1, arena.Len())
}

func TestEnterClass(t *testing.T) {
	pkg := symbols.NewPackage("p")
	cls := symbols.NewType("A", symbols.FlagPublic, pkg)
	pkg.Members.Declare(cls)

	arena := NewArena()
	top := arena.Push(pkg, pkg.Members)
	body := top.EnterClass(cls)

	require.True(t, body.Valid())
	assert.True(t, body.HasOuter())
	assert.Equal(t, top, body.Outer())
	assert.Equal(t, top, body.Next())
	assert.Same(t, cls, body.EnclosingClass())
	assert.Same(t, cls.Members, body.Scope())
	assert.Same(t, pkg, body.Package())
}

func TestDupSharesContextWithFreshNext(t *testing.T) {
	pkg := symbols.NewPackage("p")
	cls := symbols.NewType("A", symbols.FlagPublic, pkg)

	arena := NewArena()
	top := arena.Push(pkg, pkg.Members)
	body := top.EnterClass(cls)
	dup := body.Dup()

	assert.Equal(t, body, dup.Next())
	assert.Equal(t, body.Outer(), dup.Outer())
	assert.Same(t, body.EnclosingClass(), dup.EnclosingClass())
	assert.Same(t, body.Scope(), dup.Scope())
	assert.NotEqual(t, body, dup)
}

func TestEnterScopeReplacesLocalScope(t *testing.T) {
	pkg := symbols.NewPackage("p")
	cls := symbols.NewType("A", symbols.FlagPublic, pkg)

	arena := NewArena()
	body := arena.Push(pkg, pkg.Members).EnterClass(cls)

	block := symbols.NewScope(nil)
	inner := body.EnterScope(block)

	assert.Same(t, block, inner.Scope())
	assert.Equal(t, body, inner.Next())
	assert.Equal(t, body.Outer(), inner.Outer())
	assert.Same(t, cls, inner.EnclosingClass())
}

func TestOuterChainTerminates(t *testing.T) {
	pkg := symbols.NewPackage("p")
	outerCls := symbols.NewType("Outer", symbols.FlagPublic, pkg)
	innerCls := symbols.NewType("Inner", 0, outerCls)

	arena := NewArena()
	env := arena.Push(pkg, pkg.Members).EnterClass(outerCls).EnterClass(innerCls)

	steps := 0
	for e := env; e.HasOuter(); e = e.Outer() {
		steps++
		require.Less(t, steps, 10, "outer chain must terminate")
	}
	assert.Equal(t, 2, steps)
}

func TestZeroEnvInvalid(t *testing.T) {
	var env Env
	assert.False(t, env.Valid())
}
