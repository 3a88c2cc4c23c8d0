package symbols

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagsAccess(t *testing.T) {
	tests := []struct {
		name  string
		flags Flags
		want  Flags
	}{
		{"public", FlagPublic | FlagStatic, FlagPublic},
		{"private", FlagPrivate | FlagFinal, FlagPrivate},
		{"protected", FlagProtected, FlagProtected},
		{"package private", FlagStatic | FlagFinal, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.flags.Access())
		})
	}
}

func TestFlagsValid(t *testing.T) {
	assert.True(t, Flags(0).Valid())
	assert.True(t, (FlagPublic | FlagStatic).Valid())
	assert.True(t, FlagPrivate.Valid())
	assert.False(t, (FlagPublic | FlagPrivate).Valid())
	assert.False(t, (FlagProtected | FlagPrivate | FlagStatic).Valid())
}

func TestFlagsString(t *testing.T) {
	assert.Equal(t, "public static final", (FlagPublic | FlagStatic | FlagFinal).String())
	assert.Equal(t, "private", FlagPrivate.String())
	assert.Equal(t, "", Flags(0).String())
	assert.Equal(t, "abstract interface", (FlagInterface | FlagAbstract).String())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "package", KindPackage.String())
	assert.Equal(t, "type", KindType.String())
	assert.Equal(t, "variable", KindVariable.String())
	assert.Equal(t, "method", KindMethod.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestOwnerChainAccessors(t *testing.T) {
	pkg := NewPackage("com.example")
	outer := NewType("Outer", FlagPublic, pkg)
	inner := NewType("Inner", FlagPrivate, outer)
	field := NewVariable("count", FlagPrivate, inner)
	method := NewMethod("run", FlagPublic, outer)

	t.Run("package", func(t *testing.T) {
		assert.Same(t, pkg, field.Package())
		assert.Same(t, pkg, inner.Package())
		assert.Same(t, pkg, pkg.Package())
	})

	t.Run("enclosing class", func(t *testing.T) {
		assert.Same(t, inner, field.EnclosingClass())
		assert.Same(t, inner, inner.EnclosingClass())
		assert.Same(t, outer, method.EnclosingClass())
		assert.Nil(t, pkg.EnclosingClass())
	})

	t.Run("outermost class", func(t *testing.T) {
		assert.Same(t, outer, field.OutermostClass())
		assert.Same(t, outer, inner.OutermostClass())
		assert.Same(t, outer, outer.OutermostClass())
		assert.Nil(t, pkg.OutermostClass())
	})

	t.Run("nil safe", func(t *testing.T) {
		var s *Symbol
		assert.Nil(t, s.Package())
		assert.Nil(t, s.EnclosingClass())
		assert.Nil(t, s.OutermostClass())
	})
}

func TestQualifiedName(t *testing.T) {
	pkg := NewPackage("com.example")
	outer := NewType("Outer", FlagPublic, pkg)
	inner := NewType("Inner", 0, outer)
	field := NewVariable("count", 0, inner)

	assert.Equal(t, "com.example.Outer.Inner.count", field.QualifiedName())
	assert.Equal(t, "com.example", pkg.QualifiedName())

	defPkg := NewPackage("")
	top := NewType("Main", FlagPublic, defPkg)
	assert.Equal(t, "Main", top.QualifiedName())
}

func TestScopeDeclareAndLookup(t *testing.T) {
	owner := NewType("Holder", FlagPublic, NewPackage("p"))
	scope := NewScope(owner)
	require.Same(t, owner, scope.Owner())

	a := NewVariable("x", 0, owner)
	b := NewMethod("x", 0, owner)
	c := NewMethod("x", FlagPublic, owner)
	scope.Declare(a)
	scope.Declare(b)
	scope.Declare(c)

	t.Run("declaration order", func(t *testing.T) {
		got := scope.Lookup("x")
		require.Len(t, got, 3)
		assert.Same(t, a, got[0])
		assert.Same(t, b, got[1])
		assert.Same(t, c, got[2])
	})

	t.Run("variable and type may share a name", func(t *testing.T) {
		v := NewVariable("Point", 0, owner)
		ty := NewType("Point", 0, owner)
		scope.Declare(v)
		scope.Declare(ty)
		got := scope.Lookup("Point")
		require.Len(t, got, 2)
		assert.Equal(t, KindVariable, got[0].Kind)
		assert.Equal(t, KindType, got[1].Kind)
	})

	t.Run("missing name is empty", func(t *testing.T) {
		assert.Empty(t, scope.Lookup("absent"))
	})

	t.Run("nil scope lookup", func(t *testing.T) {
		var s *Scope
		assert.Empty(t, s.Lookup("x"))
	})

	t.Run("names and len", func(t *testing.T) {
		assert.ElementsMatch(t, []string{"x", "Point"}, scope.Names())
		assert.Equal(t, 5, scope.Len())
	})
}
