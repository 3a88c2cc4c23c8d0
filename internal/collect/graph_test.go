package collect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/jsem/internal/resolve"
	"github.com/standardbeagle/jsem/internal/symbols"
)

func TestBuildGraphDeclares(t *testing.T) {
	files := []*fileDecl{
		{
			path: "p/Base.java",
			pkg:  "p",
			types: []*typeDecl{{
				name:  "Base",
				flags: symbols.FlagPublic,
				fields: []memberDecl{
					{name: "x", flags: symbols.FlagPublic},
				},
				methods: []memberDecl{
					{name: "run", flags: symbols.FlagPublic},
				},
				nested: []*typeDecl{{
					name:  "Inner",
					flags: symbols.FlagPrivate,
				}},
			}},
		},
		{
			path: "q/Sub.java",
			pkg:  "q",
			types: []*typeDecl{{
				name:       "Sub",
				flags:      symbols.FlagPublic,
				superclass: "Base",
			}},
		},
	}

	g := buildGraph(files)

	base := g.LookupType("p.Base")
	require.NotNil(t, base)
	assert.Equal(t, symbols.KindType, base.Kind)
	assert.Equal(t, "p.Base", base.QualifiedName())

	inner := g.LookupType("p.Base.Inner")
	require.NotNil(t, inner)
	assert.Same(t, base, inner.Owner)

	sub := g.LookupType("q.Sub")
	require.NotNil(t, sub)
	assert.Same(t, base, sub.Superclass, "cross-package superclass links by name")

	t.Run("members carry kinds", func(t *testing.T) {
		var field, method *symbols.Symbol
		for _, s := range base.Members.Lookup("x") {
			field = s
		}
		for _, s := range base.Members.Lookup("run") {
			method = s
		}
		require.NotNil(t, field)
		require.NotNil(t, method)
		assert.Equal(t, symbols.KindVariable, field.Kind)
		assert.Equal(t, symbols.KindMethod, method.Kind)
	})
}

func TestLinkSupertypesSamePackageWins(t *testing.T) {
	files := []*fileDecl{
		{pkg: "p", types: []*typeDecl{{name: "Base", flags: symbols.FlagPublic}}},
		{pkg: "q", types: []*typeDecl{{name: "Base", flags: symbols.FlagPublic}}},
		{pkg: "q", types: []*typeDecl{{name: "Sub", flags: symbols.FlagPublic, superclass: "Base"}}},
	}
	g := buildGraph(files)

	sub := g.LookupType("q.Sub")
	require.NotNil(t, sub)
	assert.Same(t, g.LookupType("q.Base"), sub.Superclass)
}

func TestLinkSupertypesQualifiedName(t *testing.T) {
	files := []*fileDecl{
		{pkg: "core", types: []*typeDecl{{name: "Entity", flags: symbols.FlagPublic}}},
		{pkg: "app", types: []*typeDecl{{name: "User", flags: symbols.FlagPublic, superclass: "core.Entity"}}},
	}
	g := buildGraph(files)

	user := g.LookupType("app.User")
	require.NotNil(t, user)
	assert.Same(t, g.LookupType("core.Entity"), user.Superclass)
}

func TestLinkSupertypesUnresolvedStaysNil(t *testing.T) {
	files := []*fileDecl{
		{pkg: "p", types: []*typeDecl{{
			name:       "Sub",
			flags:      symbols.FlagPublic,
			superclass: "java.util.ArrayList",
			interfaces: []string{"Serializable"},
		}}},
	}
	g := buildGraph(files)

	sub := g.LookupType("p.Sub")
	require.NotNil(t, sub)
	assert.Nil(t, sub.Superclass, "undeclared supertypes stay at the hierarchy top")
	assert.Empty(t, sub.Interfaces)
}

func TestLinkSupertypesNeverSelfLinks(t *testing.T) {
	files := []*fileDecl{
		{pkg: "p", types: []*typeDecl{{name: "Loop", flags: symbols.FlagPublic, superclass: "Loop"}}},
	}
	g := buildGraph(files)

	loop := g.LookupType("p.Loop")
	require.NotNil(t, loop)
	assert.Nil(t, loop.Superclass)
}

func TestGraphLookupType(t *testing.T) {
	files := []*fileDecl{
		{pkg: "com.example", types: []*typeDecl{{
			name:  "Outer",
			flags: symbols.FlagPublic,
			nested: []*typeDecl{{
				name: "Inner",
				nested: []*typeDecl{{
					name: "Deepest",
				}},
			}},
		}}},
	}
	g := buildGraph(files)

	assert.NotNil(t, g.LookupType("com.example.Outer"))
	assert.NotNil(t, g.LookupType("com.example.Outer.Inner"))
	assert.NotNil(t, g.LookupType("com.example.Outer.Inner.Deepest"))
	assert.Nil(t, g.LookupType("com.example.Outer.Missing"))
	assert.Nil(t, g.LookupType("com.other.Outer"))
	assert.Nil(t, g.LookupType(""))
}

func TestGraphPackages(t *testing.T) {
	files := []*fileDecl{
		{pkg: "zeta", types: []*typeDecl{{name: "Z"}}},
		{pkg: "alpha", types: []*typeDecl{{name: "A"}}},
		{pkg: "", types: []*typeDecl{{name: "Main"}}},
	}
	g := buildGraph(files)

	pkgs := g.Packages()
	require.Len(t, pkgs, 3)
	assert.Equal(t, "", pkgs[0].Name)
	assert.Equal(t, "alpha", pkgs[1].Name)
	assert.Equal(t, "zeta", pkgs[2].Name)

	assert.NotNil(t, g.Package("alpha"))
	assert.Nil(t, g.Package("beta"))
}

func TestGraphNames(t *testing.T) {
	files := []*fileDecl{
		{pkg: "p", types: []*typeDecl{{
			name:   "Holder",
			fields: []memberDecl{{name: "count"}},
			nested: []*typeDecl{{name: "Nested", fields: []memberDecl{{name: "count"}}}},
		}}},
	}
	g := buildGraph(files)

	assert.Equal(t, []string{"Holder", "Nested", "count"}, g.Names())
}

func TestEnvFor(t *testing.T) {
	files := []*fileDecl{
		{pkg: "p", types: []*typeDecl{{
			name:   "Outer",
			flags:  symbols.FlagPublic,
			fields: []memberDecl{{name: "shared", flags: symbols.FlagPrivate}},
			nested: []*typeDecl{{name: "Inner"}},
		}}},
	}
	g := buildGraph(files)

	inner := g.LookupType("p.Outer.Inner")
	require.NotNil(t, inner)

	arena := resolve.NewArena()
	env := EnvFor(arena, inner)

	require.True(t, env.Valid())
	assert.Same(t, inner, env.EnclosingClass())
	assert.Same(t, g.Package("p"), env.Package())

	t.Run("chain reaches the outer class", func(t *testing.T) {
		outerEnv := env.Outer()
		require.True(t, outerEnv.Valid())
		assert.Same(t, g.LookupType("p.Outer"), outerEnv.EnclosingClass())
	})

	t.Run("resolution sees enclosing fields", func(t *testing.T) {
		r := resolve.New(0)
		out := r.FindIdent(env, "shared", resolve.LookupVariables)
		require.Equal(t, resolve.StatusFound, out.Status)
		assert.Equal(t, "p.Outer.shared", out.Sym.QualifiedName())
	})
}
