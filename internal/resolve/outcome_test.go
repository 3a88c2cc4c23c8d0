package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/standardbeagle/jsem/internal/symbols"
)

func TestOutcomeOrdering(t *testing.T) {
	sym := symbols.NewVariable("x", symbols.FlagPublic, nil)

	found := Found(sym)
	inaccessible := Inaccessible(sym)
	ambiguous := Ambiguous()
	notFound := NotFound()

	assert.True(t, found.betterThan(inaccessible))
	assert.True(t, inaccessible.betterThan(ambiguous))
	assert.True(t, ambiguous.betterThan(notFound))
	assert.False(t, notFound.betterThan(notFound), "equal specificity must not replace")
	assert.False(t, notFound.betterThan(found))
}

func TestOutcomeCarriesSymbol(t *testing.T) {
	sym := symbols.NewVariable("x", symbols.FlagPrivate, nil)

	assert.Same(t, sym, Found(sym).Sym)
	assert.Same(t, sym, Inaccessible(sym).Sym)
	assert.Nil(t, NotFound().Sym)
	assert.Nil(t, Ambiguous().Sym)

	assert.True(t, Found(sym).Ok())
	assert.False(t, Inaccessible(sym).Ok())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "found", StatusFound.String())
	assert.Equal(t, "not found", StatusNotFound.String())
	assert.Equal(t, "ambiguous", StatusAmbiguous.String())
	assert.Equal(t, "inaccessible", StatusInaccessible.String())
	assert.Equal(t, "unknown", Status(42).String())
}
