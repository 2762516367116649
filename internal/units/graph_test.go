package units

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatioIdentity(t *testing.T) {
	g := DefaultGraph()
	for _, u := range g.Units() {
		r, err := g.Ratio(u.ID, u.ID)
		require.NoError(t, err)
		assert.Equal(t, 1.0, r, u.Name)
	}

	// identity holds even for units the graph has never seen
	r, err := NewGraph(nil, nil).Ratio(uuid.Nil, uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, r)
}

func TestRatioDirectEdge(t *testing.T) {
	cups, ounces := uuid.New(), uuid.New()
	g := NewGraph(
		[]Unit{{ID: cups, Name: "Cups", Type: TypeVolume}, {ID: ounces, Name: "Ounces", Type: TypeVolume}},
		[]Conversion{{From: cups, To: ounces, Ratio: 8}},
	)

	r, err := g.Ratio(cups, ounces)
	require.NoError(t, err)
	assert.Equal(t, 8.0, r)

	// no reciprocal is guessed
	_, err = g.Ratio(ounces, cups)
	assert.ErrorIs(t, err, ErrConversionNotFound)
}

func TestRatioMissingEdge(t *testing.T) {
	g := DefaultGraph()
	_, err := g.Ratio(SeedUnitID("Liters"), SeedUnitID("Pounds"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConversionNotFound)

	var notFound *ConversionNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, SeedUnitID("Liters"), notFound.From)
	assert.Equal(t, SeedUnitID("Pounds"), notFound.To)
}

func TestRatioNoTransitivePath(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	g := NewGraph(nil, []Conversion{{From: a, To: b, Ratio: 2}, {From: b, To: c, Ratio: 3}})

	_, err := g.Ratio(a, c)
	assert.ErrorIs(t, err, ErrConversionNotFound)
}

func TestSeededEdgesAreMutualInverses(t *testing.T) {
	g := DefaultGraph()
	for _, c := range g.Conversions() {
		back, err := g.Ratio(c.To, c.From)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, c.Ratio*back, 1e-9)
	}
}

func TestSeedKnownRatios(t *testing.T) {
	g := DefaultGraph()

	r, err := g.Ratio(SeedUnitID("Kilograms"), SeedUnitID("Grams"))
	require.NoError(t, err)
	assert.InDelta(t, 1000, r, 1e-9)

	r, err = g.Ratio(SeedUnitID("Cups"), SeedUnitID("Fluid Ounces"))
	require.NoError(t, err)
	assert.InDelta(t, 8, r, 1e-9)

	r, err = g.Ratio(SeedUnitID("Tablespoons"), SeedUnitID("Teaspoons"))
	require.NoError(t, err)
	assert.InDelta(t, 3, r, 1e-9)

	_, err = g.Ratio(SeedUnitID("Grams"), SeedUnitID("Cups"))
	assert.ErrorIs(t, err, ErrConversionNotFound)
}

func TestConvert(t *testing.T) {
	g := DefaultGraph()
	q, err := g.Convert(2.5, SeedUnitID("Liters"), SeedUnitID("Milliliters"))
	require.NoError(t, err)
	assert.InDelta(t, 2500, q, 1e-9)
}

func TestSameType(t *testing.T) {
	g := DefaultGraph()
	assert.True(t, g.SameType(SeedUnitID("Cups"), SeedUnitID("Liters")))
	assert.False(t, g.SameType(SeedUnitID("Cups"), SeedUnitID("Grams")))
	assert.False(t, g.SameType(SeedUnitID("Cups"), uuid.New()))
}

func TestParseAbbreviations(t *testing.T) {
	assert.Equal(t, []string{"g", "gram", "grams"}, ParseAbbreviations(" g, gram,,grams "))
	assert.Nil(t, ParseAbbreviations(""))
}

func TestInverse(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	inv, ok := Inverse(Conversion{From: a, To: b, Ratio: 4})
	require.True(t, ok)
	assert.Equal(t, Conversion{From: b, To: a, Ratio: 0.25}, inv)

	_, ok = Inverse(Conversion{From: a, To: b})
	assert.False(t, ok)
}
