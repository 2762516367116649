package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/nutriscope/backend/internal/units"
)

func TestUnitServiceSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := NewUnitService(newTestDB(t), nil, nil)

	first, err := svc.Seed(ctx)
	require.NoError(t, err)
	assert.Greater(t, first, 0)

	second, err := svc.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, second)

	list, err := svc.ListUnits(ctx)
	require.NoError(t, err)
	seeded, _ := units.DefaultSeed()
	assert.Len(t, list, len(seeded))
}

func TestUnitServiceRatio(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	r, err := f.units.Ratio(ctx, f.cups, f.floz)
	require.NoError(t, err)
	assert.InDelta(t, 8, r, 1e-9)

	r, err = f.units.Ratio(ctx, f.cups, f.cups)
	require.NoError(t, err)
	assert.Equal(t, 1.0, r)

	_, err = f.units.Ratio(ctx, units.SeedUnitID("Liters"), units.SeedUnitID("Pounds"))
	assert.ErrorIs(t, err, units.ErrConversionNotFound)
}

func TestUnitServiceAddConversion(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	ml := units.SeedUnitID("Milliliters")

	scoop, err := f.units.AddUnit(ctx, units.Unit{Name: "Scoops", Type: units.TypeVolume})
	require.NoError(t, err)

	t.Run("writes the inverse by default", func(t *testing.T) {
		edges, err := f.units.AddConversion(ctx, units.Conversion{From: scoop.ID, To: ml, Ratio: 30}, false)
		require.NoError(t, err)
		assert.Len(t, edges, 2)

		back, err := f.units.Ratio(ctx, ml, scoop.ID)
		require.NoError(t, err)
		assert.InDelta(t, 1.0/30, back, 1e-12)
	})

	t.Run("replaces an existing pair", func(t *testing.T) {
		_, err := f.units.AddConversion(ctx, units.Conversion{From: scoop.ID, To: ml, Ratio: 40}, false)
		require.NoError(t, err)

		r, err := f.units.Ratio(ctx, scoop.ID, ml)
		require.NoError(t, err)
		assert.Equal(t, 40.0, r)
	})

	t.Run("one way leaves the reverse missing", func(t *testing.T) {
		_, err := f.units.AddConversion(ctx, units.Conversion{From: scoop.ID, To: f.cups, Ratio: 0.125}, true)
		require.NoError(t, err)

		_, err = f.units.Ratio(ctx, f.cups, scoop.ID)
		assert.ErrorIs(t, err, units.ErrConversionNotFound)
	})

	t.Run("rejects bad input", func(t *testing.T) {
		_, err := f.units.AddConversion(ctx, units.Conversion{From: scoop.ID, To: ml, Ratio: 0}, false)
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = f.units.AddConversion(ctx, units.Conversion{From: scoop.ID, To: scoop.ID, Ratio: 2}, false)
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = f.units.AddConversion(ctx, units.Conversion{From: scoop.ID, To: units.SeedUnitID("Nope"), Ratio: 2}, false)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUnitServiceGraphCache(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.cache.snap = nil

	_, err := f.units.Graph(ctx)
	require.NoError(t, err)
	sets := f.cache.sets
	assert.NotNil(t, f.cache.snap)

	_, err = f.units.Graph(ctx)
	require.NoError(t, err)
	assert.Equal(t, sets, f.cache.sets)
	assert.Greater(t, f.cache.hits, 0)

	_, err = f.units.AddUnit(ctx, units.Unit{Name: "Handfuls", Type: units.TypeCount})
	require.NoError(t, err)
	assert.Nil(t, f.cache.snap)
}

func TestAddUnitRequiresNameAndType(t *testing.T) {
	svc := NewUnitService(newTestDB(t), nil, nil)
	_, err := svc.AddUnit(context.Background(), units.Unit{Name: "Pinch"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
