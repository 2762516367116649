package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/nutriscope/backend/config"
	"github.com/pageza/nutriscope/backend/internal/model"
	"github.com/pageza/nutriscope/backend/internal/units"
)

func TestOpenSQLiteMemory(t *testing.T) {
	db, err := OpenSQLiteMemory()
	require.NoError(t, err)

	u := model.UnitFromEngine(units.Unit{ID: units.SeedUnitID("Cups"), Name: "Cups", Type: units.TypeVolume, Abbreviations: []string{"c"}})
	require.NoError(t, db.Create(&u).Error)

	var got model.Unit
	require.NoError(t, db.First(&got, "name = ?", "Cups").Error)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, model.StringArray{"c"}, got.Abbreviations)
}

func TestOpenSQLiteFile(t *testing.T) {
	cfg := config.Defaults()
	cfg.DBDriver = "sqlite"
	cfg.SQLitePath = t.TempDir() + "/test.db"

	db, err := Open(cfg)
	require.NoError(t, err)
	require.NoError(t, RunMigrations(db, cfg.MigrationsDir))
	assert.True(t, db.Migrator().HasTable(&model.FoodJournalEntry{}))
}

func TestOpenUnsupportedDriver(t *testing.T) {
	cfg := config.Defaults()
	cfg.DBDriver = "oracle"
	_, err := Open(cfg)
	assert.Error(t, err)
}

func TestAutoMigrateCreatesEveryTable(t *testing.T) {
	db, err := OpenSQLiteMemory()
	require.NoError(t, err)
	for _, m := range model.All() {
		assert.True(t, db.Migrator().HasTable(m))
	}
}
