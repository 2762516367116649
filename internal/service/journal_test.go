package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/nutriscope/backend/internal/goals"
	"github.com/pageza/nutriscope/backend/internal/journal"
	"github.com/pageza/nutriscope/backend/internal/model"
	"github.com/pageza/nutriscope/backend/internal/nutrition"
	"github.com/pageza/nutriscope/backend/internal/storage"
)

type mockArchiver struct {
	mock.Mock
}

func (m *mockArchiver) Put(ctx context.Context, key string, body []byte, contentType string) error {
	args := m.Called(key, body, contentType)
	return args.Error(0)
}

func (m *mockArchiver) URL(ctx context.Context, key string, expiration time.Duration) (string, error) {
	args := m.Called(key, expiration)
	return args.String(0), args.Error(1)
}

func dailySpec(f *fixture) goals.Spec {
	return goals.Spec{
		Name:      "Daily",
		StartDate: date(2024, 1, 1),
		Period:    1,
		Nutrients: []goals.NutrientSpec{
			{NutrientID: f.protein.ID, UnitID: f.grams, Targets: []goals.TargetSpec{{Minimum: floatPtr(3), Maximum: floatPtr(10)}}},
			{NutrientID: f.iron.ID, UnitID: f.mg, Targets: []goals.TargetSpec{{Minimum: floatPtr(5)}}},
		},
	}
}

func logDay(t *testing.T, f *fixture) {
	t.Helper()
	ctx := context.Background()
	_, err := f.goals.Create(ctx, dailySpec(f))
	require.NoError(t, err)

	lunch := time.Date(2024, 1, 10, 12, 30, 0, 0, time.UTC)
	for _, e := range []*model.FoodJournalEntry{
		{Date: date(2024, 1, 10), Time: &lunch, FoodItemID: f.oats.ID, Quantity: 16, UnitID: f.floz},
		{Date: date(2024, 1, 10), FoodItemID: f.apple.ID, Quantity: 1, UnitID: f.each},
		{Date: date(2024, 1, 11), FoodItemID: f.oats.ID, Quantity: 100, UnitID: f.cups},
	} {
		_, err := f.journal.AddEntry(ctx, e)
		require.NoError(t, err)
	}
}

func findProgress(t *testing.T, view journal.DayView, id uuid.UUID) journal.NutrientProgress {
	t.Helper()
	for _, n := range view.Nutrients {
		if n.NutrientID == id {
			return n
		}
	}
	t.Fatalf("nutrient %s not in view", id)
	return journal.NutrientProgress{}
}

func TestJournalServiceDayView(t *testing.T) {
	f := newFixture(t)
	logDay(t, f)

	entries, err := f.journal.Entries(context.Background(), date(2024, 1, 10))
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	views, err := f.journal.DayView(context.Background(), time.Date(2024, 1, 10, 18, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, views, 1)

	protein := findProgress(t, views[0], f.protein.ID)
	assert.InDelta(t, 4, protein.Total, 1e-9)
	assert.Equal(t, journal.StatusWithin, protein.Status)
	assert.Equal(t, "Grams", protein.UnitName)

	// apple has no iron record and contributes exactly zero
	iron := findProgress(t, views[0], f.iron.ID)
	assert.InDelta(t, 3.6, iron.Total, 1e-9)
	assert.Equal(t, journal.StatusBelow, iron.Status)
	assert.Zero(t, iron.Unavailable)
}

func TestJournalServiceAddEntryValidates(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.journal.AddEntry(ctx, &model.FoodJournalEntry{Date: date(2024, 1, 10), FoodItemID: f.oats.ID, Quantity: -1, UnitID: f.cups})
	assert.ErrorIs(t, err, nutrition.ErrNegativeQuantity)

	_, err = f.journal.AddEntry(ctx, &model.FoodJournalEntry{Date: date(2024, 1, 10), FoodItemID: uuid.New(), Quantity: 1, UnitID: f.cups})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.journal.AddEntry(ctx, &model.FoodJournalEntry{FoodItemID: f.oats.ID, Quantity: 1, UnitID: f.cups})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestJournalServiceArchive(t *testing.T) {
	f := newFixture(t)
	logDay(t, f)

	archiver := new(mockArchiver)
	archiver.On("Put", "journal/2024-01-10.json", mock.MatchedBy(func(body []byte) bool {
		return assert.Contains(t, string(body), `"date":"2024-01-10"`)
	}), "application/json").Return(nil)
	archiver.On("URL", "journal/2024-01-10.json", archiveLinkTTL).Return("https://archive.test/journal/2024-01-10.json", nil)

	svc := NewJournalService(f.db, f.catalog, f.goals, archiver, nil)
	got, err := svc.Archive(context.Background(), date(2024, 1, 10))
	require.NoError(t, err)
	assert.Equal(t, "journal/2024-01-10.json", got.Key)
	assert.Equal(t, "https://archive.test/journal/2024-01-10.json", got.URL)
	archiver.AssertExpectations(t)
}

func TestJournalServiceArchiveDisabled(t *testing.T) {
	f := newFixture(t)
	_, err := f.journal.Archive(context.Background(), date(2024, 1, 10))
	assert.ErrorIs(t, err, storage.ErrArchiveDisabled)
}
