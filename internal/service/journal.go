package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/nutriscope/backend/internal/journal"
	"github.com/pageza/nutriscope/backend/internal/model"
	"github.com/pageza/nutriscope/backend/internal/nutrition"
	"github.com/pageza/nutriscope/backend/internal/storage"
)

const archiveLinkTTL = 24 * time.Hour

// JournalService handles food journal entries and the per-day progress view.
type JournalService struct {
	db       *gorm.DB
	catalog  CatalogProvider
	goals    GoalProvider
	archiver storage.Archiver
	log      *slog.Logger
}

// NewJournalService creates a new JournalService instance. archiver may be nil.
func NewJournalService(db *gorm.DB, catalog CatalogProvider, goals GoalProvider, archiver storage.Archiver, logger *slog.Logger) *JournalService {
	if logger == nil {
		logger = slog.Default()
	}
	return &JournalService{db: db, catalog: catalog, goals: goals, archiver: archiver, log: logger}
}

// Day truncates t to its calendar date in UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddEntry records a quantity of a food item eaten on entry.Date.
func (s *JournalService) AddEntry(ctx context.Context, entry *model.FoodJournalEntry) (*model.FoodJournalEntry, error) {
	if entry.Quantity < 0 {
		return nil, fmt.Errorf("%w: %v", nutrition.ErrNegativeQuantity, entry.Quantity)
	}
	if entry.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	entry.Date = Day(entry.Date)

	var count int64
	if err := s.db.WithContext(ctx).Model(&model.FoodItem{}).Where("id = ?", entry.FoodItemID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, fmt.Errorf("food item %s: %w", entry.FoodItemID, ErrNotFound)
	}

	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// Entries lists the entries logged on date.
func (s *JournalService) Entries(ctx context.Context, date time.Time) ([]model.FoodJournalEntry, error) {
	start := Day(date)
	var rows []model.FoodJournalEntry
	err := s.db.WithContext(ctx).
		Where("entry_date >= ? AND entry_date < ?", start, start.AddDate(0, 0, 1)).
		Order("created_at").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// DayView projects the day's entries against every goal set active on date.
func (s *JournalService) DayView(ctx context.Context, date time.Time) ([]journal.DayView, error) {
	date = Day(date)
	goalSets, err := s.goals.ActiveOn(ctx, date)
	if err != nil {
		return nil, err
	}
	rows, err := s.Entries(ctx, date)
	if err != nil {
		return nil, err
	}

	entries := make([]nutrition.JournalEntry, len(rows))
	seen := make(map[uuid.UUID]bool)
	var foodIDs []uuid.UUID
	for i, r := range rows {
		entries[i] = r.ToEngine()
		if !seen[r.FoodItemID] {
			seen[r.FoodItemID] = true
			foodIDs = append(foodIDs, r.FoodItemID)
		}
	}

	calc, err := s.catalog.Calculator(ctx, foodIDs)
	if err != nil {
		return nil, err
	}
	views := journal.NewBuilder(calc, s.log).Build(date, goalSets, entries)
	return views, nil
}

// ArchiveResult locates an archived day.
type ArchiveResult struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// Archive renders the day view as JSON and uploads it.
func (s *JournalService) Archive(ctx context.Context, date time.Time) (*ArchiveResult, error) {
	if s.archiver == nil {
		return nil, storage.ErrArchiveDisabled
	}
	views, err := s.DayView(ctx, date)
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(struct {
		Date  string            `json:"date"`
		Views []journal.DayView `json:"views"`
	}{Date: Day(date).Format("2006-01-02"), Views: views})
	if err != nil {
		return nil, err
	}

	key := storage.JournalKey(date)
	if err := s.archiver.Put(ctx, key, body, "application/json"); err != nil {
		return nil, err
	}
	url, err := s.archiver.URL(ctx, key, archiveLinkTTL)
	if err != nil {
		return nil, err
	}
	s.log.Info("Journal day archived", slog.String("key", key))
	return &ArchiveResult{Key: key, URL: url}, nil
}
