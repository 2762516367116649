package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/nutriscope/backend/internal/model"
	"github.com/pageza/nutriscope/backend/internal/units"
)

// UnitService owns units and the directed conversion table.
type UnitService struct {
	db    *gorm.DB
	cache GraphCache
	log   *slog.Logger
}

// NewUnitService creates a new UnitService instance. A nil cache disables caching.
func NewUnitService(db *gorm.DB, cache GraphCache, logger *slog.Logger) *UnitService {
	if cache == nil {
		cache = NoGraphCache{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &UnitService{db: db, cache: cache, log: logger}
}

// Graph returns the current conversion graph, from the cache when possible.
func (s *UnitService) Graph(ctx context.Context) (*units.Graph, error) {
	snap, err := s.cache.Get(ctx)
	if err != nil {
		s.log.Warn("Conversion graph cache read failed", slog.String("error", err.Error()))
	}
	if snap != nil {
		return snap.Graph(), nil
	}

	snap, err = s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, snap); err != nil {
		s.log.Warn("Conversion graph cache write failed", slog.String("error", err.Error()))
	}
	return snap.Graph(), nil
}

func (s *UnitService) loadSnapshot(ctx context.Context) (*GraphSnapshot, error) {
	var unitRows []model.Unit
	if err := s.db.WithContext(ctx).Find(&unitRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load units: %w", err)
	}
	var convRows []model.UnitConversion
	if err := s.db.WithContext(ctx).Order("created_at").Find(&convRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load conversions: %w", err)
	}

	snap := &GraphSnapshot{
		Units:       make([]units.Unit, len(unitRows)),
		Conversions: make([]units.Conversion, len(convRows)),
	}
	for i, u := range unitRows {
		snap.Units[i] = u.ToEngine()
	}
	for i, c := range convRows {
		snap.Conversions[i] = c.ToEngine()
	}
	return snap, nil
}

// ListUnits returns units grouped by type, then by name.
func (s *UnitService) ListUnits(ctx context.Context) ([]units.Unit, error) {
	var rows []model.Unit
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]units.Unit, len(rows))
	for i, r := range rows {
		out[i] = r.ToEngine()
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Type != out[j].Type {
			return out[i].Type < out[j].Type
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// AddUnit stores a new unit.
func (s *UnitService) AddUnit(ctx context.Context, u units.Unit) (units.Unit, error) {
	if u.Name == "" || u.Type == "" {
		return units.Unit{}, fmt.Errorf("%w: unit name and type are required", ErrInvalidInput)
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	row := model.UnitFromEngine(u)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return units.Unit{}, err
	}
	s.invalidate(ctx)
	return row.ToEngine(), nil
}

// AddConversion stores the edge c. Unless oneWay is set the inverse edge (1/ratio) is
// written in the same transaction, so the table stays mutually inverse. An existing edge
// for the same ordered pair is replaced.
func (s *UnitService) AddConversion(ctx context.Context, c units.Conversion, oneWay bool) ([]units.Conversion, error) {
	if c.From == c.To {
		return nil, fmt.Errorf("%w: a unit cannot convert to itself", ErrInvalidInput)
	}
	if c.Ratio <= 0 || math.IsNaN(c.Ratio) || math.IsInf(c.Ratio, 0) {
		return nil, fmt.Errorf("%w: ratio must be a positive number", ErrInvalidInput)
	}

	edges := []units.Conversion{c}
	if !oneWay {
		if inv, ok := units.Inverse(c); ok {
			edges = append(edges, inv)
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Unit{}).Where("id IN ?", []uuid.UUID{c.From, c.To}).Count(&count).Error; err != nil {
			return err
		}
		if count != 2 {
			return fmt.Errorf("unit: %w", ErrNotFound)
		}
		for _, e := range edges {
			if err := tx.Where("from_unit_id = ? AND to_unit_id = ?", e.From, e.To).Delete(&model.UnitConversion{}).Error; err != nil {
				return err
			}
			row := model.ConversionFromEngine(e)
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.log.Info("Conversion stored",
		slog.String("from_unit", c.From.String()),
		slog.String("to_unit", c.To.String()),
		slog.Float64("ratio", c.Ratio),
		slog.Bool("one_way", oneWay))
	return edges, nil
}

// Ratio resolves the multiplier from one unit to another against the current graph.
func (s *UnitService) Ratio(ctx context.Context, from, to uuid.UUID) (float64, error) {
	g, err := s.Graph(ctx)
	if err != nil {
		return 0, err
	}
	return g.Ratio(from, to)
}

// Seed inserts the default unit table, skipping units and edges that already exist.
func (s *UnitService) Seed(ctx context.Context) (int, error) {
	seedUnits, seedConversions := units.DefaultSeed()
	inserted := 0
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, u := range seedUnits {
			var count int64
			if err := tx.Model(&model.Unit{}).Where("id = ?", u.ID).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}
			row := model.UnitFromEngine(u)
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			inserted++
		}
		for _, c := range seedConversions {
			var count int64
			if err := tx.Model(&model.UnitConversion{}).Where("from_unit_id = ? AND to_unit_id = ?", c.From, c.To).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}
			row := model.ConversionFromEngine(c)
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	s.invalidate(ctx)
	return inserted, nil
}

func (s *UnitService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn("Conversion graph cache invalidation failed", slog.String("error", err.Error()))
	}
}
