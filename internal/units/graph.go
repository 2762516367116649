package units

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Type partitions units into families that are never converted into each other in practice.
type Type string

const (
	TypeMass    Type = "Mass"
	TypeVolume  Type = "Volume"
	TypeEnergy  Type = "Energy"
	TypePercent Type = "Percent"
	TypeCount   Type = "Count"
)

// ErrConversionNotFound is returned when no direct edge links two units.
var ErrConversionNotFound = errors.New("conversion not found")

// ConversionNotFoundError carries the ordered pair that had no edge.
type ConversionNotFoundError struct {
	From uuid.UUID
	To   uuid.UUID
}

func (e *ConversionNotFoundError) Error() string {
	return fmt.Sprintf("conversion not found: %s -> %s", e.From, e.To)
}

func (e *ConversionNotFoundError) Is(target error) bool {
	return target == ErrConversionNotFound
}

// Unit is a named measurement belonging to one Type family.
type Unit struct {
	ID            uuid.UUID
	Name          string
	Type          Type
	Abbreviations []string
	FoodQuantity  bool
}

// Conversion is a directed edge: quantity in To = quantity in From * Ratio.
type Conversion struct {
	From  uuid.UUID
	To    uuid.UUID
	Ratio float64
}

type edgeKey struct {
	from uuid.UUID
	to   uuid.UUID
}

// Graph resolves ratios between units using direct edges only.
// It is read-only after construction and safe for concurrent use.
type Graph struct {
	units map[uuid.UUID]Unit
	edges map[edgeKey]float64
}

// NewGraph indexes units and conversion edges. A repeated (from, to) pair keeps the last ratio.
func NewGraph(units []Unit, conversions []Conversion) *Graph {
	g := &Graph{
		units: make(map[uuid.UUID]Unit, len(units)),
		edges: make(map[edgeKey]float64, len(conversions)),
	}
	for _, u := range units {
		g.units[u.ID] = u
	}
	for _, c := range conversions {
		g.edges[edgeKey{from: c.From, to: c.To}] = c.Ratio
	}
	return g
}

// Ratio returns the multiplier that converts a quantity in from into to.
// Identical units always yield 1. No reciprocal or transitive path is attempted.
func (g *Graph) Ratio(from, to uuid.UUID) (float64, error) {
	if from == to {
		return 1, nil
	}
	if g != nil {
		if r, ok := g.edges[edgeKey{from: from, to: to}]; ok {
			return r, nil
		}
	}
	return 0, &ConversionNotFoundError{From: from, To: to}
}

// Convert expresses quantity q, measured in from, in unit to.
func (g *Graph) Convert(q float64, from, to uuid.UUID) (float64, error) {
	r, err := g.Ratio(from, to)
	if err != nil {
		return 0, err
	}
	return q * r, nil
}

// Unit looks up a unit by id.
func (g *Graph) Unit(id uuid.UUID) (Unit, bool) {
	if g == nil {
		return Unit{}, false
	}
	u, ok := g.units[id]
	return u, ok
}

// UnitName returns the display name of a unit, or "" when unknown.
func (g *Graph) UnitName(id uuid.UUID) string {
	u, _ := g.Unit(id)
	return u.Name
}

// TypeOf returns the family of a unit. Unknown units report ok=false.
func (g *Graph) TypeOf(id uuid.UUID) (Type, bool) {
	u, ok := g.Unit(id)
	return u.Type, ok
}

// SameType reports whether both units are known and share a family.
func (g *Graph) SameType(a, b uuid.UUID) bool {
	ta, ok := g.TypeOf(a)
	if !ok {
		return false
	}
	tb, ok := g.TypeOf(b)
	return ok && ta == tb
}

// Units returns every indexed unit in no particular order.
func (g *Graph) Units() []Unit {
	out := make([]Unit, 0, len(g.units))
	for _, u := range g.units {
		out = append(out, u)
	}
	return out
}

// Conversions returns every indexed edge in no particular order.
func (g *Graph) Conversions() []Conversion {
	out := make([]Conversion, 0, len(g.edges))
	for k, r := range g.edges {
		out = append(out, Conversion{From: k.from, To: k.to, Ratio: r})
	}
	return out
}

// ParseAbbreviations splits a comma separated abbreviation list, dropping blanks.
func ParseAbbreviations(list string) []string {
	var out []string
	for _, part := range strings.Split(list, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Inverse returns the reverse edge of c. A zero ratio has no inverse.
func Inverse(c Conversion) (Conversion, bool) {
	if c.Ratio == 0 {
		return Conversion{}, false
	}
	return Conversion{From: c.To, To: c.From, Ratio: 1 / c.Ratio}, true
}
