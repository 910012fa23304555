package resource

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/mcelhennyi/boulangerie-milon/pkg/errors"
)

// Sized is implemented by resources with a real-world rectangular footprint.
// Only sized resources - items and spatial containers - can be placed on a
// spatial container's grid.
type Sized interface {
	Dimensions() Dimensions
}

// SpatialResource is a grid-based container: it discretizes its surface into
// a boolean occupancy grid and places sized children at grid positions found
// by the best-fit placement search. It exclusively owns its grid and the
// child-to-placement mapping; destroying the container discards all tracked
// placements.
type SpatialResource struct {
	id        uuid.UUID
	typ       Type
	dims      Dimensions
	unit      string
	precision float64
	grid      *Grid

	order      []Resource               // attached children, insertion order
	placements map[uuid.UUID]PlacedItem // child identity -> placement
}

// NewSpatial creates a grid-based container. The grid measures
// floor(length/precision) by floor(width/precision) cells and never resizes.
// Non-positive dimensions or precision fail construction.
func NewSpatial(typ Type, length, width float64, unit string, precision float64) (*SpatialResource, error) {
	if err := errors.ValidateDimensions(length, width); err != nil {
		return nil, err
	}
	if err := errors.ValidatePrecision(precision); err != nil {
		return nil, err
	}

	s := &SpatialResource{
		id:         uuid.New(),
		typ:        typ,
		dims:       Dimensions{Length: length, Width: width},
		unit:       unit,
		precision:  precision,
		placements: make(map[uuid.UUID]PlacedItem),
	}
	s.grid = newGrid(s.toGrid(length), s.toGrid(width))
	return s, nil
}

// ID returns the container's stable identity handle.
func (s *SpatialResource) ID() uuid.UUID { return s.id }

// Type returns the container's label.
func (s *SpatialResource) Type() Type { return s.typ }

// Unit returns the unit label of the container's dimensions.
func (s *SpatialResource) Unit() string { return s.unit }

// Dimensions returns the container's own real-world footprint, used when the
// container is itself placed on a larger surface.
func (s *SpatialResource) Dimensions() Dimensions { return s.dims }

// Precision returns the real-world edge length represented by one grid cell.
func (s *SpatialResource) Precision() float64 { return s.precision }

// Children returns the attached children in insertion order.
func (s *SpatialResource) Children() []Resource {
	return slices.Clone(s.order)
}

// CanAddChild reports whether AddChild would succeed right now. It runs the
// identical placement search against a throwaway copy of the live grid, so
// the answer always agrees with the grid's actual occupancy.
func (s *SpatialResource) CanAddChild(child Resource) bool {
	sized, ok := s.placeable(child)
	if !ok {
		return false
	}
	dims := sized.Dimensions()
	_, _, ok = findBestPlacement(s.grid.Clone(), s.toGrid(dims.Length), s.toGrid(dims.Width))
	return ok
}

// AddChild places the child at the best-fit position on the live grid.
// On success the winning rectangle is marked occupied and the placement is
// recorded; on failure (no feasible position, unsized child, or a child
// already attached here) the container is left unchanged.
func (s *SpatialResource) AddChild(child Resource) bool {
	sized, ok := s.placeable(child)
	if !ok {
		return false
	}

	dims := sized.Dimensions()
	cl, cw := s.toGrid(dims.Length), s.toGrid(dims.Width)
	pos, rotated, ok := findBestPlacement(s.grid, cl, cw)
	if !ok {
		return false
	}

	l, w := cl, cw
	if rotated {
		l, w = cw, cl
	}
	s.grid.fill(pos.X, pos.Y, l, w, true)

	s.order = append(s.order, child)
	s.placements[child.ID()] = PlacedItem{
		Dimensions: dims, // pre-rotation dimensions, never swapped
		Position:   pos,
		Rotated:    rotated,
	}
	return true
}

// RemoveChild clears exactly the child's placed rectangle back to unoccupied
// and drops the placement record. Returns false if the child is unknown.
func (s *SpatialResource) RemoveChild(child Resource) bool {
	if child == nil {
		return false
	}
	placed, ok := s.placements[child.ID()]
	if !ok {
		return false
	}

	l := s.toGrid(placed.Dimensions.Length)
	w := s.toGrid(placed.Dimensions.Width)
	if placed.Rotated {
		l, w = w, l
	}
	s.grid.fill(placed.Position.X, placed.Position.Y, l, w, false)

	delete(s.placements, child.ID())
	s.order = slices.DeleteFunc(s.order, func(r Resource) bool {
		return r.ID() == child.ID()
	})
	return true
}

// PlacementOf returns the recorded placement for an attached child.
func (s *SpatialResource) PlacementOf(child Resource) (PlacedItem, bool) {
	if child == nil {
		return PlacedItem{}, false
	}
	p, ok := s.placements[child.ID()]
	return p, ok
}

// PositionOf returns an attached child's anchor position in real units.
func (s *SpatialResource) PositionOf(child Resource) (x, y float64, ok bool) {
	p, ok := s.PlacementOf(child)
	if !ok {
		return 0, 0, false
	}
	return s.fromGrid(p.Position.X), s.fromGrid(p.Position.Y), true
}

// IsFull reports whether no unoccupied cell exists anywhere. This is a coarse
// single-cell check; it does not guarantee larger shapes fit.
func (s *SpatialResource) IsFull() bool { return s.grid.IsFull() }

// IsEmpty reports whether no occupied cell exists.
func (s *SpatialResource) IsEmpty() bool { return s.grid.IsEmpty() }

// Utilization returns occupied cells over total cells.
// A container too small for even one cell reports zero.
func (s *SpatialResource) Utilization() float64 {
	total := s.grid.CellCount()
	if total == 0 {
		return 0
	}
	return float64(s.grid.Occupied()) / float64(total)
}

// GridSnapshot returns a defensive copy of the current occupancy grid for
// display. The engine never serializes the grid; the copy cannot be used to
// mutate the container.
func (s *SpatialResource) GridSnapshot() *Grid {
	return s.grid.Clone()
}

// Description returns a one-line diagnostic summary.
func (s *SpatialResource) Description() string {
	return fmt.Sprintf("%s: %d items (%gx%g %s, grid: %g %s, utilization: %.1f%%)",
		s.typ, len(s.order), s.dims.Length, s.dims.Width, s.unit,
		s.precision, s.unit, s.Utilization()*100)
}

// toGrid converts a real-world measure to whole grid cells, flooring.
// The floor determines which real dimensions round down to cell counts, so
// it must not change: a 2.75" cookie on a 0.5" grid covers 5 cells, not 6.
func (s *SpatialResource) toGrid(v float64) int {
	return int(v / s.precision)
}

// fromGrid converts grid cells back to real-world units.
func (s *SpatialResource) fromGrid(g int) float64 {
	return float64(g) * s.precision
}

// placeable reports whether the child can be considered for placement at all:
// it must be non-nil, sized (an item or a spatial container), and not already
// attached to this container.
func (s *SpatialResource) placeable(child Resource) (Sized, bool) {
	if child == nil {
		return nil, false
	}
	if _, attached := s.placements[child.ID()]; attached {
		return nil, false
	}
	sized, ok := child.(Sized)
	return sized, ok
}

var _ Resource = (*SpatialResource)(nil)
var _ Sized = (*SpatialResource)(nil)
