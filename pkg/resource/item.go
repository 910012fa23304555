package resource

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mcelhennyi/boulangerie-milon/pkg/errors"
)

// Item is the leaf variant: a terminal payload with immutable dimensions and
// a display name. Items hold no children. They report full and empty at the
// same time - a leaf has no usable free capacity but also holds no occupants.
type Item struct {
	id   uuid.UUID
	dims Dimensions
	name string
	unit string
}

// NewItem creates a leaf item. Non-positive dimensions fail construction.
func NewItem(length, width float64, name, unit string) (*Item, error) {
	if err := errors.ValidateDimensions(length, width); err != nil {
		return nil, err
	}
	if err := errors.ValidateResourceName(name); err != nil {
		return nil, err
	}
	return &Item{
		id:   uuid.New(),
		dims: Dimensions{Length: length, Width: width},
		name: name,
		unit: unit,
	}, nil
}

// ID returns the item's stable identity handle.
func (it *Item) ID() uuid.UUID { return it.id }

// Type returns TypeItem.
func (it *Item) Type() Type { return TypeItem }

// Name returns the item's display name.
func (it *Item) Name() string { return it.name }

// Unit returns the unit label of the item's dimensions.
func (it *Item) Unit() string { return it.unit }

// Dimensions returns the item's real-world footprint.
func (it *Item) Dimensions() Dimensions { return it.dims }

// Children returns nil: items are terminal.
func (it *Item) Children() []Resource { return nil }

// CanAddChild always returns false.
func (it *Item) CanAddChild(Resource) bool { return false }

// AddChild always returns false.
func (it *Item) AddChild(Resource) bool { return false }

// RemoveChild always returns false.
func (it *Item) RemoveChild(Resource) bool { return false }

// IsFull returns true: a leaf has no free capacity.
func (it *Item) IsFull() bool { return true }

// IsEmpty returns true: a leaf holds no occupants.
func (it *Item) IsEmpty() bool { return true }

// Utilization returns 1.
func (it *Item) Utilization() float64 { return 1.0 }

// Description returns a one-line diagnostic summary.
func (it *Item) Description() string {
	return fmt.Sprintf("%s: %gx%g %s", it.name, it.dims.Length, it.dims.Width, it.unit)
}

var _ Resource = (*Item)(nil)
var _ Sized = (*Item)(nil)
