package resource

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/mcelhennyi/boulangerie-milon/pkg/errors"
)

// QuantityResource is a slot-counted container: it holds up to a fixed number
// of children with no geometry involved. Children are kept in insertion
// order; slot order is insertion order. Any resource variant may be attached.
type QuantityResource struct {
	id       uuid.UUID
	typ      Type
	maxItems int
	unit     string
	children []Resource
}

// NewQuantity creates a slot-counted container. The capacity is fixed at
// construction; a non-positive capacity fails construction.
func NewQuantity(typ Type, maxItems int, unit string) (*QuantityResource, error) {
	if err := errors.ValidateCapacity(maxItems); err != nil {
		return nil, err
	}
	return &QuantityResource{
		id:       uuid.New(),
		typ:      typ,
		maxItems: maxItems,
		unit:     unit,
	}, nil
}

// ID returns the container's stable identity handle.
func (q *QuantityResource) ID() uuid.UUID { return q.id }

// Type returns the container's label.
func (q *QuantityResource) Type() Type { return q.typ }

// MaxItems returns the fixed slot capacity.
func (q *QuantityResource) MaxItems() int { return q.maxItems }

// Unit returns the slot unit label (e.g. "racks").
func (q *QuantityResource) Unit() string { return q.unit }

// Children returns the attached children in slot order.
func (q *QuantityResource) Children() []Resource {
	return slices.Clone(q.children)
}

// CanAddChild reports whether a slot is free for the child.
// An already-attached child is rejected: attaching the same child twice would
// break single ownership and make removal ambiguous.
func (q *QuantityResource) CanAddChild(child Resource) bool {
	if child == nil || q.indexOf(child) >= 0 {
		return false
	}
	return len(q.children) < q.maxItems
}

// AddChild appends the child to the end of the slot sequence.
// It succeeds iff a slot is free.
func (q *QuantityResource) AddChild(child Resource) bool {
	if !q.CanAddChild(child) {
		return false
	}
	q.children = append(q.children, child)
	return true
}

// RemoveChild removes the child's sole occurrence.
// Returns false if the child is not attached.
func (q *QuantityResource) RemoveChild(child Resource) bool {
	if child == nil {
		return false
	}
	i := q.indexOf(child)
	if i < 0 {
		return false
	}
	q.children = slices.Delete(q.children, i, i+1)
	return true
}

// IsFull reports whether every slot is occupied.
func (q *QuantityResource) IsFull() bool {
	return len(q.children) >= q.maxItems
}

// IsEmpty reports whether no slot is occupied.
func (q *QuantityResource) IsEmpty() bool {
	return len(q.children) == 0
}

// Utilization returns occupied slots over capacity.
func (q *QuantityResource) Utilization() float64 {
	return float64(len(q.children)) / float64(q.maxItems)
}

// Description returns a one-line diagnostic summary.
func (q *QuantityResource) Description() string {
	return fmt.Sprintf("%s: %d %s (capacity: %d %s, utilization: %.1f%%)",
		q.typ, len(q.children), q.unit, q.maxItems, q.unit, q.Utilization()*100)
}

func (q *QuantityResource) indexOf(child Resource) int {
	return slices.IndexFunc(q.children, func(r Resource) bool {
		return r.ID() == child.ID()
	})
}

var _ Resource = (*QuantityResource)(nil)
