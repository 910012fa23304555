package resource

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// Type is a closed label enumeration for bakery resources. The engine stores
// the type but never interprets it beyond distinguishing the Item leaf from
// containers; it exists for display and for manifest round-trips.
type Type string

// Known resource types.
const (
	TypeOven            Type = "oven"
	TypeOvenRack        Type = "oven_rack"
	TypeCookieSheet     Type = "cookie_sheet"
	TypeMixingBowl      Type = "mixing_bowl"
	TypeItem            Type = "item"
	TypeStandMixer      Type = "stand_mixer"
	TypeWorkspace       Type = "workspace"
	TypeRefrigerator    Type = "refrigerator"
	TypeProofingCabinet Type = "proofing_cabinet"
)

// KnownTypes lists every valid resource type label.
var KnownTypes = []Type{
	TypeOven,
	TypeOvenRack,
	TypeCookieSheet,
	TypeMixingBowl,
	TypeItem,
	TypeStandMixer,
	TypeWorkspace,
	TypeRefrigerator,
	TypeProofingCabinet,
}

// ParseType converts a string label to a Type.
// Returns false if the label is not a known resource type.
func ParseType(s string) (Type, bool) {
	for _, t := range KnownTypes {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// Resource is the shared contract of the three engine variants: [Item],
// [QuantityResource], and [SpatialResource]. The set is closed - model new
// behavior by composing these variants, not by adding implementations.
//
// Contract: if CanAddChild(c) returns true, an immediately following
// AddChild(c) must also return true, provided no other mutation intervenes.
//
// A child, once attached to one container, must not be attached to any other
// container. The engine does not police this (children carry no parent
// pointer); callers own the single-ownership discipline.
type Resource interface {
	// ID returns the stable identity handle assigned at construction.
	// Lookups and removals resolve children by this identity, never by value.
	ID() uuid.UUID

	// Type returns the resource's label.
	Type() Type

	// Children returns the attached children in insertion order.
	// The returned slice is a copy; mutating it does not affect the container.
	Children() []Resource

	// CanAddChild reports whether AddChild would succeed right now.
	// It is a pure probe and never mutates state.
	CanAddChild(child Resource) bool

	// AddChild attaches a child. It returns true and mutates state iff the
	// child fits; on false the container is left byte-for-byte unchanged.
	AddChild(child Resource) bool

	// RemoveChild detaches a child previously attached with AddChild.
	// Returns false if the child is not tracked by this container.
	// AddChild and RemoveChild are exact inverses.
	RemoveChild(child Resource) bool

	// IsFull reports whether the container has no usable free capacity.
	// For spatial containers this is a coarse single-cell check; it does not
	// guarantee that any larger shape fits.
	IsFull() bool

	// IsEmpty reports whether the container holds no occupants.
	IsEmpty() bool

	// Utilization returns the used fraction of capacity in [0, 1].
	Utilization() float64

	// Description returns a one-line diagnostic summary of the current state.
	// The format is for human inspection and is not stable.
	Description() string
}

// Dump writes the resource tree rooted at r to w, one node per line, each
// node's description indented by depth. Diagnostic only.
func Dump(w io.Writer, r Resource) {
	dump(w, r, 0)
}

func dump(w io.Writer, r Resource, indent int) {
	fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", indent), r.Description())
	for _, child := range r.Children() {
		dump(w, child, indent+2)
	}
}

// Walk visits r and every descendant in depth-first, insertion order,
// calling fn with each resource and its depth. Traversal stops early if fn
// returns false.
func Walk(r Resource, fn func(r Resource, depth int) bool) {
	walk(r, 0, fn)
}

func walk(r Resource, depth int, fn func(Resource, int) bool) bool {
	if !fn(r, depth) {
		return false
	}
	for _, child := range r.Children() {
		if !walk(child, depth+1, fn) {
			return false
		}
	}
	return true
}

// Find returns the first resource in the tree rooted at r with the given ID,
// searching depth-first in insertion order.
func Find(r Resource, id uuid.UUID) (Resource, bool) {
	var found Resource
	Walk(r, func(n Resource, _ int) bool {
		if n.ID() == id {
			found = n
			return false
		}
		return true
	})
	return found, found != nil
}
