// Package resource implements the hierarchical spatial and quantity
// resource-allocation engine at the core of boulangerie-milon.
//
// The engine models physical containment in a bakery: an oven holds racks, a
// rack holds cookie sheets, a sheet holds baked items. For each container it
// answers whether and where a new item fits.
//
// # Resource Variants
//
// Resource is a closed set of exactly three variants, created through the
// package constructors:
//
//   - [Item]: a leaf with immutable dimensions and a name
//   - [QuantityResource]: a slot-counted container (an oven holding racks)
//   - [SpatialResource]: a grid-based container that places children on a
//     2D occupancy grid (a sheet holding cookies)
//
// Callers build a containment tree bottom-up by repeatedly attaching children:
//
//	oven, _ := resource.NewQuantity(resource.TypeOven, 2, "racks")
//	rack, _ := resource.NewSpatial(resource.TypeOvenRack, 24, 36, "inches", 0.5)
//	sheet, _ := resource.NewSpatial(resource.TypeCookieSheet, 18, 13, "inches", 0.25)
//	cookie, _ := resource.NewItem(2.75, 2.75, "Chocolate Chip Cookie", "inches")
//
//	oven.AddChild(rack)
//	rack.AddChild(sheet)
//	sheet.AddChild(cookie)
//
// # Placement Search
//
// SpatialResource discretizes its surface into a boolean occupancy grid at a
// configurable precision (real-world edge length per cell). Adding a child
// runs a best-fit search over every free anchor position in both the original
// and the 90°-rotated orientation, scoring each feasible position by waste:
// the unused cell area inside the minimal bounding rectangle enclosing all
// occupied cells after the hypothetical placement. The minimum-waste position
// wins; ties keep the earliest candidate in scan order (unrotated before
// rotated, ascending x then y). Minimizing bounding-box waste keeps occupied
// cells clustered, preserving larger contiguous free regions for later,
// larger candidates.
//
// # Error Model
//
// Only malformed constructor arguments produce errors. All placement and
// capacity failures surface as a plain false from [Resource.AddChild],
// [Resource.CanAddChild], and [Resource.RemoveChild]; they are recoverable
// by retrying elsewhere or freeing space. A failed add never mutates state.
//
// # Concurrency
//
// The engine is single-threaded and synchronous; no operation blocks or does
// I/O. When embedded in a concurrent system, each container must serialize
// structural mutations under one exclusive lock per node. Pure probes
// (CanAddChild, utilization) may run concurrently with each other but not
// with a mutation on the same node.
package resource
