package resource

import (
	"testing"
)

func mustSpatial(t *testing.T, typ Type, length, width float64, precision float64) *SpatialResource {
	t.Helper()
	s, err := NewSpatial(typ, length, width, "inches", precision)
	if err != nil {
		t.Fatalf("NewSpatial(%v, %v): %v", length, width, err)
	}
	return s
}

func mustItem(t *testing.T, length, width float64, name string) *Item {
	t.Helper()
	it, err := NewItem(length, width, name, "inches")
	if err != nil {
		t.Fatalf("NewItem(%v, %v): %v", length, width, err)
	}
	return it
}

func TestSpatialFirstPlacement(t *testing.T) {
	sheet := mustSpatial(t, TypeCookieSheet, 4, 4, 1.0)
	cookie := mustItem(t, 2, 2, "cookie-1")

	if !sheet.AddChild(cookie) {
		t.Fatal("AddChild should succeed on an empty 4x4 grid")
	}

	placed, ok := sheet.PlacementOf(cookie)
	if !ok {
		t.Fatal("PlacementOf should find the attached child")
	}
	if placed.Position != (Position{X: 0, Y: 0}) {
		t.Errorf("first placement position = %+v, want (0,0)", placed.Position)
	}
	if placed.Rotated {
		t.Error("square item should not be rotated (unrotated orientation wins ties)")
	}
	if placed.Dimensions != (Dimensions{Length: 2, Width: 2}) {
		t.Errorf("stored dimensions = %v, want 2x2", placed.Dimensions)
	}
	if got, want := sheet.Utilization(), 0.25; got != want {
		t.Errorf("utilization = %v, want %v", got, want)
	}
}

func TestSpatialSecondPlacementMinimizesWaste(t *testing.T) {
	sheet := mustSpatial(t, TypeCookieSheet, 4, 4, 1.0)
	first := mustItem(t, 2, 2, "cookie-1")
	second := mustItem(t, 2, 2, "cookie-2")

	if !sheet.AddChild(first) || !sheet.AddChild(second) {
		t.Fatal("both 2x2 items should fit on a 4x4 grid")
	}

	placed, _ := sheet.PlacementOf(second)
	// (0,2) is the first zero-waste candidate in ascending x,y scan order.
	if placed.Position != (Position{X: 0, Y: 2}) {
		t.Errorf("second placement position = %+v, want (0,2)", placed.Position)
	}
	if got, want := sheet.Utilization(), 0.5; got != want {
		t.Errorf("utilization = %v, want %v", got, want)
	}
}

func TestSpatialNoFitLeavesStateUnchanged(t *testing.T) {
	sheet := mustSpatial(t, TypeCookieSheet, 4, 4, 1.0)
	if !sheet.AddChild(mustItem(t, 2, 2, "cookie-1")) || !sheet.AddChild(mustItem(t, 2, 2, "cookie-2")) {
		t.Fatal("setup adds should succeed")
	}

	// The free space is two separate 2x2 blocks at (2,0) and (2,2): no
	// contiguous 3x3 region exists in either orientation.
	before := sheet.GridSnapshot()
	big := mustItem(t, 3, 3, "tray")

	if sheet.CanAddChild(big) {
		t.Error("CanAddChild should report no fit for a 3x3 item")
	}
	if sheet.AddChild(big) {
		t.Fatal("AddChild should fail for a 3x3 item")
	}
	if got, want := sheet.Utilization(), 0.5; got != want {
		t.Errorf("utilization after failed add = %v, want unchanged %v", got, want)
	}
	if !sheet.GridSnapshot().Equal(before) {
		t.Error("failed add must leave the grid cell-for-cell unchanged")
	}
	if _, ok := sheet.PlacementOf(big); ok {
		t.Error("failed add must not record a placement")
	}
}

func TestSpatialRemoveRestoresGrid(t *testing.T) {
	sheet := mustSpatial(t, TypeCookieSheet, 4, 4, 1.0)
	first := mustItem(t, 2, 2, "cookie-1")

	empty := sheet.GridSnapshot()
	if !sheet.AddChild(first) {
		t.Fatal("add should succeed")
	}
	if !sheet.RemoveChild(first) {
		t.Fatal("remove of an attached child should succeed")
	}
	if !sheet.GridSnapshot().Equal(empty) {
		t.Error("remove must restore the grid to its exact prior state")
	}
	if !sheet.IsEmpty() {
		t.Error("sheet should be empty after removing its only child")
	}
	if len(sheet.Children()) != 0 {
		t.Error("children should be empty after removal")
	}
}

func TestSpatialSearchExploresFreedRegion(t *testing.T) {
	sheet := mustSpatial(t, TypeCookieSheet, 4, 4, 1.0)
	first := mustItem(t, 2, 2, "cookie-1")
	second := mustItem(t, 2, 2, "cookie-2")
	if !sheet.AddChild(first) || !sheet.AddChild(second) {
		t.Fatal("setup adds should succeed")
	}

	if !sheet.RemoveChild(first) {
		t.Fatal("remove should succeed")
	}
	if got, want := sheet.Utilization(), 0.25; got != want {
		t.Errorf("utilization after remove = %v, want %v", got, want)
	}

	// The freed 2x2 region at (0,0) is now the best (zero-waste) placement.
	third := mustItem(t, 2, 2, "cookie-3")
	if !sheet.AddChild(third) {
		t.Fatal("add into freed region should succeed")
	}
	placed, _ := sheet.PlacementOf(third)
	if placed.Position != (Position{X: 0, Y: 0}) {
		t.Errorf("placement after free = %+v, want freed region (0,0)", placed.Position)
	}

	// Once both original items are gone, the previously failing 3x3 fits.
	if !sheet.RemoveChild(third) || !sheet.RemoveChild(second) {
		t.Fatal("removals should succeed")
	}
	if !sheet.AddChild(mustItem(t, 3, 3, "tray")) {
		t.Error("3x3 should fit once contiguous space reopens")
	}
}

func TestSpatialRotation(t *testing.T) {
	// A 4x2 surface cannot hold a 2-long, 4-wide item unrotated (only two
	// columns), but the rotated orientation spans the full grid.
	rack := mustSpatial(t, TypeOvenRack, 4, 2, 1.0)
	pan := mustItem(t, 2, 4, "pan")

	if !rack.AddChild(pan) {
		t.Fatal("rotated placement should succeed")
	}
	placed, _ := rack.PlacementOf(pan)
	if !placed.Rotated {
		t.Fatal("placement should be rotated")
	}
	// Stored dimensions stay pre-rotation.
	if placed.Dimensions != (Dimensions{Length: 2, Width: 4}) {
		t.Errorf("stored dimensions = %v, want pre-rotation 2x4", placed.Dimensions)
	}
	// Occupied extents are the swapped dimensions: the grid is now full.
	if !rack.IsFull() {
		t.Error("4x2 grid should be fully occupied by the rotated 2x4 item")
	}

	// Removal must apply the stored rotation to clear the true extents.
	if !rack.RemoveChild(pan) {
		t.Fatal("remove should succeed")
	}
	if !rack.IsEmpty() {
		t.Error("grid should be empty after removing the rotated item")
	}
}

func TestSpatialBoundaryOversized(t *testing.T) {
	sheet := mustSpatial(t, TypeCookieSheet, 4, 4, 1.0)
	before := sheet.GridSnapshot()
	huge := mustItem(t, 5, 5, "roast")

	if sheet.CanAddChild(huge) {
		t.Error("CanAddChild should fail when footprint exceeds the grid in both orientations")
	}
	if sheet.AddChild(huge) {
		t.Fatal("AddChild should fail when footprint exceeds the grid in both orientations")
	}
	if !sheet.GridSnapshot().Equal(before) {
		t.Error("failed add must not mutate the grid")
	}
}

func TestSpatialCanAddThenAddContract(t *testing.T) {
	sheet := mustSpatial(t, TypeCookieSheet, 4, 4, 1.0)
	items := []*Item{
		mustItem(t, 2, 2, "a"),
		mustItem(t, 2, 2, "b"),
		mustItem(t, 2, 2, "c"),
		mustItem(t, 2, 2, "d"),
		mustItem(t, 2, 2, "e"),
	}

	for i, it := range items {
		can := sheet.CanAddChild(it)
		did := sheet.AddChild(it)
		if can != did {
			t.Fatalf("item %d: CanAddChild=%v but AddChild=%v", i, can, did)
		}
	}
	// Four 2x2 items saturate a 4x4 grid; the fifth must have failed.
	if got := len(sheet.Children()); got != 4 {
		t.Errorf("attached children = %d, want 4", got)
	}
	if !sheet.IsFull() {
		t.Error("sheet should be full")
	}
}

func TestSpatialMonotonicUtilization(t *testing.T) {
	sheet := mustSpatial(t, TypeCookieSheet, 6, 6, 1.0)
	prev := sheet.Utilization()
	sizes := []Dimensions{{2, 2}, {1, 3}, {3, 1}, {2, 1}, {1, 1}}

	for i, d := range sizes {
		it := mustItem(t, d.Length, d.Width, "item")
		if !sheet.AddChild(it) {
			t.Fatalf("add %d (%v) should succeed", i, d)
		}
		cur := sheet.Utilization()
		if cur < prev {
			t.Fatalf("utilization decreased after successful add: %v -> %v", prev, cur)
		}
		prev = cur
	}
}

func TestSpatialNoOverlap(t *testing.T) {
	sheet := mustSpatial(t, TypeCookieSheet, 8, 8, 1.0)
	var attached []*Item
	sizes := []Dimensions{{3, 2}, {2, 2}, {4, 1}, {2, 3}, {1, 1}, {2, 2}}
	for _, d := range sizes {
		it := mustItem(t, d.Length, d.Width, "item")
		if sheet.AddChild(it) {
			attached = append(attached, it)
		}
	}
	if len(attached) < 4 {
		t.Fatalf("expected most items to fit, got %d", len(attached))
	}
	// Remove one from the middle and add another to churn the grid.
	if !sheet.RemoveChild(attached[1]) {
		t.Fatal("remove should succeed")
	}
	attached = append(attached[:1], attached[2:]...)
	extra := mustItem(t, 2, 2, "extra")
	if sheet.AddChild(extra) {
		attached = append(attached, extra)
	}

	// Every occupied cell must be covered by exactly one child's rectangle.
	counts := make(map[Position]int)
	for _, it := range attached {
		p, ok := sheet.PlacementOf(it)
		if !ok {
			t.Fatalf("missing placement for attached item")
		}
		l := int(p.Dimensions.Length)
		w := int(p.Dimensions.Width)
		if p.Rotated {
			l, w = w, l
		}
		for x := p.Position.X; x < p.Position.X+l; x++ {
			for y := p.Position.Y; y < p.Position.Y+w; y++ {
				counts[Position{x, y}]++
			}
		}
	}
	grid := sheet.GridSnapshot()
	occupied := 0
	for pos, n := range counts {
		if n != 1 {
			t.Errorf("cell %+v covered by %d rectangles", pos, n)
		}
		if !grid.At(pos.X, pos.Y) {
			t.Errorf("cell %+v covered by a rectangle but not occupied on the grid", pos)
		}
		occupied++
	}
	if grid.Occupied() != occupied {
		t.Errorf("grid has %d occupied cells, rectangles cover %d", grid.Occupied(), occupied)
	}
}

func TestSpatialWasteTieBreak(t *testing.T) {
	sheet := mustSpatial(t, TypeCookieSheet, 4, 4, 1.0)
	if !sheet.AddChild(mustItem(t, 2, 2, "block")) {
		t.Fatal("setup add should succeed")
	}

	// For a 1x1 candidate, (0,2) and (2,0) both extend the bounding box by
	// one waste cell; the ascending x,y scan finds (0,2) first and ties keep
	// the earliest candidate.
	crumb := mustItem(t, 1, 1, "crumb")
	if !sheet.AddChild(crumb) {
		t.Fatal("1x1 add should succeed")
	}
	placed, _ := sheet.PlacementOf(crumb)
	if placed.Position != (Position{X: 0, Y: 2}) {
		t.Errorf("tie-break position = %+v, want (0,2)", placed.Position)
	}
}

func TestSpatialFractionalPrecision(t *testing.T) {
	// An 18x13 sheet at quarter-inch precision discretizes to 72x52 cells.
	sheet := mustSpatial(t, TypeCookieSheet, 18, 13, 0.25)
	grid := sheet.GridSnapshot()
	if grid.Rows() != 72 || grid.Cols() != 52 {
		t.Fatalf("grid = %dx%d, want 72x52", grid.Rows(), grid.Cols())
	}

	// A 2.75" cookie covers floor(2.75/0.25) = 11 cells per side.
	cookie := mustItem(t, 2.75, 2.75, "Chocolate Chip Cookie")
	if !sheet.AddChild(cookie) {
		t.Fatal("cookie should fit on an empty sheet")
	}
	if got, want := sheet.GridSnapshot().Occupied(), 11*11; got != want {
		t.Errorf("occupied cells = %d, want %d", got, want)
	}

	// The flooring conversion also governs real-position reporting.
	x, y, ok := sheet.PositionOf(cookie)
	if !ok || x != 0 || y != 0 {
		t.Errorf("PositionOf = (%v, %v, %v), want (0, 0, true)", x, y, ok)
	}
}

func TestSpatialSubCellFootprint(t *testing.T) {
	// A child smaller than one cell floors to a zero-cell footprint: it is
	// accepted but occupies nothing. Round-trip still holds.
	sheet := mustSpatial(t, TypeCookieSheet, 4, 4, 1.0)
	sprinkle := mustItem(t, 0.4, 0.4, "sprinkle")

	if !sheet.AddChild(sprinkle) {
		t.Fatal("sub-cell item should be accepted")
	}
	if got := sheet.GridSnapshot().Occupied(); got != 0 {
		t.Errorf("sub-cell item occupies %d cells, want 0", got)
	}
	if !sheet.RemoveChild(sprinkle) {
		t.Error("remove of sub-cell item should succeed")
	}
}

func TestSpatialRejectsUnsizedAndUnknown(t *testing.T) {
	sheet := mustSpatial(t, TypeCookieSheet, 4, 4, 1.0)
	bowlRack, err := NewQuantity(TypeMixingBowl, 3, "bowls")
	if err != nil {
		t.Fatal(err)
	}

	// Quantity containers have no footprint and cannot be placed on a grid.
	if sheet.CanAddChild(bowlRack) || sheet.AddChild(bowlRack) {
		t.Error("spatial container must reject unsized children")
	}
	if sheet.CanAddChild(nil) || sheet.AddChild(nil) {
		t.Error("spatial container must reject nil children")
	}

	// Removing an untracked child reports false, not an error.
	stranger := mustItem(t, 1, 1, "stranger")
	if sheet.RemoveChild(stranger) {
		t.Error("remove of an unknown child should return false")
	}
	if sheet.RemoveChild(nil) {
		t.Error("remove of nil should return false")
	}
}

func TestSpatialRejectsDoubleAttach(t *testing.T) {
	sheet := mustSpatial(t, TypeCookieSheet, 8, 8, 1.0)
	cookie := mustItem(t, 2, 2, "cookie")
	if !sheet.AddChild(cookie) {
		t.Fatal("first add should succeed")
	}
	if sheet.CanAddChild(cookie) {
		t.Error("CanAddChild must reject an already-attached child")
	}
	if sheet.AddChild(cookie) {
		t.Error("AddChild must reject an already-attached child")
	}
	if got := len(sheet.Children()); got != 1 {
		t.Errorf("children = %d, want 1", got)
	}
}

func TestSpatialNestedContainers(t *testing.T) {
	// A spatial container is itself sized and can be placed on a larger one.
	rack := mustSpatial(t, TypeOvenRack, 24, 36, 0.5)
	sheet := mustSpatial(t, TypeCookieSheet, 18, 13, 0.25)

	if !rack.AddChild(sheet) {
		t.Fatal("sheet should fit on the rack")
	}
	placed, ok := rack.PlacementOf(sheet)
	if !ok {
		t.Fatal("rack should track the sheet's placement")
	}
	// Footprint on the rack's half-inch grid: 36x26 cells.
	if placed.Dimensions != (Dimensions{Length: 18, Width: 13}) {
		t.Errorf("stored dimensions = %v, want 18x13", placed.Dimensions)
	}
	if got, want := rack.GridSnapshot().Occupied(), 36*26; got != want {
		t.Errorf("occupied cells on rack = %d, want %d", got, want)
	}
}

func TestSpatialChildrenOrder(t *testing.T) {
	sheet := mustSpatial(t, TypeCookieSheet, 8, 8, 1.0)
	names := []string{"a", "b", "c"}
	for _, n := range names {
		if !sheet.AddChild(mustItem(t, 2, 2, n)) {
			t.Fatalf("add %q should succeed", n)
		}
	}
	children := sheet.Children()
	if len(children) != 3 {
		t.Fatalf("children = %d, want 3", len(children))
	}
	for i, n := range names {
		if got := children[i].(*Item).Name(); got != n {
			t.Errorf("children[%d] = %q, want insertion order %q", i, got, n)
		}
	}
}

func TestNewSpatialValidation(t *testing.T) {
	tests := []struct {
		name      string
		length    float64
		width     float64
		precision float64
	}{
		{"zero length", 0, 4, 1},
		{"negative width", 4, -1, 1},
		{"zero precision", 4, 4, 0},
		{"negative precision", 4, 4, -0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewSpatial(TypeCookieSheet, tt.length, tt.width, "inches", tt.precision); err == nil {
				t.Error("construction should fail")
			}
		})
	}
}
