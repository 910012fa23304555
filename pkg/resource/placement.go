package resource

// Position is an anchor cell on a spatial container's grid.
type Position struct {
	X int
	Y int
}

// PlacedItem records one child's placement within its parent's grid.
// Dimensions always holds the child's original pre-rotation length and width
// in real units, never swapped; Rotated says whether the occupied rectangle's
// grid extents are those dimensions with length and width exchanged.
type PlacedItem struct {
	Dimensions Dimensions
	Position   Position
	Rotated    bool
}

// orientation is one of the two rotation candidates tried by the search.
type orientation struct {
	l, w    int
	rotated bool
}

// findBestPlacement searches g for the minimum-waste position of a footprint
// of cl×cw cells and returns the winning anchor and orientation, or ok=false
// when no feasible position exists in either orientation.
//
// The search tries the unrotated orientation first, then the rotated one,
// scanning anchors in ascending x then ascending y. Each feasible position is
// scored by hypothetically occupying the rectangle on a copy of the grid and
// measuring the waste of the resulting bounding box; a strictly smaller waste
// replaces the current best, so ties keep the earliest candidate in scan
// order. When cl == cw the two orientations are identical and the unrotated
// one wins.
func findBestPlacement(g *Grid, cl, cw int) (pos Position, rotated bool, ok bool) {
	minWaste := -1

	for _, o := range []orientation{
		{l: cl, w: cw, rotated: false},
		{l: cw, w: cl, rotated: true},
	} {
		for x := 0; x+o.l <= g.rows; x++ {
			for y := 0; y+o.w <= g.cols; y++ {
				if !g.vacant(x, y, o.l, o.w) {
					continue
				}

				scratch := g.Clone()
				scratch.fill(x, y, o.l, o.w, true)
				waste := scratch.boundingWaste()

				if minWaste < 0 || waste < minWaste {
					minWaste = waste
					pos = Position{X: x, Y: y}
					rotated = o.rotated
					ok = true
				}
			}
		}
	}

	return pos, rotated, ok
}
