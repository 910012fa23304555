package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mcelhennyi/boulangerie-milon/pkg/resource"
)

// NameFunc maps a resource to its display name. A nil or empty result falls
// back to the resource's own description.
type NameFunc func(resource.Resource) string

// Tree writes a box-drawing tree of the container hierarchy rooted at r.
// nameOf may be nil; named resources are prefixed with their name.
func Tree(w io.Writer, r resource.Resource, nameOf NameFunc) {
	fmt.Fprintln(w, label(r, nameOf))
	writeChildren(w, r, "", nameOf)
}

func writeChildren(w io.Writer, r resource.Resource, prefix string, nameOf NameFunc) {
	children := r.Children()
	for i, child := range children {
		connector, childPrefix := "├── ", prefix+"│   "
		if i == len(children)-1 {
			connector, childPrefix = "└── ", prefix+"    "
		}
		fmt.Fprintf(w, "%s%s%s\n", prefix, connector, label(child, nameOf))
		writeChildren(w, child, childPrefix, nameOf)
	}
}

func label(r resource.Resource, nameOf NameFunc) string {
	desc := r.Description()
	if nameOf != nil {
		if name := nameOf(r); name != "" {
			return fmt.Sprintf("[%s] %s", name, desc)
		}
	}
	return desc
}

// Grid view glyphs.
const (
	glyphOccupied = '#'
	glyphFree     = '.'
)

// GridView draws the occupancy grid of a spatial container, one text line per
// grid row. Occupied cells render as '#', free cells as '.'.
func GridView(s *resource.SpatialResource) string {
	g := s.GridSnapshot()
	var b strings.Builder
	for x := 0; x < g.Rows(); x++ {
		for y := 0; y < g.Cols(); y++ {
			if g.At(x, y) {
				b.WriteRune(glyphOccupied)
			} else {
				b.WriteRune(glyphFree)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
