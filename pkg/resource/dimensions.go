package resource

import "fmt"

// Dimensions describes the real-world footprint of a rectangular surface or
// item. Length runs along the grid's x axis, width along y. Both are in the
// owner's unit (inches, centimeters - the engine never interprets units).
type Dimensions struct {
	Length float64
	Width  float64
}

// Area returns length times width.
func (d Dimensions) Area() float64 {
	return d.Length * d.Width
}

// String returns the dimensions as "LxW".
func (d Dimensions) String() string {
	return fmt.Sprintf("%gx%g", d.Length, d.Width)
}
