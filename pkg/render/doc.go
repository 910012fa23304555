// Package render turns kitchen trees into human-readable output.
//
// Three views are provided:
//
//   - [Tree] writes a box-drawing tree of the container hierarchy
//   - [GridView] draws the occupancy grid of one spatial container
//   - [ToDOT] and [RenderSVG] produce Graphviz diagrams of the hierarchy
//
// All views are plain text; callers that want color apply their own styling.
package render
