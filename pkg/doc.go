// Package pkg provides the core libraries for Boulangerie kitchen planning.
//
// # Overview
//
// Boulangerie models a bakery kitchen as a tree of resources: ovens hold
// racks, racks hold cookie sheets, sheets hold cookies. The pkg directory is
// organized by concern:
//
//  1. [resource] - The allocation engine (containers, items, placement search)
//  2. [manifest] - TOML kitchen definitions and tree construction
//  3. [plan] - Orchestration (load → build → place)
//  4. [render] - Text trees, occupancy grids, Graphviz diagrams
//  5. [errors] - Structured error codes shared by CLI and API
//  6. [observability] - Optional instrumentation hooks
//
// # Architecture
//
// The typical data flow:
//
//	kitchen.toml
//	     ↓
//	manifest.Load / Manifest.Build
//	     ↓
//	plan.Runner (places declared items)
//	     ↓
//	render / internal/api / internal/cli
//
// The engine in [resource] is pure: it never logs, never touches the
// filesystem, and reports placement failures as booleans rather than errors.
// Everything above it composes through the [plan.Runner].
package pkg
