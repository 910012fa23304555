// Package manifest loads kitchen definitions from TOML files.
//
// A manifest describes the container hierarchy of a kitchen and the batch of
// items to place into it. Containers are declared as [[resources]] tables and
// items as [[items]] tables:
//
//	[kitchen]
//	name = "main"
//
//	[[resources]]
//	name = "oven"
//	type = "oven"
//	capacity = 4
//	unit = "racks"
//
//	[[resources]]
//	name = "rack-1"
//	type = "oven_rack"
//	parent = "oven"
//	length = 24.0
//	width = 18.0
//	precision = 1.0
//	unit = "inches"
//
//	[[items]]
//	name = "chocolate-chip"
//	into = "rack-1"
//	length = 3.0
//	width = 3.0
//	count = 6
//
// A resource with any of length, width, or precision set is a spatial
// container; one with capacity set is a quantity container. Parents must be
// declared before the resources that reference them, and exactly one resource
// must have no parent (the root).
//
// [Manifest.Build] constructs the container tree. Items are not attached at
// build time; placing them is the planner's job.
package manifest
