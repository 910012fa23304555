// Package plan provides the core planning pipeline for Boulangerie.
//
// This package implements the complete load → build → place pipeline that can
// be used by CLI and API components. By centralizing this logic, we ensure
// consistent behavior across all entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Parse the kitchen manifest from TOML
//  2. Build: Construct the container tree
//  3. Place: Attach each declared item batch to its target container
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := plan.NewRunner(logger)
//	result, err := runner.Execute(ctx, plan.Options{ManifestPath: "kitchen.toml"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range result.Placed {
//	    fmt.Println(p.Item, "->", p.Into)
//	}
package plan

import (
	"time"

	"github.com/mcelhennyi/boulangerie-milon/pkg/errors"
	"github.com/mcelhennyi/boulangerie-milon/pkg/manifest"
)

// Rejection reasons reported in [Rejection.Reason].
const (
	ReasonNoCapacity = "capacity exhausted"
	ReasonNoFit      = "no placement found"
)

// Options contains all configuration for a planning run.
type Options struct {
	// ManifestPath names the TOML manifest to load. Ignored when Manifest
	// is set.
	ManifestPath string

	// Manifest is a pre-parsed manifest, used instead of loading from disk.
	Manifest *manifest.Manifest
}

// Validate checks that the options name a manifest source.
func (o *Options) Validate() error {
	if o.ManifestPath == "" && o.Manifest == nil {
		return errors.New(errors.ErrCodeInvalidManifest, "either ManifestPath or Manifest is required")
	}
	return nil
}

// Result contains the outputs of a planning run.
type Result struct {
	// Kitchen is the built container tree with all placed items attached.
	Kitchen *manifest.Kitchen

	// Placed lists every successfully placed item in placement order.
	Placed []Placement

	// Rejected lists every item that could not be placed.
	Rejected []Rejection

	// Utilization maps each declared resource name to its fill ratio.
	Utilization map[string]float64

	// Stats contains timing and size information.
	Stats Stats
}

// Placement records one successfully placed item.
type Placement struct {
	Item    string
	Into    string
	X       float64 // real-unit offset within a spatial parent
	Y       float64
	Rotated bool
	Spatial bool // false for quantity parents, where X/Y/Rotated are meaningless
}

// Rejection records one item that did not fit.
type Rejection struct {
	Item   string
	Into   string
	Reason string
}

// Stats contains planning run statistics.
type Stats struct {
	Resources int
	Items     int
	LoadTime  time.Duration
	PlaceTime time.Duration
}
