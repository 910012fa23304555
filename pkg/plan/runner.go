package plan

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mcelhennyi/boulangerie-milon/pkg/manifest"
	"github.com/mcelhennyi/boulangerie-milon/pkg/observability"
	"github.com/mcelhennyi/boulangerie-milon/pkg/resource"
)

// Runner encapsulates planning runs. Both CLI and API use this to avoid
// duplicating load and placement logic.
//
// The Runner is stateless except for the logger - it doesn't store run
// results. Multiple goroutines can safely use the same Runner with different
// options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, the default logger is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → build → place pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	loadStart := time.Now()
	m := opts.Manifest
	if m == nil {
		var err error
		m, err = manifest.Load(opts.ManifestPath)
		if err != nil {
			observability.Plan().OnLoadComplete(ctx, opts.ManifestPath,
				0, 0, time.Since(loadStart), err)
			return nil, fmt.Errorf("load: %w", err)
		}
	}

	k, err := m.Build()
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	loadTime := time.Since(loadStart)
	observability.Plan().OnLoadComplete(ctx, opts.ManifestPath,
		len(m.Resources), len(m.Items), loadTime, nil)

	r.Logger.Info("built kitchen",
		"name", k.Name,
		"resources", len(m.Resources),
		"items", len(m.Items),
		"duration", loadTime)

	result, err := r.Place(ctx, k)
	if err != nil {
		return nil, err
	}
	result.Stats.Resources = len(m.Resources)
	result.Stats.LoadTime = loadTime
	return result, nil
}

// Place attaches every item batch declared by the kitchen to its target
// container, in declaration order. Placement failures are recorded as
// rejections, not errors; the run only fails when the context is canceled.
func (r *Runner) Place(ctx context.Context, k *manifest.Kitchen) (*Result, error) {
	result := &Result{Kitchen: k}

	placeStart := time.Now()
	for _, spec := range k.Items {
		target, ok := k.Lookup(spec.Into)
		if !ok {
			// Validated at parse time; a miss here means the kitchen was
			// built from a different manifest.
			return nil, fmt.Errorf("place: unknown target %q", spec.Into)
		}

		for i := 1; i <= spec.Count; i++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			result.Stats.Items++

			name := spec.Name
			if spec.Count > 1 {
				name = fmt.Sprintf("%s-%d", spec.Name, i)
			}
			item, err := resource.NewItem(spec.Length, spec.Width, name, spec.Unit)
			if err != nil {
				return nil, fmt.Errorf("place: item %q: %w", name, err)
			}

			if !target.AddChild(item) {
				reason := ReasonNoFit
				if _, quantity := target.(*resource.QuantityResource); quantity {
					reason = ReasonNoCapacity
				}
				result.Rejected = append(result.Rejected, Rejection{
					Item:   name,
					Into:   spec.Into,
					Reason: reason,
				})
				observability.Placement().OnReject(ctx, spec.Into, name)
				r.Logger.Warn("item rejected", "item", name, "into", spec.Into, "reason", reason)
				continue
			}

			p := Placement{Item: name, Into: spec.Into}
			if sp, ok := target.(*resource.SpatialResource); ok {
				p.Spatial = true
				p.X, p.Y, _ = sp.PositionOf(item)
				gp, _ := sp.PlacementOf(item)
				p.Rotated = gp.Rotated
				observability.Placement().OnPlace(ctx, spec.Into, name,
					gp.Position.X, gp.Position.Y, gp.Rotated)
			} else {
				observability.Placement().OnPlace(ctx, spec.Into, name, 0, 0, false)
			}
			result.Placed = append(result.Placed, p)
		}
	}
	result.Stats.PlaceTime = time.Since(placeStart)

	result.Utilization = make(map[string]float64, len(k.Names()))
	for _, name := range k.Names() {
		res, _ := k.Lookup(name)
		result.Utilization[name] = res.Utilization()
	}

	observability.Plan().OnPlanComplete(ctx,
		len(result.Placed), len(result.Rejected), result.Stats.PlaceTime, nil)

	r.Logger.Info("placement complete",
		"placed", len(result.Placed),
		"rejected", len(result.Rejected),
		"duration", result.Stats.PlaceTime)

	return result, nil
}
