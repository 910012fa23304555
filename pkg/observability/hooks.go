// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about placement runs and API calls.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core engine dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPlacementHooks(&myPlacementHooks{})
//	    // ... run application
//	}
//
// The planner and API call hooks to emit events:
//
//	observability.Placement().OnPlace(ctx, parent, child, x, y, rotated)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Placement Hooks
// =============================================================================

// PlacementHooks receives events from placement runs.
type PlacementHooks interface {
	// OnPlace records a successful placement of child into parent.
	// x and y are grid coordinates; rotated reports the winning orientation.
	OnPlace(ctx context.Context, parent, child string, x, y int, rotated bool)

	// OnReject records a placement or capacity failure.
	OnReject(ctx context.Context, parent, child string)

	// OnRemove records a successful removal of child from parent.
	OnRemove(ctx context.Context, parent, child string)
}

// =============================================================================
// Plan Hooks
// =============================================================================

// PlanHooks receives events from planner stages.
type PlanHooks interface {
	// OnLoadComplete records a manifest load (resource and item counts).
	OnLoadComplete(ctx context.Context, path string, resources, items int, duration time.Duration, err error)

	// OnPlanComplete records a full planning run.
	OnPlanComplete(ctx context.Context, placed, rejected int, duration time.Duration, err error)
}

// =============================================================================
// API Hooks
// =============================================================================

// APIHooks receives events from the HTTP API.
type APIHooks interface {
	// OnRequest records an incoming HTTP request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records a completed HTTP response.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPlacementHooks is a no-op implementation of PlacementHooks.
type NoopPlacementHooks struct{}

func (NoopPlacementHooks) OnPlace(context.Context, string, string, int, int, bool) {}
func (NoopPlacementHooks) OnReject(context.Context, string, string)                {}
func (NoopPlacementHooks) OnRemove(context.Context, string, string)                {}

// NoopPlanHooks is a no-op implementation of PlanHooks.
type NoopPlanHooks struct{}

func (NoopPlanHooks) OnLoadComplete(context.Context, string, int, int, time.Duration, error) {}
func (NoopPlanHooks) OnPlanComplete(context.Context, int, int, time.Duration, error)         {}

// NoopAPIHooks is a no-op implementation of APIHooks.
type NoopAPIHooks struct{}

func (NoopAPIHooks) OnRequest(context.Context, string, string)                      {}
func (NoopAPIHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	placementHooks PlacementHooks = NoopPlacementHooks{}
	planHooks      PlanHooks      = NoopPlanHooks{}
	apiHooks       APIHooks       = NoopAPIHooks{}
	hooksMu        sync.RWMutex
)

// SetPlacementHooks registers custom placement hooks.
// This should be called once at application startup before any placements.
func SetPlacementHooks(h PlacementHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		placementHooks = h
	}
}

// SetPlanHooks registers custom planner hooks.
// This should be called once at application startup before any planning runs.
func SetPlanHooks(h PlanHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		planHooks = h
	}
}

// SetAPIHooks registers custom API hooks.
// This should be called once at application startup before serving requests.
func SetAPIHooks(h APIHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		apiHooks = h
	}
}

// Placement returns the registered placement hooks.
func Placement() PlacementHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return placementHooks
}

// Plan returns the registered planner hooks.
func Plan() PlanHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return planHooks
}

// API returns the registered API hooks.
func API() APIHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return apiHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	placementHooks = NoopPlacementHooks{}
	planHooks = NoopPlanHooks{}
	apiHooks = NoopAPIHooks{}
}
