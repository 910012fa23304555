package manifest

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/mcelhennyi/boulangerie-milon/pkg/errors"
	"github.com/mcelhennyi/boulangerie-milon/pkg/resource"
)

// Default units applied when a declaration omits one.
const (
	defaultSpatialUnit  = "inches"
	defaultQuantityUnit = "items"
	defaultPrecision    = 1.0
)

// Manifest is a parsed kitchen definition.
type Manifest struct {
	Kitchen   KitchenSection `toml:"kitchen"`
	Resources []ResourceSpec `toml:"resources"`
	Items     []ItemSpec     `toml:"items"`
}

// KitchenSection carries manifest-level metadata.
type KitchenSection struct {
	Name string `toml:"name"`
}

// ResourceSpec declares one container. Setting any of Length, Width, or
// Precision makes it spatial; setting Capacity makes it a quantity container.
type ResourceSpec struct {
	Name      string  `toml:"name"`
	Type      string  `toml:"type"`
	Parent    string  `toml:"parent"`
	Capacity  int     `toml:"capacity"`
	Length    float64 `toml:"length"`
	Width     float64 `toml:"width"`
	Precision float64 `toml:"precision"`
	Unit      string  `toml:"unit"`
}

// Spatial reports whether the declaration describes a spatial container.
func (r ResourceSpec) Spatial() bool {
	return r.Length != 0 || r.Width != 0 || r.Precision != 0
}

// ItemSpec declares a batch of identical items destined for one container.
type ItemSpec struct {
	Name   string  `toml:"name"`
	Into   string  `toml:"into"`
	Length float64 `toml:"length"`
	Width  float64 `toml:"width"`
	Count  int     `toml:"count"`
	Unit   string  `toml:"unit"`
}

// Load reads and parses a kitchen manifest from disk.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "manifest not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "reading manifest %s", path)
	}
	return Parse(data)
}

// Parse decodes and validates a kitchen manifest.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decoding manifest")
	}
	m.applyDefaults()
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) applyDefaults() {
	if m.Kitchen.Name == "" {
		m.Kitchen.Name = "kitchen"
	}
	for i := range m.Resources {
		r := &m.Resources[i]
		if r.Unit == "" {
			if r.Spatial() {
				r.Unit = defaultSpatialUnit
			} else {
				r.Unit = defaultQuantityUnit
			}
		}
		if r.Spatial() && r.Precision == 0 {
			r.Precision = defaultPrecision
		}
	}
	for i := range m.Items {
		it := &m.Items[i]
		if it.Count == 0 {
			it.Count = 1
		}
		if it.Unit == "" {
			it.Unit = defaultSpatialUnit
		}
	}
}

func (m *Manifest) validate() error {
	if len(m.Resources) == 0 {
		return errors.New(errors.ErrCodeInvalidManifest, "manifest declares no resources")
	}

	seen := make(map[string]bool, len(m.Resources))
	roots := 0
	for i, r := range m.Resources {
		if err := errors.ValidateResourceName(r.Name); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidManifest, err, "resource %d", i)
		}
		if seen[r.Name] {
			return errors.New(errors.ErrCodeInvalidManifest, "duplicate resource name %q", r.Name)
		}
		if _, ok := resource.ParseType(r.Type); !ok {
			return errors.New(errors.ErrCodeInvalidManifest, "resource %q: unknown type %q", r.Name, r.Type)
		}
		if r.Spatial() && r.Capacity != 0 {
			return errors.New(errors.ErrCodeInvalidManifest,
				"resource %q: capacity and dimensions are mutually exclusive", r.Name)
		}
		if !r.Spatial() && r.Capacity == 0 {
			return errors.New(errors.ErrCodeInvalidManifest,
				"resource %q: declare either capacity or length/width", r.Name)
		}
		switch {
		case r.Parent == "":
			roots++
		case !seen[r.Parent]:
			// Parents must be declared before their children; the builder
			// makes a single pass and never resolves forward references.
			return errors.New(errors.ErrCodeInvalidManifest,
				"resource %q: parent %q not declared before it", r.Name, r.Parent)
		}
		seen[r.Name] = true
	}
	if roots != 1 {
		return errors.New(errors.ErrCodeInvalidManifest,
			"manifest must declare exactly one root resource, got %d", roots)
	}

	for i, it := range m.Items {
		if err := errors.ValidateResourceName(it.Name); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidManifest, err, "item %d", i)
		}
		if !seen[it.Into] {
			return errors.New(errors.ErrCodeInvalidManifest,
				"item %q: target resource %q not declared", it.Name, it.Into)
		}
		if err := errors.ValidateDimensions(it.Length, it.Width); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidManifest, err, "item %q", it.Name)
		}
		if it.Count < 1 {
			return errors.New(errors.ErrCodeInvalidManifest,
				"item %q: count must be at least 1, got %d", it.Name, it.Count)
		}
	}

	return nil
}
