package manifest

import (
	"sort"

	"github.com/google/uuid"

	"github.com/mcelhennyi/boulangerie-milon/pkg/errors"
	"github.com/mcelhennyi/boulangerie-milon/pkg/resource"
)

// Kitchen is a built container tree with a name index over its resources.
// Items declared by the manifest are carried as specs; attaching them is the
// planner's job.
type Kitchen struct {
	Name  string
	Root  resource.Resource
	Items []ItemSpec

	byName   map[string]resource.Resource
	nameByID map[uuid.UUID]string
}

// Build constructs the container tree described by the manifest. Containers
// are attached to their parents in declaration order, so attaching a spatial
// child exercises the same placement search as item placement does.
func (m *Manifest) Build() (*Kitchen, error) {
	k := &Kitchen{
		Name:     m.Kitchen.Name,
		Items:    append([]ItemSpec(nil), m.Items...),
		byName:   make(map[string]resource.Resource, len(m.Resources)),
		nameByID: make(map[uuid.UUID]string, len(m.Resources)),
	}

	for _, spec := range m.Resources {
		typ, _ := resource.ParseType(spec.Type)

		var (
			r   resource.Resource
			err error
		)
		if spec.Spatial() {
			r, err = resource.NewSpatial(typ, spec.Length, spec.Width, spec.Unit, spec.Precision)
		} else {
			r, err = resource.NewQuantity(typ, spec.Capacity, spec.Unit)
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "building resource %q", spec.Name)
		}

		if spec.Parent == "" {
			k.Root = r
		} else {
			parent := k.byName[spec.Parent]
			if !parent.AddChild(r) {
				return nil, errors.New(errors.ErrCodeInvalidManifest,
					"resource %q does not fit in parent %q", spec.Name, spec.Parent)
			}
		}

		k.byName[spec.Name] = r
		k.nameByID[r.ID()] = spec.Name
	}

	return k, nil
}

// Lookup resolves a resource by its manifest name.
func (k *Kitchen) Lookup(name string) (resource.Resource, bool) {
	r, ok := k.byName[name]
	return r, ok
}

// Resolve finds a resource anywhere in the tree by identity. Unlike Lookup it
// also reaches items attached after the build.
func (k *Kitchen) Resolve(id uuid.UUID) (resource.Resource, bool) {
	return resource.Find(k.Root, id)
}

// NameOf returns the manifest name of a built resource, or "" for resources
// that were not declared in the manifest (such as placed items).
func (k *Kitchen) NameOf(r resource.Resource) string {
	if r == nil {
		return ""
	}
	return k.nameByID[r.ID()]
}

// Names returns all declared resource names in sorted order.
func (k *Kitchen) Names() []string {
	names := make([]string, 0, len(k.byName))
	for name := range k.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
