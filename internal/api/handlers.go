package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mcelhennyi/boulangerie-milon/pkg/errors"
	"github.com/mcelhennyi/boulangerie-milon/pkg/observability"
	"github.com/mcelhennyi/boulangerie-milon/pkg/render"
	"github.com/mcelhennyi/boulangerie-milon/pkg/resource"
)

// =============================================================================
// Response Types
// =============================================================================

type resourceResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name,omitempty"`
	Type        string             `json:"type"`
	Description string             `json:"description"`
	Utilization float64            `json:"utilization"`
	Full        bool               `json:"full"`
	Empty       bool               `json:"empty"`
	Children    []resourceResponse `json:"children,omitempty"`
}

type gridResponse struct {
	Rows     int    `json:"rows"`
	Cols     int    `json:"cols"`
	Occupied int    `json:"occupied"`
	View     string `json:"view"`
}

type placeRequest struct {
	Name   string  `json:"name"`
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Unit   string  `json:"unit,omitempty"`
}

type placeResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	Rotated bool    `json:"rotated,omitempty"`
	Spatial bool    `json:"spatial"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "kitchen": s.kitchen.Name})
}

func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	writeJSON(w, http.StatusOK, s.resourceJSON(s.kitchen.Root))
}

func (s *Server) handleListResources(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	writeJSON(w, http.StatusOK, map[string][]string{"resources": s.kitchen.Names()})
}

func (s *Server) handleGetResource(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res, ok := s.kitchen.Lookup(chi.URLParam(r, "name"))
	if !ok {
		writeError(w, http.StatusNotFound, errors.New(errors.ErrCodeResourceNotFound,
			"unknown resource %q", chi.URLParam(r, "name")))
		return
	}
	writeJSON(w, http.StatusOK, s.resourceJSON(res))
}

func (s *Server) handleGetGrid(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res, ok := s.kitchen.Lookup(chi.URLParam(r, "name"))
	if !ok {
		writeError(w, http.StatusNotFound, errors.New(errors.ErrCodeResourceNotFound,
			"unknown resource %q", chi.URLParam(r, "name")))
		return
	}
	sp, ok := res.(*resource.SpatialResource)
	if !ok {
		writeError(w, http.StatusBadRequest, errors.New(errors.ErrCodeUnsupported,
			"resource %q has no occupancy grid", chi.URLParam(r, "name")))
		return
	}

	g := sp.GridSnapshot()
	writeJSON(w, http.StatusOK, gridResponse{
		Rows:     g.Rows(),
		Cols:     g.Cols(),
		Occupied: g.Occupied(),
		View:     render.GridView(sp),
	})
}

func (s *Server) handleUtilization(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	util := make(map[string]float64, len(s.kitchen.Names()))
	for _, name := range s.kitchen.Names() {
		res, _ := s.kitchen.Lookup(name)
		util[name] = res.Utilization()
	}
	writeJSON(w, http.StatusOK, util)
}

func (s *Server) handlePlaceItem(w http.ResponseWriter, r *http.Request) {
	var req placeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(errors.ErrCodeInternal, err, "decoding request body"))
		return
	}
	if req.Unit == "" {
		req.Unit = "inches"
	}

	item, err := resource.NewItem(req.Length, req.Width, req.Name, req.Unit)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	name := chi.URLParam(r, "name")
	target, ok := s.kitchen.Lookup(name)
	if !ok {
		writeError(w, http.StatusNotFound, errors.New(errors.ErrCodeResourceNotFound,
			"unknown resource %q", name))
		return
	}

	if !target.AddChild(item) {
		writeError(w, http.StatusConflict, errors.New(errors.ErrCodeUnsupported,
			"item %q does not fit in %q", req.Name, name))
		return
	}

	resp := placeResponse{ID: item.ID().String(), Name: item.Name()}
	var gx, gy int
	if sp, ok := target.(*resource.SpatialResource); ok {
		resp.Spatial = true
		resp.X, resp.Y, _ = sp.PositionOf(item)
		if p, ok := sp.PlacementOf(item); ok {
			resp.Rotated = p.Rotated
			gx, gy = p.Position.X, p.Position.Y
		}
	}
	observability.Placement().OnPlace(r.Context(), name, item.Name(), gx, gy, resp.Rotated)
	s.logger.Info("item placed", "item", req.Name, "into", name)
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(errors.ErrCodeInternal, err, "invalid item id"))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	name := chi.URLParam(r, "name")
	target, ok := s.kitchen.Lookup(name)
	if !ok {
		writeError(w, http.StatusNotFound, errors.New(errors.ErrCodeResourceNotFound,
			"unknown resource %q", name))
		return
	}

	var child resource.Resource
	for _, c := range target.Children() {
		if c.ID() == id {
			child = c
			break
		}
	}
	if child == nil || !target.RemoveChild(child) {
		writeError(w, http.StatusNotFound, errors.New(errors.ErrCodeNotFound,
			"no child %s in %q", id, name))
		return
	}

	childName := ""
	if it, ok := child.(*resource.Item); ok {
		childName = it.Name()
	}
	observability.Placement().OnRemove(r.Context(), name, childName)
	s.logger.Info("item removed", "item", id, "from", name)
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// Helpers
// =============================================================================

func (s *Server) resourceJSON(r resource.Resource) resourceResponse {
	resp := resourceResponse{
		ID:          r.ID().String(),
		Name:        s.kitchen.NameOf(r),
		Type:        string(r.Type()),
		Description: r.Description(),
		Utilization: r.Utilization(),
		Full:        r.IsFull(),
		Empty:       r.IsEmpty(),
	}
	if it, ok := r.(*resource.Item); ok {
		resp.Name = it.Name()
	}
	for _, child := range r.Children() {
		resp.Children = append(resp.Children, s.resourceJSON(child))
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{
		Error: errors.UserMessage(err),
		Code:  string(errors.GetCode(err)),
	})
}
