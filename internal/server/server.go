// Package server is the local development server: it holds one city grid,
// exposes the topology core over HTTP, and pushes recomputed coverage to
// websocket subscribers whenever the road network changes.
package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/ericmatamoros/isometric-city-sub000/pkg/access"
	"github.com/ericmatamoros/isometric-city-sub000/pkg/bridge"
	"github.com/ericmatamoros/isometric-city-sub000/pkg/config"
	"github.com/ericmatamoros/isometric-city-sub000/pkg/coverage"
	"github.com/ericmatamoros/isometric-city-sub000/pkg/grid"
	"github.com/ericmatamoros/isometric-city-sub000/pkg/save"
)

// Server owns the grid, the connectivity cache, and the road-network
// generation counter. All grid access goes through mu: handlers serialize
// writes against reads, which is the concurrency contract the topology core
// expects.
type Server struct {
	cfg      Config
	tunables *config.Tunables

	mu    sync.Mutex
	grid  *grid.Grid
	cache *access.Cache
	epoch uint64

	classifier *bridge.Classifier
	hub        *hub
}

// New creates a server around an existing grid.
func New(cfg Config, g *grid.Grid, tun *config.Tunables) *Server {
	return &Server{
		cfg:        cfg,
		tunables:   tun,
		grid:       g,
		cache:      access.NewCache(),
		epoch:      1,
		classifier: bridge.NewClassifier(tun.Bridges, nil),
		hub:        newHub(),
	}
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	go s.hub.run()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/state", s.handleState)
	mux.HandleFunc("GET /api/coverage", s.handleCoverage)
	mux.HandleFunc("POST /api/placement/check", s.handlePlacementCheck)
	mux.HandleFunc("POST /api/bridge/preview", s.handleBridgePreview)
	mux.HandleFunc("POST /api/roads", s.handleRoads)
	mux.HandleFunc("GET /ws", s.handleWS)

	addr := fmt.Sprintf(":%d", s.cfg.Port)
	log.Printf("isocity dev server starting on http://localhost%s", addr)
	log.Printf("grid: %d×%d", s.grid.Size, s.grid.Size)

	return http.ListenAndServe(addr, mux)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	data, err := save.Encode(s.grid)
	s.mu.Unlock()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (s *Server) handleCoverage(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	fields := coverage.Compute(s.grid, s.cache, s.epoch, s.tunables.Coverage)
	s.mu.Unlock()
	writeJSON(w, fields)
}

func (s *Server) handlePlacementCheck(w http.ResponseWriter, r *http.Request) {
	var req struct {
		X    int               `json:"x"`
		Y    int               `json:"y"`
		Type grid.BuildingType `json:"type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	report := access.CheckPlacement(s.grid, req.X, req.Y, req.Type)
	s.mu.Unlock()
	writeJSON(w, report)
}

func (s *Server) handleBridgePreview(w http.ResponseWriter, r *http.Request) {
	var req struct {
		X1 int `json:"x1"`
		Y1 int `json:"y1"`
		X2 int `json:"x2"`
		Y2 int `json:"y2"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	det := bridge.DetectSpan(s.grid, req.X1, req.Y1, req.X2, req.Y2)
	s.mu.Unlock()
	if det == nil {
		writeJSON(w, map[string]any{"buildable": false})
		return
	}
	info := s.classifier.Classify(det.Span, 0, det.Orientation, bridge.Options{})
	writeJSON(w, map[string]any{
		"buildable": true,
		"detection": det,
		"bridge":    info,
	})
}

// handleRoads mutates road tiles and bumps the road-network generation
// counter — the epoch contract the cache depends on. Coverage is recomputed
// once and pushed to subscribers.
func (s *Server) handleRoads(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Tiles  []grid.Cell `json:"tiles"`
		Remove bool        `json:"remove"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	changed := 0
	for _, c := range req.Tiles {
		if req.Remove {
			if s.grid.TypeAt(c.X, c.Y) == grid.BuildingRoad && s.grid.Bulldoze(c.X, c.Y) {
				changed++
			}
		} else if s.grid.Place(c.X, c.Y, grid.BuildingRoad) {
			changed++
		}
	}
	if changed > 0 {
		s.epoch++
	}
	epoch := s.epoch
	var fields *coverage.Fields
	if changed > 0 {
		fields = coverage.Compute(s.grid, s.cache, s.epoch, s.tunables.Coverage)
	}
	s.mu.Unlock()

	if fields != nil {
		if payload, err := json.Marshal(map[string]any{"epoch": epoch, "coverage": fields}); err == nil {
			s.hub.broadcast <- payload
		}
	}
	writeJSON(w, map[string]any{"changed": changed, "epoch": epoch})
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	s.hub.serve(w, r)
}
