// Package api exposes the World over HTTP with chi: a Server wrapping the
// stateful core, a chi.Router built once in New, one handler method per
// route, a writeJSONError helper for structured error bodies, and
// writeSimError, which maps the *models.SimError taxonomy to HTTP status codes.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"airlinetycoon/internal/models"
	"airlinetycoon/internal/savecodec"
	"airlinetycoon/internal/simulation"
)

// Server wraps a World with its HTTP surface. SaveDir is where /saves and
// /save operations read and write.
type Server struct {
	world   *simulation.World
	SaveDir string
}

// New constructs the HTTP router wired to world.
func New(world *simulation.World, saveDir string) http.Handler {
	s := &Server{world: world, SaveDir: saveDir}
	r := chi.NewRouter()
	r.Use(corsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/airports", s.handleAirports)
	r.Get("/aircraft-types", s.handleAircraftTypes)
	r.Get("/state", s.handleState)
	r.Post("/advance-day", s.handleAdvanceDay)

	r.Post("/routes", s.handleOpenRoute)
	r.Post("/routes/{routeID}/close", s.handleCloseRoute)
	r.Post("/routes/{routeID}/assign", s.handleAssign)
	r.Post("/routes/{routeID}/unassign", s.handleUnassign)
	r.Post("/routes/{routeID}/price", s.handleSetPrice)
	r.Post("/routes/{routeID}/frequency", s.handleSetDailyFlights)

	r.Post("/fleet/purchase", s.handlePurchase)
	r.Post("/fleet/lease", s.handleLease)
	r.Post("/fleet/{aircraftID}/sell", s.handleSell)
	r.Post("/fleet/{aircraftID}/return-leased", s.handleReturnLeased)

	r.Get("/saves", s.handleListSaves)
	r.Post("/saves/{name}", s.handleSave)
	r.Get("/saves/{name}", s.handleLoad)

	return r
}

func (s *Server) handleAirports(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, simulation.AllAirports())
}

func (s *Server) handleAircraftTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, simulation.AllAircraftTypes())
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	snap := s.world.Snapshot()
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleAdvanceDay(w http.ResponseWriter, r *http.Request) {
	report := s.world.AdvanceDay()
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleOpenRoute(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Origin string  `json:"origin"`
		Dest   string  `json:"dest"`
		Price  float64 `json:"price"`
	}
	if !decodeOrError(w, r, &req) {
		return
	}
	route, err := s.world.OpenRoute(req.Origin, req.Dest, req.Price)
	if err != nil {
		writeSimError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, route)
}

func (s *Server) handleCloseRoute(w http.ResponseWriter, r *http.Request) {
	routeID := chi.URLParam(r, "routeID")
	if err := s.world.CloseRoute(routeID); err != nil {
		writeSimError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleAssign(w http.ResponseWriter, r *http.Request) {
	routeID := chi.URLParam(r, "routeID")
	var req struct {
		AircraftID string `json:"aircraft_id"`
	}
	if !decodeOrError(w, r, &req) {
		return
	}
	if err := s.world.Assign(routeID, req.AircraftID); err != nil {
		writeSimError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleUnassign(w http.ResponseWriter, r *http.Request) {
	routeID := chi.URLParam(r, "routeID")
	if err := s.world.Unassign(routeID); err != nil {
		writeSimError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleSetPrice(w http.ResponseWriter, r *http.Request) {
	routeID := chi.URLParam(r, "routeID")
	var req struct {
		Price float64 `json:"price"`
	}
	if !decodeOrError(w, r, &req) {
		return
	}
	if err := s.world.SetPrice(routeID, req.Price); err != nil {
		writeSimError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleSetDailyFlights(w http.ResponseWriter, r *http.Request) {
	routeID := chi.URLParam(r, "routeID")
	var req struct {
		Frequency int `json:"frequency"`
	}
	if !decodeOrError(w, r, &req) {
		return
	}
	if err := s.world.SetDailyFlights(routeID, req.Frequency); err != nil {
		writeSimError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handlePurchase(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Type string `json:"type"`
	}
	if !decodeOrError(w, r, &req) {
		return
	}
	ac, err := s.world.PurchaseAircraft(req.Type)
	if err != nil {
		writeSimError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ac)
}

func (s *Server) handleLease(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Type string `json:"type"`
	}
	if !decodeOrError(w, r, &req) {
		return
	}
	ac, err := s.world.LeaseAircraft(req.Type)
	if err != nil {
		writeSimError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ac)
}

func (s *Server) handleSell(w http.ResponseWriter, r *http.Request) {
	aircraftID := chi.URLParam(r, "aircraftID")
	if err := s.world.SellAircraft(aircraftID); err != nil {
		writeSimError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleReturnLeased(w http.ResponseWriter, r *http.Request) {
	aircraftID := chi.URLParam(r, "aircraftID")
	if err := s.world.ReturnLeased(aircraftID); err != nil {
		writeSimError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleListSaves(w http.ResponseWriter, r *http.Request) {
	summaries, err := savecodec.ListSaves(s.SaveDir)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name") + ".json"
	if err := s.world.SaveToDir(s.SaveDir, name); err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name") + ".json"
	world, err := simulation.LoadFromDir(s.SaveDir, name)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.world.ReplaceWith(world)
	writeJSON(w, http.StatusOK, s.world.Snapshot())
}

func decodeOrError(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSONError(w, http.StatusBadRequest, "bad request")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	if msg == "" {
		msg = http.StatusText(status)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// writeSimError maps a *models.SimError to an HTTP status so a host can
// present a mutator error to the player without knowing the error taxonomy.
func writeSimError(w http.ResponseWriter, err error) {
	se, ok := err.(*models.SimError)
	if !ok {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	status := http.StatusBadRequest
	switch se.Kind {
	case models.ErrUnknownAirport, models.ErrUnknownAircraftType, models.ErrUnknownID:
		status = http.StatusNotFound
	case models.ErrImmutableAfterStart:
		status = http.StatusForbidden
	}
	writeJSONError(w, status, se.Error())
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
