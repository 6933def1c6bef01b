// Package api serves the stored statistics and rolling reports over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/hoopsight/cbbmetrics/internal/aggregator"
	"github.com/hoopsight/cbbmetrics/internal/pipeline"
	"github.com/hoopsight/cbbmetrics/internal/storage"
)

// Server exposes the read API on top of a Store.
type Server struct {
	store storage.Store
	mux   *http.ServeMux
}

// NewServer builds a Server and registers its routes.
func NewServer(store storage.Store) *Server {
	s := &Server{store: store, mux: http.NewServeMux()}
	s.mux.HandleFunc("GET /api/health", s.handleHealth)
	s.mux.HandleFunc("GET /api/players", s.handlePlayers)
	s.mux.HandleFunc("GET /api/player/games", s.handlePlayerGames)
	s.mux.HandleFunc("GET /api/player/rolling", s.handleRolling)
	s.mux.HandleFunc("GET /api/teams", s.handleTeams)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	s.mux.ServeHTTP(w, r)
	slog.Info("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
}

// ListenAndServe runs the server on addr until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	slog.Info("api listening", "addr", addr)
	return srv.ListenAndServe()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// intParam parses a required integer query parameter; ok is false after an
// error response has been written.
func intParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	v := r.URL.Query().Get(name)
	if v == "" {
		writeError(w, http.StatusBadRequest, "missing parameter: "+name)
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid parameter: "+name)
		return 0, false
	}
	return n, true
}

func strParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	v := r.URL.Query().Get(name)
	if v == "" {
		writeError(w, http.StatusBadRequest, "missing parameter: "+name)
		return "", false
	}
	return v, true
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handlePlayers returns the stored season averages for one team-season.
func (s *Server) handlePlayers(w http.ResponseWriter, r *http.Request) {
	team, ok := strParam(w, r, "team")
	if !ok {
		return
	}
	year, ok := intParam(w, r, "year")
	if !ok {
		return
	}

	players, err := s.store.Players(r.Context(), team, year)
	if err != nil {
		slog.Error("list players", "team", team, "year", year, "err", err)
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	if len(players) == 0 {
		writeError(w, http.StatusNotFound, "no players for team-season")
		return
	}
	writeJSON(w, http.StatusOK, players)
}

// handlePlayerGames returns one player-season's game log in date order.
func (s *Server) handlePlayerGames(w http.ResponseWriter, r *http.Request) {
	pid, ok := intParam(w, r, "pid")
	if !ok {
		return
	}
	year, ok := intParam(w, r, "year")
	if !ok {
		return
	}
	team, ok := strParam(w, r, "team")
	if !ok {
		return
	}

	games, err := s.store.PlayerGameRecords(r.Context(), pid, year, team)
	if err != nil {
		slog.Error("load player games", "pid", pid, "err", err)
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	if len(games) == 0 {
		writeError(w, http.StatusNotFound, "no games for player-season")
		return
	}
	writeJSON(w, http.StatusOK, games)
}

// handleRolling computes a rolling report. The window comes from either
// last=N or start/end (inclusive YYYYMMDD keys, either side optional); with
// neither the whole season is aggregated. Percentile ranks are included
// unless pct is a false boolean.
func (s *Server) handleRolling(w http.ResponseWriter, r *http.Request) {
	pid, ok := intParam(w, r, "pid")
	if !ok {
		return
	}
	year, ok := intParam(w, r, "year")
	if !ok {
		return
	}
	team, ok := strParam(w, r, "team")
	if !ok {
		return
	}

	q := r.URL.Query()
	opts := pipeline.RollingOptions{
		Start:       q.Get("start"),
		End:         q.Get("end"),
		Percentiles: true,
	}
	if v := q.Get("pct"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid parameter: pct")
			return
		}
		opts.Percentiles = b
	}
	if v := q.Get("last"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "invalid parameter: last")
			return
		}
		opts.LastN = n
	}

	reportData, err := pipeline.Rolling(r.Context(), s.store, pid, year, team, opts)
	if errors.Is(err, aggregator.ErrNoGames) {
		writeError(w, http.StatusNotFound, "no qualifying games in window")
		return
	}
	if err != nil {
		slog.Error("rolling report", "pid", pid, "err", err)
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	writeJSON(w, http.StatusOK, reportData)
}

// handleTeams returns a season's team ratings in rank order.
func (s *Server) handleTeams(w http.ResponseWriter, r *http.Request) {
	year, ok := intParam(w, r, "year")
	if !ok {
		return
	}

	teams, err := s.store.TeamRatings(r.Context(), year)
	if err != nil {
		slog.Error("list teams", "year", year, "err", err)
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	if len(teams) == 0 {
		writeError(w, http.StatusNotFound, "no teams for season")
		return
	}
	writeJSON(w, http.StatusOK, teams)
}
