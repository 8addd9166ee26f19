// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/moleculab/chemscout/internal/papers"
	"github.com/moleculab/chemscout/pkg/types"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// queryParams pulls q and limit out of the request, rejecting blank
// queries and clamping limit to [1, maxLimit].
func (s *Server) queryParams(r *http.Request) (string, int, error) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		return "", 0, fmt.Errorf("query parameter q is required")
	}

	limit := papers.DefaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return "", 0, fmt.Errorf("limit must be a positive integer")
		}
		limit = n
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}
	return q, limit, nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleSearch runs a full lookup and returns the outcome as JSON.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q, limit, err := s.queryParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	out := s.runner.Run(r.Context(), q, limit)
	writeJSON(w, http.StatusOK, out)
}

// handleExport runs a lookup and streams the papers as a CSV download.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	q, limit, err := s.queryParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	out := s.runner.Run(r.Context(), q, limit)

	filename := fmt.Sprintf("%s_papers_%s.csv",
		strings.ReplaceAll(strings.ToLower(q), " ", "_"),
		time.Now().UTC().Format("20060102"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := papers.WriteCSV(out.Papers, w); err != nil {
		s.logger.Error().Err(err).Msg("failed to write csv export")
	}
}

func (s *Server) handleHistoryList(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		writeError(w, http.StatusServiceUnavailable, "history is disabled")
		return
	}

	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}

	entries, err := s.history.Load(r.Context(), limit)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load history")
		writeError(w, http.StatusInternalServerError, "failed to load history")
		return
	}
	if entries == nil {
		entries = []types.HistoryEntry{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": entries})
}

func (s *Server) handleHistoryClear(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		writeError(w, http.StatusServiceUnavailable, "history is disabled")
		return
	}

	if err := s.history.Clear(r.Context()); err != nil {
		s.logger.Error().Err(err).Msg("failed to clear history")
		writeError(w, http.StatusInternalServerError, "failed to clear history")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}
