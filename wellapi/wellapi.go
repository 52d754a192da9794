// Package wellapi serves the well database over HTTP for the map frontend.
//
// Responses keep the envelope the frontend already speaks: list endpoints
// wrap rows in {"status":"ok","count":N,"data":[...]}, errors come back as
// {"status":"error","message":"..."}.
package wellapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/hazyhaar/wellpipe/wellparse"
	"github.com/hazyhaar/wellpipe/wellstore"
)

// Handler exposes the read API over a wellstore.
type Handler struct {
	store  *wellstore.Store
	logger *slog.Logger
}

// New creates a Handler. A nil logger falls back to slog.Default().
func New(store *wellstore.Store, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{store: store, logger: logger}
}

// Router builds the chi router with CORS open for browser clients.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/api/wells", h.handleListWells)
	r.Get("/api/wells/search", h.handleSearchWells)
	r.Get("/api/wells/{wellFileNo}", h.handleWellDetail)
	r.Get("/api/stats", h.handleStats)

	return r
}

func (h *Handler) handleListWells(w http.ResponseWriter, r *http.Request) {
	wells, err := h.store.ListWells(r.Context())
	if err != nil {
		h.serverError(w, "list wells", err)
		return
	}
	writeList(w, wells)
}

func (h *Handler) handleSearchWells(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeError(w, http.StatusBadRequest, "Query parameter 'q' is required")
		return
	}

	wells, err := h.store.SearchWells(r.Context(), query)
	if err != nil {
		h.serverError(w, "search wells", err)
		return
	}
	writeList(w, wells)
}

func (h *Handler) handleWellDetail(w http.ResponseWriter, r *http.Request) {
	wellFileNo := chi.URLParam(r, "wellFileNo")

	well, stims, err := h.store.GetWell(r.Context(), wellFileNo)
	if err != nil {
		h.serverError(w, "get well", err)
		return
	}
	if well == nil {
		writeError(w, http.StatusNotFound, "Well not found")
		return
	}
	if stims == nil {
		stims = []wellparse.StimulationRecord{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":           "ok",
		"well_info":        well,
		"stimulation_data": stims,
	})
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	st, err := h.store.Stats(r.Context())
	if err != nil {
		h.serverError(w, "stats", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":                    "ok",
		"total_wells":               st.TotalWells,
		"wells_with_coordinates":    st.WellsWithCoordinates,
		"total_stimulation_records": st.TotalStimulationRecords,
		"wells_with_scraped_data":   st.WellsWithScrapedData,
	})
}

func (h *Handler) serverError(w http.ResponseWriter, action string, err error) {
	h.logger.Error("wellapi: "+action, "error", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

func writeList(w http.ResponseWriter, wells []wellstore.WellSummary) {
	if wells == nil {
		wells = []wellstore.WellSummary{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"count":  len(wells),
		"data":   wells,
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, map[string]string{"status": "error", "message": message})
}
