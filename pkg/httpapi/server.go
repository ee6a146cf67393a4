// Package httpapi serves the live-preview API.
//
// # Overview
//
// The API wraps the generator for interactive clients: a presentation
// layer posts a parameter set, gets the generated model back as JSON, and
// re-renders on every change. Saved models get stable UUIDs so they can
// be fetched, rendered to SVG, and deleted later.
//
// # Endpoints
//
//	POST   /api/generate          parameters in, model JSON out (save=true persists)
//	GET    /api/models            list saved records, newest first
//	GET    /api/models/{id}       one saved record
//	GET    /api/models/{id}/svg   schematic rendering of a saved model
//	DELETE /api/models/{id}       remove a saved record
//	GET    /healthz               liveness probe
//
// # Failure semantics
//
// Parameter validation failures map to 400 with the structured error code
// in the body; unknown ids map to 404; everything else is a 500. The
// generator never produces partial results, so an error response never
// carries model data.
package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mtkb13/framegen/pkg/cache"
	apperrors "github.com/mtkb13/framegen/pkg/errors"
	"github.com/mtkb13/framegen/pkg/render/schematic"
	"github.com/mtkb13/framegen/pkg/store"
	"github.com/mtkb13/framegen/pkg/topology"
)

// cacheTTL bounds how long generated documents stay cached. Generation is
// deterministic, so the TTL only limits cache growth, not staleness.
const cacheTTL = 24 * time.Hour

// Server holds the API's dependencies.
type Server struct {
	store  store.Store
	models *cache.Scoped
	svgs   *cache.Scoped
	logger *log.Logger
}

// NewServer creates an API server. A nil cache disables caching and a nil
// logger discards logs.
func NewServer(st store.Store, c cache.Cache, logger *log.Logger) *Server {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Server{
		store:  st,
		models: cache.NewScoped(c, "json"),
		svgs:   cache.NewScoped(c, "svg"),
		logger: logger,
	}
}

// Router builds the chi router with all API routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", s.handleGenerate)
		r.Get("/models", s.handleList)
		r.Route("/models/{id}", func(r chi.Router) {
			r.Get("/", s.handleGet)
			r.Get("/svg", s.handleSVG)
			r.Delete("/", s.handleDelete)
		})
	})
	return r
}

// generateRequest is the POST /api/generate body: the flat parameter set
// plus persistence options.
type generateRequest struct {
	topology.Params
	Save bool   `json:"save,omitempty"`
	Name string `json:"name,omitempty"`
}

// generateResponse wraps the generated model. ID is set only when the
// request asked to save.
type generateResponse struct {
	ID     string          `json:"id,omitempty"`
	Counts topology.Counts `json:"counts"`
	Model  json.RawMessage `json:"model"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "invalid request body"))
		return
	}

	doc, err := s.generateJSON(r, req.Params)
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := generateResponse{Model: doc}
	topo, err := req.Params.Topology()
	if err == nil {
		resp.Counts = topo.Counts()
	}

	if req.Save {
		m, err := topology.Generate(req.Params)
		if err != nil {
			s.writeError(w, err)
			return
		}
		rec := store.New(req.Name, req.Params, m)
		if err := s.store.Save(r.Context(), rec); err != nil {
			s.writeError(w, err)
			return
		}
		resp.ID = rec.ID
		s.logger.Info("model saved", "id", rec.ID, "kind", m.Kind)
	}

	s.writeJSON(w, http.StatusOK, resp)
}

// generateJSON returns the cached model document for p, generating and
// caching on a miss.
func (s *Server) generateJSON(r *http.Request, p topology.Params) (json.RawMessage, error) {
	key := cache.ParamsKey(p)
	if doc, ok, err := s.models.Get(r.Context(), key); err == nil && ok {
		return doc, nil
	}

	m, err := topology.Generate(p)
	if err != nil {
		return nil, err
	}
	doc, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	if err := s.models.Set(r.Context(), key, doc, cacheTTL); err != nil {
		s.logger.Warn("cache write failed", "err", err)
	}
	return doc, nil
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	recs, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}

	type item struct {
		ID        string    `json:"id"`
		Name      string    `json:"name,omitempty"`
		Kind      string    `json:"kind"`
		CreatedAt time.Time `json:"created_at"`
	}
	items := make([]item, len(recs))
	for i, rec := range recs {
		items[i] = item{ID: rec.ID, Name: rec.Name, Kind: rec.Model.Kind, CreatedAt: rec.CreatedAt}
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"models": items})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleSVG(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	key := cache.ParamsKey(rec.Params)
	svg, ok, err := s.svgs.Get(r.Context(), key)
	if err != nil || !ok {
		dot := schematic.ToDOT(rec.Model, schematic.Options{})
		svg, err = schematic.RenderSVG(dot)
		if err != nil {
			s.writeError(w, err)
			return
		}
		if err := s.svgs.Set(r.Context(), key, svg, cacheTTL); err != nil {
			s.logger.Warn("cache write failed", "err", err)
		}
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(svg)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// errorResponse is the JSON body of every non-2xx response.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// writeError maps an error to its HTTP status: validation failures are the
// client's fault (400), unknown ids are 404, the rest is a 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case apperrors.IsValidation(err):
		s.writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: apperrors.UserMessage(err),
			Code:  string(apperrors.GetCode(err)),
		})
	case errors.Is(err, store.ErrNotFound):
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: "model not found"})
	default:
		s.logger.Error("request failed", "err", err)
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encoding failed", "err", err)
	}
}
