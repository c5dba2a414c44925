package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/zarlabs/survey-insights/internal/insights"
	"github.com/zarlabs/survey-insights/internal/nexus"
	"github.com/zarlabs/survey-insights/internal/survey"
)

// InterviewSyncer triggers a webhook sync pass over the interview set.
type InterviewSyncer interface {
	Sync(ctx context.Context, interviews []survey.Interview) (nexus.Result, error)
}

// Server serves the derived insight views over HTTP. The snapshot is
// computed before the server starts and never mutated, so handlers read it
// without locking.
type Server struct {
	snapshot insights.Snapshot
	syncer   InterviewSyncer
	log      *zap.Logger
}

func NewServer(snapshot insights.Snapshot, syncer InterviewSyncer, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{snapshot: snapshot, syncer: syncer, log: log}
}

func (s *Server) Handler(allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	if len(allowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		}))
	}

	r.Get("/api/health", s.handleHealth)
	r.Get("/api/dashboard", s.handleDashboard)
	r.Get("/api/scorecard", s.handleScorecard)
	r.Get("/api/funnel", s.handleFunnel)
	r.Get("/api/willingness-factors", s.handleWillingnessFactors)
	r.Get("/api/pilot-candidates", s.handlePilotCandidates)
	r.Get("/api/interviews", s.handleInterviews)
	r.Get("/api/interviews/{id}", s.handleInterview)
	r.Post("/api/nexus/sync", s.handleNexusSync)
	return r
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"ok": false, "error": message})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":         true,
		"interviews": s.snapshot.Dashboard.TotalInterviews,
	})
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.snapshot.Dashboard)
}

func (s *Server) handleScorecard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.snapshot.Scorecard)
}

func (s *Server) handleFunnel(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"stages": s.snapshot.Funnel})
}

func (s *Server) handleWillingnessFactors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"factors": s.snapshot.WillingnessFactors})
}

func (s *Server) handlePilotCandidates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"candidates": s.snapshot.PilotCandidates})
}

func (s *Server) handleInterviews(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"interviews": s.snapshot.Interviews})
}

func (s *Server) handleInterview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	iv, ok := survey.InterviewByID(s.snapshot.Interviews, id)
	if !ok {
		writeError(w, http.StatusNotFound, "interview not found")
		return
	}
	writeJSON(w, http.StatusOK, iv)
}

func (s *Server) handleNexusSync(w http.ResponseWriter, r *http.Request) {
	if s.syncer == nil {
		writeError(w, http.StatusServiceUnavailable, "sync not configured")
		return
	}
	res, err := s.syncer.Sync(r.Context(), s.snapshot.Interviews)
	if err != nil {
		s.log.Error("nexus sync failed", zap.Error(err))
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "result": res})
}
