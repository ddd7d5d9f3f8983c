package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/controlchart/pkg/domain/interfaces"
	"github.com/secmon-lab/controlchart/pkg/domain/model"
	"github.com/secmon-lab/controlchart/pkg/domain/types"
	"github.com/secmon-lab/controlchart/pkg/utils/apperr"
	"github.com/secmon-lab/controlchart/pkg/utils/async"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
	router   chi.Router
	reportUC interfaces.ReportUseCase
	runner   *async.Runner
	now      func() time.Time
}

// Option configures a Server
type Option func(*Server)

// WithClock replaces time.Now as the reference time of report runs
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// NewServer creates a new HTTP server. Background runs are dispatched on
// runner so the caller can wait for them on shutdown.
func NewServer(ctx context.Context, addr string, reportUC interfaces.ReportUseCase, runner *async.Runner, opts ...Option) *Server {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	s := &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router:   router,
		reportUC: reportUC,
		runner:   runner,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	router.Get("/health", handleHealth)

	router.Route("/api/report", func(r chi.Router) {
		r.Get("/preview", s.handlePreview)
		r.Post("/run", s.handleRun)
	})

	return s
}

type metricResponse struct {
	Project types.ProjectKey `json:"project"`
	Value   string           `json:"value"`
	Hours   float64          `json:"hours"`
	Samples int              `json:"samples"`
	Skipped int              `json:"skipped"`
	Error   string           `json:"error,omitempty"`
}

type reportResponse struct {
	RunID   types.RunID      `json:"run_id"`
	Start   time.Time        `json:"start"`
	End     time.Time        `json:"end"`
	Text    string           `json:"text"`
	Metrics []metricResponse `json:"metrics"`
}

func newReportResponse(report *model.Report) reportResponse {
	resp := reportResponse{
		RunID:   report.RunID,
		Start:   report.Range.Start,
		End:     report.Range.End,
		Text:    report.Text,
		Metrics: make([]metricResponse, 0, len(report.Metrics)),
	}
	for _, m := range report.Metrics {
		mr := metricResponse{
			Project: m.Project,
			Value:   m.Value,
			Hours:   m.Hours,
			Samples: m.Samples,
			Skipped: m.Skipped,
		}
		if m.Err != nil {
			mr.Error = m.Err.Error()
		}
		resp.Metrics = append(resp.Metrics, mr)
	}
	return resp
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	report, err := s.reportUC.Preview(ctx, s.now())
	if err != nil {
		apperr.Handle(ctx, err)
		writeError(w, r, err, apperr.StatusCode(err))
		return
	}

	writeJSON(w, r, http.StatusOK, newReportResponse(report))
}

// handleRun triggers a delivered report run. With wait=true the run completes
// before responding, otherwise it is dispatched in the background.
func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	now := s.now()

	if r.URL.Query().Get("wait") == "true" {
		report, err := s.reportUC.Run(ctx, now)
		if err != nil {
			apperr.Handle(ctx, err)
			writeError(w, r, err, apperr.StatusCode(err))
			return
		}
		writeJSON(w, r, http.StatusOK, newReportResponse(report))
		return
	}

	s.runner.Dispatch(ctx, "report_run", func(ctx context.Context) error {
		_, err := s.reportUC.Run(ctx, now)
		return err
	})

	writeJSON(w, r, http.StatusAccepted, map[string]string{
		"status": "accepted",
	})
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "controlchart",
	})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}

// writeError writes an error response
func writeError(w http.ResponseWriter, r *http.Request, err error, status int) {
	writeJSON(w, r, status, map[string]string{
		"error": err.Error(),
	})
}
