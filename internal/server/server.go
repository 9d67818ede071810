package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"binomci/internal/domain"
)

// maxBody caps request bodies.
const maxBody = 1 << 20

// Server serves the estimation API.
type Server struct {
	svc     domain.CompareService
	reports domain.ReportStore
	log     *slog.Logger

	defaultModel   domain.ModelSpec
	defaultSampler domain.SamplerConfig
}

// New returns a Server. model and sampler fill in requests that omit them.
func New(
	svc domain.CompareService,
	reports domain.ReportStore,
	log *slog.Logger,
	model domain.ModelSpec,
	sampler domain.SamplerConfig,
) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{svc: svc, reports: reports, log: log, defaultModel: model, defaultSampler: sampler}
}

// Handler returns the routed, access-logged handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /estimate", s.handleEstimate)
	mux.HandleFunc("POST /compare", s.handleCompare)
	mux.HandleFunc("GET /reports/{id}", s.handleReport)
	return s.accessLog(mux)
}

func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	var req domain.EstimateRequest
	if !decode(w, r, &req) {
		return
	}
	m, err := domain.ParseMethod(string(req.Method))
	if err != nil {
		writeError(w, err)
		return
	}
	model, cfg := s.resolve(req.Prior, req.Sampler)
	est, err := s.svc.Estimate(r.Context(), m, req.Observation(), req.Level, model, cfg)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, est)
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req domain.CompareRequest
	if !decode(w, r, &req) {
		return
	}
	model, cfg := s.resolve(req.Prior, req.Sampler)
	rep, err := s.svc.Run(r.Context(), req.Observation(), req.Level, model, cfg)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	rep, err := s.reports.LoadReport(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

// resolve fills in the server defaults for an omitted prior or sampler.
func (s *Server) resolve(prior *domain.ModelSpec, sampler *domain.SamplerConfig) (domain.ModelSpec, domain.SamplerConfig) {
	model, cfg := s.defaultModel, s.defaultSampler
	if prior != nil {
		model = *prior
	}
	if sampler != nil {
		cfg = *sampler
	}
	return model, cfg
}

func decode(w http.ResponseWriter, r *http.Request, out any) bool {
	defer r.Body.Close()
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		writeJSON(w, http.StatusBadRequest, domain.ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	}
	writeJSON(w, status, domain.ErrorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)
		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"remote", r.RemoteAddr,
			"status", rec.status,
			"bytes", rec.bytes,
			"duration", time.Since(start),
		)
	})
}
