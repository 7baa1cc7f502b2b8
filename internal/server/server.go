// Package server exposes the bridge over HTTP: the Gravity Forms webhook
// receiver, a connectivity test endpoint, the cached item listing, and a
// health check.
package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/gf-b1-bridge/go/internal/bridge"
	"github.com/gf-b1-bridge/go/internal/itemcache"
	"github.com/gf-b1-bridge/go/internal/models"
)

// SubmissionRequest is the webhook payload the GF Webhooks add-on is
// configured to send: the entry values plus the form metadata.
type SubmissionRequest struct {
	FormID string       `json:"form_id"`
	Entry  models.Entry `json:"entry"`
	Form   models.Form  `json:"form"`
}

// SubmissionResponse reports the outcome to the webhook caller.
type SubmissionResponse struct {
	SubmissionID string `json:"submission_id"`
	State        string `json:"state"`
	CardCode     string `json:"card_code,omitempty"`
	DocNum       int    `json:"doc_num,omitempty"`
	Message      string `json:"message"`
}

// Server wires the HTTP surface to the processor.
type Server struct {
	processor *bridge.Processor
	items     *itemcache.Store // nil when the cache is disabled
	log       zerolog.Logger
}

// New creates a server. items may be nil.
func New(processor *bridge.Processor, items *itemcache.Store, log zerolog.Logger) *Server {
	return &Server{processor: processor, items: items, log: log}
}

// Router builds the chi handler tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	r.Get("/healthz", s.handleHealth)
	r.Post("/webhooks/gravityforms", s.handleSubmission)
	r.Post("/test-connection", s.handleTestConnection)
	r.Get("/items", s.handleItems)

	return r
}

// ListenAndServe blocks serving the router until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Router()}

	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()

	s.log.Info().Str("addr", addr).Msg("webhook server listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSubmission(w http.ResponseWriter, r *http.Request) {
	var req SubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid submission payload"})
		return
	}
	if req.FormID == "" {
		req.FormID = req.Form.ID
	}

	res := s.processor.ProcessSubmission(r.Context(), req.FormID, req.Entry, req.Form)

	out := SubmissionResponse{
		SubmissionID: res.SubmissionID,
		State:        string(res.State),
		Message:      res.Message,
	}
	if res.BusinessPartner != nil {
		out.CardCode = res.BusinessPartner.CardCode
	}
	if res.Quotation != nil {
		out.DocNum = res.Quotation.DocNum
	}

	status := http.StatusOK
	if res.State == bridge.StateFailed {
		// The extracted SAP message is already in Message; no stack traces
		// leave this handler.
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, out)
}

func (s *Server) handleTestConnection(w http.ResponseWriter, r *http.Request) {
	sl, err := s.processor.NewClient(s.log)
	if err != nil {
		writeJSON(w, http.StatusOK, models.ConnectionTestResult{Success: false, Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, sl.TestConnection(r.Context()))
}

func (s *Server) handleItems(w http.ResponseWriter, r *http.Request) {
	if s.items == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "item cache is not enabled"})
		return
	}
	items, err := s.items.List()
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list item cache")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to read item cache"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
