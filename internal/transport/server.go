package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ymxu/resumefill/internal/common"
	"github.com/ymxu/resumefill/internal/fields"
	"github.com/ymxu/resumefill/internal/fill"
	"github.com/ymxu/resumefill/internal/logging"
)

// Agent is the receiving end of the action protocol: everything the page
// agent can do on behalf of the CLI.
type Agent interface {
	FillForm(ctx context.Context, text string, fieldType fields.Type) error
	DetectFields(ctx context.Context) ([]Field, error)
	FillSpecificField(ctx context.Context, selector, text string) error
	QuickFill(ctx context.Context, values map[fields.Type]string) (*fill.Report, error)

	OpenFixedWindow(ctx context.Context) error
	CloseFixedWindow(ctx context.Context) error
	CheckFixedWindow(ctx context.Context) (bool, error)
	OpenFloatWindow(ctx context.Context) error
	CloseFloatWindow(ctx context.Context) error
}

// Server exposes an Agent over HTTP.
type Server struct {
	http   *http.Server
	logger logging.Logger
}

// NewServer builds the agent HTTP server on addr.
func NewServer(addr string, agent Agent, logger logging.Logger) *Server {
	s := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(agent, logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return &Server{http: s, logger: logger}
}

// NewRouter builds the chi router serving the action endpoints.
func NewRouter(agent Agent, logger logging.Logger) http.Handler {
	h := &handler{agent: agent, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Route("/actions", func(r chi.Router) {
		r.Post("/"+ActionFillForm, h.fillForm)
		r.Post("/"+ActionDetectFields, h.detectFields)
		r.Post("/"+ActionFillSpecificField, h.fillSpecificField)
		r.Post("/"+ActionQuickFill, h.quickFill)
		r.Post("/"+ActionOpenFixedWindow, h.window(agent.OpenFixedWindow))
		r.Post("/"+ActionCloseFixedWindow, h.window(agent.CloseFixedWindow))
		r.Post("/"+ActionCheckFixedWindow, h.checkFixedWindow)
		r.Post("/"+ActionOpenFloatWindow, h.window(agent.OpenFloatWindow))
		r.Post("/"+ActionCloseFloatWindow, h.window(agent.CloseFloatWindow))
	})
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, Response{Success: true})
	})

	return r
}

// Start runs the server until it fails or is shut down.
func (s *Server) Start() error {
	s.logger.Info(context.Background(), "agent listening", "addr", s.http.Addr)
	err := s.http.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info(ctx, "agent shutting down")
	return s.http.Shutdown(ctx)
}

type handler struct {
	agent  Agent
	logger logging.Logger
}

func (h *handler) fillForm(w http.ResponseWriter, r *http.Request) {
	var req FillFormRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.agent.FillForm(r.Context(), req.Text, req.FieldType); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, Response{Success: true})
}

func (h *handler) detectFields(w http.ResponseWriter, r *http.Request) {
	found, err := h.agent.DetectFields(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, DetectFieldsResponse{
		Response: Response{Success: true},
		Fields:   found,
	})
}

func (h *handler) fillSpecificField(w http.ResponseWriter, r *http.Request) {
	var req FillSpecificFieldRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.agent.FillSpecificField(r.Context(), req.Selector, req.Text); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, Response{Success: true})
}

func (h *handler) quickFill(w http.ResponseWriter, r *http.Request) {
	var req QuickFillRequest
	if !h.decode(w, r, &req) {
		return
	}
	report, err := h.agent.QuickFill(r.Context(), req.Values)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, QuickFillResponse{
		Response: Response{Success: true},
		Report:   report,
	})
}

func (h *handler) checkFixedWindow(w http.ResponseWriter, r *http.Request) {
	isOpen, err := h.agent.CheckFixedWindow(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, CheckWindowResponse{
		Response: Response{Success: true},
		IsOpen:   isOpen,
	})
}

func (h *handler) window(op func(context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := op(r.Context()); err != nil {
			h.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, Response{Success: true})
	}
}

func (h *handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeError(w, r, fmt.Errorf("malformed request body: %w", common.ErrValidation))
		return false
	}
	return true
}

func (h *handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, common.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, common.ErrNotFound):
		status = http.StatusNotFound
	}

	h.logger.Warn(r.Context(), "action failed",
		"path", r.URL.Path, "status", status, "error", err.Error())
	writeJSON(w, status, Response{Success: false, Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
