// Package httpapi exposes the claim workflow steps as HTTP POST endpoints
// and the conversational /ask entry point. Route paths and payload field
// names are part of the external contract and must not change.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	contractx "github.com/Rajib-TE/Claim-Management-Featuring-Agentic-AI/claims/contract"
	dispatchx "github.com/Rajib-TE/Claim-Management-Featuring-Agentic-AI/claims/dispatch"
	handlerx "github.com/Rajib-TE/Claim-Management-Featuring-Agentic-AI/claims/handler"
)

type Config struct {
	Addr         string        `split_words:"true" default:":8000"`
	ReadTimeout  time.Duration `split_words:"true" default:"15s"`
	WriteTimeout time.Duration `split_words:"true" default:"60s"`
}

type Server struct {
	wf         *handlerx.Workflow
	dispatcher *dispatchx.Dispatcher
	resolver   contractx.Resolver
}

// New builds the API surface. The resolver may be nil, in which case /ask
// reports that conversational routing is not configured while the operation
// endpoints keep working.
func New(wf *handlerx.Workflow, dispatcher *dispatchx.Dispatcher, resolver contractx.Resolver) (*Server, error) {
	if wf == nil {
		return nil, errors.New("workflow is required")
	}
	if dispatcher == nil {
		return nil, errors.New("dispatcher is required")
	}
	return &Server{wf: wf, dispatcher: dispatcher, resolver: resolver}, nil
}

// Handler returns the routed and logged http.Handler for the API.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /claim_registration_agent/claim_db_storage_tool", operation(s.wf.Register))
	mux.HandleFunc("POST /claim_validation_agent/claimvalidatortool", operation(s.wf.Validate))
	mux.HandleFunc("POST /claim_validation_agent/additionalinforequesttool", operation(s.wf.RequestAdditionalInfo))
	mux.HandleFunc("POST /claim_assignment_investigation_agent/examiner_assignment_tool", operation(s.wf.AssignExaminer))
	mux.HandleFunc("POST /claim_assignment_investigation_agent/claim_investigation_tool", operation(s.wf.Investigate))
	mux.HandleFunc("POST /claim_decision_agent/decision_support_tool", operation(s.wf.Decide))
	mux.HandleFunc("POST /claim_payment_agent/payment_processing_tool", operation(s.wf.ProcessPayment))
	mux.HandleFunc("POST /claim_notification_agent/notification_sending_tool", operation(s.wf.Notify))
	mux.HandleFunc("POST /claim_closure_agent/ClaimClosureTool", operation(s.wf.Close))
	mux.HandleFunc("POST /ask", s.handleAsk)

	return logRequests(mux)
}

func (s *Server) ListenAndServe(cfg Config) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	log.Info().Str("addr", cfg.Addr).Msg("http server listening")
	return srv.ListenAndServe()
}

// operation adapts a typed workflow method into an HTTP handler. Only
// transport-level failures (unreadable body, malformed JSON) surface as
// non-200 statuses; business rejections and handler faults come back as the
// operation's own response shape.
func operation[In any, Out any](fn func(ctx context.Context, in In) Out) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in In
		if err := decodeJSON(r, &in); err != nil {
			writeJSON(w, http.StatusBadRequest, contractx.ToolResponse{
				Error:   true,
				Details: "Invalid request body: " + err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, fn(r.Context(), in))
	}
}

func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return errors.New("request body is required")
	}
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("encode response failed")
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	})
}
