// Released under an MIT license. See LICENSE.

// Package server evaluates code submitted over HTTP.
//
// Every request is evaluated by its own engine so that nothing defined
// or mutated by one request is visible to another.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/engine"
)

// Request is the body of a submission.
type Request struct {
	Code string `json:"code"`
}

// Response is the result of a submission.
type Response struct {
	Output  string `json:"output"`
	Success bool   `json:"success"`
}

// T (server) handles submissions.
type T struct {
	log  *slog.Logger
	opts []engine.Option
}

type server = T

// Limits applied to every request unless overridden.
const (
	DefaultDepth = 1000
	DefaultSteps = 1_000_000
)

// Largest request body accepted, in bytes.
const maxBody = 1 << 16

// New creates a new server. Each request's engine is created with opts.
// Requests are limited to DefaultDepth nested calls and DefaultSteps steps
// for each top-level form unless opts say otherwise.
func New(log *slog.Logger, opts ...engine.Option) *T {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	defaults := []engine.Option{
		engine.WithDepthLimit(DefaultDepth),
		engine.WithLogger(log),
		engine.WithStepLimit(DefaultSteps),
	}

	return &server{
		log:  log,
		opts: append(defaults, opts...),
	}
}

// Handler returns the routes served.
func (s *server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/submit-code", s.submit)

	return mux
}

// ListenAndServe serves submissions on addr.
func (s *server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.log.Info("listening", "addr", addr)

	return srv.ListenAndServe()
}

// Submit evaluates code with a new engine.
func (s *server) Submit(code string) Response {
	e, err := engine.New(s.opts...)
	if err != nil {
		return Response{Output: err.Error()}
	}

	r, err := e.Run("request", code)
	if errors.Is(err, engine.ErrEmpty) {
		return Response{Output: "no program to evaluate"}
	} else if err != nil {
		return Response{Output: err.Error()}
	}

	return Response{Output: literal.String(r), Success: true}
}

func (s *server) submit(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusNoContent)

		return
	case http.MethodPost:
	default:
		w.Header().Set("Allow", "POST, OPTIONS")
		http.Error(w, "POST required", http.StatusMethodNotAllowed)

		return
	}

	var req Request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	start := time.Now()
	res := s.Submit(req.Code)

	s.log.Info("submission",
		"remote", r.RemoteAddr,
		"success", res.Success,
		"elapsed", time.Since(start),
	)

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(res); err != nil {
		s.log.Warn("cannot write response", "error", err.Error())
	}
}
