// Package server exposes the command dispatcher over HTTP. Every command is
// marshalled onto the host UI context and runs to completion before the next
// one starts.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mj1618/uibridge/internal/command"
	"github.com/mj1618/uibridge/internal/dispatch"
	"github.com/mj1618/uibridge/internal/platform"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// CommandPath is the single command route.
const CommandPath = "/api/command"

const maxRequestBytes = 1 << 20

type Server struct {
	dispatcher *dispatch.Dispatcher
	loop       platform.EventLoop
	logger     *zap.Logger
	gatherer   prometheus.Gatherer
	router     chi.Router
}

type Option func(*Server)

func WithLogger(l *zap.Logger) Option { return func(s *Server) { s.logger = l } }

// WithMetrics serves g on GET /metrics.
func WithMetrics(g prometheus.Gatherer) Option { return func(s *Server) { s.gatherer = g } }

func New(d *dispatch.Dispatcher, loop platform.EventLoop, opts ...Option) *Server {
	s := &Server{dispatcher: d, loop: loop, logger: zap.NewNop()}
	for _, o := range opts {
		o(s)
	}
	s.logger = s.logger.Named("server")

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(accessLog(s.logger))
	r.Use(middleware.Recoverer)

	r.Post(CommandPath, s.handleCommand)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
	})
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	s.router = r
	return s
}

func (s *Server) Handler() http.Handler { return s.router }

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Command server listening", zap.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("Shutting down command server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		<-errCh
		return nil
	}
}

// ListenAndServe listens on addr and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	var req dispatch.Request
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, command.Fail(
			command.Errorf(command.InvalidFormat, "Invalid request body: %v", err)))
		return
	}
	normalizeNumbers(req.Params)

	var result command.Result
	err := s.loop.Invoke(r.Context(), func() {
		result = s.dispatcher.Dispatch(req.Command, req.Params)
	})
	if err != nil {
		s.logger.Warn("Command not executed", zap.String("command", req.Command), zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, command.Fail(command.Wrap(err, "UI context unavailable")))
		return
	}
	writeJSON(w, statusFor(result), result)
}

func statusFor(r command.Result) int {
	if r.Success {
		return http.StatusOK
	}
	switch r.Code {
	case command.InvalidFormat, command.UnknownCommand:
		return http.StatusNotFound
	default:
		return http.StatusOK
	}
}

// normalizeNumbers turns json.Number values into int when integral and
// float64 otherwise, so param accessors see ordinary Go numbers.
func normalizeNumbers(p command.Params) {
	for k, v := range p {
		n, ok := v.(json.Number)
		if !ok {
			continue
		}
		if i, err := n.Int64(); err == nil {
			p[k] = int(i)
		} else if f, err := n.Float64(); err == nil {
			p[k] = f
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
