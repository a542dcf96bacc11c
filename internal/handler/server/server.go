package server

import (
	"context"
	"net/http"
	"time"

	"github.com/innoquest/hackathon-backend/internal/handler"
	"go.uber.org/zap"
)

type Server struct {
	log    *zap.Logger
	server *http.Server
}

func NewServer(log *zap.Logger, h *handler.Handler, addr string) *Server {
	mux := http.NewServeMux()
	SetupRoutes(mux, h)

	return &Server{
		log: log,
		server: &http.Server{
			Addr:    addr,
			Handler: requestLogger(log, mux),
		},
	}
}

func (s *Server) Start() error {
	s.log.Info("server starting", zap.String("addr", s.server.Addr))
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.log.Info("server stopped")
	return nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func requestLogger(log *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
