package server

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/cardtable/docs"
	"github.com/osse101/cardtable/internal/config"
	"github.com/osse101/cardtable/internal/handler"
	"github.com/osse101/cardtable/internal/logger"
	"github.com/osse101/cardtable/internal/metrics"
	"github.com/osse101/cardtable/internal/spa"
)

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server serving the API and cfg.StaticDir
func NewServer(cfg *config.Config) *Server {
	static := spa.NewDirHandler(cfg.StaticDir)
	if len(cfg.CORSAllowedOrigins) > 0 {
		slog.Default().Info(LogMsgCORSEnabled, "origins", cfg.CORSAllowedOrigins)
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.ListenAddr(),
			Handler:           NewHandler(static, cfg.CORSAllowedOrigins),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewHandler wraps the router with CORS when origins are configured
func NewHandler(static *spa.Handler, corsOrigins []string) http.Handler {
	return CORSMiddleware(corsOrigins)(NewRouter(static))
}

// NewRouter builds the route table. Anything no route claims goes to the
// static handler, which falls back to index.html.
func NewRouter(static *spa.Handler) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(middleware.Recoverer)
	r.Use(middleware.GetHead)
	r.Use(SecurityHeadersMiddleware())
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get(RouteHealthz, handler.HandleHealthz())
	r.Get(RouteReadyz, handler.HandleReadyz(static))

	// Version endpoint (public, for deployment verification)
	r.Get(RouteVersion, handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle(RouteMetrics, promhttp.Handler())

	r.Route(RouteAPI, func(r chi.Router) {
		r.Get(RouteHello, handler.HandleHello())
		r.Get(RouteCards, handler.HandleGetCards())
		r.Get(RouteCard, handler.HandleGetCard())
	})

	// Swagger documentation
	r.Get(RouteSwagger, httpSwagger.WrapHandler)

	r.NotFound(static.ServeHTTP)

	return r
}

// Handler exposes the fully wired HTTP handler
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Addr is the listen address
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent())

		log.Debug(LogMsgRequestHeaders, "headers", sanitizeHeaders(r.Header))

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

func sanitizeHeaders(h http.Header) http.Header {
	sanitized := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAuthorization) || strings.EqualFold(k, HeaderCookie) {
			sanitized[k] = []string{RedactedValue}
		} else {
			sanitized[k] = v
		}
	}
	return sanitized
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
