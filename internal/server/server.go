package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/velarium/scriptorium/internal/database"
	"github.com/velarium/scriptorium/internal/handler"
	"github.com/velarium/scriptorium/internal/logger"
	"github.com/velarium/scriptorium/internal/metrics"
	"github.com/velarium/scriptorium/internal/progression"
	"github.com/velarium/scriptorium/internal/session"
)

type Server struct {
	httpServer         *http.Server
	dbPool             database.Pool
	progressionService progression.Service
	sessionTracker     *session.Tracker
}

// NewServer creates a new Server instance
func NewServer(port int, dbPool database.Pool, progressionService progression.Service, sessionTracker *session.Tracker) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RequestSizeLimitMiddleware(MaxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/read", handler.HandleReadQuote(progressionService))

		// Equipment routes
		r.Route("/equipment", func(r chi.Router) {
			r.Post("/equip", handler.HandleEquipBoon(progressionService))
			r.Post("/unequip", handler.HandleUnequipSlot(progressionService))
		})

		// Player state routes
		r.Get("/state", handler.HandleGetState(progressionService))
		r.Get("/stats", handler.HandleGetStats(progressionService))
		r.Get("/destiny", handler.HandleGetDestiny(progressionService))
		r.Get("/progress", handler.HandleGetProgress(progressionService))
		r.Get("/boons", handler.HandleGetBoons(progressionService))
		r.Get("/badges", handler.HandleGetBadges(progressionService))

		// Scripture routes
		r.Route("/scriptures", func(r chi.Router) {
			r.Get("/", handler.HandleGetScriptures(progressionService))
			r.Post("/register", handler.HandleRegisterScripture(progressionService))
			r.Delete("/{fileID}", handler.HandleDeleteScripture(progressionService))
			r.Post("/focus", handler.HandleSetFocus(progressionService))
		})

		// Backup routes
		r.Route("/backup", func(r chi.Router) {
			r.Get("/export", handler.HandleExportBackup(progressionService))
			r.Post("/import", handler.HandleImportBackup(progressionService))
		})

		// Session routes
		r.Route("/session", func(r chi.Router) {
			r.Post("/start", handler.HandleSessionStart(sessionTracker, progressionService))
			r.Post("/stop", handler.HandleSessionStop(sessionTracker, progressionService))
			r.Post("/time", handler.HandleAddSessionTime(progressionService))
		})

		// Art generation routes
		r.Route("/art", func(r chi.Router) {
			r.Route("/item/{boonID}", func(r chi.Router) {
				r.Get("/check", handler.HandleCheckItemArt(progressionService))
				r.Post("/generate", handler.HandleGenerateItemArt(progressionService))
			})
			r.Route("/portrait", func(r chi.Router) {
				r.Get("/check", handler.HandleCheckPortrait(progressionService))
				r.Post("/generate", handler.HandleGeneratePortrait(progressionService))
			})
		})

		r.Post("/reset", handler.HandleReset(progressionService))
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       ReadTimeout,
			WriteTimeout:      WriteTimeout,
			IdleTimeout:       IdleTimeout,
		},
		dbPool:             dbPool,
		progressionService: progressionService,
		sessionTracker:     sessionTracker,
	}
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

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Wrap response writer to capture status code
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

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
