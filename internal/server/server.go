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
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/RewardEngine_Go/internal/config"
	"github.com/osse101/RewardEngine_Go/internal/gacha"
	"github.com/osse101/RewardEngine_Go/internal/handler"
	"github.com/osse101/RewardEngine_Go/internal/logger"
	"github.com/osse101/RewardEngine_Go/internal/lottery"
	"github.com/osse101/RewardEngine_Go/internal/metrics"
	"github.com/osse101/RewardEngine_Go/internal/player"
	"github.com/osse101/RewardEngine_Go/internal/raid"
)

// Deps are the services the HTTP API exposes.
type Deps struct {
	DB      handler.Pinger
	Players player.Service
	Gacha   gacha.Service
	Lottery lottery.Service
	Raid    raid.Service
	Configs handler.ConfigReloader
}

type Server struct {
	httpServer *http.Server
	limiter    *PlayerRateLimiter
}

// NewServer creates a new Server instance
func NewServer(cfg *config.Config, deps Deps) *Server {
	limiter := NewPlayerRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           NewRouter(cfg, deps, limiter),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		limiter: limiter,
	}
}

// NewRouter builds the HTTP routes.
func NewRouter(cfg *config.Config, deps Deps, limiter *PlayerRateLimiter) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	monitor := NewAbuseMonitor()

	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(AbuseGuardMiddleware(monitor, cfg.TrustedProxies))
	r.Use(AuthMiddleware(cfg.APIKey, cfg.TrustedProxies, monitor))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.DB))
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	players := handler.NewPlayerHandler(deps.Players)
	gachaHandler := handler.NewGachaHandler(deps.Gacha)
	lotteryHandler := handler.NewLotteryHandler(deps.Lottery)
	raidHandler := handler.NewRaidHandler(deps.Raid)

	r.Route(APIPrefix, func(r chi.Router) {
		// Player-facing routes
		r.Group(func(r chi.Router) {
			r.Use(RateLimitMiddleware(limiter, monitor, cfg.TrustedProxies))

			r.Get("/players/{playerID}", players.HandleGet)

			r.Route("/gacha", func(r chi.Router) {
				r.Get("/packs", gachaHandler.HandleListPacks)
				r.Post("/draw", gachaHandler.HandleDraw)
				r.Post("/draw-ten", gachaHandler.HandleDrawTen)
				r.Post("/mileage/claim", gachaHandler.HandleClaimMileage)
				r.Get("/collection/{playerID}", gachaHandler.HandleGetCollection)
			})

			r.Route("/lottery", func(r chi.Router) {
				r.Get("/board", lotteryHandler.HandleGetBoard)
				r.Post("/pick", lotteryHandler.HandlePick)
			})

			r.Route("/raid", func(r chi.Router) {
				r.Get("/", raidHandler.HandleGetRaid)
				r.Post("/attack", raidHandler.HandleAttack)
				r.Get("/leaderboard", raidHandler.HandleLeaderboard)
			})
		})

		// Operator routes
		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(cfg.AdminAPIKey, cfg.TrustedProxies, monitor))

			r.Post("/players", players.HandleRegister)
			r.Post("/players/{playerID}/grant", players.HandleGrant)

			r.Route("/admin", func(r chi.Router) {
				r.Post("/raid/start", raidHandler.HandleStartRaid)
				r.Post("/raid/end", raidHandler.HandleEndRaid)
				r.Post("/config/reload", handler.HandleReloadConfig(deps.Configs))
			})
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
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
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAdminKey) ||
				strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

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
