package handlers

import (
	"log/slog"
	"time"

	"go_speak_review/internal/config"
	"go_speak_review/internal/middleware"
	"go_speak_review/internal/service"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"gorm.io/gorm"
)

// RouterDeps はルーター構築に必要な依存関係
type RouterDeps struct {
	DB            *gorm.DB
	ReviewService service.ReviewService
	SyncService   service.SyncService
	Config        *config.Config
	Logger        *slog.Logger
	// RequestTimeout が0の場合は60秒
	RequestTimeout time.Duration
}

// NewRouter はAPIのルーティングとミドルウェアを設定します
func NewRouter(deps RouterDeps) *chi.Mux {
	cfg := deps.Config
	timeout := deps.RequestTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	reviewHandler := NewReviewHandler(deps.ReviewService)
	syncHandler := NewSyncHandler(deps.SyncService)
	healthHandler := NewHealthHandler(deps.DB)
	ratingLimiter := middleware.NewSpeakerRateLimiter(cfg.App.RatingRatePerSecond, cfg.App.RatingBurst)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(deps.Logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
		Debug:            false,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(timeout))

	r.Get("/health", healthHandler.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if cfg.Auth.Enabled {
				deps.Logger.Info("Applying JWT authentication middleware")
				r.Use(middleware.JWTAuthMiddleware(cfg))
			} else {
				deps.Logger.Warn("Authentication disabled, using X-Speaker-ID header")
				r.Use(middleware.DevSpeakerContextMiddleware)
			}

			r.Route("/reviews", func(r chi.Router) {
				r.Get("/due", reviewHandler.GetDueItems)
				r.Get("/stats", reviewHandler.GetReviewStats)
				r.With(ratingLimiter.Middleware).Post("/{item_id}/rating", reviewHandler.SubmitRating)
				r.Post("/sync", syncHandler.SyncReviewItems)
			})
		})
	})

	return r
}
