package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	validator "github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	redis "github.com/redis/go-redis/v9"

	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/catalog"
	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/config"
	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/counter"
	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/document"
	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/health"
	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/kv"
	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/notify"
	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/obs"
	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/quote"
	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/ratelimit"
	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/seller"
	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/shipping"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := obs.NewLogger(cfg.LogFormat, cfg.LogLevel).With().Str("env", cfg.AppEnv).Logger()

	metricsNamespace := envOrDefault("OBS_METRICS_NAMESPACE", "storefront")
	metricsEnabled := envBool("OBS_ENABLE_PROMETHEUS", true)
	obs.MustRegisterDomainMetrics(metricsNamespace, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("parse redis url")
	}
	redisClient := redis.NewClient(redisOpts)
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Error().Err(err).Msg("close redis")
		}
	}()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal().Err(err).Msg("ping redis")
	}

	store := kv.Store{Client: redisClient}
	sellerCfg := seller.Load(ctx, store, logger)
	if cfg.GoogleSheetURL != "" {
		sellerCfg.GoogleSheetURL = cfg.GoogleSheetURL
	}
	catalogService := catalog.Load(ctx, store, logger)

	seq := counter.Redis{Client: redisClient, Key: kv.KeyQuoteCounter}
	if err := seq.Seed(ctx); err != nil {
		logger.Fatal().Err(err).Msg("seed quote counter")
	}

	rates := shipping.Rates()
	formatter, err := quote.NewFormatter(quote.DocumentLabels(), rates)
	if err != nil {
		logger.Fatal().Err(err).Msg("initialise quote formatter")
	}

	quoteService := &quote.Service{
		Catalog:   catalogService,
		Seller:    sellerCfg,
		Rates:     rates,
		Builder:   quote.Builder{Seq: seq, Now: time.Now},
		Formatter: formatter,
		Quotes:    quote.NewStore(),
		Notify: notify.SheetSender{
			URL:    sellerCfg.GoogleSheetURL,
			Client: notify.HTTPClient(int(cfg.NotifyHTTPTimeout / time.Millisecond)),
		},
		NotifyTimeout: cfg.NotifyTimeout,
		Logger:        logger,
	}

	catalogHandler := &catalog.Handler{Service: catalogService}
	shippingHandler := &shipping.Handler{Rates: rates}
	quoteHandler := &quote.Handler{
		Svc:       quoteService,
		Validate:  validator.New(),
		RenderPDF: document.Render,
		Logger:    logger,
	}

	quoteLimit := ratelimit.Handler{
		Limiter: ratelimit.Limiter{Client: redisClient, Prefix: "storefront:rl:"},
		Config: ratelimit.Config{
			Key:    ratelimit.ByClientIP,
			Window: cfg.QuoteRateWindow,
			Max:    cfg.QuoteRateMax,
		},
		OnError: func(err error) {
			logger.Error().Err(err).Msg("rate limiter check")
		},
	}

	var httpMetrics *obs.HTTPMetrics
	if metricsEnabled {
		buckets := obs.ParseBucketsCSV(envOrDefault("OBS_METRICS_BUCKETS_MS", ""))
		httpMetrics = obs.NewHTTPMetrics(metricsNamespace, buckets, nil)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(obs.RoutePatternMiddleware)
	if metricsEnabled && httpMetrics != nil {
		r.Use(obs.HTTPObs{Metrics: httpMetrics}.Middleware)
	}
	r.Use(obs.RequestLogger{Logger: logger}.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins(cfg),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}))

	if metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	healthHandler := health.Handler{
		Checker:      readinessChecker{redis: redisClient},
		RedisTimeout: envDurationMillis("HEALTH_READY_REDIS_TIMEOUT_MS", 300),
	}
	r.Get("/health/live", healthHandler.Live)
	r.Get("/health/ready", healthHandler.Ready)

	r.Route("/api/v1", func(v chi.Router) {
		v.Get("/products", catalogHandler.List)
		v.Get("/products/{id}", catalogHandler.Detail)
		v.Get("/shipping/options", shippingHandler.List)

		v.Route("/quotes", func(q chi.Router) {
			q.Post("/preview", quoteHandler.Preview)
			q.With(quoteLimit.Middleware).Post("/", quoteHandler.Create)
			q.Get("/{id}", quoteHandler.Get)
			q.Get("/{id}/pdf", quoteHandler.GetPDF)
		})
	})

	srv := &http.Server{
		Addr:    cfg.HTTPAddr(),
		Handler: r,
	}

	logger.Info().Str("addr", srv.Addr).Msg("server starting")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("server exited unexpectedly")
	}
}

func allowedOrigins(cfg *config.Config) []string {
	if len(cfg.CORSAllowedOrigins) == 0 {
		return []string{"*"}
	}
	return cfg.CORSAllowedOrigins
}

type readinessChecker struct {
	redis *redis.Client
}

func (c readinessChecker) PingRedis(ctx context.Context, timeout time.Duration) error {
	if c.redis == nil {
		return errors.New("redis not configured")
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return c.redis.Ping(ctx).Err()
}

func envOrDefault(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		trimmed := strings.TrimSpace(val)
		if trimmed != "" {
			return trimmed
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if val, ok := os.LookupEnv(key); ok {
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "1", "t", "true", "yes", "on":
			return true
		case "0", "f", "false", "no", "off":
			return false
		}
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if val, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
			return parsed
		}
	}
	return fallback
}

func envDurationMillis(key string, fallback int) time.Duration {
	return time.Duration(envInt(key, fallback)) * time.Millisecond
}
