package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Magga23/siteradar/configs"
	"github.com/Magga23/siteradar/internal/application/usecase/nearby"
	"github.com/Magga23/siteradar/internal/infra/database"
	"github.com/Magga23/siteradar/internal/infra/web/handler"
	custommw "github.com/Magga23/siteradar/internal/infra/web/middleware"
	"github.com/Magga23/siteradar/pkg/logger"
	"github.com/Magga23/siteradar/pkg/metrics"
	"github.com/Magga23/siteradar/pkg/otel"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/riandyrn/otelchi"
	"golang.org/x/sync/errgroup"
)

const serviceName = "siteradar-api"

func main() {
	config, err := configs.LoadConfig(".")
	if err != nil {
		panic(err)
	}

	isProd := config.ServiceEnv == "production"
	appLogger := logger.NewLogger(serviceName, isProd)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if config.OTELCollector != "" {
		shutdown, err := otel.InitProvider(ctx, serviceName, config.OTELCollector)
		if err != nil {
			panic(err)
		}
		defer shutdown()
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName)

	db, err := sql.Open(config.DBDriver, dsn)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	if err = db.Ping(); err != nil {
		panic(err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: config.RedisHost + ":" + config.RedisPort,
	})
	defer rdb.Close()

	registry := prometheus.NewRegistry()
	appMetrics := metrics.NewPrometheusMetrics(registry, serviceName)

	siteRepository := database.NewSiteRepository(db)
	searchUseCase := &nearby.SearchMetricsDecorator{
		Next:    nearby.NewSearchUseCase(siteRepository, appLogger),
		Metrics: appMetrics,
	}
	sitesHandler := handler.NewSitesHandler(searchUseCase, siteRepository)

	limiter := custommw.NewRateLimiter(custommw.RateLimiterConfig{
		RequestsPerSecond: 20,
		Burst:             40,
		CleanupInterval:   time.Minute,
		ClientTimeout:     3 * time.Minute,
	})

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(custommw.RequestLogger(appLogger))
	r.Use(custommw.MetricsWrapper(appMetrics))
	r.Use(limiter.Handler(appLogger))

	r.Get("/api/v1/sites/nearby", sitesHandler.Nearby)
	r.Get("/api/v1/sites", sitesHandler.List)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	r.Method(http.MethodGet, "/healthz", handler.NewHealthHandler(serviceName,
		handler.WithPostgres(db),
		handler.WithRedis(rdb),
	))

	server := &http.Server{
		Addr:    ":" + config.WebServerPort,
		Handler: r,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appLogger.Info(gCtx, "server running", logger.String("port", config.WebServerPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}
