package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"stockroom/cmd/server/docs"
	"stockroom/internal/api"
	"stockroom/internal/config"
	"stockroom/internal/metrics"
	"stockroom/internal/observability"
	"stockroom/internal/repository"
	"stockroom/internal/storage"
	"stockroom/internal/worker"
)

// @title Stockroom API
// @version 1.0
// @description Inventory tracking service

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
// @schemes http https

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	repo := repository.NewInventoryRepository(cfg.CacheDir)
	if err := repo.EnsureInitialized(); err != nil {
		log.Fatalf("failed to initialize inventory storage: %v", err)
	}
	photos := storage.NewPhotoStore(cfg.CacheDir)

	if cfg.OTLPEndpoint != "" {
		shutdownTracing, err := observability.SetupTracing(ctx, cfg.OTLPEndpoint)
		if err != nil {
			log.Fatalf("failed to initialize tracing: %v", err)
		}
		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownTracing(flushCtx); err != nil {
				log.Printf("tracing shutdown: %v", err)
			}
		}()
	}

	docs.SwaggerInfo.Host = cfg.HTTPAddr
	if cfg.IsProduction() {
		docs.SwaggerInfo.Schemes = []string{"https"}
	} else {
		docs.SwaggerInfo.Schemes = []string{"http"}
	}

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(metrics.PrometheusMiddleware())
	if cfg.OTLPEndpoint != "" {
		e.Use(otelecho.Middleware("stockroom"))
	}

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api.SetupRoutes(e, repo, photos)

	e.GET("/docs", func(c echo.Context) error {
		return c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	e.GET("/docs/*", echoSwagger.WrapHandler)

	go func() {
		if err := e.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	orphanWorker := worker.NewOrphanWorker(repo, cfg.CacheDir, cfg.OrphanScanInterval)
	go orphanWorker.StartWorker(ctx)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}
}
