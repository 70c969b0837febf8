package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/kitlab/jersey-shop/internal/config"
	"github.com/kitlab/jersey-shop/internal/events"
	"github.com/kitlab/jersey-shop/internal/httpserver"
	"github.com/kitlab/jersey-shop/internal/models"
	"github.com/kitlab/jersey-shop/internal/repo"
	"github.com/kitlab/jersey-shop/internal/search"
	"github.com/kitlab/jersey-shop/internal/service"
	pkgdb "github.com/kitlab/jersey-shop/pkg/db"
	"github.com/kitlab/jersey-shop/pkg/logging"
	loggingmw "github.com/kitlab/jersey-shop/pkg/middleware/logging"
	metricsmw "github.com/kitlab/jersey-shop/pkg/middleware/metrics"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := config.Load()

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := pkgdb.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	if err := db.AutoMigrate(models.All()...); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	esClient, err := search.NewESClient(cfg)
	if err != nil {
		log.Fatalf("elasticsearch: %v", err)
	}
	if esClient == nil {
		logger.Info("elasticsearch not configured, search uses the database")
	}

	producer := events.NewProducer(cfg.KafkaBrokers)
	if producer == nil {
		logger.Info("kafka not configured, events disabled")
	}

	rp := &repo.GormRepo{DB: db}

	deps := &httpserver.Deps{
		Products: &httpserver.ProductHTTP{
			Svc:      &service.CatalogService{Repo: rp},
			Producer: producer,
		},
		Combos:  &httpserver.ComboHTTP{Svc: &service.ComboService{Repo: rp}},
		Banners: &httpserver.BannerHTTP{Svc: &service.BannerService{Repo: rp}},
		Orders: &httpserver.OrderHTTP{
			Svc:      &service.OrderService{Repo: rp},
			Producer: producer,
		},
		Auth: &httpserver.AuthHTTP{
			Svc: &service.AuthService{Repo: rp, Admin: cfg.Admin},
		},
		Search: &httpserver.SearchHTTP{
			Svc: &search.Service{ES: esClient, Index: search.DefaultIndex, Repo: rp},
		},
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(metricsmw.Collect())
	if len(cfg.CORSOrigins) > 0 {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins:     cfg.CORSOrigins,
			AllowCredentials: true,
		}))
	} else {
		e.Use(echomw.CORS())
	}

	httpserver.Register(e, deps)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("%s listening on %s", cfg.ServiceName, srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)
	_ = producer.Close()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Println("server stopped")
}
