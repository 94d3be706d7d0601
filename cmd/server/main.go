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

	"github.com/aws/aws-lambda-go/lambda"
	echoadapter "github.com/awslabs/aws-lambda-go-api-proxy/echo"
	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/example/smart-shop/internal/cache"
	"github.com/example/smart-shop/internal/config"
	"github.com/example/smart-shop/internal/db"
	"github.com/example/smart-shop/internal/es"
	"github.com/example/smart-shop/internal/httpserver"
	"github.com/example/smart-shop/internal/logging"
	loggingmw "github.com/example/smart-shop/internal/middleware/logging"
	"github.com/example/smart-shop/internal/mykafka"
	"github.com/example/smart-shop/internal/repo"
	"github.com/example/smart-shop/internal/service"
)

const productIndex = "product"

func main() {
	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	gdb, err := db.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	var producer *mykafka.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer, err = mykafka.NewProducer(cfg.KafkaBrokers)
		if err != nil {
			log.Fatalf("kafka producer: %v", err)
		}
	} else {
		log.Println("KAFKA_BROKERS not set, event publishing disabled")
	}

	searchClient := newOptionalES(cfg)

	var productCache *cache.ProductCache
	if cfg.RedisAddr != "" {
		productCache, err = cache.New(cfg.RedisAddr)
		if err != nil {
			log.Fatalf("redis: %v", err)
		}
	} else {
		log.Println("REDIS_ADDR not set, product caching disabled")
	}

	gormRepo := &repo.GormRepo{DB: gdb}
	catalogSvc := &service.CatalogService{Repo: gormRepo, Cache: productCache}
	importSvc := &service.ImportService{Repo: gormRepo}
	exportSvc := &service.ExportService{Repo: gormRepo, Cache: productCache}

	e := echo.New()
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{
		CatalogHandler: &httpserver.CatalogHTTP{Svc: catalogSvc, Producer: producer, ES: searchClient, Index: productIndex},
		ImportHandler:  &httpserver.ImportHTTP{Svc: importSvc, Producer: producer},
		ExportHandler:  &httpserver.ExportHTTP{Svc: exportSvc, Producer: producer, ES: searchClient, Index: productIndex},
		SearchHandler:  httpserver.NewSearchHandler(searchClient, productIndex),
	})

	// In serverless mode the lambda runtime drives the app; no listener is
	// opened and the runtime owns the process lifetime.
	if cfg.Serverless() {
		log.Println("starting in serverless mode")
		adapter := echoadapter.New(e)
		lambda.Start(adapter.ProxyWithContext)
		return
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("smart-shop listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Printf("kafka close error: %v", err)
		}
	}
	if productCache != nil {
		if err := productCache.Close(); err != nil {
			log.Printf("redis close error: %v", err)
		}
	}
	if sqlDB, err := gdb.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	}

	log.Println("smart-shop stopped")
}

func newOptionalES(cfg config.Config) *elasticsearch.Client {
	if cfg.ESURL == "" {
		log.Println("ES_URL not set, search disabled")
		return nil
	}
	client, err := es.NewClient(cfg)
	if err != nil {
		log.Fatalf("elasticsearch: %v", err)
	}
	return client
}
