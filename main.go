package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"pos_sales/api"
	"pos_sales/internal/config"
	"pos_sales/internal/sales"
	"pos_sales/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		panic(fmt.Errorf("error creating logger: %v", err))
	}
	defer logger.Sync()

	kv, closeKV, err := openKeyValue(cfg, logger)
	if err != nil {
		logger.Fatal("failed to open storage", zap.String("backend", cfg.DataBackend), zap.Error(err))
	}
	defer closeKV()

	catalog, err := openCatalog(cfg.CatalogFile)
	if err != nil {
		logger.Fatal("failed to load catalog", zap.String("file", cfg.CatalogFile), zap.Error(err))
	}

	salesService := sales.NewService(sales.NewKVStorage(kv, logger), catalog, logger)

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	api.InitRoutes(r, salesService, logger)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", zap.String("addr", srv.Addr), zap.String("backend", cfg.DataBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error trying to start server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down server")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	if level == "debug" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func openKeyValue(cfg *config.Config, logger *zap.Logger) (sales.KeyValue, func(), error) {
	switch cfg.DataBackend {
	case config.BackendSQLite:
		kv, err := storage.NewSQLiteKV(cfg.SQLiteDBPath, logger)
		if err != nil {
			return nil, nil, err
		}
		return kv, func() { kv.Close() }, nil
	default:
		return sales.NewLocalStorage(), func() {}, nil
	}
}

func openCatalog(path string) (*sales.StaticCatalog, error) {
	if path == "" {
		return sales.DefaultCatalog()
	}
	return sales.LoadCatalogFile(path)
}
