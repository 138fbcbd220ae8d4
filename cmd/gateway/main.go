package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/unrolled/render"

	"github.com/vladislavprovich/marketplace-sdk/internal/handler"
	"github.com/vladislavprovich/marketplace-sdk/internal/service"
	"github.com/vladislavprovich/marketplace-sdk/internal/worker"
	"github.com/vladislavprovich/marketplace-sdk/pkg/cache"
	"github.com/vladislavprovich/marketplace-sdk/pkg/client/webrpc"
	"github.com/vladislavprovich/marketplace-sdk/pkg/inventory"
	logger2 "github.com/vladislavprovich/marketplace-sdk/pkg/logger"
	"github.com/vladislavprovich/marketplace-sdk/pkg/query"
)

func main() {
	ctx := context.Background()
	cfg := initConfig(ctx)
	logger, err := logger2.New(ctx, cfg.Logger)
	if err != nil {
		log.Fatal(err)
	}

	clients := initClients(ctx, logger.Logger, cfg)
	maintenance := initWorker(ctx, logger.Logger, cfg, clients)
	srv := initService(ctx, logger.Logger, clients, maintenance)

	rend := render.New()
	serviceHandler := initServiceHandler(ctx, srv, logger.Logger, cfg, rend)
	router := handler.NewRouter(serviceHandler, logger.Logger, &cfg.Server)

	httpServer := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.Timeout,
		WriteTimeout:      max(cfg.Server.WriteTimeout, cfg.Server.ReceiptTimeout),
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		logger.InfoContext(ctx, "Server start. Listening on port", slog.Any("port", cfg.Server.Port))
		if err = httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("could not listen on port %s: %s", cfg.Server.Port, err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err = httpServer.Shutdown(shutdownCtx); err != nil {
		logger.InfoContext(ctx, "Server shutdown error", slog.Any("error", err))
	}

	if err = maintenance.Stop(shutdownCtx); err != nil {
		logger.InfoContext(ctx, "Worker shutdown error", slog.Any("error", err))
	}

	logger.InfoContext(ctx, "Server gracefully shutdown")
}

func initConfig(ctx context.Context) *Config {
	cfg, err := LoadConfig(ctx)
	if err != nil {
		log.Fatalf("config load error %s", err)
	}

	return cfg
}

func initCache(ctx context.Context, logger *slog.Logger, cfg *Config) cache.Service {
	switch cfg.Cache.Backend {
	case CacheBackendRedis:
		logger.InfoContext(ctx, "initializing redis cache", slog.String("addr", cfg.Cache.RedisAddr))
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatalf("redis ping error %s", err)
		}
		return cache.NewRedis(client, cfg.Cache.RedisPrefix)
	default:
		logger.InfoContext(ctx, "initializing memory cache", slog.Int("size", cfg.Cache.Size))
		return cache.NewMemory(cfg.Cache.Size, cfg.Cache.TTL)
	}
}

func initClients(ctx context.Context, logger *slog.Logger, cfg *Config) *query.Clients {
	logger.InfoContext(ctx, "initializing sdk clients")
	httpClient, err := webrpc.NewHTTPClient(webrpc.HTTPClientConfig{
		Timeout:  cfg.SDK.HTTPTimeout,
		ProxyURL: cfg.SDK.ProxyURL,
	})
	if err != nil {
		log.Fatalf("http client error %s", err)
	}

	return query.NewClients(cfg.SDK, httpClient, logger,
		query.WithCache(initCache(ctx, logger, cfg), cfg.Cache.TTL),
		query.WithInventory(inventory.NewStore(cfg.Inventory.StateTTL), cfg.Inventory.mode()),
	)
}

func initWorker(ctx context.Context, logger *slog.Logger, cfg *Config, clients *query.Clients) *worker.Maintenance {
	logger.InfoContext(ctx, "initializing maintenance worker")
	warm := func(ctx context.Context, chainID uint64) error {
		_, err := query.Currencies(clients, query.CurrenciesArgs{ChainID: chainID}).Fetch(ctx)
		return err
	}

	maintenance := worker.NewMaintenance(logger, clients.Inventory().Store(), warm, cfg.Worker)
	if err := maintenance.Start(ctx); err != nil {
		log.Fatalf("worker start error %s", err)
	}

	return maintenance
}

func initService(
	ctx context.Context,
	logger *slog.Logger,
	clients *query.Clients,
	maintenance *worker.Maintenance,
) *service.Service {
	logger.InfoContext(ctx, "initializing service")
	srv := service.NewMarketplaceService(ctx, logger, clients, service.WithMaintenance(maintenance))

	return srv
}

func initServiceHandler(
	ctx context.Context,
	srv *service.Service,
	logger *slog.Logger,
	cfg *Config,
	render *render.Render,
) *handler.ServiceHandler {
	logger.InfoContext(ctx, "initializing service handler")
	serviceHandler := handler.NewServiceHandler(srv, logger, &cfg.Server, render)

	return serviceHandler
}
