package main

import (
	"context"
	"fmt"
	"log"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/vladislavprovich/marketplace-sdk/internal/handler"
	"github.com/vladislavprovich/marketplace-sdk/internal/worker"
	"github.com/vladislavprovich/marketplace-sdk/pkg/config"
	"github.com/vladislavprovich/marketplace-sdk/pkg/inventory"
	"github.com/vladislavprovich/marketplace-sdk/pkg/logger"
)

const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"

	InventoryModeReconcile   = "reconcile"
	InventoryModeIndexerOnly = "indexer_only"
)

type CacheConfig struct {
	Backend       string        `envconfig:"CACHE_BACKEND" default:"memory"`
	Size          int           `envconfig:"CACHE_SIZE" default:"1024"`
	TTL           time.Duration `envconfig:"CACHE_TTL" default:"5m"`
	RedisAddr     string        `envconfig:"CACHE_REDIS_ADDR"`
	RedisPassword string        `envconfig:"CACHE_REDIS_PASSWORD"`
	RedisDB       int           `envconfig:"CACHE_REDIS_DB"`
	RedisPrefix   string        `envconfig:"CACHE_REDIS_PREFIX" default:"marketplace-sdk"`
}

func (c CacheConfig) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, &c,
		validation.Field(&c.Backend, validation.Required, validation.In(CacheBackendMemory, CacheBackendRedis)),
		validation.Field(&c.Size, validation.Min(1)),
		validation.Field(&c.TTL, validation.Min(time.Duration(0))),
		validation.Field(&c.RedisAddr, validation.When(c.Backend == CacheBackendRedis, validation.Required)),
	)
}

type InventoryConfig struct {
	Mode     string        `envconfig:"INVENTORY_MODE" default:"reconcile"`
	StateTTL time.Duration `envconfig:"INVENTORY_STATE_TTL" default:"10m"`
}

func (c InventoryConfig) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, &c,
		validation.Field(&c.Mode, validation.Required, validation.In(InventoryModeReconcile, InventoryModeIndexerOnly)),
		validation.Field(&c.StateTTL, validation.Min(time.Duration(0))),
	)
}

func (c InventoryConfig) mode() inventory.Mode {
	if c.Mode == InventoryModeIndexerOnly {
		return inventory.ModeIndexerOnly
	}
	return inventory.ModeReconcile
}

type Config struct {
	Server    handler.Config
	Logger    *logger.Config
	Cache     CacheConfig
	Inventory InventoryConfig
	Worker    worker.Config
	SDK       *config.SdkConfig `ignored:"true"`
}

func LoadConfig(ctx context.Context) (*Config, error) {
	var cfg Config

	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: .env file not found or failed to load: %v\n", err)
	}

	if err = envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load root config: %w", err)
	}

	if cfg.SDK, err = config.LoadFromEnv(ctx); err != nil {
		return nil, err
	}

	if err = cfg.ValidateWithContext(ctx); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, c,
		validation.Field(&c.Server),
		validation.Field(&c.Logger),
		validation.Field(&c.Cache),
		validation.Field(&c.Inventory),
		validation.Field(&c.Worker),
	)
}
