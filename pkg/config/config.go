package config

import (
	"context"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "SDK"

type Env string

const (
	EnvDevelopment Env = "development"
	EnvProduction  Env = "production"
	EnvNext        Env = "next"
)

// Prefix returns the host prefix substituted into the service URL templates.
// An empty Env resolves as production.
func (e Env) Prefix() string {
	switch e {
	case EnvDevelopment:
		return "dev-"
	case EnvNext:
		return "next-"
	default:
		return ""
	}
}

type ServiceOverride struct {
	Env       Env    `envconfig:"ENV"`
	URL       string `envconfig:"URL"`
	AccessKey string `envconfig:"ACCESS_KEY"`
}

func (o ServiceOverride) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, &o,
		validation.Field(&o.Env, validation.In(EnvDevelopment, EnvProduction, EnvNext)),
		validation.Field(&o.URL, is.URL),
	)
}

type Overrides struct {
	Builder     ServiceOverride `envconfig:"BUILDER"`
	Marketplace ServiceOverride `envconfig:"MARKETPLACE"`
	Metadata    ServiceOverride `envconfig:"METADATA"`
	Indexer     ServiceOverride `envconfig:"INDEXER"`
	SequenceAPI ServiceOverride `envconfig:"SEQUENCE_API"`
	LAOS        ServiceOverride `envconfig:"LAOS"`
}

func (o Overrides) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, &o,
		validation.Field(&o.Builder),
		validation.Field(&o.Marketplace),
		validation.Field(&o.Metadata),
		validation.Field(&o.Indexer),
		validation.Field(&o.SequenceAPI),
		validation.Field(&o.LAOS),
	)
}

type SdkConfig struct {
	ProjectAccessKey string        `envconfig:"PROJECT_ACCESS_KEY"`
	ProjectID        string        `envconfig:"PROJECT_ID"`
	HTTPTimeout      time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	ProxyURL         string        `envconfig:"PROXY_URL"`
	Overrides        Overrides     `envconfig:"OVERRIDE"`
}

func (c *SdkConfig) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, c,
		validation.Field(&c.ProjectAccessKey, validation.Required),
		validation.Field(&c.ProjectID, validation.Required),
		validation.Field(&c.HTTPTimeout, validation.Min(time.Duration(0))),
		validation.Field(&c.ProxyURL, is.URL),
		validation.Field(&c.Overrides),
	)
}

// LoadFromEnv reads SDK_* variables, e.g. SDK_PROJECT_ACCESS_KEY or
// SDK_OVERRIDE_MARKETPLACE_URL.
func LoadFromEnv(ctx context.Context) (*SdkConfig, error) {
	var cfg SdkConfig
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load sdk config: %w", err)
	}
	if err := cfg.ValidateWithContext(ctx); err != nil {
		return nil, err
	}
	return &cfg, nil
}
