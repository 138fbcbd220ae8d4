package config_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavprovich/marketplace-sdk/pkg/config"
)

func TestSdkConfig_ServiceURLs(t *testing.T) {
	tests := []struct {
		name        string
		overrides   config.Overrides
		marketplace string
		metadata    string
		builder     string
		sequenceAPI string
		indexer     string
	}{
		{
			name:        "production_default",
			marketplace: "https://marketplace-api.sequence.app",
			metadata:    "https://metadata.sequence.app",
			builder:     "https://api.sequence.build",
			sequenceAPI: "https://api.sequence.app",
			indexer:     "https://polygon-indexer.sequence.app",
		},
		{
			name: "development_prefix",
			overrides: config.Overrides{
				Marketplace: config.ServiceOverride{Env: config.EnvDevelopment},
				Metadata:    config.ServiceOverride{Env: config.EnvDevelopment},
				Builder:     config.ServiceOverride{Env: config.EnvDevelopment},
				SequenceAPI: config.ServiceOverride{Env: config.EnvDevelopment},
				Indexer:     config.ServiceOverride{Env: config.EnvDevelopment},
			},
			marketplace: "https://dev-marketplace-api.sequence.app",
			metadata:    "https://dev-metadata.sequence.app",
			builder:     "https://dev-api.sequence.build",
			sequenceAPI: "https://dev-api.sequence.app",
			indexer:     "https://dev-polygon-indexer.sequence.app",
		},
		{
			name: "next_prefix_and_explicit_url",
			overrides: config.Overrides{
				Marketplace: config.ServiceOverride{Env: config.EnvNext},
				Metadata:    config.ServiceOverride{Env: config.EnvDevelopment, URL: "http://localhost:4242/"},
				Builder:     config.ServiceOverride{Env: config.EnvNext},
				SequenceAPI: config.ServiceOverride{Env: config.EnvProduction},
				Indexer:     config.ServiceOverride{URL: "http://indexer.local"},
			},
			marketplace: "https://next-marketplace-api.sequence.app",
			metadata:    "http://localhost:4242",
			builder:     "https://next-api.sequence.build",
			sequenceAPI: "https://api.sequence.app",
			indexer:     "http://indexer.local",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.SdkConfig{ProjectAccessKey: "key", ProjectID: "1", Overrides: tt.overrides}

			assert.Equal(t, tt.marketplace, cfg.MarketplaceURL())
			assert.Equal(t, tt.metadata, cfg.MetadataURL())
			assert.Equal(t, tt.builder, cfg.BuilderURL())
			assert.Equal(t, tt.sequenceAPI, cfg.SequenceAPIURL())

			indexerURL, err := cfg.IndexerURL(137)
			require.NoError(t, err)
			assert.Equal(t, tt.indexer, indexerURL)
		})
	}
}

func TestSdkConfig_IndexerURL_UnknownChain(t *testing.T) {
	cfg := &config.SdkConfig{}

	_, err := cfg.IndexerURL(999999)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrUnknownNetwork)
}

func TestSdkConfig_AccessKeyPrecedence(t *testing.T) {
	cfg := &config.SdkConfig{
		ProjectAccessKey: "project-key",
		Overrides: config.Overrides{
			Indexer: config.ServiceOverride{AccessKey: "indexer-key"},
		},
	}

	assert.Equal(t, "indexer-key", cfg.IndexerAccessKey())
	assert.Equal(t, "project-key", cfg.MarketplaceAccessKey())
	assert.Equal(t, "project-key", cfg.MetadataAccessKey())
	assert.Equal(t, "project-key", cfg.BuilderAccessKey())
	assert.Equal(t, "project-key", cfg.SequenceAPIAccessKey())
}

func TestSdkConfig_LAOSURL(t *testing.T) {
	cfg := &config.SdkConfig{}
	assert.Equal(t, config.LAOSBaseURL, cfg.LAOSURL())

	cfg.Overrides.LAOS.URL = "http://laos.local/"
	assert.Equal(t, "http://laos.local", cfg.LAOSURL())
}

func TestSdkConfig_ValidateWithContext(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.SdkConfig
		wantErr bool
	}{
		{
			name: "valid",
			cfg:  config.SdkConfig{ProjectAccessKey: "key", ProjectID: "42", HTTPTimeout: time.Second},
		},
		{
			name:    "missing_access_key",
			cfg:     config.SdkConfig{ProjectID: "42"},
			wantErr: true,
		},
		{
			name: "unknown_env",
			cfg: config.SdkConfig{
				ProjectAccessKey: "key",
				ProjectID:        "42",
				Overrides: config.Overrides{
					Marketplace: config.ServiceOverride{Env: "staging"},
				},
			},
			wantErr: true,
		},
		{
			name: "malformed_override_url",
			cfg: config.SdkConfig{
				ProjectAccessKey: "key",
				ProjectID:        "42",
				Overrides: config.Overrides{
					Indexer: config.ServiceOverride{URL: "::not a url"},
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.ValidateWithContext(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SDK_PROJECT_ACCESS_KEY", "env-key")
	t.Setenv("SDK_PROJECT_ID", "7")
	t.Setenv("SDK_OVERRIDE_MARKETPLACE_ENV", "next")
	t.Setenv("SDK_OVERRIDE_INDEXER_ACCESS_KEY", "indexer-key")

	cfg, err := config.LoadFromEnv(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.ProjectAccessKey)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "https://next-marketplace-api.sequence.app", cfg.MarketplaceURL())
	assert.Equal(t, "indexer-key", cfg.IndexerAccessKey())
}
