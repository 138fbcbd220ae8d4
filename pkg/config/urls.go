package config

import (
	"fmt"
	"strings"
)

const (
	marketplaceTemplate = "https://%smarketplace-api.sequence.app"
	metadataTemplate    = "https://%smetadata.sequence.app"
	indexerTemplate     = "https://%s%s-indexer.sequence.app"
	builderTemplate     = "https://%sapi.sequence.build"
	sequenceAPITemplate = "https://%sapi.sequence.app"

	LAOSBaseURL = "https://extensions.api.laosnetwork.io"
)

func resolve(o ServiceOverride, template string) string {
	if o.URL != "" {
		return strings.TrimRight(o.URL, "/")
	}
	return fmt.Sprintf(template, o.Env.Prefix())
}

func (c *SdkConfig) MarketplaceURL() string {
	return resolve(c.Overrides.Marketplace, marketplaceTemplate)
}

func (c *SdkConfig) MetadataURL() string {
	return resolve(c.Overrides.Metadata, metadataTemplate)
}

func (c *SdkConfig) BuilderURL() string {
	return resolve(c.Overrides.Builder, builderTemplate)
}

func (c *SdkConfig) SequenceAPIURL() string {
	return resolve(c.Overrides.SequenceAPI, sequenceAPITemplate)
}

func (c *SdkConfig) LAOSURL() string {
	if c.Overrides.LAOS.URL != "" {
		return strings.TrimRight(c.Overrides.LAOS.URL, "/")
	}
	return LAOSBaseURL
}

// IndexerURL returns the indexer host of the given chain. An explicit indexer
// URL override is used verbatim for every chain.
func (c *SdkConfig) IndexerURL(chainID uint64) (string, error) {
	o := c.Overrides.Indexer
	if o.URL != "" {
		return strings.TrimRight(o.URL, "/"), nil
	}
	network, err := NetworkName(chainID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(indexerTemplate, o.Env.Prefix(), network), nil
}

func pick(override, fallback string) string {
	if override != "" {
		return override
	}
	return fallback
}

func (c *SdkConfig) MarketplaceAccessKey() string {
	return pick(c.Overrides.Marketplace.AccessKey, c.ProjectAccessKey)
}

func (c *SdkConfig) MetadataAccessKey() string {
	return pick(c.Overrides.Metadata.AccessKey, c.ProjectAccessKey)
}

func (c *SdkConfig) IndexerAccessKey() string {
	return pick(c.Overrides.Indexer.AccessKey, c.ProjectAccessKey)
}

func (c *SdkConfig) BuilderAccessKey() string {
	return pick(c.Overrides.Builder.AccessKey, c.ProjectAccessKey)
}

func (c *SdkConfig) SequenceAPIAccessKey() string {
	return pick(c.Overrides.SequenceAPI.AccessKey, c.ProjectAccessKey)
}
