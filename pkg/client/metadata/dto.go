package metadata

type (
	TokenMetadata struct {
		TokenID     string           `json:"tokenId"`
		Name        string           `json:"name"`
		Description string           `json:"description,omitempty"`
		Image       string           `json:"image,omitempty"`
		Video       string           `json:"video,omitempty"`
		Audio       string           `json:"audio,omitempty"`
		Properties  map[string]any   `json:"properties,omitempty"`
		Attributes  []map[string]any `json:"attributes"`
		ImageData   string           `json:"image_data,omitempty"`
		ExternalURL string           `json:"external_url,omitempty"`
		Decimals    *uint64          `json:"decimals,omitempty"`
		Status      string           `json:"status,omitempty"`
		Assets      []*Asset         `json:"assets,omitempty"`
		UpdatedAt   string           `json:"updatedAt,omitempty"`
	}

	Asset struct {
		ID            uint64  `json:"id"`
		CollectionID  uint64  `json:"collectionId"`
		TokenID       string  `json:"tokenId,omitempty"`
		URL           string  `json:"url,omitempty"`
		MetadataField string  `json:"metadataField"`
		Filename      string  `json:"filename,omitempty"`
		Filesize      uint64  `json:"filesize,omitempty"`
		MimeType      string  `json:"mimeType,omitempty"`
		Width         *uint64 `json:"width,omitempty"`
		Height        *uint64 `json:"height,omitempty"`
		UpdatedAt     string  `json:"updatedAt,omitempty"`
	}

	ContractInfo struct {
		ChainID      uint64              `json:"chainId"`
		Address      string              `json:"address"`
		Source       string              `json:"source"`
		Name         string              `json:"name"`
		Type         string              `json:"type"`
		Symbol       string              `json:"symbol"`
		Decimals     *uint64             `json:"decimals,omitempty"`
		LogoURI      string              `json:"logoURI,omitempty"`
		Deployed     bool                `json:"deployed"`
		BytecodeHash string              `json:"bytecodeHash"`
		Extensions   *ContractExtensions `json:"extensions"`
		UpdatedAt    string              `json:"updatedAt"`
		NotFound     bool                `json:"notFound,omitempty"`
	}

	ContractExtensions struct {
		Link          string   `json:"link,omitempty"`
		Description   string   `json:"description,omitempty"`
		Categories    []string `json:"categories,omitempty"`
		OgImage       string   `json:"ogImage,omitempty"`
		OgName        string   `json:"ogName,omitempty"`
		OriginChainID uint64   `json:"originChainId,omitempty"`
		OriginAddress string   `json:"originAddress,omitempty"`
		Blacklist     bool     `json:"blacklist,omitempty"`
		Verified      bool     `json:"verified,omitempty"`
		VerifiedBy    string   `json:"verifiedBy,omitempty"`
		Featured      bool     `json:"featured,omitempty"`
	}

	Page struct {
		Page     uint32 `json:"page,omitempty"`
		PageSize uint32 `json:"pageSize,omitempty"`
		More     bool   `json:"more,omitempty"`
		Column   string `json:"column,omitempty"`
		After    any    `json:"after,omitempty"`
	}

	PropertyFilter struct {
		Name   string `json:"name"`
		Type   string `json:"type,omitempty"`
		Min    *int64 `json:"min,omitempty"`
		Max    *int64 `json:"max,omitempty"`
		Values []any  `json:"values,omitempty"`
	}

	Filter struct {
		Text       string            `json:"text,omitempty"`
		Properties []*PropertyFilter `json:"properties,omitempty"`
	}
)

type (
	GetTokenMetadataRequest struct {
		ChainID         string   `json:"chainID"`
		ContractAddress string   `json:"contractAddress"`
		TokenIDs        []string `json:"tokenIDs"`
	}

	GetTokenMetadataResponse struct {
		TokenMetadata []*TokenMetadata `json:"tokenMetadata"`
	}

	SearchTokenMetadataRequest struct {
		ChainID         string  `json:"chainID"`
		ContractAddress string  `json:"contractAddress"`
		Filter          *Filter `json:"filter"`
		Page            *Page   `json:"page,omitempty"`
	}

	SearchTokenMetadataResponse struct {
		Page          *Page            `json:"page"`
		TokenMetadata []*TokenMetadata `json:"tokenMetadata"`
	}

	GetContractInfoRequest struct {
		ChainID         string `json:"chainID"`
		ContractAddress string `json:"contractAddress"`
	}

	GetContractInfoResponse struct {
		ContractInfo *ContractInfo `json:"contractInfo"`
	}

	PropertyFilterResult struct {
		Name   string `json:"name"`
		Type   string `json:"type"`
		Min    *int64 `json:"min,omitempty"`
		Max    *int64 `json:"max,omitempty"`
		Values []any  `json:"values,omitempty"`
	}

	TokenCollectionFiltersRequest struct {
		ChainID         string `json:"chainID"`
		ContractAddress string `json:"contractAddress"`
	}

	TokenCollectionFiltersResponse struct {
		Filters []*PropertyFilterResult `json:"filters"`
	}
)
