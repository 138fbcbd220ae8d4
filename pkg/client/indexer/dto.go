package indexer

import (
	"github.com/vladislavprovich/marketplace-sdk/pkg/client/marketplace"
	"github.com/vladislavprovich/marketplace-sdk/pkg/client/metadata"
)

type ContractStatus string

const (
	ContractStatusVerified ContractStatus = "VERIFIED"
	ContractStatusAll      ContractStatus = "ALL"
)

type (
	Page struct {
		Page     int    `json:"page,omitempty"`
		PageSize int    `json:"pageSize,omitempty"`
		More     bool   `json:"more,omitempty"`
		Column   string `json:"column,omitempty"`
		After    any    `json:"after,omitempty"`
	}

	// TokenBalance is an account's holding of one token. Balance is a base-10
	// integer string, ERC-1155 amounts do not fit in 64 bits.
	TokenBalance struct {
		ContractType       marketplace.ContractType `json:"contractType"`
		ContractAddress    string                   `json:"contractAddress"`
		AccountAddress     string                   `json:"accountAddress"`
		TokenID            string                   `json:"tokenID"`
		Balance            string                   `json:"balance"`
		BlockHash          string                   `json:"blockHash,omitempty"`
		BlockNumber        uint64                   `json:"blockNumber,omitempty"`
		ChainID            uint64                   `json:"chainId"`
		UniqueCollectibles string                   `json:"uniqueCollectibles,omitempty"`
		IsSummary          bool                     `json:"isSummary,omitempty"`
		ContractInfo       *metadata.ContractInfo   `json:"contractInfo,omitempty"`
		TokenMetadata      *metadata.TokenMetadata  `json:"tokenMetadata,omitempty"`
	}

	NativeTokenBalance struct {
		AccountAddress string `json:"accountAddress"`
		ChainID        uint64 `json:"chainId"`
		Balance        string `json:"balance"`
	}

	TokenSupply struct {
		TokenID       string                  `json:"tokenID"`
		Supply        string                  `json:"supply"`
		ChainID       uint64                  `json:"chainId"`
		TokenMetadata *metadata.TokenMetadata `json:"tokenMetadata,omitempty"`
	}

	MetadataOptions struct {
		VerifiedOnly     bool     `json:"verifiedOnly,omitempty"`
		UnverifiedOnly   bool     `json:"unverifiedOnly,omitempty"`
		IncludeContracts []string `json:"includeContracts,omitempty"`
	}

	TokenBalancesFilter struct {
		AccountAddresses   []string       `json:"accountAddresses"`
		ContractStatus     ContractStatus `json:"contractStatus,omitempty"`
		ContractWhitelist  []string       `json:"contractWhitelist,omitempty"`
		ContractBlacklist  []string       `json:"contractBlacklist,omitempty"`
		OmitNativeBalances bool           `json:"omitNativeBalances"`
	}

	EventLog struct {
		Type            string   `json:"type"`
		BlockNumber     uint64   `json:"blockNumber"`
		BlockHash       string   `json:"blockHash"`
		ContractAddress string   `json:"contractAddress"`
		Topics          []string `json:"topics"`
		Data            string   `json:"data"`
		Index           uint64   `json:"index"`
	}

	TransactionReceipt struct {
		TxnHash           string      `json:"txnHash"`
		TxnStatus         string      `json:"txnStatus"`
		TxnIndex          uint64      `json:"txnIndex"`
		TxnType           string      `json:"txnType"`
		BlockHash         string      `json:"blockHash"`
		BlockNumber       uint64      `json:"blockNumber"`
		GasUsed           uint64      `json:"gasUsed"`
		EffectiveGasPrice string      `json:"effectiveGasPrice"`
		From              string      `json:"from"`
		To                string      `json:"to"`
		Logs              []*EventLog `json:"logs"`
		Final             bool        `json:"final"`
		Reorged           bool        `json:"reorged"`
	}

	TransactionFilter struct {
		TxnHash         *string `json:"txnHash,omitempty"`
		From            *string `json:"from,omitempty"`
		To              *string `json:"to,omitempty"`
		ContractAddress *string `json:"contractAddress,omitempty"`
		Event           *string `json:"event,omitempty"`
	}
)

type (
	GetTokenBalancesRequest struct {
		AccountAddress          string           `json:"accountAddress,omitempty"`
		ContractAddress         string           `json:"contractAddress,omitempty"`
		TokenID                 string           `json:"tokenID,omitempty"`
		IncludeMetadata         bool             `json:"includeMetadata"`
		MetadataOptions         *MetadataOptions `json:"metadataOptions,omitempty"`
		IncludeCollectionTokens bool             `json:"includeCollectionTokens,omitempty"`
		Page                    *Page            `json:"page,omitempty"`
	}

	GetTokenBalancesResponse struct {
		Page     *Page           `json:"page"`
		Balances []*TokenBalance `json:"balances"`
	}

	GetTokenBalancesDetailsRequest struct {
		Filter       *TokenBalancesFilter `json:"filter"`
		OmitMetadata bool                 `json:"omitMetadata"`
		Page         *Page                `json:"page,omitempty"`
	}

	GetTokenBalancesDetailsResponse struct {
		Page           *Page                 `json:"page"`
		NativeBalances []*NativeTokenBalance `json:"nativeBalances"`
		Balances       []*TokenBalance       `json:"balances"`
	}

	GetTokenSuppliesRequest struct {
		ContractAddress string `json:"contractAddress"`
		IncludeMetadata bool   `json:"includeMetadata"`
		Page            *Page  `json:"page,omitempty"`
	}

	GetTokenSuppliesResponse struct {
		Page         *Page                    `json:"page"`
		ContractType marketplace.ContractType `json:"contractType"`
		TokenIDs     []*TokenSupply           `json:"tokenIDs"`
	}

	GetTransactionReceiptRequest struct {
		TxnHash string `json:"txnHash"`
	}

	GetTransactionReceiptResponse struct {
		Receipt *TransactionReceipt `json:"receipt"`
	}

	SubscribeReceiptsRequest struct {
		Filter *TransactionFilter `json:"filter"`
	}

	SubscribeReceiptsMessage struct {
		Receipt *TransactionReceipt `json:"receipt"`
	}
)
