package config

import (
	"errors"
	"fmt"
)

var ErrUnknownNetwork = errors.New("unknown network")

var networks = map[uint64]string{
	1:           "mainnet",
	10:          "optimism",
	56:          "bsc",
	97:          "bsc-testnet",
	100:         "gnosis",
	137:         "polygon",
	1101:        "polygon-zkevm",
	1868:        "soneium",
	1946:        "soneium-minato",
	1993:        "b3-sepolia",
	6283:        "laos",
	8333:        "b3",
	8453:        "base",
	13371:       "immutable-zkevm",
	13473:       "immutable-zkevm-testnet",
	19011:       "homeverse",
	33111:       "apechain-testnet",
	33139:       "apechain",
	40875:       "homeverse-testnet",
	42161:       "arbitrum",
	42170:       "arbitrum-nova",
	43113:       "avalanche-testnet",
	43114:       "avalanche",
	62850:       "laos-sigma-testnet",
	80002:       "amoy",
	81457:       "blast",
	84532:       "base-sepolia",
	421614:      "arbitrum-sepolia",
	660279:      "xai",
	11155111:    "sepolia",
	11155420:    "optimism-sepolia",
	168587773:   "blast-sepolia",
	37714555429: "xai-sepolia",
}

// NetworkName maps a chain id to the network segment of its indexer host.
func NetworkName(chainID uint64) (string, error) {
	name, ok := networks[chainID]
	if !ok {
		return "", fmt.Errorf("chain %d: %w", chainID, ErrUnknownNetwork)
	}
	return name, nil
}
