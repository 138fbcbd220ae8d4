package inventory

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Key identifies one inventory stream.
type Key struct {
	ChainID           uint64
	CollectionAddress string
	AccountAddress    string
}

func NewKey(chainID uint64, collection, account string) Key {
	return Key{
		ChainID:           chainID,
		CollectionAddress: normalizeAddress(collection),
		AccountAddress:    normalizeAddress(account),
	}
}

func (k Key) String() string {
	return fmt.Sprintf("%d:%s:%s", k.ChainID, k.CollectionAddress, k.AccountAddress)
}

func normalizeAddress(addr string) string {
	addr = strings.TrimSpace(addr)
	if common.IsHexAddress(addr) {
		return strings.ToLower(common.HexToAddress(addr).Hex())
	}
	return strings.ToLower(addr)
}

// CanonicalTokenID strips leading zeros from a purely decimal token id so
// "07" and "7" compare equal. Any other id is returned unchanged.
func CanonicalTokenID(id string) string {
	if id == "" {
		return id
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return id
		}
	}
	trimmed := strings.TrimLeft(id, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}
