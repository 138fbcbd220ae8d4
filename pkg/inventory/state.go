package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/vladislavprovich/marketplace-sdk/pkg/client/indexer"
	"github.com/vladislavprovich/marketplace-sdk/pkg/client/marketplace"
	"github.com/vladislavprovich/marketplace-sdk/pkg/client/metadata"
)

// Collectible is a token owned by the account, with market data when it has
// an active listing and balance data when the indexer knows about it.
type Collectible struct {
	marketplace.CollectibleOrder
	Balance      string                   `json:"balance,omitempty"`
	ContractType marketplace.ContractType `json:"contractType,omitempty"`
}

// state is the reconciliation progress of one key. Every field is guarded
// by the owning entry's mutex.
type state struct {
	generation uuid.UUID
	createdAt  time.Time

	seen           map[string]struct{}
	marketFinished bool
	finishedAt     int
	residual       []*Collectible
	lastPage       int

	indexerFetched bool
	drainCursor    int
	balances       map[string]*Collectible
	order          []string
}

func newState(now time.Time) *state {
	return &state{
		generation:  uuid.New(),
		createdAt:   now,
		seen:        make(map[string]struct{}),
		drainCursor: 1,
		balances:    make(map[string]*Collectible),
	}
}

// restart rewinds the stream to page 1 and keeps the drained balances.
func (s *state) restart() {
	s.seen = make(map[string]struct{})
	s.marketFinished = false
	s.finishedAt = 0
	s.residual = nil
	s.lastPage = 0
}

// merge adds indexer balances keyed by canonical token id. Merging the same
// page twice is a no-op.
func (s *state) merge(balances []*indexer.TokenBalance) {
	for _, b := range balances {
		if b == nil {
			continue
		}
		id := CanonicalTokenID(b.TokenID)
		if _, ok := s.balances[id]; !ok {
			s.order = append(s.order, id)
		}
		s.balances[id] = fromBalance(b)
	}
}

func (s *state) isSeen(id string) bool {
	_, ok := s.seen[id]
	return ok
}

// missing returns indexer tokens not yet emitted, in drain order.
func (s *state) missing(extra map[string]struct{}) []*Collectible {
	var out []*Collectible
	for _, id := range s.order {
		if s.isSeen(id) {
			continue
		}
		if _, ok := extra[id]; ok {
			continue
		}
		out = append(out, s.balances[id])
	}
	return out
}

func fromBalance(b *indexer.TokenBalance) *Collectible {
	md := b.TokenMetadata
	if md == nil {
		md = &metadata.TokenMetadata{TokenID: b.TokenID}
	}
	return &Collectible{
		CollectibleOrder: marketplace.CollectibleOrder{Metadata: md},
		Balance:          b.Balance,
		ContractType:     b.ContractType,
	}
}
