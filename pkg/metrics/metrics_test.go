package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRPCCallsTotal_Increments(t *testing.T) {
	c := RPCCallsTotal.WithLabelValues("Marketplace", "ListCurrencies", "ok")
	before := testutil.ToFloat64(c)
	c.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(c))
}

func TestInventoryPagesServed_PartitionedByPhase(t *testing.T) {
	active := InventoryPagesServed.WithLabelValues("market_active")
	finished := InventoryPagesServed.WithLabelValues("market_finished")

	beforeActive := testutil.ToFloat64(active)
	beforeFinished := testutil.ToFloat64(finished)

	active.Inc()

	assert.Equal(t, beforeActive+1, testutil.ToFloat64(active))
	assert.Equal(t, beforeFinished, testutil.ToFloat64(finished))
}
