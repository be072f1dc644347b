package model

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTerminal(t *testing.T) {
	t.Parallel()

	assert.True(t, OrderStatusReceived.Terminal())
	assert.True(t, OrderStatusCancelled.Terminal())

	assert.False(t, OrderStatusPending.Terminal())
	assert.False(t, OrderStatusSent.Terminal())
	assert.False(t, OrderStatusConfirmed.Terminal())
}

func TestOrderStatusOutstanding(t *testing.T) {
	t.Parallel()

	assert.True(t, OrderStatusPending.Outstanding())
	assert.True(t, OrderStatusSent.Outstanding())
	assert.True(t, OrderStatusConfirmed.Outstanding())

	assert.False(t, OrderStatusReceived.Outstanding())
	assert.False(t, OrderStatusCancelled.Outstanding())
}

func TestPurchaseOrderComplete(t *testing.T) {
	t.Parallel()

	ord := PurchaseOrder{Quantity: 20}
	assert.False(t, ord.Complete())

	ord.ReceivedQuantity = lo.ToPtr(int64(15))
	assert.False(t, ord.Complete())

	ord.ReceivedQuantity = lo.ToPtr(int64(20))
	assert.True(t, ord.Complete())

	ord.ReceivedQuantity = lo.ToPtr(int64(25))
	assert.True(t, ord.Complete())
}
