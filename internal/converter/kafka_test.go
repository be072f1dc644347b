package converter

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RollNo21-crypto/reznico-parts/internal/model"
)

func TestKafkaConverterSupplierUpdateToModel(t *testing.T) {
	t.Parallel()

	conv := NewKafkaConverter()
	orderID := uuid.New()

	t.Run("confirmed update", func(t *testing.T) {
		t.Parallel()

		raw := []byte(`{
			"type": "CONFIRMED",
			"order_id": "` + orderID.String() + `",
			"supplier_reference": "REF-4711",
			"confirmed_delivery": "2026-08-30T14:00:00Z"
		}`)

		upd, err := conv.SupplierUpdateToModel(raw)
		require.NoError(t, err)

		assert.Equal(t, model.SupplierUpdateConfirmed, upd.Type)
		assert.Equal(t, orderID, upd.OrderID)
		assert.Equal(t, "REF-4711", upd.SupplierReference)
		assert.False(t, upd.ConfirmedDelivery.IsZero())
	})

	t.Run("delivered update", func(t *testing.T) {
		t.Parallel()

		raw := []byte(`{
			"type": "DELIVERED",
			"order_id": "` + orderID.String() + `",
			"received_quantity": 20,
			"received_at": "2026-08-30T16:30:00Z"
		}`)

		upd, err := conv.SupplierUpdateToModel(raw)
		require.NoError(t, err)

		assert.Equal(t, model.SupplierUpdateDelivered, upd.Type)
		assert.Equal(t, int64(20), upd.ReceivedQuantity)
		assert.False(t, upd.ReceivedAt.IsZero())
	})

	t.Run("unknown type", func(t *testing.T) {
		t.Parallel()

		_, err := conv.SupplierUpdateToModel([]byte(`{"type":"SHIPPED","order_id":"` + orderID.String() + `"}`))
		require.Error(t, err)
	})

	t.Run("malformed order id", func(t *testing.T) {
		t.Parallel()

		_, err := conv.SupplierUpdateToModel([]byte(`{"type":"CONFIRMED","order_id":"not-a-uuid"}`))
		require.Error(t, err)
	})
}

func TestKafkaConverterNotificationToBytes(t *testing.T) {
	t.Parallel()

	conv := NewKafkaConverter()

	data, err := conv.NotificationToBytes(model.Notification{
		ID:      "n-1",
		Type:    model.NotificationOrderSent,
		Message: "order sent",
		Payload: map[string]any{"part_id": "P-001"},
	})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "ORDER_SENT", decoded["type"])
	assert.Equal(t, "order sent", decoded["message"])
}
