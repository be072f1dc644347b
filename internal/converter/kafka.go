package converter

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/RollNo21-crypto/reznico-parts/internal/model"
)

type kafkaConverter struct{}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{} }

type notificationRecord struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Message   string         `json:"message"`
	Payload   map[string]any `json:"payload,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

func (c *kafkaConverter) NotificationToBytes(n model.Notification) ([]byte, error) {
	payload, err := json.Marshal(notificationRecord{
		ID:        n.ID,
		Type:      string(n.Type),
		Message:   n.Message,
		Payload:   n.Payload,
		CreatedAt: n.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal notification: %w", err)
	}

	return payload, nil
}

type supplierUpdateRecord struct {
	Type              string     `json:"type"`
	OrderID           string     `json:"order_id"`
	SupplierReference string     `json:"supplier_reference,omitempty"`
	ConfirmedDelivery *time.Time `json:"confirmed_delivery,omitempty"`
	ReceivedQuantity  int64      `json:"received_quantity,omitempty"`
	ReceivedAt        *time.Time `json:"received_at,omitempty"`
}

func (c *kafkaConverter) SupplierUpdateToModel(data []byte) (model.SupplierUpdate, error) {
	var rec supplierUpdateRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return model.SupplierUpdate{}, fmt.Errorf("failed to unmarshal supplier update: %w", err)
	}

	ordID, err := uuid.Parse(rec.OrderID)
	if err != nil {
		return model.SupplierUpdate{}, fmt.Errorf("invalid order id %q: %w", rec.OrderID, err)
	}

	upd := model.SupplierUpdate{
		Type:              model.SupplierUpdateType(rec.Type),
		OrderID:           ordID,
		SupplierReference: rec.SupplierReference,
		ReceivedQuantity:  rec.ReceivedQuantity,
	}
	if rec.ConfirmedDelivery != nil {
		upd.ConfirmedDelivery = *rec.ConfirmedDelivery
	}
	if rec.ReceivedAt != nil {
		upd.ReceivedAt = *rec.ReceivedAt
	}

	switch upd.Type {
	case model.SupplierUpdateConfirmed, model.SupplierUpdateDelivered:
	default:
		return model.SupplierUpdate{}, fmt.Errorf("unknown supplier update type %q", rec.Type)
	}

	return upd, nil
}
