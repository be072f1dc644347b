package model

import "time"

type NotificationType string

const (
	NotificationReorderNeeded  NotificationType = "REORDER_NEEDED"
	NotificationOrderSent      NotificationType = "ORDER_SENT"
	NotificationOrderConfirmed NotificationType = "ORDER_CONFIRMED"
	NotificationOrderReceived  NotificationType = "ORDER_RECEIVED"
	NotificationPriceAlert     NotificationType = "PRICE_ALERT"
	NotificationLowStockManual NotificationType = "LOW_STOCK_MANUAL"
)

// Notification is append-only; only Read is ever mutated.
type Notification struct {
	ID        string
	Type      NotificationType
	Message   string
	Payload   map[string]any
	CreatedAt time.Time
	Read      bool
}
