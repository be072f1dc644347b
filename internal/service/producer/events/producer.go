package evtproducer

import (
	"context"
	"fmt"

	"github.com/RollNo21-crypto/reznico-parts/internal/model"
	"github.com/RollNo21-crypto/reznico-parts/internal/platform/kafka"
)

type Converter interface {
	NotificationToBytes(n model.Notification) ([]byte, error)
}

// service pushes reorder notifications onto the events topic so other
// shop systems can react without polling the API.
type service struct {
	producer kafka.Producer
	conv     Converter
}

func NewEventsProducer(producer kafka.Producer, conv Converter) *service {
	return &service{producer: producer, conv: conv}
}

func (s *service) PublishNotification(ctx context.Context, n model.Notification) error {
	payload, err := s.conv.NotificationToBytes(n)
	if err != nil {
		return fmt.Errorf("converter notification_to_bytes error: %w", err)
	}

	if err := s.producer.Send(ctx, []byte(n.ID), payload); err != nil {
		return fmt.Errorf("producer to reorder events topic error: %w", err)
	}

	return nil
}
