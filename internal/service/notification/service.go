package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/RollNo21-crypto/reznico-parts/internal/model"
	"github.com/RollNo21-crypto/reznico-parts/internal/platform/logger"
)

type NotificationRepository interface {
	Append(ctx context.Context, n model.Notification) error
	List(ctx context.Context, unreadOnly bool) ([]model.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

// EventPublisher pushes a notification to an external channel (the kafka
// reorder-events topic). Optional; nil disables publishing.
type EventPublisher interface {
	PublishNotification(ctx context.Context, n model.Notification) error
}

type service struct {
	repo      NotificationRepository
	publisher EventPublisher
}

func NewNotificationService(repo NotificationRepository, publisher EventPublisher) *service {
	return &service{repo: repo, publisher: publisher}
}

// Notify appends a notification and offers it to the event publisher.
// Publish failures are logged, not propagated: the in-process store is
// the source of truth.
func (s *service) Notify(ctx context.Context, typ model.NotificationType, message string, payload map[string]any) (*model.Notification, error) {
	const op = "notification.service.Notify"
	log := logger.With(
		logger.String("type", string(typ)),
	)

	n := model.Notification{
		ID:        uuid.NewString(),
		Type:      typ,
		Message:   message,
		Payload:   payload,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Append(ctx, n); err != nil {
		log.Error(ctx, "repository append", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishNotification(ctx, n); err != nil {
			log.Error(ctx, "publish notification", logger.ErrorF(err))
		}
	}

	return &n, nil
}

func (s *service) List(ctx context.Context, unreadOnly bool) ([]model.Notification, error) {
	const op = "notification.service.List"

	out, err := s.repo.List(ctx, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (s *service) MarkRead(ctx context.Context, id string) error {
	const op = "notification.service.MarkRead"

	if err := s.repo.MarkRead(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
