package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/RollNo21-crypto/reznico-parts/internal/model"
	"github.com/RollNo21-crypto/reznico-parts/internal/service/mocks"
)

func TestServiceNotify(t *testing.T) {
	t.Parallel()

	payload := map[string]any{"part_id": "P-001"}

	t.Run("appends and publishes", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockNotificationRepository(t)
		publisher := mocks.NewMockEventPublisher(t)

		matchNotification := func(n model.Notification) bool {
			return n.ID != "" &&
				n.Type == model.NotificationPriceAlert &&
				n.Message == "quote above limit" &&
				!n.Read
		}
		repo.On("Append", mock.Anything, mock.MatchedBy(matchNotification)).Return(nil).Once()
		publisher.On("PublishNotification", mock.Anything, mock.MatchedBy(matchNotification)).Return(nil).Once()

		svc := NewNotificationService(repo, publisher)

		n, err := svc.Notify(context.Background(), model.NotificationPriceAlert, "quote above limit", payload)
		require.NoError(t, err)
		require.NotNil(t, n)
		assert.WithinDuration(t, time.Now(), n.CreatedAt, time.Second)
	})

	t.Run("append failure is returned", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockNotificationRepository(t)
		wantErr := errors.New("store full")
		repo.On("Append", mock.Anything, mock.Anything).Return(wantErr).Once()

		svc := NewNotificationService(repo, mocks.NewMockEventPublisher(t))

		n, err := svc.Notify(context.Background(), model.NotificationOrderSent, "order sent", nil)
		require.ErrorIs(t, err, wantErr)
		assert.Nil(t, n)
	})

	t.Run("publish failure is swallowed", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockNotificationRepository(t)
		publisher := mocks.NewMockEventPublisher(t)

		repo.On("Append", mock.Anything, mock.Anything).Return(nil).Once()
		publisher.On("PublishNotification", mock.Anything, mock.Anything).
			Return(errors.New("broker down")).
			Once()

		svc := NewNotificationService(repo, publisher)

		n, err := svc.Notify(context.Background(), model.NotificationOrderSent, "order sent", nil)
		require.NoError(t, err)
		require.NotNil(t, n)
	})

	t.Run("nil publisher is allowed", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockNotificationRepository(t)
		repo.On("Append", mock.Anything, mock.Anything).Return(nil).Once()

		svc := NewNotificationService(repo, nil)

		_, err := svc.Notify(context.Background(), model.NotificationLowStockManual, "low stock", payload)
		require.NoError(t, err)
	})
}

func TestServiceMarkRead(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockNotificationRepository(t)
	repo.On("MarkRead", mock.Anything, "n-1").Return(nil).Once()
	repo.On("MarkRead", mock.Anything, "n-404").Return(model.ErrNotificationNotFound).Once()

	svc := NewNotificationService(repo, nil)

	require.NoError(t, svc.MarkRead(context.Background(), "n-1"))
	require.ErrorIs(t, svc.MarkRead(context.Background(), "n-404"), model.ErrNotificationNotFound)
}

func TestServiceList(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockNotificationRepository(t)
	repo.On("List", mock.Anything, true).
		Return([]model.Notification{{ID: "n-1", Type: model.NotificationPriceAlert}}, nil).
		Once()

	svc := NewNotificationService(repo, nil)

	out, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "n-1", out[0].ID)
}
