package supconsumer

import (
	"context"
	"fmt"

	"github.com/RollNo21-crypto/reznico-parts/internal/model"
	"github.com/RollNo21-crypto/reznico-parts/internal/platform/kafka"
	"github.com/RollNo21-crypto/reznico-parts/internal/platform/logger"
)

type Converter interface {
	SupplierUpdateToModel(data []byte) (model.SupplierUpdate, error)
}

type OrderService interface {
	Confirm(ctx context.Context, params model.ConfirmOrderParams) (*model.PurchaseOrder, error)
	Receive(ctx context.Context, params model.ReceiveOrderParams) (*model.PurchaseOrder, error)
}

// service consumes the supplier channel: confirmations and delivery
// reports for outstanding purchase orders.
type service struct {
	consumer kafka.Consumer
	conv     Converter
	orders   OrderService
}

func NewSupplierConsumer(consumer kafka.Consumer, conv Converter, orders OrderService) *service {
	return &service{consumer: consumer, conv: conv, orders: orders}
}

func (s *service) RunSupplierUpdatesConsume(ctx context.Context) error {
	logger.Info(ctx, "Starting supplier updates consumer")

	if err := s.consumer.Consume(ctx, s.supplierUpdateHandler); err != nil {
		logger.Error(ctx, "Consume from supplier updates topic error", logger.ErrorF(err))
		return err
	}

	return nil
}

func (s *service) supplierUpdateHandler(ctx context.Context, msg kafka.Message) error {
	upd, err := s.conv.SupplierUpdateToModel(msg.Value)
	if err != nil {
		logger.Error(ctx, "Failed to decode supplier update", logger.ErrorF(err))
		return fmt.Errorf("converter supplier_update_to_model error: %w", err)
	}

	switch upd.Type {
	case model.SupplierUpdateConfirmed:
		_, err = s.orders.Confirm(ctx, model.ConfirmOrderParams{
			OrderID:           upd.OrderID,
			SupplierReference: upd.SupplierReference,
			ConfirmedDelivery: upd.ConfirmedDelivery,
		})
	case model.SupplierUpdateDelivered:
		_, err = s.orders.Receive(ctx, model.ReceiveOrderParams{
			OrderID:          upd.OrderID,
			ReceivedQuantity: upd.ReceivedQuantity,
			ReceivedAt:       upd.ReceivedAt,
		})
	}
	if err != nil {
		logger.Error(ctx, "consumer apply supplier update", logger.ErrorF(err))
		return err
	}

	return nil
}
