package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cloud-wave-best-zizon/backoffice-service/internal/domain"
	"github.com/cloud-wave-best-zizon/backoffice-service/pkg/middleware"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const orderEventsTopic = "order-events"

type KafkaProducer struct {
	writer *kafka.Writer
	logger *zap.Logger
}

func NewKafkaProducer(brokers string, logger *zap.Logger) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers),
		Topic:        orderEventsTopic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
	}

	return &KafkaProducer{
		writer: writer,
		logger: logger,
	}
}

// newOrderCreatedEvent carries the request id from the incoming HTTP request
// (when there is one) into the event, so a consumer can correlate the event
// with the API call that caused it.
func newOrderCreatedEvent(ctx context.Context, order *domain.Order) OrderCreatedEvent {
	return OrderCreatedEvent{
		EventID:     uuid.NewString(),
		OrderID:     order.OrderID,
		CustomerID:  order.CustomerID,
		TotalAmount: order.TotalAmount,
		Items:       order.Items,
		Status:      order.Status,
		Timestamp:   time.Now().UTC(),
		RequestID:   middleware.RequestIDFromContext(ctx),
	}
}

func (p *KafkaProducer) PublishOrderCreated(ctx context.Context, order *domain.Order) error {
	event := newOrderCreatedEvent(ctx, order)

	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Failed to marshal event", zap.Error(err))
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: eventBytes,
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("Failed to publish message",
			zap.String("event_id", event.EventID),
			zap.Error(err))
		return err
	}

	p.logger.Info("Event published",
		zap.String("event_id", event.EventID),
		zap.String("order_id", event.OrderID))
	return nil
}

func (p *KafkaProducer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
