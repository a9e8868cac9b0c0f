package services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/Shaan-kapoor/restaurant-menu-platform/entity"

	"github.com/segmentio/kafka-go"
)

type OrderEvent struct {
	Type         string    `json:"type"`
	OrderID      uint      `json:"orderId"`
	RestaurantID uint      `json:"restaurantId"`
	UserID       uint      `json:"userId"`
	Total        float64   `json:"total"`
	Timestamp    time.Time `json:"timestamp"`
}

type OrderEventPublisher interface {
	PublishOrderCreated(ctx context.Context, o *entity.Order) error
}

// KafkaOrderPublisher writes order events to the orders topic, keyed by
// restaurant so one restaurant's events stay ordered.
type KafkaOrderPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaOrderPublisher(broker string) *KafkaOrderPublisher {
	return &KafkaOrderPublisher{
		Writer: &kafka.Writer{
			Addr:     kafka.TCP(broker),
			Topic:    "orders",
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *KafkaOrderPublisher) PublishOrderCreated(ctx context.Context, o *entity.Order) error {
	payload, _ := json.Marshal(OrderEvent{
		Type:         "order_created",
		OrderID:      o.ID,
		RestaurantID: o.RestaurantID,
		UserID:       o.UserID,
		Total:        o.Total,
		Timestamp:    time.Now(),
	})
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(o.RestaurantID), 10)),
		Value: payload,
	})
}

func (p *KafkaOrderPublisher) Close() error {
	return p.Writer.Close()
}
