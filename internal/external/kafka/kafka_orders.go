package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	interf "github.com/glkeru/loyalty/checkout/internal/interfaces"
	model "github.com/glkeru/loyalty/checkout/internal/models"
	"github.com/segmentio/kafka-go"
)

type KafkaOrder struct {
	writer *kafka.Writer
}

var _ interf.OrderPublisher = (*KafkaOrder)(nil)

func NewWriter(broker string, topic string) (writer *KafkaOrder, err error) {
	if broker == "" {
		return nil, fmt.Errorf("env CHECKOUT_KAFKA_URL is not set")
	}
	return &KafkaOrder{&kafka.Writer{
		Addr:         kafka.TCP(broker),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		WriteTimeout: 5 * time.Second,
	}}, nil
}

// Ключ - ID заказа, чтобы события одного заказа шли в одну партицию
func (k *KafkaOrder) PublishOrder(ctx context.Context, event model.OrderEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: value,
	})
}

func (k *KafkaOrder) Close() error {
	return k.writer.Close()
}
