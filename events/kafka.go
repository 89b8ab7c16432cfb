package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"rent-assist/domain"
)

// KafkaForwarder writes change events to a Kafka topic, keyed by record key
// so that changes to one record stay ordered within a partition.
type KafkaForwarder struct {
	writer *kafka.Writer
}

func NewKafkaForwarder(brokers []string, topic string) *KafkaForwarder {
	return &KafkaForwarder{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.Hash{},
		},
	}
}

func (f *KafkaForwarder) Forward(ctx context.Context, event domain.ChangeEvent) error {
	msg, err := message(event)
	if err != nil {
		return err
	}
	return f.writer.WriteMessages(ctx, msg)
}

func message(event domain.ChangeEvent) (kafka.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("marshal change event %s: %w", event.ID, err)
	}
	return kafka.Message{
		Key:   []byte(event.Key),
		Value: data,
		Headers: []kafka.Header{
			{Key: "table", Value: []byte(event.Table)},
			{Key: "action", Value: []byte(event.Action)},
		},
	}, nil
}

func (f *KafkaForwarder) Close() error {
	return f.writer.Close()
}

var _ Forwarder = (*KafkaForwarder)(nil)
