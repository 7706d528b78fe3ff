package audit

import (
	"context"
	"strings"

	"github.com/segmentio/kafka-go"
)

// KafkaProducer sends raw messages to a topic.
type KafkaProducer interface {
	SendMessage(ctx context.Context, topic string, key, value []byte) error
	Close() error
}

type kafkaProducer struct {
	writer *kafka.Writer
}

// NewKafkaProducer creates a producer for the given comma-separated broker
// list. Returns nil when no brokers are configured.
func NewKafkaProducer(brokers string) KafkaProducer {
	if brokers == "" {
		return nil
	}
	writer := &kafka.Writer{
		Addr:     kafka.TCP(strings.Split(brokers, ",")...),
		Balancer: &kafka.LeastBytes{},
	}
	return &kafkaProducer{writer: writer}
}

func (p *kafkaProducer) SendMessage(ctx context.Context, topic string, key, value []byte) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   key,
		Value: value,
	})
}

func (p *kafkaProducer) Close() error {
	return p.writer.Close()
}
