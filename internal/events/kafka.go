package events

import (
	"context"
	"encoding/json"
	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type KafkaPublisher struct {
	writer messageWriter
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	// game.created.<id>, user.registered.<id> or user.name_updated.<email>
	msg := kafka.Message{
		Key:   []byte(event.Key()),
		Value: value,
	}

	return p.writer.WriteMessages(ctx, msg)
}
