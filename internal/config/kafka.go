package config

import (
	"context"
	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
	"os"
	"time"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "config").Logger()

func getKafkaBrokerURLs() []string {
	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		brokers = "localhost:9092,localhost:9093,localhost:9094" // Default brokers
	}
	return splitList(brokers)
}

// NewKafkaWriter returns an async writer: WriteMessages only enqueues, and
// delivery failures are logged from the completion callback.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{}, // Balancer for selecting partition
		AllowAutoTopicCreation: true,
		Async:                  true,
		BatchTimeout:           50 * time.Millisecond,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Error().Err(err).Int("messages", len(messages)).Msg("Error delivering events to kafka")
			}
		},
	}
}

// PingKafka dials the first reachable broker so a bad KAFKA_BROKERS shows up
// at startup rather than on the first write.
func PingKafka(ctx context.Context, brokers []string) error {
	var err error
	for _, b := range brokers {
		var conn *kafka.Conn
		conn, err = kafka.DialContext(ctx, "tcp", b)
		if err == nil {
			return conn.Close()
		}
	}
	return err
}
