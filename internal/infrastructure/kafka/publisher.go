package kafka

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/domain"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/plain"
	"github.com/segmentio/kafka-go/sasl/scram"
)

type KafkaConfig struct {
	Brokers    []string
	Topic      string
	Username   string
	Password   string
	Mechanism  string
	TLSEnabled bool
}

type KafkaPublisher struct {
	writer *kafka.Writer
	topic  string
}

func NewKafkaPublisher(cfg KafkaConfig) (*KafkaPublisher, error) {
	transport := &kafka.Transport{}

	if cfg.Username != "" {
		var mechanism sasl.Mechanism
		var err error
		switch cfg.Mechanism {
		case "SCRAM-SHA-256":
			mechanism, err = scram.Mechanism(scram.SHA256, cfg.Username, cfg.Password)
		case "SCRAM-SHA-512":
			mechanism, err = scram.Mechanism(scram.SHA512, cfg.Username, cfg.Password)
		default:
			mechanism = plain.Mechanism{Username: cfg.Username, Password: cfg.Password}
		}
		if err != nil {
			return nil, fmt.Errorf("failed to init sasl mechanism: %w", err)
		}
		transport.SASL = mechanism
	}

	if cfg.TLSEnabled {
		transport.TLS = &tls.Config{}
	}

	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:      kafka.TCP(cfg.Brokers...),
			Balancer:  &kafka.LeastBytes{},
			Transport: transport,
		},
		topic: cfg.Topic,
	}, nil
}

func (k *KafkaPublisher) Publish(topic string, msgs ...domain.Message) error {
	var km []kafka.Message
	for _, m := range msgs {
		km = append(km, kafka.Message{
			Key:   m.Key,
			Value: m.Value,
			Time:  time.Now(),
			Topic: topic,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return k.writer.WriteMessages(ctx, km...)
}

// PublishTransaction publishes one mutation event, keyed by composite id so
// consumers see per-transaction ordering.
func (k *KafkaPublisher) PublishTransaction(event TransactionEvent) error {
	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	v, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return k.Publish(k.topic, domain.Message{Key: []byte(event.TransactionID), Value: v})
}
