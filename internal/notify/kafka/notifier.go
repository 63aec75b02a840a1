// Package kafka publishes message notifications to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/gofrs/uuid/v5"

	"github.com/souqly/convo/internal/model"
	"github.com/souqly/convo/internal/notify"
)

// EventMessageReceived is the value of the "event" header.
const EventMessageReceived = "message.received"

// Notifier sends one record per notification, keyed by recipient so a
// recipient's notifications stay ordered within a partition.
type Notifier struct {
	sync  sarama.SyncProducer
	topic string
}

var _ notify.Notifier = (*Notifier)(nil)

// Config returns the producer settings the notifier relies on.
func Config() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Idempotent = true
	cfg.Producer.Return.Successes = true
	cfg.Net.MaxOpenRequests = 1
	cfg.Version = sarama.V2_1_0_0
	return cfg
}

// New dials brokers.
func New(brokers []string, topic string) (*Notifier, error) {
	p, err := sarama.NewSyncProducer(brokers, Config())
	if err != nil {
		return nil, err
	}
	return NewWithProducer(p, topic), nil
}

// NewWithProducer wraps an existing producer.
func NewWithProducer(p sarama.SyncProducer, topic string) *Notifier {
	return &Notifier{sync: p, topic: topic}
}

type payload struct {
	RecipientID    uuid.UUID `json:"recipient_id"`
	ConversationID uuid.UUID `json:"conversation_id"`
	MessageID      uuid.UUID `json:"message_id"`
	SenderID       uuid.UUID `json:"sender_id"`
	Summary        string    `json:"summary"`
	CreatedAt      time.Time `json:"created_at"`
}

func (n *Notifier) MessageReceived(ctx context.Context, recipientID uuid.UUID, msg model.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := json.Marshal(payload{
		RecipientID:    recipientID,
		ConversationID: msg.ConversationID,
		MessageID:      msg.ID,
		SenderID:       msg.SenderID,
		Summary:        msg.Summary(),
		CreatedAt:      msg.CreatedAt,
	})
	if err != nil {
		return err
	}
	_, _, err = n.sync.SendMessage(&sarama.ProducerMessage{
		Topic: n.topic,
		Key:   sarama.StringEncoder(recipientID.String()),
		Value: sarama.ByteEncoder(body),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event"), Value: []byte(EventMessageReceived)},
		},
	})
	return err
}

func (n *Notifier) Close() error {
	if n.sync == nil {
		return nil
	}
	return n.sync.Close()
}
