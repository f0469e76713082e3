package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// LeadSoldPayload carries everything the notification worker needs so it
// never has to reach back into the database.
type LeadSoldPayload struct {
	LeadID      string `json:"lead_id"`
	BrokerID    string `json:"broker_id"`
	BrokerName  string `json:"broker_name"`
	BrokerEmail string `json:"broker_email"`

	LeadName    string `json:"lead_name"`
	LeadEmail   string `json:"lead_email"`
	LeadPhone   string `json:"lead_phone"`
	Segment     string `json:"segment"`
	State       string `json:"state"`
	AmountCents int64  `json:"amount_cents"`
	Currency    string `json:"currency"`
	Origin      string `json:"origin"`
}

type QueueProducerInterface interface {
	PublishLeadSold(ctx context.Context, payload LeadSoldPayload) error
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{Conn: conn, Ch: ch}
}

func (p *RabbitMQProducer) PublishLeadSold(ctx context.Context, payload LeadSoldPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("lead sold payload marshal failed: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("lead sold publish failed: %w", err)
	}

	return nil
}
