package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// LeadNotifier sends the winning broker their unlocked lead details.
type LeadNotifier interface {
	SendLeadUnlocked(payload LeadSoldPayload) error
}

// Worker drains the sold-lead queue and fans out notifications. It is fully
// decoupled from the database; the payload is self-contained.
type Worker struct {
	Channel  *amqp.Channel
	Notifier LeadNotifier
}

func NewWorker(ch *amqp.Channel, notifier LeadNotifier) *Worker {
	return &Worker{Channel: ch, Notifier: notifier}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("[WORKER] consumer registration failed: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload LeadSoldPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("[WORKER] malformed message, dropping: %s", err)
				// Poison message, reject without requeue so the queue keeps moving.
				d.Nack(false, false)
				continue
			}

			log.Printf("[WORKER] notifying broker %s about lead %s", payload.BrokerID, payload.LeadID)

			if err := w.Notifier.SendLeadUnlocked(payload); err != nil {
				log.Printf("[WORKER] notification failed: %s", err)
				d.Nack(false, false)
				continue
			}

			d.Ack(false)
		}
	}()

	log.Printf("[WORKER] waiting on queue '%s'", queueName)
	<-forever
}
