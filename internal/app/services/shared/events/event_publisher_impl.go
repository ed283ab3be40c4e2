package events

import (
	"context"

	"protrack-service/internal/app/contracts"
	"protrack-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const FormSubmittedQueueName = "protrack_form_submitted_queue"

type rabbitEventPublisher struct {
	ch  *amqp.Channel
	log *zap.Logger
}

// NewRabbitEventPublisher opens a channel and declares the durable queue.
func NewRabbitEventPublisher(conn *amqp.Connection, log *zap.Logger) (contracts.EventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		FormSubmittedQueueName, // name
		true,                   // durable
		false,                  // autoDelete
		false,                  // exclusive
		false,                  // noWait
		nil,                    // args
	)
	if err != nil {
		return nil, err
	}

	return &rabbitEventPublisher{ch: ch, log: log}, nil
}

func (p *rabbitEventPublisher) PublishFormSubmitted(ctx context.Context, event *contracts.FormSubmittedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = p.ch.PublishWithContext(ctx,
		"",                     // exchange
		FormSubmittedQueueName, // routing key
		false,                  // mandatory
		false,                  // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, FormSubmittedQueueName)
	}
	return nil
}
