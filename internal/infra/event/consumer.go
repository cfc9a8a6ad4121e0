package event

import (
	"context"
	"errors"

	"github.com/Magga23/siteradar/pkg/logger"
	carrier "github.com/Magga23/siteradar/pkg/otel"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Consumer drains a queue of site position events and feeds each delivery
// through the configured handler pipeline. A transient handler error nacks
// the delivery with requeue so a later attempt can succeed; an unprocessable
// one is nacked without requeue.
type Consumer struct {
	Conn    *amqp.Connection
	Handler MessageHandler
	Logger  logger.Logger
}

func NewConsumer(conn *amqp.Connection, handler MessageHandler, l logger.Logger) *Consumer {
	return &Consumer{
		Conn:    conn,
		Handler: handler,
		Logger:  l,
	}
}

func (c *Consumer) Start(ctx context.Context, queueName string) error {
	ch, err := c.Conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if err := c.setupTopology(ch, queueName); err != nil {
		return err
	}

	msgs, err := ch.Consume(
		queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	c.Logger.Info(ctx, "waiting for site position events", logger.String("queue", queueName))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return amqp.ErrClosed
			}
			c.handleDelivery(ctx, queueName, d)
		}
	}
}

func (c *Consumer) handleDelivery(parent context.Context, queueName string, d amqp.Delivery) {
	amqpCarrier := carrier.AMQPHeadersCarrier(d.Headers)
	ctx := otel.GetTextMapPropagator().Extract(parent, amqpCarrier)

	tracer := otel.GetTracerProvider().Tracer("siteradar-worker")
	ctx, span := tracer.Start(ctx, "ProcessSitePosition", trace.WithAttributes(
		attribute.String("queue.name", queueName),
		attribute.String("messaging.message_id", d.MessageId),
	))
	defer span.End()

	if err := c.Handler(ctx, d.Body, d.Headers); err != nil {
		span.RecordError(err)
		if errors.Is(err, ErrUnprocessable) {
			c.Logger.Error(ctx, "dropping unprocessable delivery", logger.WithError(err))
			_ = d.Nack(false, false)
			return
		}
		c.Logger.Error(ctx, "handler failed, requeueing delivery", logger.WithError(err))
		_ = d.Nack(false, true)
		return
	}

	_ = d.Ack(false)
}

func (c *Consumer) setupTopology(ch *amqp.Channel, queueName string) error {
	if _, err := ch.QueueDeclare(
		queueName,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return err
	}
	// Routing key matches the queue name; the importer publishes with the
	// same key.
	return ch.QueueBind(queueName, queueName, "amq.direct", false, nil)
}
