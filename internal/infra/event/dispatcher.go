package event

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Magga23/siteradar/pkg/events"
	carrier "github.com/Magga23/siteradar/pkg/otel"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel"
)

type Dispatcher struct {
	RabbitMQChannel *amqp.Channel
}

func NewDispatcher(ch *amqp.Channel) *Dispatcher {
	return &Dispatcher{RabbitMQChannel: ch}
}

// Dispatch publishes the event payload as JSON to amq.direct, routed by the
// event name. Trace context and an event ID travel in the headers.
func (ed *Dispatcher) Dispatch(ctx context.Context, event events.Event) error {
	headers := make(amqp.Table)
	otel.GetTextMapPropagator().Inject(ctx, carrier.AMQPHeadersCarrier(headers))
	headers["x-event-id"] = uuid.New().String()

	payload, err := json.Marshal(event.GetPayload())
	if err != nil {
		return err
	}

	return ed.RabbitMQChannel.PublishWithContext(
		ctx,
		"amq.direct",
		event.GetName(),
		false,
		false,
		amqp.Publishing{
			Headers:     headers,
			ContentType: "application/json",
			Timestamp:   time.Now(),
			Body:        payload,
		})
}
