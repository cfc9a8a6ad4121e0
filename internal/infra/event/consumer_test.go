package event

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Magga23/siteradar/internal/application/usecase/ingest"
	"github.com/Magga23/siteradar/internal/domain/entity"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingAcknowledger struct {
	acked   bool
	nacked  bool
	requeue bool
}

func (r *recordingAcknowledger) Ack(tag uint64, multiple bool) error {
	r.acked = true
	return nil
}

func (r *recordingAcknowledger) Nack(tag uint64, multiple bool, requeue bool) error {
	r.nacked = true
	r.requeue = requeue
	return nil
}

func (r *recordingAcknowledger) Reject(tag uint64, requeue bool) error {
	r.nacked = true
	r.requeue = requeue
	return nil
}

type fakeUpsert struct {
	inputs []ingest.UpsertInput
	err    error
}

func (f *fakeUpsert) Execute(ctx context.Context, input ingest.UpsertInput) error {
	f.inputs = append(f.inputs, input)
	return f.err
}

func deliver(handler MessageHandler, body []byte) *recordingAcknowledger {
	ack := &recordingAcknowledger{}
	c := &Consumer{Handler: handler, Logger: nopLogger{}}
	c.handleDelivery(context.Background(), "sites.position_updated", amqp.Delivery{
		Acknowledger: ack,
		Body:         body,
	})
	return ack
}

func TestConsumer_DropsMalformedPayloadWithoutRequeue(t *testing.T) {
	uc := &fakeUpsert{}
	handler := NewIngestHandler(uc, nopLogger{})
	handler = WrapExponentialBackoff(nopLogger{}, &fakeMetrics{}, "SiteIngest", 3, time.Millisecond, handler)

	ack := deliver(handler, []byte("{not json"))

	assert.True(t, ack.nacked)
	assert.False(t, ack.requeue, "a body that never decodes must not be redelivered")
	assert.Empty(t, uc.inputs)
}

func TestConsumer_DropsEventWithoutSiteID(t *testing.T) {
	uc := &fakeUpsert{err: fmt.Errorf("invalid site event: %w", entity.ErrIDIsRequired)}
	handler := NewIngestHandler(uc, nopLogger{})

	ack := deliver(handler, []byte(`{"city":"Berlin"}`))

	assert.True(t, ack.nacked)
	assert.False(t, ack.requeue)
}

func TestConsumer_RequeuesTransientFailure(t *testing.T) {
	handler := func(ctx context.Context, msg []byte, headers map[string]interface{}) error {
		return errors.New("db down")
	}

	ack := deliver(handler, []byte(`{"site_id":"S1"}`))

	assert.True(t, ack.nacked)
	assert.True(t, ack.requeue)
}

func TestConsumer_AcksProcessedDelivery(t *testing.T) {
	uc := &fakeUpsert{}

	ack := deliver(NewIngestHandler(uc, nopLogger{}), []byte(`{"site_id":"S1"}`))

	assert.True(t, ack.acked)
	assert.False(t, ack.nacked)
	require.Len(t, uc.inputs, 1)
	assert.Equal(t, "S1", uc.inputs[0].SiteID)
}
