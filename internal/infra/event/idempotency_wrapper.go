package event

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/Magga23/siteradar/pkg/logger"
	"github.com/Magga23/siteradar/pkg/metrics"
)

type IdempotencyStore interface {
	SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	Del(ctx context.Context, key string) error
}

// WrapIdempotency drops deliveries whose event ID has already been claimed.
// Fail-closed: if the store is unreachable the delivery errors instead of
// risking a duplicate write.
func WrapIdempotency(
	log logger.Logger,
	m metrics.Metrics,
	store IdempotencyStore,
	handlerName string,
	ttl time.Duration,
	next MessageHandler,
) MessageHandler {
	return func(ctx context.Context, msg []byte, headers map[string]interface{}) error {
		var eventID string

		if v, ok := headers["x-event-id"]; ok {
			eventID = fmt.Sprintf("%v", v)
		}

		if eventID == "" {
			hash := sha256.Sum256(msg)
			eventID = fmt.Sprintf("hash:%x", hash)
		}

		key := fmt.Sprintf("dedup:%s:%s", handlerName, eventID)

		claimed, err := store.SetNX(ctx, key, "processing", ttl)
		if err != nil {
			log.Error(ctx, "idempotency store unavailable", logger.WithError(err))
			return fmt.Errorf("idempotency store unavailable: %w", err)
		}

		if !claimed {
			log.Info(ctx, "duplicate event dropped",
				logger.String("handler", handlerName),
				logger.String("event_id", eventID),
			)
			m.IncDuplicateDropped(handlerName)
			return nil
		}

		err = next(ctx, msg, headers)
		if err != nil {
			// Release the claim so a requeued delivery can retry.
			if delErr := store.Del(ctx, key); delErr != nil {
				log.Error(ctx, "failed to release idempotency claim",
					logger.String("key", key),
					logger.WithError(delErr),
				)
			}
		}

		return err
	}
}
