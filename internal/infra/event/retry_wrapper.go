package event

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/Magga23/siteradar/pkg/logger"
	"github.com/Magga23/siteradar/pkg/metrics"
)

func WrapExponentialBackoff(
	log logger.Logger,
	m metrics.Metrics,
	handlerName string,
	maxRetries int,
	baseWait time.Duration,
	next MessageHandler,
) MessageHandler {
	return func(ctx context.Context, msg []byte, headers map[string]interface{}) error {
		var err error
		for attempt := 0; attempt <= maxRetries; attempt++ {
			err = next(ctx, msg, headers)
			if err == nil {
				return nil
			}
			// No number of retries fixes an unprocessable delivery.
			if errors.Is(err, ErrUnprocessable) {
				return err
			}
			if attempt < maxRetries {
				wait := baseWait * time.Duration(math.Pow(2, float64(attempt)))

				log.Warn(ctx, "transient failure, retrying",
					logger.String("handler", handlerName),
					logger.Int("attempt", attempt+1),
					logger.String("wait", wait.String()),
					logger.WithError(err),
				)

				timer := time.NewTimer(wait)
				select {
				case <-timer.C:
				case <-ctx.Done():
					if !timer.Stop() {
						<-timer.C
					}
					return ctx.Err()
				}
			}
		}

		log.Error(ctx, "max retries reached, giving up",
			logger.String("handler", handlerName),
			logger.WithError(err),
		)
		m.IncIngestProcessed("exhausted")
		return err
	}
}
