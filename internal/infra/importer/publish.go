package importer

import (
	"context"

	eventinfra "github.com/Magga23/siteradar/internal/infra/event"
	"github.com/Magga23/siteradar/pkg/events"
	"github.com/Magga23/siteradar/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// PublishSites fans the rows out to the broker with a bounded worker pool.
// A single failed publish aborts the remaining work.
func PublishSites(
	ctx context.Context,
	rows []SiteRow,
	dispatcher events.EventDispatcher,
	routingKey string,
	workers int,
	log logger.Logger,
) error {
	if workers < 1 {
		workers = 1
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, row := range rows {
		row := row
		g.Go(func() error {
			evt := eventinfra.NewSitePositionUpdated(routingKey)
			evt.SetPayload(row)
			if err := dispatcher.Dispatch(gCtx, evt); err != nil {
				log.Error(gCtx, "failed to publish site row",
					logger.String("site_id", row.SiteID),
					logger.WithError(err),
				)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	log.Info(ctx, "site import published",
		logger.Int("rows", len(rows)),
		logger.String("routing_key", routingKey),
	)
	return nil
}
