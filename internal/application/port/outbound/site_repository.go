package outbound

import (
	"context"

	"github.com/Magga23/siteradar/internal/domain/entity"
)

// SiteRepository is the read/write boundary for site records. The proximity
// search only ever calls ListWithCoordinates; the ingest worker uses Upsert.
type SiteRepository interface {
	// ListWithCoordinates returns every site whose latitude and longitude
	// are both set, in storage order.
	ListWithCoordinates(ctx context.Context) ([]entity.Site, error)
	Upsert(ctx context.Context, site *entity.Site) error
}

// IngestLogRepository records one audit row per processed position event.
type IngestLogRepository interface {
	Record(ctx context.Context, eventID, siteID string) error
}
