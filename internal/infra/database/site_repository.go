package database

import (
	"context"
	"database/sql"

	"github.com/Magga23/siteradar/internal/domain/entity"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx so repositories can run
// inside or outside a UnitOfWork.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type SiteRepositoryImpl struct {
	db DBTX
}

func NewSiteRepository(db DBTX) *SiteRepositoryImpl {
	return &SiteRepositoryImpl{db: db}
}

const listWithCoordinates = `
SELECT id, external_id, address, zipcode, city, latitude, longitude, status
  FROM sites
 WHERE latitude IS NOT NULL
   AND longitude IS NOT NULL
`

func (r *SiteRepositoryImpl) ListWithCoordinates(ctx context.Context) ([]entity.Site, error) {
	rows, err := r.db.QueryContext(ctx, listWithCoordinates)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sites []entity.Site
	for rows.Next() {
		var s entity.Site
		if err := rows.Scan(
			&s.ID,
			&s.ExternalID,
			&s.Address,
			&s.Zipcode,
			&s.City,
			&s.Latitude,
			&s.Longitude,
			&s.Status,
		); err != nil {
			return nil, err
		}
		sites = append(sites, s)
	}
	return sites, rows.Err()
}

const upsertSite = `
INSERT INTO sites (id, external_id, address, zipcode, city, latitude, longitude, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO UPDATE
   SET external_id = EXCLUDED.external_id,
       address     = EXCLUDED.address,
       zipcode     = EXCLUDED.zipcode,
       city        = EXCLUDED.city,
       latitude    = EXCLUDED.latitude,
       longitude   = EXCLUDED.longitude,
       status      = EXCLUDED.status
`

func (r *SiteRepositoryImpl) Upsert(ctx context.Context, site *entity.Site) error {
	_, err := r.db.ExecContext(ctx, upsertSite,
		site.ID,
		site.ExternalID,
		site.Address,
		site.Zipcode,
		site.City,
		site.Latitude,
		site.Longitude,
		site.Status,
	)
	return err
}

type IngestLogRepositoryImpl struct {
	db DBTX
}

func NewIngestLogRepository(db DBTX) *IngestLogRepositoryImpl {
	return &IngestLogRepositoryImpl{db: db}
}

func (r *IngestLogRepositoryImpl) Record(ctx context.Context, eventID, siteID string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO site_ingest_log (event_id, site_id, processed_at) VALUES ($1, $2, now())`,
		eventID, siteID,
	)
	return err
}
