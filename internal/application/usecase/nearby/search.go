package nearby

import (
	"context"
	"sort"

	"github.com/Magga23/siteradar/internal/application/port/outbound"
	"github.com/Magga23/siteradar/internal/domain/entity"
	"github.com/Magga23/siteradar/internal/domain/geo"
	"github.com/Magga23/siteradar/pkg/logger"
)

type SearchUseCaseImpl struct {
	SiteRepository outbound.SiteRepository
	Logger         logger.Logger
}

func NewSearchUseCase(siteRepository outbound.SiteRepository, log logger.Logger) *SearchUseCaseImpl {
	return &SearchUseCaseImpl{
		SiteRepository: siteRepository,
		Logger:         log,
	}
}

// Execute fetches every coordinate-bearing site, ranks them by great-circle
// distance from the caller's position and keeps those within the radius
// (boundary inclusive). Ties preserve fetch order. An empty result is a
// normal outcome, not an error.
func (uc *SearchUseCaseImpl) Execute(ctx context.Context, input SearchInput) (SearchOutput, error) {
	if input.RadiusMeters < 0 {
		return SearchOutput{}, entity.ErrNegativeRadius
	}

	sites, err := uc.SiteRepository.ListWithCoordinates(ctx)
	if err != nil {
		uc.Logger.Error(ctx, "site fetch failed", logger.WithError(err))
		return SearchOutput{}, &DataSourceError{Err: err}
	}

	ranked := make([]entity.RankedSite, 0, len(sites))
	for _, s := range sites {
		d := geo.Haversine(input.Latitude, input.Longitude, s.Latitude, s.Longitude)
		if d <= input.RadiusMeters {
			ranked = append(ranked, entity.RankedSite{Site: s, DistanceMeters: d})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceMeters < ranked[j].DistanceMeters
	})

	uc.Logger.Debug(ctx, "nearby search completed",
		logger.Float64("lat", input.Latitude),
		logger.Float64("lng", input.Longitude),
		logger.Float64("radius_m", input.RadiusMeters),
		logger.Int("candidates", len(sites)),
		logger.Int("matches", len(ranked)),
	)

	output := SearchOutput{Sites: make([]SiteResult, len(ranked))}
	for i, r := range ranked {
		output.Sites[i] = SiteResult{
			ID:             r.ID,
			ExternalID:     r.ExternalID,
			Address:        r.Address,
			Zipcode:        r.Zipcode,
			City:           r.City,
			Latitude:       r.Latitude,
			Longitude:      r.Longitude,
			Status:         r.Status,
			DistanceMeters: r.DistanceMeters,
		}
	}

	return output, nil
}
