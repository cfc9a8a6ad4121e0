package ingest

import (
	"context"
	"fmt"

	"github.com/Magga23/siteradar/internal/application/port/outbound"
	"github.com/Magga23/siteradar/internal/domain/entity"
)

type UpsertInput struct {
	EventID    string  `json:"event_id"`
	SiteID     string  `json:"site_id"`
	ExternalID string  `json:"external_id"`
	Address    string  `json:"address"`
	Zipcode    string  `json:"zipcode"`
	City       string  `json:"city"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Status     string  `json:"status"`
}

type UpsertUseCase interface {
	Execute(ctx context.Context, input UpsertInput) error
}

type UpsertUseCaseImpl struct {
	Uow outbound.UnitOfWork
}

func NewUpsertUseCase(uow outbound.UnitOfWork) *UpsertUseCaseImpl {
	return &UpsertUseCaseImpl{Uow: uow}
}

// Execute writes the site row and its ingest audit row in one transaction.
func (uc *UpsertUseCaseImpl) Execute(ctx context.Context, input UpsertInput) error {
	site, err := entity.NewSite(input.SiteID, input.ExternalID, input.Latitude, input.Longitude)
	if err != nil {
		return fmt.Errorf("invalid site event: %w", err)
	}
	site.Address = input.Address
	site.Zipcode = input.Zipcode
	site.City = input.City
	site.Status = input.Status

	return uc.Uow.Do(ctx, func(provider outbound.RepositoryProvider) error {
		if err := provider.Sites().Upsert(ctx, site); err != nil {
			return fmt.Errorf("upsert site: %w", err)
		}
		if err := provider.IngestLog().Record(ctx, input.EventID, site.ID); err != nil {
			return fmt.Errorf("record ingest: %w", err)
		}
		return nil
	})
}
