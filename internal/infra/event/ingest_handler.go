package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Magga23/siteradar/internal/application/usecase/ingest"
	"github.com/Magga23/siteradar/internal/domain/entity"
	"github.com/Magga23/siteradar/pkg/logger"
)

// NewIngestHandler decodes a site position event and hands it to the upsert
// use case. The event ID from the headers feeds the audit log. Bodies that
// do not decode, and events that fail validation, are unprocessable; no
// redelivery can fix them.
func NewIngestHandler(uc ingest.UpsertUseCase, log logger.Logger) MessageHandler {
	return func(ctx context.Context, msg []byte, headers map[string]interface{}) error {
		var input ingest.UpsertInput
		if err := json.Unmarshal(msg, &input); err != nil {
			return fmt.Errorf("%w: unmarshal site position event: %v", ErrUnprocessable, err)
		}

		if v, ok := headers["x-event-id"]; ok {
			input.EventID = fmt.Sprintf("%v", v)
		}

		if err := uc.Execute(ctx, input); err != nil {
			if errors.Is(err, entity.ErrIDIsRequired) {
				return fmt.Errorf("%w: %v", ErrUnprocessable, err)
			}
			return err
		}

		log.Debug(ctx, "site position applied",
			logger.String("site_id", input.SiteID),
			logger.Float64("lat", input.Latitude),
			logger.Float64("lng", input.Longitude),
		)
		return nil
	}
}
