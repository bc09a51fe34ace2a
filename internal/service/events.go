package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-account-keeper/internal/adapter"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/models"
)

// publishEvent sends an account event and only logs failures. State
// changes are already persisted when it runs.
func publishEvent(ctx context.Context, events adapter.EventPublisher, eventType models.AccountEventType, user models.User, at time.Time) {
	log := logger.FromContext(ctx)

	if err := events.Publish(ctx, models.NewAccountEvent(eventType, user, at)); err != nil {
		log.Warn().Err(err).
			Str("func", "publishEvent").
			Str("event", string(eventType)).
			Str("user_id", user.UserID).
			Msg("account event was not published")
	}
}

// deleteImagesBestEffort removes images uploaded for an operation that did
// not complete. Failures are logged and otherwise ignored.
func deleteImagesBestEffort(ctx context.Context, images adapter.ImageHost, refs ...models.Image) {
	log := logger.FromContext(ctx)

	for _, ref := range refs {
		if ref.PublicID == "" {
			continue
		}
		if _, err := images.Delete(ctx, ref.PublicID); err != nil {
			log.Warn().Err(err).
				Str("func", "deleteImagesBestEffort").
				Str("public_id", ref.PublicID).
				Msg("orphaned image was not deleted")
		}
	}
}
