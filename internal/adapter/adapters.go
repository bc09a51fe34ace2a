package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-account-keeper/internal/config"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
)

// Adapters groups the external system clients built from configuration.
type Adapters struct {
	ImageHost ImageHost
	Events    EventPublisher
}

// NewAdapters builds the image host selected by cfg.ImageHost.Provider and
// a Kafka publisher when brokers are configured.
func NewAdapters(ctx context.Context, cfg config.Adapter, log *logger.Logger) (*Adapters, error) {
	imageHost, err := NewImageHost(ctx, cfg.ImageHost, log)
	if err != nil {
		return nil, err
	}

	events := NewNopEventPublisher()
	if len(cfg.Events.Brokers) > 0 {
		events = NewKafkaEventPublisher(cfg.Events, log)
	} else {
		log.Warn().Str("func", "NewAdapters").Msg("no event brokers configured, account events are dropped")
	}

	return &Adapters{ImageHost: imageHost, Events: events}, nil
}

// NewImageHost returns the [ImageHost] for cfg.Provider.
func NewImageHost(ctx context.Context, cfg config.ImageHost, log *logger.Logger) (ImageHost, error) {
	switch cfg.Provider {
	case config.ImageHostHTTP:
		return NewHTTPImageHost(cfg, log)
	case config.ImageHostS3:
		return NewS3ImageHost(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProvider, cfg.Provider)
	}
}

// Close releases adapter resources.
func (a *Adapters) Close() error {
	return a.Events.Close()
}
