package port

import (
	"context"

	"github.com/VeeVeeOficial/photoclound/internal/core/domain"
)

// EventPublisher publishes photo lifecycle events to the broker
type EventPublisher interface {
	PublishPhotoDeleted(ctx context.Context, event domain.PhotoDeleted) error
}

// EventConsumer is an interface to define an event consumer (kafka, nats, ...)
type EventConsumer interface {
	Subscribe(ctx context.Context, handler MessageService) error
	Close() error
}

// MessageService is an interface to define message handling
type MessageService interface {
	HandleMessage(ctx context.Context, data []byte) error
}
