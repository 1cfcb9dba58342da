package port

import (
	"context"
	"med-voice/internal/core/domain"
)

// EventPublisher is an interface to publish recording lifecycle events
type EventPublisher interface {
	PublishRecordingUploaded(ctx context.Context, event domain.RecordingUploadedEvent) error
	Close() error
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
