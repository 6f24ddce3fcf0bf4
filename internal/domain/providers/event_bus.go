package providers

import (
	"context"

	"github.com/foodsentry/backend/internal/domain/entities"
)

// EventBus defines the interface for publishing and subscribing to
// pipeline lifecycle events.
type EventBus interface {
	// Publish publishes an event to all subscribers
	Publish(ctx context.Context, channel string, event *entities.AnalysisEvent) error

	// Subscribe subscribes to events on a channel
	Subscribe(ctx context.Context, channel string) (<-chan *entities.AnalysisEvent, error)

	// Unsubscribe unsubscribes from a channel
	Unsubscribe(ctx context.Context, channel string) error

	// Close closes the event bus and all subscriptions
	Close() error
}

// EventChannel constants for different event types
const (
	// EventChannelAnalysisUpdates is the channel for all analysis updates
	EventChannelAnalysisUpdates = "analysis:updates"

	// EventChannelSamplePrefix is the prefix for sample-specific channels
	EventChannelSamplePrefix = "sample:"
)

// GetSampleChannel returns the channel name for a specific sample
func GetSampleChannel(sampleID string) string {
	return EventChannelSamplePrefix + sampleID
}
