package usecase

import (
	"context"

	"github.com/pulsebot/backend/blockkit"
)

// Publisher sends rendered views and messages to the chat platform.
type Publisher interface {
	PublishView(ctx context.Context, slackUserID string, view blockkit.View) error
	OpenView(ctx context.Context, triggerID string, view blockkit.View) error
	PostMessage(ctx context.Context, channel, text string, blocks []blockkit.Block) error
}

// DeliveryBuffer persists deliveries that could not be sent immediately so
// use cases stay storage-agnostic.
type DeliveryBuffer interface {
	BufferPublish(ctx context.Context, slackUserID string, view blockkit.View) error
	BufferMessage(ctx context.Context, channel, text string, blocks []blockkit.Block) error
}
