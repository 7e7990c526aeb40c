package services

import (
	"context"
	"encoding/json"

	"github.com/pulsebot/backend/blockkit"
	"github.com/pulsebot/backend/domain"
	"github.com/pulsebot/backend/internal/infrastructure/buffer"
	"github.com/pulsebot/backend/usecase"
)

// DeliveryBridge adapts the delivery processor to the buffer port the use
// cases depend on.
type DeliveryBridge struct {
	processor *DeliveryProcessor
}

func NewDeliveryBridge(processor *DeliveryProcessor) *DeliveryBridge {
	return &DeliveryBridge{processor: processor}
}

func (b *DeliveryBridge) BufferPublish(_ context.Context, slackUserID string, view blockkit.View) error {
	if b.processor == nil || slackUserID == "" {
		return domain.ErrInvalidPayload
	}
	payload, err := json.Marshal(viewPayload{View: view})
	if err != nil {
		return err
	}
	return b.processor.Enqueue(buffer.Item{
		Kind:     buffer.KindPublishView,
		Target:   slackUserID,
		Payload:  payload,
		Priority: 3,
	})
}

func (b *DeliveryBridge) BufferMessage(_ context.Context, channel, text string, blocks []blockkit.Block) error {
	if b.processor == nil || channel == "" {
		return domain.ErrInvalidPayload
	}
	payload, err := json.Marshal(messagePayload{Text: text, Blocks: blocks})
	if err != nil {
		return err
	}
	return b.processor.Enqueue(buffer.Item{
		Kind:     buffer.KindPostMessage,
		Target:   channel,
		Payload:  payload,
		Priority: 2,
	})
}

var _ usecase.DeliveryBuffer = (*DeliveryBridge)(nil)
