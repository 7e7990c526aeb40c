package repository

import (
	"context"

	"github.com/pulsebot/backend/ui"
)

// ViewStateRepository caches the last rendered selection per Slack user. The
// home-opened event does not echo the previous view's metadata, so the prior
// selection is recovered from this cache.
type ViewStateRepository interface {
	Get(ctx context.Context, slackUserID string) (ui.State, error)
	Save(ctx context.Context, slackUserID string, state ui.State) error
	Delete(ctx context.Context, slackUserID string) error
}
