package buffer

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Delivery kinds buffered while the platform API is unreachable.
const (
	KindPublishView = "publish_view"
	KindPostMessage = "post_message"
)

// Item represents an outbound delivery that should be retried when the
// platform API is unavailable.
type Item struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	Target    string          `json:"target"`
	Payload   json.RawMessage `json:"payload"`
	Priority  int             `json:"priority"`
	Retries   int             `json:"retries"`
	Timestamp time.Time       `json:"timestamp"`

	bucketKey []byte
}

func (i *Item) normalize() {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	if i.Priority <= 0 || i.Priority > 5 {
		i.Priority = 3
	}
	if i.Timestamp.IsZero() {
		i.Timestamp = time.Now()
	}
}
