package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/pulsebot/backend/blockkit"
	"github.com/pulsebot/backend/internal/infrastructure/buffer"
)

type recordingPublisher struct {
	fail     bool
	views    []string
	messages []string
}

func (p *recordingPublisher) PublishView(_ context.Context, user string, _ blockkit.View) error {
	if p.fail {
		return errors.New("unreachable")
	}
	p.views = append(p.views, user)
	return nil
}

func (p *recordingPublisher) OpenView(context.Context, string, blockkit.View) error { return nil }

func (p *recordingPublisher) PostMessage(_ context.Context, channel, _ string, _ []blockkit.Block) error {
	if p.fail {
		return errors.New("unreachable")
	}
	p.messages = append(p.messages, channel)
	return nil
}

func openTestStore(t *testing.T) *buffer.Store {
	t.Helper()
	store, err := buffer.Open(filepath.Join(t.TempDir(), "deliveries.db"), "deliveries")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestDrainReplaysBufferedDeliveries(t *testing.T) {
	store := openTestStore(t)
	pub := &recordingPublisher{}
	dp := NewDeliveryProcessor(store, nil, pub, nil, ProcessorConfig{})
	bridge := NewDeliveryBridge(dp)

	view := blockkit.HomeView("{}", []blockkit.Block{blockkit.Section("hello")})
	if err := bridge.BufferPublish(context.Background(), "U1", view); err != nil {
		t.Fatalf("BufferPublish: %v", err)
	}
	if err := bridge.BufferMessage(context.Background(), "U2", "ping", nil); err != nil {
		t.Fatalf("BufferMessage: %v", err)
	}
	if dp.Size() != 2 {
		t.Fatalf("size = %d, want 2", dp.Size())
	}

	if err := dp.Drain(context.Background()); err != nil {
		t.Fatalf("Drain: %v", err)
	}

	if len(pub.views) != 1 || pub.views[0] != "U1" {
		t.Errorf("views replayed = %v", pub.views)
	}
	if len(pub.messages) != 1 || pub.messages[0] != "U2" {
		t.Errorf("messages replayed = %v", pub.messages)
	}
	if dp.Size() != 0 {
		t.Errorf("buffer not emptied, size = %d", dp.Size())
	}
}

func TestDrainDropsAfterMaxRetries(t *testing.T) {
	store := openTestStore(t)
	pub := &recordingPublisher{fail: true}
	dp := NewDeliveryProcessor(store, nil, pub, nil, ProcessorConfig{MaxRetries: 2})
	bridge := NewDeliveryBridge(dp)

	if err := bridge.BufferMessage(context.Background(), "U1", "ping", nil); err != nil {
		t.Fatalf("BufferMessage: %v", err)
	}

	// First drain requeues with one retry, second drops at the cap.
	for i := 0; i < 2; i++ {
		if err := dp.Drain(context.Background()); err != nil {
			t.Fatalf("Drain %d: %v", i, err)
		}
	}
	if dp.Size() != 0 {
		t.Fatalf("exhausted delivery still buffered, size = %d", dp.Size())
	}
}

type offlineMonitor struct{}

func (offlineMonitor) IsOnline() bool { return false }

func TestDrainSkipsWhileOffline(t *testing.T) {
	store := openTestStore(t)
	pub := &recordingPublisher{}
	dp := NewDeliveryProcessor(store, offlineMonitor{}, pub, nil, ProcessorConfig{})
	bridge := NewDeliveryBridge(dp)

	if err := bridge.BufferMessage(context.Background(), "U1", "ping", nil); err != nil {
		t.Fatalf("BufferMessage: %v", err)
	}
	if err := dp.Drain(context.Background()); err != nil {
		t.Fatalf("Drain: %v", err)
	}
	if len(pub.messages) != 0 || dp.Size() != 1 {
		t.Fatalf("offline drain must not touch the buffer (sent=%d size=%d)", len(pub.messages), dp.Size())
	}
}

func TestDrainFirstRetryKeepsDelivery(t *testing.T) {
	store := openTestStore(t)
	pub := &recordingPublisher{fail: true}
	dp := NewDeliveryProcessor(store, nil, pub, nil, ProcessorConfig{MaxRetries: 3})
	bridge := NewDeliveryBridge(dp)

	if err := bridge.BufferMessage(context.Background(), "U1", "ping", nil); err != nil {
		t.Fatalf("BufferMessage: %v", err)
	}
	if err := dp.Drain(context.Background()); err != nil {
		t.Fatalf("Drain: %v", err)
	}
	if dp.Size() != 1 {
		t.Fatalf("failed delivery should be requeued, size = %d", dp.Size())
	}

	pub.fail = false
	if err := dp.Drain(context.Background()); err != nil {
		t.Fatalf("Drain: %v", err)
	}
	if len(pub.messages) != 1 {
		t.Fatalf("recovered delivery not replayed")
	}
}
