package buffer

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "deliveries.db"), "")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestEnqueueAndBatch(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 3; i++ {
		err := store.Enqueue(Item{
			Kind:    KindPublishView,
			Target:  "U1",
			Payload: json.RawMessage(`{"type":"home"}`),
		})
		if err != nil {
			t.Fatalf("enqueue: %v", err)
		}
	}

	size, err := store.Size()
	if err != nil || size != 3 {
		t.Fatalf("size = %d (%v), want 3", size, err)
	}

	items, err := store.GetBatch(2)
	if err != nil {
		t.Fatalf("batch: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("batch returned %d items, want 2", len(items))
	}
	if items[0].Kind != KindPublishView || items[0].Target != "U1" {
		t.Fatalf("item round trip lost fields: %+v", items[0])
	}
}

func TestPriorityOrdering(t *testing.T) {
	store := openTestStore(t)

	if err := store.Enqueue(Item{ID: "low", Kind: KindPostMessage, Priority: 5}); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	if err := store.Enqueue(Item{ID: "high", Kind: KindPublishView, Priority: 1}); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	items, err := store.GetBatch(10)
	if err != nil {
		t.Fatalf("batch: %v", err)
	}
	if len(items) != 2 || items[0].ID != "high" {
		t.Fatalf("priority ordering broken: %+v", items)
	}
}

func TestRemoveAndRequeue(t *testing.T) {
	store := openTestStore(t)

	if err := store.Enqueue(Item{ID: "d1", Kind: KindPostMessage}); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	items, _ := store.GetBatch(1)
	if len(items) != 1 {
		t.Fatalf("expected one item")
	}

	if err := store.Remove(items[0]); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if size, _ := store.Size(); size != 0 {
		t.Fatalf("size after remove = %d, want 0", size)
	}

	retry := items[0]
	retry.Retries = 1
	if err := store.Requeue(retry); err != nil {
		t.Fatalf("requeue: %v", err)
	}
	requeued, _ := store.GetBatch(1)
	if len(requeued) != 1 || requeued[0].Retries != 1 {
		t.Fatalf("requeued item wrong: %+v", requeued)
	}
}

func TestCleanup(t *testing.T) {
	store := openTestStore(t)

	old := Item{ID: "old", Kind: KindPostMessage, Timestamp: time.Now().Add(-48 * time.Hour)}
	if err := store.Enqueue(old); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	if err := store.Enqueue(Item{ID: "fresh", Kind: KindPostMessage}); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	if err := store.Cleanup(time.Now().Add(-24 * time.Hour)); err != nil {
		t.Fatalf("cleanup: %v", err)
	}

	items, _ := store.GetBatch(10)
	if len(items) != 1 || items[0].ID != "fresh" {
		t.Fatalf("cleanup kept wrong items: %+v", items)
	}
}
