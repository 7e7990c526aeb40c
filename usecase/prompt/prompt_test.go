package prompt

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pulsebot/backend/blockkit"
	"github.com/pulsebot/backend/domain"
	"github.com/pulsebot/backend/repository"
)

type fakeUsers struct {
	due      []domain.User
	prompted map[string]time.Time
	nextDue  map[string]time.Time
}

func (f *fakeUsers) GetBySlackID(_ context.Context, slackUserID string) (*domain.User, error) {
	for i := range f.due {
		if f.due[i].SlackUserID == slackUserID {
			return &f.due[i], nil
		}
	}
	return nil, domain.ErrUserNotFound
}
func (f *fakeUsers) List(context.Context) ([]domain.User, error) { return f.due, nil }
func (f *fakeUsers) Upsert(context.Context, *domain.User) error  { return nil }
func (f *fakeUsers) ListDue(context.Context, time.Time) ([]domain.User, error) {
	return f.due, nil
}
func (f *fakeUsers) MarkPrompted(_ context.Context, id string, promptedAt, nextDueAt time.Time) error {
	if f.prompted == nil {
		f.prompted = map[string]time.Time{}
		f.nextDue = map[string]time.Time{}
	}
	f.prompted[id] = promptedAt
	f.nextDue[id] = nextDueAt
	return nil
}

type fakeUpdates struct {
	created []domain.Update
	byID    map[string]*domain.Update
}

func (f *fakeUpdates) List(context.Context, repository.UpdateFilter) ([]domain.Update, error) {
	return nil, nil
}
func (f *fakeUpdates) GetByID(_ context.Context, id string) (*domain.Update, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUpdateNotFound
}
func (f *fakeUpdates) Create(_ context.Context, update *domain.Update) (*domain.Update, error) {
	update.ID = "new"
	f.created = append(f.created, *update)
	return update, nil
}

type fakePublisher struct {
	fail     bool
	messages []string
}

func (f *fakePublisher) PublishView(context.Context, string, blockkit.View) error { return nil }
func (f *fakePublisher) OpenView(context.Context, string, blockkit.View) error    { return nil }
func (f *fakePublisher) PostMessage(_ context.Context, channel, _ string, _ []blockkit.Block) error {
	if f.fail {
		return errors.New("unreachable")
	}
	f.messages = append(f.messages, channel)
	return nil
}

type fakeBuffer struct {
	buffered []string
}

func (f *fakeBuffer) BufferPublish(context.Context, string, blockkit.View) error { return nil }
func (f *fakeBuffer) BufferMessage(_ context.Context, channel, _ string, _ []blockkit.Block) error {
	f.buffered = append(f.buffered, channel)
	return nil
}

func TestSweepDuePromptsAndSchedules(t *testing.T) {
	users := &fakeUsers{due: []domain.User{
		{ID: "1", SlackUserID: "U1", DisplayName: "Ada", CadenceDays: 3},
		{ID: "2", SlackUserID: "U2", DisplayName: "Lin"},
	}}
	updates := &fakeUpdates{}
	pub := &fakePublisher{}
	uc := New(users, updates, pub, nil, nil)

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	prompted, err := uc.SweepDue(context.Background(), now)
	if err != nil {
		t.Fatalf("SweepDue: %v", err)
	}
	if prompted != 2 {
		t.Fatalf("prompted = %d, want 2", prompted)
	}
	if len(pub.messages) != 2 {
		t.Fatalf("sent %d messages, want 2", len(pub.messages))
	}
	if len(updates.created) != 2 {
		t.Fatalf("opened %d pending updates, want 2", len(updates.created))
	}
	for _, u := range updates.created {
		if u.RespondedAt != nil {
			t.Errorf("prompt-opened update must be unanswered")
		}
		if u.Source != "slack_dm" {
			t.Errorf("source = %q, want slack_dm", u.Source)
		}
	}

	if got := users.nextDue["1"]; !got.Equal(now.Add(3 * 24 * time.Hour)) {
		t.Errorf("next due for cadence 3 = %v", got)
	}
	// Zero cadence falls back to the weekly default.
	if got := users.nextDue["2"]; !got.Equal(now.Add(7 * 24 * time.Hour)) {
		t.Errorf("next due for default cadence = %v", got)
	}
}

func TestSweepDueBuffersWhenUnreachable(t *testing.T) {
	users := &fakeUsers{due: []domain.User{{ID: "1", SlackUserID: "U1", DisplayName: "Ada"}}}
	updates := &fakeUpdates{}
	pub := &fakePublisher{fail: true}
	buf := &fakeBuffer{}
	uc := New(users, updates, pub, buf, nil)

	prompted, err := uc.SweepDue(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("SweepDue: %v", err)
	}
	if prompted != 1 {
		t.Fatalf("buffered prompt should still count, got %d", prompted)
	}
	if len(buf.buffered) != 1 || buf.buffered[0] != "U1" {
		t.Fatalf("prompt not buffered: %v", buf.buffered)
	}
}

func TestRemindSkipsAnsweredUpdates(t *testing.T) {
	respondedAt := time.Now()
	users := &fakeUsers{due: []domain.User{{ID: "1", SlackUserID: "U1", DisplayName: "Ada"}}}
	updates := &fakeUpdates{byID: map[string]*domain.Update{
		"answered": {ID: "answered", UserID: "1", RespondedAt: &respondedAt},
		"open":     {ID: "open", UserID: "1"},
	}}
	pub := &fakePublisher{}
	uc := New(users, updates, pub, nil, nil)

	if err := uc.Remind(context.Background(), "answered"); err != nil {
		t.Fatalf("Remind answered: %v", err)
	}
	if len(pub.messages) != 0 {
		t.Fatalf("answered update must not trigger a reminder")
	}

	if err := uc.Remind(context.Background(), "open"); err != nil {
		t.Fatalf("Remind open: %v", err)
	}
	if len(pub.messages) != 1 || pub.messages[0] != "U1" {
		t.Fatalf("reminder not delivered: %v", pub.messages)
	}
}
