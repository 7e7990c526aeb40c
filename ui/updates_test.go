package ui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pulsebot/backend/blockkit"
	"github.com/pulsebot/backend/domain"
)

func makeCards(n int) []domain.Card {
	cards := make([]domain.Card, 0, n)
	for i := 0; i < n; i++ {
		cards = append(cards, domain.Card{
			ID:    fmt.Sprintf("c%d", i+1),
			Title: fmt.Sprintf("Update %d", i+1),
			Meta:  domain.CardMeta{Owner: fmt.Sprintf("U%d", i+1), Status: domain.CardActive},
		})
	}
	return cards
}

func TestOverviewTruncation(t *testing.T) {
	view := UpdatesHome(UpdatesParams{Cards: makeCards(7), ActiveTab: UpdatesTabOverview})

	rendered := 0
	for _, b := range view.Blocks {
		if b.Type == blockkit.TypeSection && b.Text != nil && strings.Contains(b.Text.Text, "Update ") {
			rendered++
		}
	}
	if rendered != 5 {
		t.Fatalf("overview rendered %d cards, want 5", rendered)
	}
	if !containsContextText(view.Blocks, "... and 2 more updates") {
		t.Fatalf("missing truncation note")
	}
}

func TestOverviewNoTruncationNoteWhenUnderLimit(t *testing.T) {
	view := UpdatesHome(UpdatesParams{Cards: makeCards(3), ActiveTab: UpdatesTabOverview})
	if containsContextText(view.Blocks, "more updates") {
		t.Fatalf("truncation note emitted for an untruncated list")
	}
}

func TestAdminStatsScenario(t *testing.T) {
	cards := []domain.Card{
		{ID: "c1", Title: "One", Meta: domain.CardMeta{Owner: "U1", Status: domain.CardActive}},
		{ID: "c2", Title: "Two", Meta: domain.CardMeta{Owner: "U2", Status: domain.CardPending}},
	}
	view := UpdatesHome(UpdatesParams{Cards: cards, ActiveTab: UpdatesTabAdmin})

	var stats *blockkit.Block
	for i := range view.Blocks {
		if view.Blocks[i].BlockID == BlockIDAdminStats {
			stats = &view.Blocks[i]
		}
	}
	if stats == nil {
		t.Fatalf("admin stats block missing")
	}
	for _, want := range []string{"Total Updates: 2", "Active Users: 2", "Pending Reviews: 1"} {
		if !strings.Contains(stats.Text.Text, want) {
			t.Errorf("admin stats missing %q in %q", want, stats.Text.Text)
		}
	}
}

func TestAdminManagementButtons(t *testing.T) {
	view := UpdatesHome(UpdatesParams{ActiveTab: UpdatesTabAdmin})
	found := map[string]bool{}
	for _, b := range view.Blocks {
		for _, e := range b.Elements {
			found[e.ActionID] = true
		}
	}
	if !found[ActionManageUsers] || !found[ActionSettings] {
		t.Fatalf("admin management buttons missing: %v", found)
	}
}

func TestMyUpdatesSentinelFilter(t *testing.T) {
	cards := []domain.Card{
		{ID: "c1", Title: "Mine", Meta: domain.CardMeta{Owner: "me"}},
		{ID: "c2", Title: "Theirs", Meta: domain.CardMeta{Owner: "U2"}},
		{ID: "c3", Title: "Also mine", Meta: domain.CardMeta{Owner: "me"}},
	}
	view := UpdatesHome(UpdatesParams{Cards: cards, ActiveTab: UpdatesTabMyUpdates})

	if !containsSectionText(view.Blocks, "Mine") || !containsSectionText(view.Blocks, "Also mine") {
		t.Fatalf("owned cards missing from my-updates tab")
	}
	if containsSectionText(view.Blocks, "Theirs") {
		t.Fatalf("foreign card leaked into my-updates tab")
	}
}

func TestUpdatesTabExclusivity(t *testing.T) {
	for _, tab := range []UpdatesTab{UpdatesTabOverview, UpdatesTabMyUpdates, UpdatesTabAdmin} {
		view := UpdatesHome(UpdatesParams{ActiveTab: tab})
		assertSingleActiveTab(t, view.Blocks, PrefixTab+string(tab))
	}
}

func TestUpdatesUnknownTabFallsBack(t *testing.T) {
	view := UpdatesHome(UpdatesParams{Cards: makeCards(2), ActiveTab: UpdatesTab("someday")})
	if !containsSectionText(view.Blocks, "Nothing here yet") {
		t.Fatalf("unknown tab did not render the generic empty state")
	}
}

func TestUpdatesHomeStateToken(t *testing.T) {
	view := UpdatesHome(UpdatesParams{ActiveTab: UpdatesTabMyUpdates})
	if got := DecodeState(view.PrivateMetadata).ActiveTab; got != "my-updates" {
		t.Fatalf("state token tab = %q, want my-updates", got)
	}
}
