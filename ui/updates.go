package ui

import (
	"fmt"

	"github.com/pulsebot/backend/blockkit"
	"github.com/pulsebot/backend/domain"
)

// overviewLimit caps how many cards the overview tab renders before
// truncating with a trailing note.
const overviewLimit = 5

// UpdatesParams is the parameter set of the team-updates home view.
type UpdatesParams struct {
	Cards     []domain.Card
	ActiveTab UpdatesTab
}

// UpdatesHome assembles the team-updates page: header, tab bar and a body
// selected by the active tab. Like HomeView it is a pure composition; the
// active tab rides along in the opaque state token.
func UpdatesHome(p UpdatesParams) blockkit.View {
	tab := p.ActiveTab
	if tab == "" {
		tab = UpdatesTabOverview
	}

	blocks := Header(HeaderParams{
		Icon:     IconUpdates,
		Title:    "Team Updates",
		Subtitle: "Latest activity across your workspace",
	})
	blocks = append(blocks, blockkit.Divider(), UpdatesTabBar(tab), blockkit.Divider())
	blocks = append(blocks, updatesBody(p.Cards, tab)...)

	token := EncodeState(State{ActiveTab: string(tab)})
	return blockkit.HomeView(token, blocks)
}

func updatesBody(cards []domain.Card, tab UpdatesTab) []blockkit.Block {
	switch tab {
	case UpdatesTabOverview:
		return overviewBody(cards)
	case UpdatesTabMyUpdates:
		return myUpdatesBody(cards)
	case UpdatesTabAdmin:
		return adminBody(cards)
	default:
		// Unreachable for current tab values; kept for forward compatibility.
		return EmptyState(EmptyStateParams{
			Icon:  IconInbox,
			Title: "Nothing here yet",
			Hint:  "Pick a tab above to get started.",
			CTA:   domain.Action{ID: PrefixTab + string(UpdatesTabOverview), Text: "Back to Overview"},
		})
	}
}

func overviewBody(cards []domain.Card) []blockkit.Block {
	if len(cards) == 0 {
		return EmptyState(EmptyStateParams{
			Icon:  IconInbox,
			Title: "No updates yet",
			Hint:  "Updates from your team will show up here.",
			CTA:   domain.Action{ID: ActionShareUpdate, Text: "Share an update"},
		})
	}

	visible := cards
	if len(visible) > overviewLimit {
		visible = visible[:overviewLimit]
	}

	blocks := CardList(visible)
	if remaining := len(cards) - len(visible); remaining > 0 {
		blocks = append(blocks, blockkit.Context(fmt.Sprintf("... and %d more updates", remaining)))
	}
	return blocks
}

// myUpdatesBody filters on the literal "me" owner sentinel. The sentinel is
// carried over from the original product behavior; real identity resolution
// is an open question for the product owner.
func myUpdatesBody(cards []domain.Card) []blockkit.Block {
	var mine []domain.Card
	for _, c := range cards {
		if c.Meta.Owner == "me" {
			mine = append(mine, c)
		}
	}

	if len(mine) == 0 {
		return EmptyState(EmptyStateParams{
			Icon:  IconInbox,
			Title: "You have no updates",
			Hint:  "Share your first update so the team knows where things stand.",
			CTA:   domain.Action{ID: ActionShareUpdate, Text: "Share an update"},
		})
	}
	return CardList(mine)
}

func adminBody(cards []domain.Card) []blockkit.Block {
	owners := make(map[string]struct{}, len(cards))
	pending := 0
	for _, c := range cards {
		if c.Meta.Owner != "" {
			owners[c.Meta.Owner] = struct{}{}
		}
		if c.Meta.Status == domain.CardPending {
			pending++
		}
	}

	stats := blockkit.Section(fmt.Sprintf(
		"*Admin Dashboard*\nTotal Updates: %d\nActive Users: %d\nPending Reviews: %d",
		len(cards), len(owners), pending,
	))
	stats.BlockID = BlockIDAdminStats

	return []blockkit.Block{
		stats,
		blockkit.Actions(
			blockkit.Button(ActionManageUsers, "Manage Users"),
			blockkit.Button(ActionSettings, "Settings"),
		),
	}
}
