package ui

import "github.com/pulsebot/backend/blockkit"

// Tab enumerates the project home tabs.
type Tab string

const (
	TabSummary Tab = "summary"
	TabTasks   Tab = "tasks"
	TabRisks   Tab = "risks"
)

// UpdatesTab enumerates the team-updates home tabs. The two tab families are
// independent enumerations and are deliberately not unified.
type UpdatesTab string

const (
	UpdatesTabOverview  UpdatesTab = "overview"
	UpdatesTabMyUpdates UpdatesTab = "my-updates"
	UpdatesTabAdmin     UpdatesTab = "admin"
)

var homeTabs = []struct {
	tab   Tab
	label string
}{
	{TabSummary, "Summary"},
	{TabTasks, "Tasks"},
	{TabRisks, "Risks"},
}

var updatesTabs = []struct {
	tab   UpdatesTab
	label string
}{
	{UpdatesTabOverview, "Overview"},
	{UpdatesTabMyUpdates, "My Updates"},
	{UpdatesTabAdmin, "Admin"},
}

// TabBar builds the project home tab bar. The active tab's button carries the
// primary style; all others are unstyled. Action ids are tab_<value> so the
// router recovers the selection from the identifier alone.
func TabBar(active Tab) blockkit.Block {
	elements := make([]blockkit.Element, 0, len(homeTabs))
	for _, t := range homeTabs {
		elements = append(elements, tabButton(string(t.tab), t.label, t.tab == active))
	}
	bar := blockkit.Actions(elements...)
	bar.BlockID = BlockIDTabBar
	return bar
}

// UpdatesTabBar builds the team-updates tab bar.
func UpdatesTabBar(active UpdatesTab) blockkit.Block {
	elements := make([]blockkit.Element, 0, len(updatesTabs))
	for _, t := range updatesTabs {
		elements = append(elements, tabButton(string(t.tab), t.label, t.tab == active))
	}
	bar := blockkit.Actions(elements...)
	bar.BlockID = BlockIDTabBar
	return bar
}

func tabButton(value, label string, active bool) blockkit.Element {
	if active {
		return blockkit.StyledButton(PrefixTab+value, label, "primary")
	}
	return blockkit.Button(PrefixTab+value, label)
}
