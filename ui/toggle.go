package ui

import "github.com/pulsebot/backend/blockkit"

// ToggleParams describes a collapsible region. Both views are pre-built block
// sequences supplied by the caller; the builder holds no state of its own.
type ToggleParams struct {
	ID            string
	IsExpanded    bool
	CollapsedView []blockkit.Block
	ExpandedView  []blockkit.Block
}

// Toggle builds an actions block with a single expand/collapse button
// followed by the selected view verbatim. The next IsExpanded value is the
// caller's to thread through the round trip.
func Toggle(p ToggleParams) []blockkit.Block {
	label := "▽ Expand"
	view := p.CollapsedView
	if p.IsExpanded {
		label = "△ Collapse"
		view = p.ExpandedView
	}

	blocks := []blockkit.Block{
		blockkit.Actions(blockkit.Button(PrefixToggle+p.ID, label)),
	}
	return append(blocks, view...)
}
