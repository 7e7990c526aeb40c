package ui

import (
	"fmt"

	"github.com/pulsebot/backend/blockkit"
	"github.com/pulsebot/backend/domain"
)

// TaskCard renders one task: a section with title and status/priority
// annotation plus an overflow menu, followed by a context block with owner
// and due-date metadata. Absent optional fields are omitted, never rendered
// blank.
func TaskCard(t domain.Task) []blockkit.Block {
	text := fmt.Sprintf("*%s*\n%s %s · %s %s",
		t.Title,
		TaskStatusEmoji(t.Status), t.Status,
		TaskPriorityEmoji(t.Priority), t.Priority,
	)

	menu := blockkit.Overflow(PrefixTaskMenu+t.ID,
		blockkit.OverflowOption("Open", MenuOpen),
		blockkit.OverflowOption("Edit", MenuEdit),
		blockkit.OverflowOption("Change status", MenuChangeStatus),
		blockkit.OverflowOption("Archive", MenuArchive),
	)

	blocks := []blockkit.Block{blockkit.SectionWith(text, menu)}

	var meta []string
	if t.Owner != "" {
		meta = append(meta, fmt.Sprintf("%s %s", IconOwner, t.Owner))
	}
	if t.DueDate != nil {
		meta = append(meta, fmt.Sprintf("%s Due %s", IconCalendar, t.DueDate.Format("Jan 2, 2006")))
	}
	if len(meta) > 0 {
		blocks = append(blocks, blockkit.Context(meta...))
	}
	return blocks
}

// RiskCard renders one risk with its likelihood/impact grading and an
// overflow menu whose last operation closes rather than archives.
func RiskCard(r domain.Risk) []blockkit.Block {
	text := fmt.Sprintf("*%s*\n%s %s · Likelihood: %s · Impact: %s",
		r.Title, IconRisk, r.Status, r.Likelihood, r.Impact,
	)

	menu := blockkit.Overflow(PrefixRiskMenu+r.ID,
		blockkit.OverflowOption("Open", MenuOpen),
		blockkit.OverflowOption("Edit", MenuEdit),
		blockkit.OverflowOption("Change status", MenuChangeStatus),
		blockkit.OverflowOption("Close", MenuClose),
	)

	blocks := []blockkit.Block{blockkit.SectionWith(text, menu)}

	var meta []string
	if r.Owner != "" {
		meta = append(meta, fmt.Sprintf("%s %s", IconOwner, r.Owner))
	}
	if r.MitigationPlan != "" {
		meta = append(meta, fmt.Sprintf("🛡️ %s", r.MitigationPlan))
	}
	if len(meta) > 0 {
		blocks = append(blocks, blockkit.Context(meta...))
	}
	return blocks
}

// UpdateCard renders one update card: a section with the status glyph, title
// and optional subtitle; a context block when any metadata is present; and an
// explicit actions block when the card carries actions, one button per
// action in input order. A card with empty meta and no actions produces
// exactly one block.
func UpdateCard(c domain.Card) []blockkit.Block {
	text := fmt.Sprintf("%s *%s*", CardStatusEmoji(c.Meta.Status), c.Title)
	if c.Subtitle != "" {
		text += "\n" + c.Subtitle
	}

	blocks := []blockkit.Block{blockkit.Section(text)}

	var meta []string
	if c.Meta.Owner != "" {
		meta = append(meta, fmt.Sprintf("%s %s", IconOwner, c.Meta.Owner))
	}
	if c.Meta.Date != "" {
		meta = append(meta, fmt.Sprintf("%s %s", IconCalendar, c.Meta.Date))
	}
	if c.Meta.Status != "" {
		meta = append(meta, fmt.Sprintf("Status: %s", c.Meta.Status))
	}
	if len(meta) > 0 {
		blocks = append(blocks, blockkit.Context(meta...))
	}

	if len(c.Actions) > 0 {
		elements := make([]blockkit.Element, 0, len(c.Actions))
		for _, a := range c.Actions {
			btn := blockkit.Element{
				Type:     "button",
				ActionID: PrefixCardAction + a.ID,
				Text:     blockkit.Plain(a.Text),
				Value:    c.ID,
				Style:    a.Style,
			}
			if a.Confirm != nil {
				btn.Confirm = blockkit.NewConfirm(a.Confirm.Title, a.Confirm.Text)
			}
			elements = append(elements, btn)
		}
		blocks = append(blocks, blockkit.Actions(elements...))
	}

	return blocks
}
