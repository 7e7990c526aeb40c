package ui

import (
	"fmt"

	"github.com/pulsebot/backend/blockkit"
	"github.com/pulsebot/backend/domain"
)

// EmptyStateParams describes an empty-state panel. All fields are required.
type EmptyStateParams struct {
	Icon  string
	Title string
	Hint  string
	CTA   domain.Action
}

// EmptyState builds exactly two blocks: a section combining icon, title and
// hint, and an actions block with a single call-to-action button. The button
// defaults to the primary style when the action does not specify one.
func EmptyState(p EmptyStateParams) []blockkit.Block {
	style := p.CTA.Style
	if style == "" {
		style = "primary"
	}
	return []blockkit.Block{
		blockkit.Section(fmt.Sprintf("%s *%s*\n%s", p.Icon, p.Title, p.Hint)),
		blockkit.Actions(blockkit.StyledButton(p.CTA.ID, p.CTA.Text, style)),
	}
}
