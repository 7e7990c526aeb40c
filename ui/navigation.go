package ui

import (
	"fmt"

	"github.com/pulsebot/backend/blockkit"
	"github.com/pulsebot/backend/domain"
)

// Navigation builds the project list: a "Projects" label, one row per project
// in input order, and a trailing divider. The selected project is marked with
// a different leading glyph and button label; the marking is presentational
// only.
func Navigation(projects []domain.Project, selectedID string) []blockkit.Block {
	blocks := make([]blockkit.Block, 0, len(projects)+2)

	label := blockkit.Context(fmt.Sprintf("%s *Projects*", IconProject))
	label.BlockID = BlockIDNavigation
	blocks = append(blocks, label)

	for _, p := range projects {
		actionID := PrefixNavOpen + p.ID
		if p.ID == selectedID {
			blocks = append(blocks, blockkit.SectionWith(
				fmt.Sprintf("▸ *%s*", p.Name),
				blockkit.StyledButton(actionID, "Viewing", "primary"),
			))
			continue
		}
		blocks = append(blocks, blockkit.SectionWith(
			fmt.Sprintf("• %s", p.Name),
			blockkit.Button(actionID, "Open"),
		))
	}

	return append(blocks, blockkit.Divider())
}
