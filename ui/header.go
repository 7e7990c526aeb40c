package ui

import (
	"fmt"

	"github.com/pulsebot/backend/blockkit"
	"github.com/pulsebot/backend/domain"
)

// HeaderParams describes a page header. Only Title is required.
type HeaderParams struct {
	Icon     string
	Title    string
	Subtitle string
	Actions  []domain.Action
}

// Header builds the page header: a section interpolating icon, title and
// subtitle, with an overflow accessory when actions are supplied. Missing
// optional fields are omitted cleanly.
func Header(p HeaderParams) []blockkit.Block {
	icon := p.Icon
	if icon == "" {
		icon = IconDefault
	}

	text := fmt.Sprintf("%s *%s*", icon, p.Title)
	if p.Subtitle != "" {
		text += "\n" + p.Subtitle
	}

	if len(p.Actions) == 0 {
		return []blockkit.Block{blockkit.Section(text)}
	}

	options := make([]blockkit.Option, 0, len(p.Actions))
	for _, a := range p.Actions {
		options = append(options, blockkit.OverflowOption(a.Text, a.ID))
	}
	return []blockkit.Block{
		blockkit.SectionWith(text, blockkit.Overflow(ActionHeaderMenu, options...)),
	}
}
