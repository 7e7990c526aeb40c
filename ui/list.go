package ui

import (
	"github.com/pulsebot/backend/blockkit"
	"github.com/pulsebot/backend/domain"
)

// TaskList fans tasks out into card blocks in input order, with a divider
// between consecutive records and never after the last.
func TaskList(tasks []domain.Task) []blockkit.Block {
	var blocks []blockkit.Block
	for i, t := range tasks {
		if i > 0 {
			blocks = append(blocks, blockkit.Divider())
		}
		blocks = append(blocks, TaskCard(t)...)
	}
	return blocks
}

// RiskList fans risks out into card blocks, dividers between records only.
func RiskList(risks []domain.Risk) []blockkit.Block {
	var blocks []blockkit.Block
	for i, r := range risks {
		if i > 0 {
			blocks = append(blocks, blockkit.Divider())
		}
		blocks = append(blocks, RiskCard(r)...)
	}
	return blocks
}

// CardList fans update cards out into blocks, dividers between records only.
func CardList(cards []domain.Card) []blockkit.Block {
	var blocks []blockkit.Block
	for i, c := range cards {
		if i > 0 {
			blocks = append(blocks, blockkit.Divider())
		}
		blocks = append(blocks, UpdateCard(c)...)
	}
	return blocks
}
