package ui

import (
	"fmt"

	"github.com/pulsebot/backend/blockkit"
	"github.com/pulsebot/backend/domain"
)

// HomeParams is the full parameter set of the project home view. Tasks and
// Risks are the collections already filtered to the selected project;
// filtering is a pure predicate performed by the caller's store.
type HomeParams struct {
	Projects        []domain.Project
	SelectedProject *domain.Project
	ActiveTab       Tab
	Tasks           []domain.Task
	Risks           []domain.Risk
}

// HomeView assembles the project home page: navigation, header, an optional
// tab bar (emitted only when a project is selected), and a body selected by
// the active tab. The produced view carries the encoded selection state as
// its opaque metadata token.
func HomeView(p HomeParams) blockkit.View {
	tab := p.ActiveTab
	if tab == "" {
		tab = TabSummary
	}

	var selectedID string
	if p.SelectedProject != nil {
		selectedID = p.SelectedProject.ID
	}

	blocks := Navigation(p.Projects, selectedID)
	blocks = append(blocks, homeHeader(p.SelectedProject)...)
	blocks = append(blocks, blockkit.Divider())

	if p.SelectedProject != nil {
		blocks = append(blocks, TabBar(tab), blockkit.Divider())
	}

	blocks = append(blocks, homeBody(p, tab)...)

	token := EncodeState(State{SelectedProjectID: selectedID, ActiveTab: string(tab)})
	return blockkit.HomeView(token, blocks)
}

func homeHeader(selected *domain.Project) []blockkit.Block {
	if selected == nil {
		return Header(HeaderParams{
			Icon:     IconDefault,
			Title:    "Project Tracker",
			Subtitle: "Select a project to see its summary, tasks and risks.",
		})
	}
	return Header(HeaderParams{
		Icon:     IconProject,
		Title:    selected.Name,
		Subtitle: selected.Description,
	})
}

func homeBody(p HomeParams, tab Tab) []blockkit.Block {
	if p.SelectedProject == nil {
		return []blockkit.Block{
			blockkit.Section("No project selected."),
			blockkit.Actions(blockkit.StyledButton(ActionNewProject, "New Project", "primary")),
		}
	}

	switch tab {
	case TabSummary:
		return summaryBody(p)
	case TabTasks:
		return tasksBody(p.Tasks)
	case TabRisks:
		return risksBody(p.Risks)
	default:
		// Unreachable for current tab values; kept for forward compatibility.
		return EmptyState(EmptyStateParams{
			Icon:  IconDefault,
			Title: "Nothing here yet",
			Hint:  "Pick a tab above to get started.",
			CTA:   domain.Action{ID: PrefixTab + string(TabSummary), Text: "Back to Summary"},
		})
	}
}

func summaryBody(p HomeParams) []blockkit.Block {
	description := p.SelectedProject.Description
	if description == "" {
		description = "_No description yet._"
	}
	return []blockkit.Block{
		blockkit.Section(description),
		blockkit.Context(fmt.Sprintf("Tasks: %d • Risks: %d", len(p.Tasks), len(p.Risks))),
	}
}

// tasksBody renders the tasks tab. The zero-task panel is an inline variant,
// intentionally not routed through EmptyState: it renders as a single section
// plus the header-row CTA already emitted above it.
func tasksBody(tasks []domain.Task) []blockkit.Block {
	blocks := []blockkit.Block{
		blockkit.SectionWith(fmt.Sprintf("%s *Tasks*", IconTask),
			blockkit.StyledButton(ActionNewTask, "New Task", "primary")),
		blockkit.Divider(),
	}
	if len(tasks) == 0 {
		return append(blocks, blockkit.Section("No tasks yet. Create the first one to get moving."))
	}
	return append(blocks, TaskList(tasks)...)
}

// risksBody mirrors tasksBody for risks, including the inline empty variant.
func risksBody(risks []domain.Risk) []blockkit.Block {
	blocks := []blockkit.Block{
		blockkit.SectionWith(fmt.Sprintf("%s *Risks*", IconRisk),
			blockkit.StyledButton(ActionNewRisk, "New Risk", "primary")),
		blockkit.Divider(),
	}
	if len(risks) == 0 {
		return append(blocks, blockkit.Section("No risks tracked. Add one if something threatens the plan."))
	}
	return append(blocks, RiskList(risks)...)
}
