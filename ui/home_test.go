package ui

import (
	"reflect"
	"strings"
	"testing"

	"github.com/pulsebot/backend/blockkit"
	"github.com/pulsebot/backend/domain"
)

func sampleProjects() []domain.Project {
	return []domain.Project{
		{ID: "p1", Name: "Apollo", Description: "Lunar program"},
		{ID: "p2", Name: "Gemini"},
	}
}

func TestHomeViewSummaryScenario(t *testing.T) {
	projects := sampleProjects()
	view := HomeView(HomeParams{
		Projects:        projects,
		SelectedProject: &projects[0],
		ActiveTab:       TabSummary,
	})

	if view.Type != "home" {
		t.Fatalf("view type = %q, want home", view.Type)
	}
	if got := DecodeState(view.PrivateMetadata); got != (State{SelectedProjectID: "p1", ActiveTab: "summary"}) {
		t.Fatalf("state token = %+v", got)
	}

	// Navigation carries both projects, p1 marked selected.
	var viewing, open int
	for _, b := range view.Blocks {
		if b.Accessory == nil || !strings.HasPrefix(b.Accessory.ActionID, PrefixNavOpen) {
			continue
		}
		switch b.Accessory.Text.Text {
		case "Viewing":
			viewing++
			if b.Accessory.ActionID != "nav_open_p1" {
				t.Errorf("selected marker on %q", b.Accessory.ActionID)
			}
		case "Open":
			open++
		}
	}
	if viewing != 1 || open != 1 {
		t.Fatalf("navigation marking wrong: viewing=%d open=%d", viewing, open)
	}

	assertSingleActiveTab(t, view.Blocks, "tab_summary")

	if !containsContextText(view.Blocks, "Tasks: 0 • Risks: 0") {
		t.Fatalf("summary counts context missing")
	}
}

func TestHomeViewNoProjectSelected(t *testing.T) {
	view := HomeView(HomeParams{Projects: sampleProjects()})

	for _, b := range view.Blocks {
		if b.BlockID == BlockIDTabBar {
			t.Fatalf("tab bar must be absent when no project is selected")
		}
	}

	if !containsSectionText(view.Blocks, "No project selected.") {
		t.Fatalf("missing no-project section")
	}
	if !containsButton(view.Blocks, ActionNewProject, "primary") {
		t.Fatalf("missing New Project call to action")
	}
}

func TestHomeViewTasksTabEmpty(t *testing.T) {
	projects := sampleProjects()
	view := HomeView(HomeParams{
		Projects:        projects,
		SelectedProject: &projects[0],
		ActiveTab:       TabTasks,
	})

	if !containsButton(view.Blocks, ActionNewTask, "primary") {
		t.Fatalf("tasks tab missing New Task action")
	}
	if !containsSectionText(view.Blocks, "No tasks yet. Create the first one to get moving.") {
		t.Fatalf("missing inline empty variant for tasks")
	}
}

func TestHomeViewRisksTab(t *testing.T) {
	projects := sampleProjects()
	risks := []domain.Risk{
		{ID: "r1", ProjectID: "p1", Title: "Scope creep", Likelihood: domain.LevelMedium, Impact: domain.LevelHigh, Status: domain.RiskOpen},
	}
	view := HomeView(HomeParams{
		Projects:        projects,
		SelectedProject: &projects[0],
		ActiveTab:       TabRisks,
		Risks:           risks,
	})

	assertSingleActiveTab(t, view.Blocks, "tab_risks")
	if !containsButton(view.Blocks, ActionNewRisk, "primary") {
		t.Fatalf("risks tab missing New Risk action")
	}

	found := false
	for _, b := range view.Blocks {
		if b.Accessory != nil && b.Accessory.ActionID == "risk_menu_r1" {
			found = true
		}
	}
	if !found {
		t.Fatalf("risk card missing from risks tab")
	}
}

func TestHomeViewDefaultsToSummary(t *testing.T) {
	projects := sampleProjects()
	view := HomeView(HomeParams{Projects: projects, SelectedProject: &projects[1]})
	if got := DecodeState(view.PrivateMetadata).ActiveTab; got != "summary" {
		t.Fatalf("default tab = %q, want summary", got)
	}
}

func TestHomeViewDeterminism(t *testing.T) {
	projects := sampleProjects()
	params := HomeParams{
		Projects:        projects,
		SelectedProject: &projects[0],
		ActiveTab:       TabTasks,
		Tasks: []domain.Task{
			{ID: "t1", ProjectID: "p1", Title: "Write docs", Status: domain.TaskToDo, Priority: domain.PriorityLow},
		},
	}
	if !reflect.DeepEqual(HomeView(params), HomeView(params)) {
		t.Fatalf("HomeView is not deterministic")
	}
}

func assertSingleActiveTab(t *testing.T, blocks []blockkit.Block, wantActionID string) {
	t.Helper()
	for _, b := range blocks {
		if b.BlockID != BlockIDTabBar {
			continue
		}
		primary := 0
		for _, e := range b.Elements {
			if e.Style == "primary" {
				primary++
				if e.ActionID != wantActionID {
					t.Errorf("active tab = %q, want %q", e.ActionID, wantActionID)
				}
			}
		}
		if primary != 1 {
			t.Errorf("tab bar has %d primary buttons, want exactly 1", primary)
		}
		return
	}
	t.Fatalf("tab bar not found")
}

func containsSectionText(blocks []blockkit.Block, text string) bool {
	for _, b := range blocks {
		if b.Type == blockkit.TypeSection && b.Text != nil && strings.Contains(b.Text.Text, text) {
			return true
		}
	}
	return false
}

func containsContextText(blocks []blockkit.Block, text string) bool {
	for _, b := range blocks {
		if b.Type != blockkit.TypeContext {
			continue
		}
		for _, e := range b.Elements {
			if e.Text != nil && strings.Contains(e.Text.Text, text) {
				return true
			}
		}
	}
	return false
}

func containsButton(blocks []blockkit.Block, actionID, style string) bool {
	for _, b := range blocks {
		for _, e := range b.Elements {
			if e.ActionID == actionID && e.Style == style {
				return true
			}
		}
	}
	return false
}
