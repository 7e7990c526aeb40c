package ui

import (
	"github.com/pulsebot/backend/blockkit"
	"github.com/pulsebot/backend/domain"
)

// Modal callback identifiers. Submissions echo these back so the router can
// pick the right handler.
const (
	CallbackNewTask     = "submit_new_task"
	CallbackNewProject  = "submit_new_project"
	CallbackNewRisk     = "submit_new_risk"
	CallbackShareUpdate = "submit_update"
)

// NewTaskModal builds the task creation form. The target project id rides in
// the modal's private metadata.
func NewTaskModal(projectID string) blockkit.View {
	view := blockkit.ModalView(CallbackNewTask, "New Task", []blockkit.Block{
		blockkit.Input("task_title", "Title", blockkit.TextInput("task_title_input", "What needs doing?", false), false),
		blockkit.Input("task_priority", "Priority", blockkit.StaticSelect("task_priority_input", "Pick a priority",
			blockkit.OverflowOption(string(domain.PriorityLow), string(domain.PriorityLow)),
			blockkit.OverflowOption(string(domain.PriorityMedium), string(domain.PriorityMedium)),
			blockkit.OverflowOption(string(domain.PriorityHigh), string(domain.PriorityHigh)),
			blockkit.OverflowOption(string(domain.PriorityCritical), string(domain.PriorityCritical)),
		), false),
		blockkit.Input("task_owner", "Owner", blockkit.TextInput("task_owner_input", "Who owns it?", false), true),
	})
	view.PrivateMetadata = EncodeState(State{SelectedProjectID: projectID, ActiveTab: string(TabTasks)})
	return view
}

// NewProjectModal builds the project creation form.
func NewProjectModal() blockkit.View {
	return blockkit.ModalView(CallbackNewProject, "New Project", []blockkit.Block{
		blockkit.Input("project_name", "Name", blockkit.TextInput("project_name_input", "Project name", false), false),
		blockkit.Input("project_description", "Description", blockkit.TextInput("project_description_input", "", true), true),
	})
}

// NewRiskModal builds the risk creation form. Like the task form, the target
// project id rides in private metadata.
func NewRiskModal(projectID string) blockkit.View {
	levels := []blockkit.Option{
		blockkit.OverflowOption(string(domain.LevelLow), string(domain.LevelLow)),
		blockkit.OverflowOption(string(domain.LevelMedium), string(domain.LevelMedium)),
		blockkit.OverflowOption(string(domain.LevelHigh), string(domain.LevelHigh)),
	}
	view := blockkit.ModalView(CallbackNewRisk, "New Risk", []blockkit.Block{
		blockkit.Input("risk_title", "Title", blockkit.TextInput("risk_title_input", "What could go wrong?", false), false),
		blockkit.Input("risk_likelihood", "Likelihood", blockkit.StaticSelect("risk_likelihood_input", "How likely?", levels...), false),
		blockkit.Input("risk_impact", "Impact", blockkit.StaticSelect("risk_impact_input", "How bad?",
			append(levels, blockkit.OverflowOption(string(domain.LevelCritical), string(domain.LevelCritical)))...,
		), false),
		blockkit.Input("risk_owner", "Owner", blockkit.TextInput("risk_owner_input", "Who watches it?", false), true),
		blockkit.Input("risk_mitigation", "Mitigation", blockkit.TextInput("risk_mitigation_input", "", true), true),
	})
	view.PrivateMetadata = EncodeState(State{SelectedProjectID: projectID, ActiveTab: string(TabRisks)})
	return view
}

// ShareUpdateModal builds the progress-update form used by cadence prompts.
func ShareUpdateModal() blockkit.View {
	return blockkit.ModalView(CallbackShareUpdate, "Share an Update", []blockkit.Block{
		blockkit.Input("update_summary", "Summary", blockkit.TextInput("update_summary_input", "What happened since last time?", true), false),
		blockkit.Input("update_blockers", "Blockers", blockkit.TextInput("update_blockers_input", "Anything in the way?", true), true),
		blockkit.Input("update_rag", "Health", blockkit.StaticSelect("update_rag_input", "Red / Amber / Green",
			blockkit.OverflowOption("🟢 Green", string(domain.RAGGreen)),
			blockkit.OverflowOption("🟡 Amber", string(domain.RAGAmber)),
			blockkit.OverflowOption("🔴 Red", string(domain.RAGRed)),
		), false),
	})
}

// PromptMessage builds the DM blocks for a cadence prompt.
func PromptMessage(displayName string) []blockkit.Block {
	return []blockkit.Block{
		blockkit.Section("👋 Hi " + displayName + ", it's time for your progress update."),
		blockkit.Actions(blockkit.StyledButton(ActionShareUpdate, "Share an update", "primary")),
	}
}
