package interaction

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/pulsebot/backend/domain"
	"github.com/pulsebot/backend/repository"
	"github.com/pulsebot/backend/ui"
	"github.com/pulsebot/backend/usecase"
	"github.com/pulsebot/backend/usecase/updates"
)

// HomePublisher re-renders and publishes the project home for a user.
type HomePublisher interface {
	PublishState(ctx context.Context, slackUserID string, state ui.State) error
}

// UpdatesPublisher re-renders the team-updates surface and records submitted
// progress updates.
type UpdatesPublisher interface {
	PublishFor(ctx context.Context, slackUserID string, tab ui.UpdatesTab) error
	Submit(ctx context.Context, sub updates.Submission) (*domain.Update, error)
}

// Reminder re-sends a cadence prompt for an unanswered update.
type Reminder interface {
	Remind(ctx context.Context, updateID string) error
}

// UseCase routes inbound block actions and view submissions to the right
// mutation and re-publish path.
type UseCase struct {
	projects  repository.ProjectRepository
	tasks     repository.TaskRepository
	risks     repository.RiskRepository
	home      HomePublisher
	updates   UpdatesPublisher
	reminder  Reminder
	publisher usecase.Publisher
	logger    *zap.Logger
}

func New(
	projects repository.ProjectRepository,
	tasks repository.TaskRepository,
	risks repository.RiskRepository,
	home HomePublisher,
	updatesPub UpdatesPublisher,
	reminder Reminder,
	publisher usecase.Publisher,
	logger *zap.Logger,
) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		projects:  projects,
		tasks:     tasks,
		risks:     risks,
		home:      home,
		updates:   updatesPub,
		reminder:  reminder,
		publisher: publisher,
		logger:    logger,
	}
}

// Input is one block action from an interactivity payload.
type Input struct {
	SlackUserID string
	TriggerID   string
	ActionID    string
	Value       string
	// Metadata is the private_metadata of the view the action came from.
	Metadata string
}

// Handle decodes the view state, recovers the intent behind the action id and
// executes it. Unknown actions are logged and dropped rather than failed so a
// stray button never breaks the whole payload.
func (uc *UseCase) Handle(ctx context.Context, in Input) error {
	state := ui.DecodeState(in.Metadata)

	switch intent := ui.ParseAction(in.ActionID, in.Value).(type) {
	case ui.OpenProjectIntent:
		state.SelectedProjectID = intent.ProjectID
		state.ActiveTab = string(ui.TabSummary)
		return uc.home.PublishState(ctx, in.SlackUserID, state)

	case ui.SelectTabIntent:
		if isUpdatesTab(intent.Tab) {
			return uc.updates.PublishFor(ctx, in.SlackUserID, ui.UpdatesTab(intent.Tab))
		}
		state.ActiveTab = intent.Tab
		return uc.home.PublishState(ctx, in.SlackUserID, state)

	case ui.TaskMenuIntent:
		return uc.handleTaskMenu(ctx, in.SlackUserID, state, intent)

	case ui.RiskMenuIntent:
		return uc.handleRiskMenu(ctx, in.SlackUserID, state, intent)

	case ui.CardActionIntent:
		return uc.handleCardAction(ctx, in.SlackUserID, intent)

	case ui.ToggleIntent:
		// Expansion is ephemeral; a republish collapses the region again.
		uc.logger.Debug("toggle action", zap.String("id", intent.ID))
		return uc.home.PublishState(ctx, in.SlackUserID, state)

	case ui.NewProjectIntent:
		return uc.publisher.OpenView(ctx, in.TriggerID, ui.NewProjectModal())

	case ui.NewTaskIntent:
		return uc.publisher.OpenView(ctx, in.TriggerID, ui.NewTaskModal(state.SelectedProjectID))

	case ui.NewRiskIntent:
		return uc.publisher.OpenView(ctx, in.TriggerID, ui.NewRiskModal(state.SelectedProjectID))

	case ui.ShareUpdateIntent:
		return uc.publisher.OpenView(ctx, in.TriggerID, ui.ShareUpdateModal())

	case ui.UnknownIntent:
		uc.logger.Warn("unrecognized action", zap.String("action_id", intent.ActionID))
		return nil
	}
	return nil
}

func (uc *UseCase) handleTaskMenu(ctx context.Context, slackUserID string, state ui.State, intent ui.TaskMenuIntent) error {
	switch intent.Op {
	case ui.MenuOpen:
		task, err := uc.tasks.GetByID(ctx, intent.TaskID)
		if err != nil {
			return err
		}
		state.SelectedProjectID = task.ProjectID
		state.ActiveTab = string(ui.TabTasks)

	case ui.MenuEdit:
		// Editing reuses the creation form for now; fields are not prefilled.
		uc.logger.Info("task edit requested", zap.String("task_id", intent.TaskID))

	case ui.MenuChangeStatus:
		task, err := uc.tasks.GetByID(ctx, intent.TaskID)
		if err != nil {
			return err
		}
		if err := uc.tasks.UpdateStatus(ctx, intent.TaskID, nextTaskStatus(task.Status)); err != nil {
			return err
		}

	case ui.MenuArchive:
		if err := uc.tasks.Delete(ctx, intent.TaskID); err != nil {
			return err
		}

	default:
		uc.logger.Warn("unrecognized task menu op", zap.String("op", intent.Op))
	}
	return uc.home.PublishState(ctx, slackUserID, state)
}

func (uc *UseCase) handleRiskMenu(ctx context.Context, slackUserID string, state ui.State, intent ui.RiskMenuIntent) error {
	switch intent.Op {
	case ui.MenuOpen:
		risk, err := uc.risks.GetByID(ctx, intent.RiskID)
		if err != nil {
			return err
		}
		state.SelectedProjectID = risk.ProjectID
		state.ActiveTab = string(ui.TabRisks)

	case ui.MenuEdit:
		uc.logger.Info("risk edit requested", zap.String("risk_id", intent.RiskID))

	case ui.MenuChangeStatus:
		risk, err := uc.risks.GetByID(ctx, intent.RiskID)
		if err != nil {
			return err
		}
		if err := uc.risks.UpdateStatus(ctx, intent.RiskID, nextRiskStatus(risk.Status)); err != nil {
			return err
		}

	case ui.MenuClose:
		if err := uc.risks.UpdateStatus(ctx, intent.RiskID, domain.RiskClosed); err != nil {
			return err
		}

	default:
		uc.logger.Warn("unrecognized risk menu op", zap.String("op", intent.Op))
	}
	return uc.home.PublishState(ctx, slackUserID, state)
}

func (uc *UseCase) handleCardAction(ctx context.Context, slackUserID string, intent ui.CardActionIntent) error {
	if strings.HasPrefix(intent.ActionID, "remind_") {
		if err := uc.reminder.Remind(ctx, intent.CardID); err != nil {
			return err
		}
		return uc.updates.PublishFor(ctx, slackUserID, ui.UpdatesTabOverview)
	}
	uc.logger.Warn("unrecognized card action", zap.String("action_id", intent.ActionID))
	return nil
}

// ProjectForm carries the fields of a submitted project creation modal.
type ProjectForm struct {
	Name        string
	Description string
}

// SubmitNewProject creates the project and republishes home with the new
// project selected.
func (uc *UseCase) SubmitNewProject(ctx context.Context, slackUserID string, form ProjectForm) error {
	if form.Name == "" {
		return domain.ErrInvalidPayload
	}
	created, err := uc.projects.Create(ctx, &domain.Project{
		Name:        form.Name,
		Description: form.Description,
	})
	if err != nil {
		return err
	}
	return uc.home.PublishState(ctx, slackUserID, ui.State{
		SelectedProjectID: created.ID,
		ActiveTab:         string(ui.TabSummary),
	})
}

// TaskForm carries the fields of a submitted task creation modal.
type TaskForm struct {
	Title    string
	Priority string
	Owner    string
	// Metadata is the modal's private_metadata carrying the target project.
	Metadata string
}

func (uc *UseCase) SubmitNewTask(ctx context.Context, slackUserID string, form TaskForm) error {
	state := ui.DecodeState(form.Metadata)
	if form.Title == "" || state.SelectedProjectID == "" {
		return domain.ErrInvalidPayload
	}
	if _, err := uc.tasks.Create(ctx, &domain.Task{
		ProjectID: state.SelectedProjectID,
		Title:     form.Title,
		Status:    domain.TaskToDo,
		Priority:  domain.TaskPriority(form.Priority),
		Owner:     form.Owner,
	}); err != nil {
		return err
	}
	state.ActiveTab = string(ui.TabTasks)
	return uc.home.PublishState(ctx, slackUserID, state)
}

// RiskForm carries the fields of a submitted risk creation modal.
type RiskForm struct {
	Title      string
	Likelihood string
	Impact     string
	Owner      string
	Mitigation string
	Metadata   string
}

func (uc *UseCase) SubmitNewRisk(ctx context.Context, slackUserID string, form RiskForm) error {
	state := ui.DecodeState(form.Metadata)
	if form.Title == "" || state.SelectedProjectID == "" {
		return domain.ErrInvalidPayload
	}
	if _, err := uc.risks.Create(ctx, &domain.Risk{
		ProjectID:      state.SelectedProjectID,
		Title:          form.Title,
		Likelihood:     domain.RiskLevel(form.Likelihood),
		Impact:         domain.RiskLevel(form.Impact),
		Owner:          form.Owner,
		Status:         domain.RiskOpen,
		MitigationPlan: form.Mitigation,
	}); err != nil {
		return err
	}
	state.ActiveTab = string(ui.TabRisks)
	return uc.home.PublishState(ctx, slackUserID, state)
}

// SubmitUpdate records a progress update and refreshes the submitter's
// team-updates view.
func (uc *UseCase) SubmitUpdate(ctx context.Context, slackUserID string, sub updates.Submission) error {
	sub.SlackUserID = slackUserID
	if _, err := uc.updates.Submit(ctx, sub); err != nil {
		return err
	}
	return uc.updates.PublishFor(ctx, slackUserID, ui.UpdatesTabOverview)
}

func isUpdatesTab(tab string) bool {
	switch ui.UpdatesTab(tab) {
	case ui.UpdatesTabOverview, ui.UpdatesTabMyUpdates, ui.UpdatesTabAdmin:
		return true
	}
	return false
}

// nextTaskStatus advances a task through its working cycle. Done wraps back
// to To Do so the menu entry is never a dead end.
func nextTaskStatus(s domain.TaskStatus) domain.TaskStatus {
	switch s {
	case domain.TaskToDo:
		return domain.TaskInProgress
	case domain.TaskInProgress:
		return domain.TaskDone
	case domain.TaskBlocked:
		return domain.TaskInProgress
	default:
		return domain.TaskToDo
	}
}

func nextRiskStatus(s domain.RiskStatus) domain.RiskStatus {
	if s == domain.RiskOpen {
		return domain.RiskMitigated
	}
	return domain.RiskOpen
}
