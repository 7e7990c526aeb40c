package interaction

import (
	"context"
	"testing"

	"github.com/pulsebot/backend/blockkit"
	"github.com/pulsebot/backend/domain"
	"github.com/pulsebot/backend/repository"
	"github.com/pulsebot/backend/ui"
	"github.com/pulsebot/backend/usecase/updates"
)

type fakeHome struct {
	published []ui.State
}

func (f *fakeHome) PublishState(_ context.Context, _ string, state ui.State) error {
	f.published = append(f.published, state)
	return nil
}

type fakeUpdates struct {
	publishedTabs []ui.UpdatesTab
	submitted     []updates.Submission
}

func (f *fakeUpdates) PublishFor(_ context.Context, _ string, tab ui.UpdatesTab) error {
	f.publishedTabs = append(f.publishedTabs, tab)
	return nil
}

func (f *fakeUpdates) Submit(_ context.Context, sub updates.Submission) (*domain.Update, error) {
	f.submitted = append(f.submitted, sub)
	return &domain.Update{ID: "u1"}, nil
}

type fakeReminder struct {
	reminded []string
}

func (f *fakeReminder) Remind(_ context.Context, updateID string) error {
	f.reminded = append(f.reminded, updateID)
	return nil
}

type fakePublisher struct {
	opened []blockkit.View
}

func (f *fakePublisher) PublishView(context.Context, string, blockkit.View) error { return nil }
func (f *fakePublisher) OpenView(_ context.Context, _ string, view blockkit.View) error {
	f.opened = append(f.opened, view)
	return nil
}
func (f *fakePublisher) PostMessage(context.Context, string, string, []blockkit.Block) error {
	return nil
}

type fakeTasks struct {
	byID    map[string]*domain.Task
	status  map[string]domain.TaskStatus
	deleted []string
}

func (f *fakeTasks) GetByID(_ context.Context, id string) (*domain.Task, error) {
	if t, ok := f.byID[id]; ok {
		return t, nil
	}
	return nil, domain.ErrTaskNotFound
}
func (f *fakeTasks) List(context.Context, repository.TaskFilter) ([]domain.Task, error) {
	return nil, nil
}
func (f *fakeTasks) Create(_ context.Context, task *domain.Task) (*domain.Task, error) {
	task.ID = "t-new"
	if f.byID == nil {
		f.byID = map[string]*domain.Task{}
	}
	f.byID[task.ID] = task
	return task, nil
}
func (f *fakeTasks) UpdateStatus(_ context.Context, id string, status domain.TaskStatus) error {
	if f.status == nil {
		f.status = map[string]domain.TaskStatus{}
	}
	f.status[id] = status
	return nil
}
func (f *fakeTasks) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeRisks struct {
	byID   map[string]*domain.Risk
	status map[string]domain.RiskStatus
}

func (f *fakeRisks) ListByProject(context.Context, string) ([]domain.Risk, error) { return nil, nil }
func (f *fakeRisks) GetByID(_ context.Context, id string) (*domain.Risk, error) {
	if r, ok := f.byID[id]; ok {
		return r, nil
	}
	return nil, domain.ErrRiskNotFound
}
func (f *fakeRisks) Create(_ context.Context, risk *domain.Risk) (*domain.Risk, error) {
	risk.ID = "r-new"
	return risk, nil
}
func (f *fakeRisks) UpdateStatus(_ context.Context, id string, status domain.RiskStatus) error {
	if f.status == nil {
		f.status = map[string]domain.RiskStatus{}
	}
	f.status[id] = status
	return nil
}

type fakeProjects struct {
	created []*domain.Project
}

func (f *fakeProjects) List(context.Context) ([]domain.Project, error) { return nil, nil }
func (f *fakeProjects) GetByID(context.Context, string) (*domain.Project, error) {
	return nil, domain.ErrProjectNotFound
}
func (f *fakeProjects) Create(_ context.Context, project *domain.Project) (*domain.Project, error) {
	project.ID = "p-new"
	f.created = append(f.created, project)
	return project, nil
}

type fixture struct {
	uc        *UseCase
	home      *fakeHome
	updates   *fakeUpdates
	reminder  *fakeReminder
	publisher *fakePublisher
	tasks     *fakeTasks
	risks     *fakeRisks
	projects  *fakeProjects
}

func newFixture() *fixture {
	f := &fixture{
		home:      &fakeHome{},
		updates:   &fakeUpdates{},
		reminder:  &fakeReminder{},
		publisher: &fakePublisher{},
		tasks:     &fakeTasks{byID: map[string]*domain.Task{}},
		risks:     &fakeRisks{byID: map[string]*domain.Risk{}},
		projects:  &fakeProjects{},
	}
	f.uc = New(f.projects, f.tasks, f.risks, f.home, f.updates, f.reminder, f.publisher, nil)
	return f
}

func TestHandleOpenProject(t *testing.T) {
	f := newFixture()

	err := f.uc.Handle(context.Background(), Input{
		SlackUserID: "U1",
		ActionID:    "nav_open_p42",
		Metadata:    `{"selectedProjectId":"p1","activeTab":"risks"}`,
	})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}

	if len(f.home.published) != 1 {
		t.Fatalf("published %d states, want 1", len(f.home.published))
	}
	got := f.home.published[0]
	if got.SelectedProjectID != "p42" {
		t.Errorf("selected project = %q, want p42", got.SelectedProjectID)
	}
	if got.ActiveTab != "summary" {
		t.Errorf("active tab = %q, want summary after switching project", got.ActiveTab)
	}
}

func TestHandleSelectTabRoutesFamilies(t *testing.T) {
	f := newFixture()

	if err := f.uc.Handle(context.Background(), Input{
		SlackUserID: "U1",
		ActionID:    "tab_risks",
		Metadata:    `{"selectedProjectId":"p1"}`,
	}); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if len(f.home.published) != 1 || f.home.published[0].ActiveTab != "risks" {
		t.Fatalf("home tab not published: %+v", f.home.published)
	}

	if err := f.uc.Handle(context.Background(), Input{
		SlackUserID: "U1",
		ActionID:    "tab_admin",
	}); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if len(f.updates.publishedTabs) != 1 || f.updates.publishedTabs[0] != ui.UpdatesTabAdmin {
		t.Fatalf("updates tab not routed: %+v", f.updates.publishedTabs)
	}
	if len(f.home.published) != 1 {
		t.Fatalf("updates tab leaked into home publishes")
	}
}

func TestHandleTaskMenu(t *testing.T) {
	f := newFixture()
	f.tasks.byID["t1"] = &domain.Task{ID: "t1", ProjectID: "p1", Status: domain.TaskToDo}

	if err := f.uc.Handle(context.Background(), Input{
		SlackUserID: "U1",
		ActionID:    "task_menu_t1",
		Value:       ui.MenuChangeStatus,
		Metadata:    `{"selectedProjectId":"p1","activeTab":"tasks"}`,
	}); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if f.tasks.status["t1"] != domain.TaskInProgress {
		t.Errorf("status = %q, want In Progress", f.tasks.status["t1"])
	}

	if err := f.uc.Handle(context.Background(), Input{
		SlackUserID: "U1",
		ActionID:    "task_menu_t1",
		Value:       ui.MenuArchive,
		Metadata:    `{"selectedProjectId":"p1","activeTab":"tasks"}`,
	}); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if len(f.tasks.deleted) != 1 || f.tasks.deleted[0] != "t1" {
		t.Errorf("archive did not delete the task: %v", f.tasks.deleted)
	}
	if len(f.home.published) != 2 {
		t.Errorf("each menu op should republish home, got %d", len(f.home.published))
	}
}

func TestHandleRiskClose(t *testing.T) {
	f := newFixture()
	f.risks.byID["r1"] = &domain.Risk{ID: "r1", ProjectID: "p1", Status: domain.RiskOpen}

	if err := f.uc.Handle(context.Background(), Input{
		SlackUserID: "U1",
		ActionID:    "risk_menu_r1",
		Value:       ui.MenuClose,
		Metadata:    `{"selectedProjectId":"p1","activeTab":"risks"}`,
	}); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if f.risks.status["r1"] != domain.RiskClosed {
		t.Errorf("status = %q, want Closed", f.risks.status["r1"])
	}
}

func TestHandleOpensModals(t *testing.T) {
	f := newFixture()

	cases := []struct {
		actionID string
		callback string
	}{
		{ui.ActionNewProject, ui.CallbackNewProject},
		{ui.ActionNewTask, ui.CallbackNewTask},
		{ui.ActionNewRisk, ui.CallbackNewRisk},
		{ui.ActionShareUpdate, ui.CallbackShareUpdate},
	}
	for _, tc := range cases {
		if err := f.uc.Handle(context.Background(), Input{
			SlackUserID: "U1",
			TriggerID:   "trig",
			ActionID:    tc.actionID,
			Metadata:    `{"selectedProjectId":"p1"}`,
		}); err != nil {
			t.Fatalf("Handle(%s): %v", tc.actionID, err)
		}
	}

	if len(f.publisher.opened) != len(cases) {
		t.Fatalf("opened %d modals, want %d", len(f.publisher.opened), len(cases))
	}
	for i, tc := range cases {
		if got := f.publisher.opened[i].CallbackID; got != tc.callback {
			t.Errorf("modal %d callback = %q, want %q", i, got, tc.callback)
		}
	}
}

func TestHandleCardReminder(t *testing.T) {
	f := newFixture()

	if err := f.uc.Handle(context.Background(), Input{
		SlackUserID: "U1",
		ActionID:    "card_action_remind_u7",
		Value:       "u7",
	}); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if len(f.reminder.reminded) != 1 || f.reminder.reminded[0] != "u7" {
		t.Fatalf("reminder not routed: %v", f.reminder.reminded)
	}
	if len(f.updates.publishedTabs) != 1 || f.updates.publishedTabs[0] != ui.UpdatesTabOverview {
		t.Fatalf("overview not refreshed after reminder")
	}
}

func TestHandleUnknownActionIsDropped(t *testing.T) {
	f := newFixture()

	if err := f.uc.Handle(context.Background(), Input{
		SlackUserID: "U1",
		ActionID:    "header_menu",
	}); err != nil {
		t.Fatalf("unknown action should not error: %v", err)
	}
	if len(f.home.published) != 0 || len(f.updates.publishedTabs) != 0 {
		t.Fatalf("unknown action must not publish anything")
	}
}

func TestSubmitNewTaskUsesMetadataProject(t *testing.T) {
	f := newFixture()

	meta := `{"selectedProjectId":"p9","activeTab":"tasks"}`
	if err := f.uc.SubmitNewTask(context.Background(), "U1", TaskForm{
		Title:    "Ship it",
		Priority: string(domain.PriorityHigh),
		Metadata: meta,
	}); err != nil {
		t.Fatalf("SubmitNewTask: %v", err)
	}

	created := f.tasks.byID["t-new"]
	if created == nil || created.ProjectID != "p9" {
		t.Fatalf("task not created under metadata project: %+v", created)
	}
	if created.Status != domain.TaskToDo {
		t.Errorf("new task status = %q, want To Do", created.Status)
	}
	if len(f.home.published) != 1 || f.home.published[0].ActiveTab != "tasks" {
		t.Fatalf("home not republished on tasks tab: %+v", f.home.published)
	}
}

func TestSubmitNewTaskRejectsMissingProject(t *testing.T) {
	f := newFixture()

	err := f.uc.SubmitNewTask(context.Background(), "U1", TaskForm{Title: "orphan"})
	if !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Fatalf("err = %v, want invalid payload", err)
	}
}

func TestSubmitUpdateRefreshesOverview(t *testing.T) {
	f := newFixture()

	if err := f.uc.SubmitUpdate(context.Background(), "U1", updates.Submission{
		Summary: "on track",
		RAG:     domain.RAGGreen,
	}); err != nil {
		t.Fatalf("SubmitUpdate: %v", err)
	}
	if len(f.updates.submitted) != 1 || f.updates.submitted[0].SlackUserID != "U1" {
		t.Fatalf("submission not recorded for submitter: %+v", f.updates.submitted)
	}
	if len(f.updates.publishedTabs) != 1 || f.updates.publishedTabs[0] != ui.UpdatesTabOverview {
		t.Fatalf("overview not refreshed after submission")
	}
}
