package home

import (
	"context"

	"go.uber.org/zap"

	"github.com/pulsebot/backend/blockkit"
	"github.com/pulsebot/backend/domain"
	"github.com/pulsebot/backend/repository"
	"github.com/pulsebot/backend/ui"
	"github.com/pulsebot/backend/usecase"
)

// UseCase renders and publishes the project home tab. Rendering is pure; the
// use case supplies the domain reads and the publish path around it.
type UseCase struct {
	projects  repository.ProjectRepository
	tasks     repository.TaskRepository
	risks     repository.RiskRepository
	states    repository.ViewStateRepository
	publisher usecase.Publisher
	buffer    usecase.DeliveryBuffer
	logger    *zap.Logger
}

func New(
	projects repository.ProjectRepository,
	tasks repository.TaskRepository,
	risks repository.RiskRepository,
	states repository.ViewStateRepository,
	publisher usecase.Publisher,
	buffer usecase.DeliveryBuffer,
	logger *zap.Logger,
) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		projects:  projects,
		tasks:     tasks,
		risks:     risks,
		states:    states,
		publisher: publisher,
		buffer:    buffer,
		logger:    logger,
	}
}

// Render composes the home view for the given selection state.
func (uc *UseCase) Render(ctx context.Context, state ui.State) (blockkit.View, error) {
	projects, err := uc.projects.List(ctx)
	if err != nil {
		return blockkit.View{}, err
	}

	params := ui.HomeParams{
		Projects:  projects,
		ActiveTab: ui.Tab(state.ActiveTab),
	}

	if state.SelectedProjectID != "" {
		for i := range projects {
			if projects[i].ID == state.SelectedProjectID {
				params.SelectedProject = &projects[i]
				break
			}
		}
	}

	// A stale selection (deleted project) degrades to the unselected view.
	if params.SelectedProject != nil {
		tasks, err := uc.tasks.List(ctx, repository.TaskFilter{ProjectID: params.SelectedProject.ID})
		if err != nil {
			return blockkit.View{}, err
		}
		risks, err := uc.risks.ListByProject(ctx, params.SelectedProject.ID)
		if err != nil {
			return blockkit.View{}, err
		}
		params.Tasks = tasks
		params.Risks = risks
	}

	return ui.HomeView(params), nil
}

// PublishFor renders the home tab for a user from their cached selection and
// publishes it. Missing cache entries degrade to the default view.
func (uc *UseCase) PublishFor(ctx context.Context, slackUserID string) error {
	state, err := uc.states.Get(ctx, slackUserID)
	if err != nil && !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		uc.logger.Warn("view state lookup failed", zap.String("user", slackUserID), zap.Error(err))
	}
	return uc.PublishState(ctx, slackUserID, state)
}

// PublishState renders the given state, persists it as the user's current
// selection and publishes the view, buffering the delivery when the platform
// is unreachable.
func (uc *UseCase) PublishState(ctx context.Context, slackUserID string, state ui.State) error {
	view, err := uc.Render(ctx, state)
	if err != nil {
		return err
	}

	if err := uc.states.Save(ctx, slackUserID, state); err != nil {
		uc.logger.Warn("failed to cache view state", zap.String("user", slackUserID), zap.Error(err))
	}

	if err := uc.publisher.PublishView(ctx, slackUserID, view); err != nil {
		if uc.buffer != nil {
			if bufErr := uc.buffer.BufferPublish(ctx, slackUserID, view); bufErr != nil {
				uc.logger.Error("failed to buffer home publish", zap.Error(bufErr))
				return err
			}
			uc.logger.Warn("home publish buffered", zap.String("user", slackUserID), zap.Error(err))
			return nil
		}
		return err
	}
	return nil
}
