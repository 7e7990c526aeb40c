package updates

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pulsebot/backend/blockkit"
	"github.com/pulsebot/backend/domain"
	"github.com/pulsebot/backend/repository"
	"github.com/pulsebot/backend/ui"
	"github.com/pulsebot/backend/usecase"
)

const recentUpdatesLimit = 50

// UseCase renders and publishes the team-updates home tab and records
// submitted progress updates.
type UseCase struct {
	updates   repository.UpdateRepository
	users     repository.UserRepository
	publisher usecase.Publisher
	buffer    usecase.DeliveryBuffer
	logger    *zap.Logger
}

func New(
	updates repository.UpdateRepository,
	users repository.UserRepository,
	publisher usecase.Publisher,
	buffer usecase.DeliveryBuffer,
	logger *zap.Logger,
) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		updates:   updates,
		users:     users,
		publisher: publisher,
		buffer:    buffer,
		logger:    logger,
	}
}

// Render composes the team-updates view for the given tab.
func (uc *UseCase) Render(ctx context.Context, tab ui.UpdatesTab) (blockkit.View, error) {
	records, err := uc.updates.List(ctx, repository.UpdateFilter{Limit: recentUpdatesLimit})
	if err != nil {
		return blockkit.View{}, err
	}

	names, err := uc.displayNames(ctx)
	if err != nil {
		return blockkit.View{}, err
	}

	cards := make([]domain.Card, 0, len(records))
	for _, u := range records {
		cards = append(cards, cardFromUpdate(u, names))
	}

	return ui.UpdatesHome(ui.UpdatesParams{Cards: cards, ActiveTab: tab}), nil
}

// PublishFor renders and publishes the team-updates tab for a user.
func (uc *UseCase) PublishFor(ctx context.Context, slackUserID string, tab ui.UpdatesTab) error {
	view, err := uc.Render(ctx, tab)
	if err != nil {
		return err
	}

	if err := uc.publisher.PublishView(ctx, slackUserID, view); err != nil {
		if uc.buffer != nil {
			if bufErr := uc.buffer.BufferPublish(ctx, slackUserID, view); bufErr != nil {
				uc.logger.Error("failed to buffer updates publish", zap.Error(bufErr))
				return err
			}
			uc.logger.Warn("updates publish buffered", zap.String("user", slackUserID), zap.Error(err))
			return nil
		}
		return err
	}
	return nil
}

// Submission carries the fields of a submitted progress update form.
type Submission struct {
	SlackUserID string
	Summary     string
	Blockers    string
	RAG         domain.RAG
}

// Submit records a progress update for the submitting user.
func (uc *UseCase) Submit(ctx context.Context, sub Submission) (*domain.Update, error) {
	user, err := uc.users.GetBySlackID(ctx, sub.SlackUserID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	update := &domain.Update{
		UserID:      user.ID,
		PromptedAt:  now,
		RespondedAt: &now,
		Summary:     sub.Summary,
		Blockers:    sub.Blockers,
		RAG:         sub.RAG,
		Source:      "slack_modal",
	}
	return uc.updates.Create(ctx, update)
}

func (uc *UseCase) displayNames(ctx context.Context) (map[string]string, error) {
	users, err := uc.users.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.DisplayName
	}
	return names, nil
}

// cardFromUpdate adapts a stored update into the card schema the updates
// builders render. Unanswered prompts surface as pending with a remind
// affordance.
func cardFromUpdate(u domain.Update, names map[string]string) domain.Card {
	owner := names[u.UserID]

	title := u.Summary
	if title == "" {
		if owner != "" {
			title = fmt.Sprintf("Update from %s", owner)
		} else {
			title = "Update"
		}
	}

	status := domain.CardPending
	date := u.PromptedAt.Format("Jan 2, 2006")
	if u.Answered() {
		status = domain.CardCompleted
		date = u.RespondedAt.Format("Jan 2, 2006")
		if u.RAG == domain.RAGRed {
			status = domain.CardPaused
		} else if u.RAG == domain.RAGAmber || u.RAG == domain.RAGGreen {
			status = domain.CardActive
		}
	}

	card := domain.Card{
		ID:       u.ID,
		Title:    title,
		Subtitle: u.Blockers,
		Meta: domain.CardMeta{
			Owner:  owner,
			Date:   date,
			Status: status,
		},
	}

	if !u.Answered() {
		card.Actions = []domain.Action{{
			ID:   "remind_" + u.ID,
			Text: "Send reminder",
			Confirm: &domain.ActionConfirm{
				Title: "Send reminder?",
				Text:  "The user will get another DM about this update.",
			},
		}}
	}
	return card
}
