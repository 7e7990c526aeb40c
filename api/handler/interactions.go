package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/pulsebot/backend/api/transport"
	"github.com/pulsebot/backend/domain"
	"github.com/pulsebot/backend/pkg/httpcontext"
	"github.com/pulsebot/backend/ui"
	interactionUC "github.com/pulsebot/backend/usecase/interaction"
	"github.com/pulsebot/backend/usecase/updates"
)

type InteractionsHandler struct {
	baseHandler
	uc *interactionUC.UseCase
}

func NewInteractionsHandler(uc *interactionUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *InteractionsHandler {
	return &InteractionsHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// Handle receives interactivity callbacks. The payload arrives form encoded
// under the `payload` field; the platform expects a 200 regardless of what
// the actions do, so handler failures are logged, not surfaced.
func (h *InteractionsHandler) Handle(ctx *fasthttp.RequestCtx) {
	raw := ctx.PostArgs().Peek("payload")
	if len(raw) == 0 {
		ctx.SetStatusCode(http.StatusBadRequest)
		return
	}

	var payload transport.InteractionPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		h.logger.Warn("malformed interaction payload", zap.Error(err))
		ctx.SetStatusCode(http.StatusBadRequest)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	switch payload.Type {
	case "block_actions":
		h.handleActions(stdCtx, payload)
	case "view_submission":
		if err := h.handleSubmission(stdCtx, payload); err != nil {
			if domain.IsDomainError(err, domain.ErrCodeInvalid) {
				ctx.SetStatusCode(http.StatusBadRequest)
				return
			}
			h.logger.Error("view submission failed",
				zap.String("user", payload.User.ID),
				zap.Error(err),
			)
		}
	default:
		h.logger.Debug("ignored interaction", zap.String("type", payload.Type))
	}

	ctx.SetStatusCode(http.StatusOK)
}

func (h *InteractionsHandler) handleActions(ctx context.Context, payload transport.InteractionPayload) {
	metadata := ""
	if payload.View != nil {
		metadata = payload.View.PrivateMetadata
	}

	for _, action := range payload.Actions {
		err := h.uc.Handle(ctx, interactionUC.Input{
			SlackUserID: payload.User.ID,
			TriggerID:   payload.TriggerID,
			ActionID:    action.ActionID,
			Value:       action.EffectiveValue(),
			Metadata:    metadata,
		})
		if err != nil {
			h.logger.Error("block action failed",
				zap.String("user", payload.User.ID),
				zap.String("action_id", action.ActionID),
				zap.Error(err),
			)
		}
	}
}

func (h *InteractionsHandler) handleSubmission(ctx context.Context, payload transport.InteractionPayload) error {
	if payload.View == nil {
		return domain.ErrInvalidPayload
	}
	state := payload.View.State
	userID := payload.User.ID

	switch payload.View.CallbackID {
	case ui.CallbackNewProject:
		return h.uc.SubmitNewProject(ctx, userID, interactionUC.ProjectForm{
			Name:        state.Input("project_name"),
			Description: state.Input("project_description"),
		})

	case ui.CallbackNewTask:
		return h.uc.SubmitNewTask(ctx, userID, interactionUC.TaskForm{
			Title:    state.Input("task_title"),
			Priority: state.Input("task_priority"),
			Owner:    state.Input("task_owner"),
			Metadata: payload.View.PrivateMetadata,
		})

	case ui.CallbackNewRisk:
		return h.uc.SubmitNewRisk(ctx, userID, interactionUC.RiskForm{
			Title:      state.Input("risk_title"),
			Likelihood: state.Input("risk_likelihood"),
			Impact:     state.Input("risk_impact"),
			Owner:      state.Input("risk_owner"),
			Mitigation: state.Input("risk_mitigation"),
			Metadata:   payload.View.PrivateMetadata,
		})

	case ui.CallbackShareUpdate:
		return h.uc.SubmitUpdate(ctx, userID, updates.Submission{
			Summary:  state.Input("update_summary"),
			Blockers: state.Input("update_blockers"),
			RAG:      domain.RAG(state.Input("update_rag")),
		})
	}

	h.logger.Warn("unrecognized submission callback", zap.String("callback_id", payload.View.CallbackID))
	return nil
}
