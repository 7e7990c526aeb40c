package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/pulsebot/backend/api/transport"
	"github.com/pulsebot/backend/domain"
	"github.com/pulsebot/backend/pkg/httpcontext"
	"github.com/pulsebot/backend/repository"
	promptUC "github.com/pulsebot/backend/usecase/prompt"
)

// AdminHandler exposes the JWT-protected management API: enrolled users,
// recorded updates and manual prompt triggers.
type AdminHandler struct {
	baseHandler
	users   repository.UserRepository
	updates repository.UpdateRepository
	prompts *promptUC.UseCase
}

func NewAdminHandler(
	users repository.UserRepository,
	updates repository.UpdateRepository,
	prompts *promptUC.UseCase,
	adapter *httpcontext.Adapter,
	logger *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		baseHandler: newBaseHandler(adapter, logger),
		users:       users,
		updates:     updates,
		prompts:     prompts,
	}
}

// @Summary List tracked users
// @Tags admin
// @Router /api/v1/admin/users [get]
func (h *AdminHandler) GetUsers(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	users, err := h.users.List(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, users)
}

// @Summary Enroll or update a tracked user
// @Tags admin
// @Router /api/v1/admin/users [post]
func (h *AdminHandler) UpsertUser(ctx *fasthttp.RequestCtx) {
	var req transport.UpsertUserRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || req.SlackUserID == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	user := &domain.User{
		SlackUserID: req.SlackUserID,
		DisplayName: req.DisplayName,
		Email:       req.Email,
		Timezone:    req.Timezone,
		CadenceDays: req.CadenceDays,
		IsActive:    true,
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.users.Upsert(stdCtx, user); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, user)
}

// @Summary List recorded updates
// @Tags admin
// @Router /api/v1/admin/updates [get]
func (h *AdminHandler) GetUpdates(ctx *fasthttp.RequestCtx) {
	filter := repository.UpdateFilter{
		UserID: string(ctx.QueryArgs().Peek("user_id")),
		Limit:  parseInt(string(ctx.QueryArgs().Peek("limit")), 50),
		Offset: parseInt(string(ctx.QueryArgs().Peek("offset")), 0),
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	records, err := h.updates.List(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, records)
}

// @Summary Prompt one user now
// @Tags admin
// @Router /api/v1/admin/users/{id}/prompt [post]
func (h *AdminHandler) PromptUser(ctx *fasthttp.RequestCtx) {
	slackUserID, _ := ctx.UserValue("id").(string)
	if slackUserID == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing user id", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.prompts.PromptUser(stdCtx, slackUserID); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusAccepted, map[string]string{"prompted": slackUserID})
}

func parseInt(value string, fallback int) int {
	if v, err := strconv.Atoi(value); err == nil {
		return v
	}
	return fallback
}
