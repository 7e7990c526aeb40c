package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/pulsebot/backend/api/transport"
	"github.com/pulsebot/backend/pkg/httpcontext"
	homeUC "github.com/pulsebot/backend/usecase/home"
)

type EventsHandler struct {
	baseHandler
	home *homeUC.UseCase
}

func NewEventsHandler(home *homeUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *EventsHandler {
	return &EventsHandler{
		baseHandler: newBaseHandler(adapter, logger),
		home:        home,
	}
}

// Probe answers platform reachability checks on GET.
func (h *EventsHandler) Probe(ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("text/plain; charset=utf-8")
	ctx.SetStatusCode(http.StatusOK)
	ctx.SetBodyString("ok")
}

// Handle receives Events API callbacks. The url_verification handshake is
// answered with the raw challenge as plain text; event callbacks are
// acknowledged immediately and acted on before the response is written.
func (h *EventsHandler) Handle(ctx *fasthttp.RequestCtx) {
	var envelope transport.EventEnvelope
	if err := json.Unmarshal(ctx.PostBody(), &envelope); err != nil {
		h.logger.Warn("malformed event payload", zap.Error(err))
		ctx.SetStatusCode(http.StatusBadRequest)
		return
	}

	switch envelope.Type {
	case "url_verification":
		ctx.SetContentType("text/plain; charset=utf-8")
		ctx.SetStatusCode(http.StatusOK)
		ctx.SetBodyString(envelope.Challenge)

	case "event_callback":
		h.handleEvent(ctx, envelope.Event)

	default:
		h.logger.Debug("ignored event envelope", zap.String("type", envelope.Type))
		ctx.SetStatusCode(http.StatusOK)
	}
}

func (h *EventsHandler) handleEvent(ctx *fasthttp.RequestCtx, event transport.Event) {
	switch event.Type {
	case "app_home_opened":
		if event.Tab != "" && event.Tab != "home" {
			ctx.SetStatusCode(http.StatusOK)
			return
		}
		stdCtx, cancel := h.requestContext(ctx)
		defer cancel()

		if err := h.home.PublishFor(stdCtx, event.User); err != nil {
			h.logger.Error("home publish failed",
				zap.String("user", event.User),
				zap.Error(err),
			)
		}
		ctx.SetStatusCode(http.StatusOK)

	default:
		h.logger.Debug("ignored event", zap.String("type", event.Type))
		ctx.SetStatusCode(http.StatusOK)
	}
}
