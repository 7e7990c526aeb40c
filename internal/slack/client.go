package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/pulsebot/backend/blockkit"
	"github.com/pulsebot/backend/domain"
)

// Config carries the credentials and endpoint for the platform Web API.
type Config struct {
	BaseURL  string
	BotToken string
	Timeout  time.Duration
}

// Client is a thin fasthttp wrapper around the platform Web API methods the
// service uses.
type Client struct {
	http    *fasthttp.Client
	baseURL string
	token   string
	timeout time.Duration
	logger  *zap.Logger
}

// NewClient builds a platform API client.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://slack.com/api"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{
		http:    &fasthttp.Client{Name: "pulsebot"},
		baseURL: cfg.BaseURL,
		token:   cfg.BotToken,
		timeout: cfg.Timeout,
		logger:  logger,
	}
}

type apiResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// PublishView publishes a home view for the given user (views.publish).
func (c *Client) PublishView(ctx context.Context, slackUserID string, view blockkit.View) error {
	payload := map[string]interface{}{
		"user_id": slackUserID,
		"view":    view,
	}
	return c.call(ctx, "views.publish", payload)
}

// OpenView opens a modal in response to an interaction (views.open).
func (c *Client) OpenView(ctx context.Context, triggerID string, view blockkit.View) error {
	payload := map[string]interface{}{
		"trigger_id": triggerID,
		"view":       view,
	}
	return c.call(ctx, "views.open", payload)
}

// PostMessage posts a message to a channel or DM (chat.postMessage).
func (c *Client) PostMessage(ctx context.Context, channel, text string, blocks []blockkit.Block) error {
	payload := map[string]interface{}{
		"channel": channel,
		"text":    text,
	}
	if len(blocks) > 0 {
		payload["blocks"] = blocks
	}
	return c.call(ctx, "chat.postMessage", payload)
}

func (c *Client) call(ctx context.Context, method string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fmt.Sprintf("%s/%s", c.baseURL, method))
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json; charset=utf-8")
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.SetBody(body)

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	if err := c.http.DoTimeout(req, resp, timeout); err != nil {
		return domain.WrapError(domain.ErrCodeUnavailable, fmt.Sprintf("%s request failed", method), err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return domain.NewError(domain.ErrCodeUnavailable, fmt.Sprintf("%s returned status %d", method, resp.StatusCode()))
	}

	var api apiResponse
	if err := json.Unmarshal(resp.Body(), &api); err != nil {
		return domain.WrapError(domain.ErrCodeUnavailable, fmt.Sprintf("%s returned malformed body", method), err)
	}
	if !api.OK {
		c.logger.Warn("platform api error", zap.String("method", method), zap.String("error", api.Error))
		return domain.NewError(domain.ErrCodeUnavailable, fmt.Sprintf("%s failed: %s", method, api.Error))
	}
	return nil
}
