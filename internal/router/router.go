package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/pulsebot/backend/api/handler"
)

type Handlers struct {
	Events       *apiHandler.EventsHandler
	Interactions *apiHandler.InteractionsHandler
	Auth         *apiHandler.AuthHandler
	Admin        *apiHandler.AdminHandler
	Health       *apiHandler.HealthHandler
}

type Middleware func(fasthttp.RequestHandler) fasthttp.RequestHandler

// New wires the route table. Slack routes sit behind signature verification;
// the admin API sits behind JWT auth.
func New(handlers Handlers, verifySlack, requireAuth Middleware) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Slack routes
	r.GET("/slack/events", handlers.Events.Probe)
	r.POST("/slack/events", verifySlack(handlers.Events.Handle))
	r.POST("/slack/interactions", verifySlack(handlers.Interactions.Handle))

	// Auth routes
	r.POST("/api/v1/auth/login", handlers.Auth.Login)

	// Protected admin routes
	r.GET("/api/v1/admin/users", requireAuth(handlers.Admin.GetUsers))
	r.POST("/api/v1/admin/users", requireAuth(handlers.Admin.UpsertUser))
	r.GET("/api/v1/admin/updates", requireAuth(handlers.Admin.GetUpdates))
	r.POST("/api/v1/admin/users/{id}/prompt", requireAuth(handlers.Admin.PromptUser))

	return r
}
