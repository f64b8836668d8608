// Package intake implements the multi-step lead-capture conversation: a
// per-session state machine walking a configurable step policy, with
// simulated narration, back-navigation and a single completion handoff.
package intake

import (
	apphttp "movebroker_backend/internal/http"
	"movebroker_backend/platform/validator"
)

// Module wires the intake session HTTP routes.
type Module struct {
	service *Service
	handler *Handler
}

func NewModule(service *Service, val *validator.Validator) *Module {
	return &Module{
		service: service,
		handler: NewHandler(service, val),
	}
}

func (m *Module) Name() string {
	return "intake"
}

// Close tears down all live sessions.
func (m *Module) Close() {
	m.service.Close()
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/intake", ctx.IntakeRateLimiter.RateLimit())
	group.POST("/sessions", m.handler.Create)
	group.GET("/sessions/:id", m.handler.Get)
	group.DELETE("/sessions/:id", m.handler.Delete)
	group.POST("/sessions/:id/answer", m.handler.Answer)
	group.POST("/sessions/:id/back", m.handler.Back)
	group.POST("/sessions/:id/complete", m.handler.Complete)
}

var _ apphttp.Module = (*Module)(nil)
