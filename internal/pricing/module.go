package pricing

import (
	apphttp "movebroker_backend/internal/http"
	"movebroker_backend/platform/validator"
)

// Module wires the estimate HTTP routes.
type Module struct {
	handler *Handler
}

func NewModule(val *validator.Validator) *Module {
	return &Module{handler: NewHandler(val)}
}

func (m *Module) Name() string {
	return "pricing"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/estimates")
	group.POST("/preview", m.handler.Preview)
	group.POST("/final", m.handler.Final)
}

var _ apphttp.Module = (*Module)(nil)
