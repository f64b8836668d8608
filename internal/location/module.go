package location

import (
	apphttp "movebroker_backend/internal/http"
	"movebroker_backend/platform/config"
	"movebroker_backend/platform/logger"
)

// Module wires the location lookup HTTP routes.
type Module struct {
	handler  *Handler
	resolver *Resolver
}

func NewModule(cfg config.LocationConfig, log *logger.Logger) *Module {
	resolver := NewResolver(cfg, log)
	return &Module{
		handler:  NewHandler(resolver),
		resolver: resolver,
	}
}

func (m *Module) Name() string {
	return "location"
}

// Resolver returns the shared resolver for other modules (the intake service
// resolves cities with it).
func (m *Module) Resolver() *Resolver {
	return m.resolver
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/locations")
	group.GET("/suggest", m.handler.Suggest)
	group.GET("/zip/:zip", m.handler.ResolveZip)
}

var _ apphttp.Module = (*Module)(nil)
