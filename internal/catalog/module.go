package catalog

import (
	apphttp "movebroker_backend/internal/http"
)

// Module wires the catalog HTTP routes.
type Module struct {
	handler *Handler
}

func NewModule() *Module {
	return &Module{handler: NewHandler()}
}

func (m *Module) Name() string {
	return "catalog"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/catalog")
	group.GET("/rooms", m.handler.ListRooms)
	group.GET("/rooms/:room/items", m.handler.ListRoomItems)
}

var _ apphttp.Module = (*Module)(nil)
