package catalog

import (
	"movebroker_backend/platform/apperr"
	"movebroker_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler exposes the read-only catalog endpoints.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// ListRooms handles GET /api/v1/catalog/rooms
func (h *Handler) ListRooms(c *gin.Context) {
	httpkit.OK(c, RoomListResponse{Rooms: Rooms()})
}

// ListRoomItems handles GET /api/v1/catalog/rooms/:room/items
func (h *Handler) ListRoomItems(c *gin.Context) {
	room := c.Param("room")
	items, ok := Items(room)
	if !ok {
		httpkit.HandleError(c, apperr.NotFound("unknown room category"))
		return
	}
	httpkit.OK(c, RoomItemsResponse{Room: room, Items: items})
}
