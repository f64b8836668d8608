package lead

import (
	"net/http"
	"strconv"

	"movebroker_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler exposes the lead slot and the archive read endpoints.
type Handler struct {
	store *Store
	repo  *Repository
}

func NewHandler(store *Store, repo *Repository) *Handler {
	return &Handler{store: store, repo: repo}
}

// Draft handles GET /api/v1/leads/draft/:sessionID. Reading consumes the
// slot, so a page refresh after a successful read starts blank.
func (h *Handler) Draft(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if _, err := uuid.Parse(sessionID); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid session id", nil)
		return
	}

	httpkit.OK(c, DraftResponse{Draft: h.store.ReadOnce(c.Request.Context(), sessionID)})
}

// Recent handles GET /api/v1/leads/recent. Only registered when the
// archive database is configured.
func (h *Handler) Recent(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 200 {
			httpkit.Error(c, http.StatusBadRequest, "limit must be between 1 and 200", nil)
			return
		}
		limit = parsed
	}

	leads, err := h.repo.ListRecent(c.Request.Context(), limit)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, RecentResponse{Leads: leads, Count: len(leads)})
}
