package location

import (
	"net/http"

	"movebroker_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler exposes the location lookup endpoints.
type Handler struct {
	resolver *Resolver
}

func NewHandler(resolver *Resolver) *Handler {
	return &Handler{resolver: resolver}
}

// Suggest handles GET /api/v1/locations/suggest?q=...
func (h *Handler) Suggest(c *gin.Context) {
	var req SuggestRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "query 'q' is required", nil)
		return
	}

	httpkit.OK(c, SuggestResponse{
		Suggestions: h.resolver.Suggest(c.Request.Context(), req.Query),
	})
}

// ResolveZip handles GET /api/v1/locations/zip/:zip
// An unresolvable ZIP is not an error: the label is simply empty.
func (h *Handler) ResolveZip(c *gin.Context) {
	zip := c.Param("zip")
	label := h.resolver.ResolveZip(c.Request.Context(), zip)
	httpkit.OK(c, ResolveResponse{
		Zip:      zip,
		Label:    label,
		Resolved: label != "",
	})
}
