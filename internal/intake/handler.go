package intake

import (
	"net/http"

	"movebroker_backend/internal/lead"
	"movebroker_backend/platform/httpkit"
	"movebroker_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler exposes the intake session endpoints.
type Handler struct {
	service *Service
	val     *validator.Validator
}

func NewHandler(service *Service, val *validator.Validator) *Handler {
	return &Handler{service: service, val: val}
}

// Create handles POST /api/v1/intake/sessions
func (h *Handler) Create(c *gin.Context) {
	var req CreateSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httpkit.Error(c, http.StatusBadRequest, "invalid request body", nil)
			return
		}
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid session request", err.Error())
		return
	}

	id, state, err := h.service.CreateSession(c.Request.Context(), req.Flow, Seed{
		FromZip: req.FromZip,
		ToZip:   req.ToZip,
	})
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.Created(c, SessionResponse{SessionID: id, State: state})
}

// Get handles GET /api/v1/intake/sessions/:id
func (h *Handler) Get(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	state, err := h.service.GetSession(id)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, SessionResponse{SessionID: id, State: state})
}

// Answer handles POST /api/v1/intake/sessions/:id/answer
func (h *Handler) Answer(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid answer", err.Error())
		return
	}

	state, err := h.service.Answer(c.Request.Context(), id, Step(req.Step), req.Value)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, SessionResponse{SessionID: id, State: state})
}

// Back handles POST /api/v1/intake/sessions/:id/back
func (h *Handler) Back(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	state, err := h.service.GoBack(id)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, SessionResponse{SessionID: id, State: state})
}

// Complete handles POST /api/v1/intake/sessions/:id/complete
func (h *Handler) Complete(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req CompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid completion", err.Error())
		return
	}

	handoff, err := h.service.Complete(c.Request.Context(), id, lead.Intent(req.Intent))
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, CompleteResponse{SessionID: id, Handoff: handoff})
}

// Delete handles DELETE /api/v1/intake/sessions/:id
func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	if httpkit.HandleError(c, h.service.Teardown(id)) {
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid session id", nil)
		return uuid.Nil, false
	}
	return id, true
}
