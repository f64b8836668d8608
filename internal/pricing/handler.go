package pricing

import (
	"net/http"

	"movebroker_backend/internal/catalog"
	"movebroker_backend/platform/httpkit"
	"movebroker_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler exposes the estimate endpoints.
type Handler struct {
	val *validator.Validator
}

func NewHandler(val *validator.Validator) *Handler {
	return &Handler{val: val}
}

// Preview handles POST /api/v1/estimates/preview
func (h *Handler) Preview(c *gin.Context) {
	var req PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid preview request", err.Error())
		return
	}

	httpkit.OK(c, PreviewResponse{
		Estimate: PreviewEstimate(req.Size, req.HasVehicle, req.NeedsPacking),
	})
}

// Final handles POST /api/v1/estimates/final
func (h *Handler) Final(c *gin.Context) {
	var req FinalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid estimate request", err.Error())
		return
	}

	weight := catalog.TotalWeight(req.Items)
	volume := catalog.TotalVolume(req.Items)
	moveType := ClassifyMoveType(req.DistanceMiles)

	estimate := FinalEstimate(float64(weight), req.DistanceMiles, moveType, FinalOptions{
		HasPacking:  req.Options.HasPacking,
		HasVehicle:  req.Options.HasVehicle,
		VehicleType: req.Options.VehicleType,
	})

	httpkit.OK(c, FinalResponse{
		Estimate:    estimate,
		MoveType:    moveType,
		TotalWeight: weight,
		TotalVolume: volume,
		SizeLabel:   catalog.SizeLabel(weight),
	})
}
