package pricing

import "movebroker_backend/internal/catalog"

// PreviewRequest carries the coarse answers collected during intake.
type PreviewRequest struct {
	Size         string `json:"size" validate:"required,oneof=studio 1br 2br 3br 4br office"`
	HasVehicle   bool   `json:"hasVehicle"`
	NeedsPacking bool   `json:"needsPacking"`
}

// PreviewResponse is the distance-blind preview range.
type PreviewResponse struct {
	Estimate Estimate `json:"estimate"`
}

// FinalOptionsRequest mirrors FinalOptions on the wire.
type FinalOptionsRequest struct {
	HasPacking  bool   `json:"hasPacking"`
	HasVehicle  bool   `json:"hasVehicle"`
	VehicleType string `json:"vehicleType" validate:"omitempty,oneof=motorcycle sedan suv truck"`
}

// FinalRequest carries a full inventory plus the resolved move distance.
// An empty inventory is valid: the estimate comes back zero.
type FinalRequest struct {
	Items         []catalog.InventoryItem `json:"items" validate:"dive"`
	DistanceMiles float64                 `json:"distanceMiles" validate:"min=0"`
	Options       FinalOptionsRequest     `json:"options"`
}

// FinalResponse is the inventory-based estimate with the aggregates that
// produced it.
type FinalResponse struct {
	Estimate    Estimate `json:"estimate"`
	MoveType    MoveType `json:"moveType"`
	TotalWeight int      `json:"totalWeight"`
	TotalVolume float64  `json:"totalVolume"`
	SizeLabel   string   `json:"sizeLabel"`
}
