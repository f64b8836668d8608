// Package pricing implements the two cost models of the funnel: a coarse
// preview estimate used during the intake conversation and a final estimate
// computed from aggregate inventory weight and distance.
package pricing

import (
	"math"

	"movebroker_backend/internal/catalog"
)

// MoveType classifies a move by distance.
type MoveType string

const (
	MoveTypeLocal        MoveType = "local"
	MoveTypeLongDistance MoveType = "long-distance"
)

// localDistanceMiles is the threshold below which a move bills hourly.
const localDistanceMiles = 50

// ClassifyMoveType returns local for distances under 50 miles.
func ClassifyMoveType(distanceMiles float64) MoveType {
	if distanceMiles < localDistanceMiles {
		return MoveTypeLocal
	}
	return MoveTypeLongDistance
}

// Estimate is a cost range in whole currency units. Min <= Max always, and
// both are zero exactly when the aggregate weight is zero.
type Estimate struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Home-size codes used across intake, pricing and the lead record.
const (
	SizeStudio = "studio"
	Size1BR    = "1br"
	Size2BR    = "2br"
	Size3BR    = "3br"
	Size4BR    = "4br"
	SizeOffice = "office"
	SizeUnset  = "unset"
)

// previewAnchors are the fixed base costs per home-size code.
var previewAnchors = map[string]float64{
	SizeStudio: 800,
	Size1BR:    1200,
	Size2BR:    2200,
	Size3BR:    3500,
	Size4BR:    5000,
	SizeOffice: 3000,
}

// KnownSize reports whether code is one of the six anchor sizes.
func KnownSize(code string) bool {
	_, ok := previewAnchors[code]
	return ok
}

const (
	previewVehicleSurcharge = 800
	previewPackingSurcharge = 600
)

// PreviewEstimate computes the fast, distance-blind estimate shown while the
// intake conversation is still running: size anchor plus flat add-ons,
// banded at +/-20%. An unknown size code yields a zero estimate.
func PreviewEstimate(size string, hasVehicle, needsPacking bool) Estimate {
	base, ok := previewAnchors[size]
	if !ok {
		return Estimate{}
	}
	if hasVehicle {
		base += previewVehicleSurcharge
	}
	if needsPacking {
		base += previewPackingSurcharge
	}
	return Estimate{
		Min: int(math.Round(base * 0.8)),
		Max: int(math.Round(base * 1.2)),
	}
}

// FinalOptions are the add-ons applied on top of the base final estimate.
type FinalOptions struct {
	HasPacking  bool
	HasVehicle  bool
	VehicleType string
}

// cwtBand is a per-hundredweight rate pair valid below UpTo miles.
type cwtBand struct {
	UpTo float64
	Min  float64
	Max  float64
}

// cwtBands are the long-distance tariff bands, strictly increasing in both
// distance and rate. The last band is open-ended.
var cwtBands = []cwtBand{
	{UpTo: 100, Min: 18, Max: 28},
	{UpTo: 250, Min: 22, Max: 35},
	{UpTo: 500, Min: 28, Max: 45},
	{UpTo: 1000, Min: 35, Max: 55},
	{UpTo: 1500, Min: 42, Max: 65},
	{UpTo: 2000, Min: 48, Max: 75},
	{UpTo: 2500, Min: 52, Max: 82},
}

var openEndedBand = cwtBand{Min: 58, Max: 90}

func bandForDistance(distanceMiles float64) cwtBand {
	for _, band := range cwtBands {
		if distanceMiles < band.UpTo {
			return band
		}
	}
	return openEndedBand
}

// Shipment floors and the fuel surcharge band for long-distance moves.
// The surcharge is a nominal 12% expressed over the same 0.8-1.2 band as the
// estimate itself.
const (
	shipmentFloorMin = 1500
	shipmentFloorMax = 2250
	fuelSurchargeMin = 1.096
	fuelSurchargeMax = 1.144
)

// Local hourly parameters. The constant term is a fixed one-hour travel
// surcharge at the same hourly bounds.
const (
	localLbsPerHour = 800
	localMinHours   = 2
	localRateMin    = 120
	localRateMax    = 200
)

// vehicleRates are transport cost ranges by vehicle type.
var vehicleRates = map[string]Estimate{
	"motorcycle": {Min: 300, Max: 700},
	"sedan":      {Min: 800, Max: 1500},
	"suv":        {Min: 1000, Max: 1800},
	"truck":      {Min: 1200, Max: 2200},
}

const defaultVehicleType = "sedan"

// FinalEstimate computes the binding-looking estimate from aggregate weight,
// distance and add-ons. The moveType is decided by the caller (see
// ClassifyMoveType); the engine only branches on it. Zero weight returns a
// zero estimate without error.
func FinalEstimate(weight, distanceMiles float64, moveType MoveType, opts FinalOptions) Estimate {
	if weight == 0 {
		return Estimate{}
	}

	var minCost, maxCost float64
	if moveType == MoveTypeLocal {
		hours := math.Max(localMinHours, math.Ceil(weight/localLbsPerHour))
		minCost = hours*localRateMin + localRateMin
		maxCost = hours*localRateMax + localRateMax
	} else {
		cwt := weight / 100
		band := bandForDistance(distanceMiles)
		minCost = cwt * band.Min
		maxCost = cwt * band.Max
		minCost = math.Max(minCost, shipmentFloorMin)
		maxCost = math.Max(maxCost, shipmentFloorMax)
		minCost *= fuelSurchargeMin
		maxCost *= fuelSurchargeMax
	}

	if opts.HasPacking {
		cubicFeet := weight / catalog.DensityFactor
		minCost += cubicFeet * 3
		maxCost += cubicFeet * 8
	}

	if opts.HasVehicle {
		rate, ok := vehicleRates[opts.VehicleType]
		if !ok {
			rate = vehicleRates[defaultVehicleType]
		}
		scale := math.Min(2, 1+distanceMiles/2000)
		minCost += float64(rate.Min) * scale
		maxCost += float64(rate.Max) * scale
	}

	return Estimate{
		Min: int(math.Round(minCost)),
		Max: int(math.Round(maxCost)),
	}
}
