package catalog

import "math"

// TotalWeight sums quantity × weight-each over the inventory.
func TotalWeight(items []InventoryItem) int {
	total := 0
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		total += item.Quantity * item.WeightEach
	}
	return total
}

// TotalVolume sums quantity × volume over the inventory. An item without an
// explicit volume is back-derived from its weight as ceil(weight / DensityFactor).
func TotalVolume(items []InventoryItem) float64 {
	total := 0.0
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		volume := math.Ceil(float64(item.WeightEach) / DensityFactor)
		if item.Volume != nil {
			volume = *item.Volume
		}
		total += float64(item.Quantity) * volume
	}
	return total
}

// SizeLabel classifies an aggregate weight into a human-readable move size.
// Boundaries are strict less-than.
func SizeLabel(weight int) string {
	switch {
	case weight == 0:
		return "no items yet"
	case weight < 2000:
		return "Studio/Small 1BR"
	case weight < 4000:
		return "1-2 Bedroom"
	case weight < 6000:
		return "2-3 Bedroom"
	case weight < 8000:
		return "3-4 Bedroom"
	case weight < 12000:
		return "Large 4BR+"
	default:
		return "Full household/Large move"
	}
}
