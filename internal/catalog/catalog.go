// Package catalog provides the household inventory reference data and the
// weight/volume aggregation used by the pricing engine.
package catalog

import "math"

// DensityFactor is the assumed conversion constant between volume and weight:
// 7 lb per cubic foot. Catalog weights are derived from volume with it, and
// missing item volumes are back-derived from weight with its inverse.
const DensityFactor = 7.0

// ItemDefinition is a single catalog row. Weight is always
// round(Volume * DensityFactor); the catalog test enforces this for every row.
type ItemDefinition struct {
	Name   string  `json:"name"`
	Volume float64 `json:"volume"`
	Weight int     `json:"weight"`
}

// InventoryItem is one line of a visitor's collected inventory. Quantity 0
// means the line was deleted. Volume, when nil, is back-derived from
// WeightEach.
type InventoryItem struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Room            string   `json:"room"`
	Quantity        int      `json:"quantity"`
	WeightEach      int      `json:"weightEach"`
	Volume          *float64 `json:"volume,omitempty"`
	SpecialHandling bool     `json:"specialHandling,omitempty"`
}

// def builds an ItemDefinition from a volume, deriving the weight.
func def(name string, volume float64) ItemDefinition {
	return ItemDefinition{
		Name:   name,
		Volume: volume,
		Weight: int(math.Round(volume * DensityFactor)),
	}
}

type roomEntry struct {
	name  string
	items []ItemDefinition
}

// rooms is the fixed room-category ordering shown to the visitor.
var rooms = []roomEntry{
	{
		name: "Living Room",
		items: []ItemDefinition{
			def("Sofa (3-seat)", 70),
			def("Loveseat", 50),
			def("Armchair", 30),
			def("Recliner", 35),
			def("Coffee Table", 15),
			def("End Table", 8),
			def("TV Stand", 20),
			def("Television", 10),
			def("Bookshelf", 25),
			def("Area Rug", 6),
		},
	},
	{
		name: "Bedroom",
		items: []ItemDefinition{
			def("King Bed", 75),
			def("Queen Bed", 65),
			def("Twin Bed", 40),
			def("Dresser", 40),
			def("Wardrobe", 55),
			def("Nightstand", 10),
			def("Vanity", 35),
			def("Mirror", 5),
		},
	},
	{
		name: "Kitchen & Dining",
		items: []ItemDefinition{
			def("Refrigerator", 60),
			def("Stove", 30),
			def("Dishwasher", 25),
			def("Dining Table", 40),
			def("Dining Chair", 8),
			def("Kitchen Cart", 15),
			def("Microwave", 4),
			def("Box of Dishes", 6),
		},
	},
	{
		name: "Office",
		items: []ItemDefinition{
			def("Office Desk", 40),
			def("Office Chair", 15),
			def("Filing Cabinet", 20),
			def("Bookcase", 25),
			def("Monitor & Computer", 5),
			def("Printer Stand", 12),
		},
	},
	{
		name: "Garage & Outdoor",
		items: []ItemDefinition{
			def("Washer", 25),
			def("Dryer", 25),
			def("Treadmill", 45),
			def("Bicycle", 10),
			def("Lawn Mower", 20),
			def("Grill", 18),
			def("Patio Table", 25),
			def("Patio Chair", 6),
			def("Toolbox", 8),
			def("Storage Bin", 4),
		},
	},
	{
		name: "Boxes",
		items: []ItemDefinition{
			def("Small Box", 1.5),
			def("Medium Box", 3),
			def("Large Box", 4.5),
			def("Wardrobe Box", 10),
		},
	},
}

// Rooms returns the ordered room-category names.
func Rooms() []string {
	names := make([]string, 0, len(rooms))
	for _, room := range rooms {
		names = append(names, room.name)
	}
	return names
}

// Items returns the ordered item definitions for a room category.
// The second return value is false for an unknown room.
func Items(room string) ([]ItemDefinition, bool) {
	for _, entry := range rooms {
		if entry.name == room {
			items := make([]ItemDefinition, len(entry.items))
			copy(items, entry.items)
			return items, true
		}
	}
	return nil, false
}

// All returns every room with its items, in display order.
func All() map[string][]ItemDefinition {
	out := make(map[string][]ItemDefinition, len(rooms))
	for _, entry := range rooms {
		items := make([]ItemDefinition, len(entry.items))
		copy(items, entry.items)
		out[entry.name] = items
	}
	return out
}
