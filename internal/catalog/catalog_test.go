package catalog

import (
	"math"
	"testing"
)

func TestCatalog_WeightsDeriveFromVolume(t *testing.T) {
	for room, items := range All() {
		for _, item := range items {
			want := int(math.Round(item.Volume * DensityFactor))
			if item.Weight != want {
				t.Fatalf("%s / %s: weight %d does not match volume %.1f * %.0f", room, item.Name, item.Weight, item.Volume, DensityFactor)
			}
		}
	}
}

func TestRooms_OrderIsStable(t *testing.T) {
	want := []string{"Living Room", "Bedroom", "Kitchen & Dining", "Office", "Garage & Outdoor", "Boxes"}
	got := Rooms()
	if len(got) != len(want) {
		t.Fatalf("expected %d rooms, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("room %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestItems_UnknownRoom(t *testing.T) {
	if _, ok := Items("Basement"); ok {
		t.Fatal("expected unknown room to report false")
	}
}

func TestTotalWeight_SkipsDeletedLines(t *testing.T) {
	items := []InventoryItem{
		{Name: "Sofa (3-seat)", Quantity: 1, WeightEach: 490},
		{Name: "Small Box", Quantity: 10, WeightEach: 11},
		{Name: "Dresser", Quantity: 0, WeightEach: 280},
	}
	if got := TotalWeight(items); got != 600 {
		t.Fatalf("expected total weight 600, got %d", got)
	}
}

func TestTotalVolume_BackDerivesMissingVolume(t *testing.T) {
	vol := 70.0
	items := []InventoryItem{
		{Name: "Sofa (3-seat)", Quantity: 1, WeightEach: 490, Volume: &vol},
		{Name: "Custom Crate", Quantity: 2, WeightEach: 100}, // ceil(100/7) = 15
	}
	if got := TotalVolume(items); got != 100 {
		t.Fatalf("expected total volume 100, got %.1f", got)
	}
}

func TestSizeLabel_Boundaries(t *testing.T) {
	cases := []struct {
		weight int
		want   string
	}{
		{0, "no items yet"},
		{1, "Studio/Small 1BR"},
		{1999, "Studio/Small 1BR"},
		{2000, "1-2 Bedroom"},
		{3999, "1-2 Bedroom"},
		{4000, "2-3 Bedroom"},
		{5999, "2-3 Bedroom"},
		{6000, "3-4 Bedroom"},
		{7999, "3-4 Bedroom"},
		{8000, "Large 4BR+"},
		{11999, "Large 4BR+"},
		{12000, "Full household/Large move"},
	}
	for _, tc := range cases {
		if got := SizeLabel(tc.weight); got != tc.want {
			t.Fatalf("weight %d: expected %q, got %q", tc.weight, tc.want, got)
		}
	}
}
