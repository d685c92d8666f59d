package memory

import (
	"testing"

	"github.com/citypark/parking-system/internal/core/domain"
)

func lot(name string, capacity int) *domain.ParkingLot {
	return &domain.ParkingLot{Name: name, Capacity: capacity, AvailableSpaces: capacity}
}

func TestRegistry_AddFindOrder(t *testing.T) {
	registry := NewLotRegistry(0)
	registry.Add(lot("riverside", 10))
	registry.Add(lot("central", 5))

	found, ok := registry.Find("central")
	if !ok || found.Capacity != 5 {
		t.Fatalf("Find(central) = %+v, %v", found, ok)
	}
	if _, ok := registry.Find("nowhere"); ok {
		t.Fatal("found a lot that was never added")
	}

	all := registry.All()
	if len(all) != 2 || all[0].Name != "riverside" || all[1].Name != "central" {
		t.Fatalf("creation order not preserved: %v", names(all))
	}
}

func TestRegistry_Remove(t *testing.T) {
	registry := NewLotRegistry(0)
	registry.Add(lot("a", 1))
	registry.Add(lot("b", 1))
	registry.Add(lot("c", 1))

	if !registry.Remove("b") {
		t.Fatal("Remove(b) reported missing")
	}
	if registry.Remove("b") {
		t.Fatal("second Remove(b) reported found")
	}
	all := registry.All()
	if len(all) != 2 || all[0].Name != "a" || all[1].Name != "c" {
		t.Fatalf("order after removal: %v", names(all))
	}
}

func TestRegistry_Full(t *testing.T) {
	registry := NewLotRegistry(2)
	if registry.Full() {
		t.Fatal("empty registry reports full")
	}
	registry.Add(lot("a", 1))
	registry.Add(lot("b", 1))
	if !registry.Full() {
		t.Fatal("registry at limit not reporting full")
	}
	registry.Remove("a")
	if registry.Full() {
		t.Fatal("registry below limit reports full")
	}
}

func names(lots []*domain.ParkingLot) []string {
	out := make([]string, len(lots))
	for i, l := range lots {
		out[i] = l.Name
	}
	return out
}
