package cart

import (
	"testing"

	"atelier/models"
)

func item(id string, price float64, qty int) models.CartItem {
	return models.CartItem{
		ID:       id,
		Name:     "Item " + id,
		Price:    price,
		Quantity: qty,
		Sizing:   models.Sizing{Type: models.SizingStandard, Size: "M"},
	}
}

func TestAddItemMergesByID(t *testing.T) {
	c := New()
	c.AddItem(item("a", 120, 2))
	c.AddItem(item("a", 999, 3)) // differing price must be discarded
	c.AddItem(item("a", 120, 4))

	items := c.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(items))
	}
	if items[0].Quantity != 9 {
		t.Errorf("expected quantity 9, got %d", items[0].Quantity)
	}
	if items[0].Price != 120 {
		t.Errorf("expected first add's price 120 kept, got %v", items[0].Price)
	}
}

func TestAddItemPreservesInsertionOrder(t *testing.T) {
	c := New()
	c.AddItem(item("a", 10, 1))
	c.AddItem(item("b", 20, 1))
	c.AddItem(item("c", 30, 1))
	c.AddItem(item("b", 20, 1)) // merge must not reorder

	items := c.Items()
	want := []string{"a", "b", "c"}
	if len(items) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(items))
	}
	for i, id := range want {
		if items[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, items[i].ID)
		}
	}
}

func TestUpdateQuantityNonPositiveRemoves(t *testing.T) {
	for _, qty := range []int{0, -5} {
		c := New()
		c.AddItem(item("a", 10, 2))
		c.AddItem(item("b", 20, 1))

		c.UpdateQuantity("a", qty)

		items := c.Items()
		if len(items) != 1 || items[0].ID != "b" {
			t.Errorf("quantity %d: expected only b to remain, got %v", qty, items)
		}
	}
}

func TestUpdateQuantityInPlace(t *testing.T) {
	c := New()
	c.AddItem(item("a", 10, 2))
	c.AddItem(item("b", 20, 1))

	c.UpdateQuantity("a", 7)

	items := c.Items()
	if items[0].ID != "a" || items[0].Quantity != 7 {
		t.Errorf("expected a at position 0 with quantity 7, got %v", items[0])
	}
}

func TestUpdateAndRemoveAbsentIDNoop(t *testing.T) {
	c := New()
	c.AddItem(item("a", 10, 2))

	c.UpdateQuantity("ghost", 5)
	c.RemoveItem("ghost")

	if len(c.Items()) != 1 || c.TotalItems() != 2 {
		t.Errorf("absent-id operations must not change the cart")
	}
}

func TestDerivedTotals(t *testing.T) {
	c := New()
	if c.TotalItems() != 0 || c.Subtotal() != 0 {
		t.Fatal("empty cart must have zero totals")
	}

	c.AddItem(item("a", 120.50, 2))
	c.AddItem(item("b", 80, 3))

	if got := c.TotalItems(); got != 5 {
		t.Errorf("TotalItems = %d, want 5", got)
	}
	if got, want := c.Subtotal(), 120.50*2+80*3; got != want {
		t.Errorf("Subtotal = %v, want %v", got, want)
	}

	view := c.Snapshot()
	if view.TotalItems != 5 || view.Subtotal != 120.50*2+80*3 {
		t.Errorf("snapshot totals disagree: %+v", view)
	}
}

func TestClearLeavesOpenFlag(t *testing.T) {
	c := New()
	c.AddItem(item("a", 10, 2))
	c.SetOpen(true)

	c.Clear()

	if len(c.Items()) != 0 || c.TotalItems() != 0 || c.Subtotal() != 0 {
		t.Error("clear must empty the cart and zero the totals")
	}
	if !c.IsOpen() {
		t.Error("clear must not touch the open flag")
	}
}

func TestConfigID(t *testing.T) {
	standard := models.Sizing{Type: models.SizingStandard, Size: "M"}
	custom := models.Sizing{Type: models.SizingCustom, Measurements: map[string]string{
		"bust": "92", "waist": "74",
	}}
	customReordered := models.Sizing{Type: models.SizingCustom, Measurements: map[string]string{
		"waist": "74", "bust": "92",
	}}
	fabric := &models.FabricRef{ID: "f1", Name: "Silk"}

	if ConfigID("p1", standard, nil) != ConfigID("p1", standard, nil) {
		t.Error("same configuration must produce the same id")
	}
	if ConfigID("p1", custom, nil) != ConfigID("p1", customReordered, nil) {
		t.Error("measurement map order must not change the id")
	}
	if ConfigID("p1", standard, nil) == ConfigID("p1", custom, nil) {
		t.Error("different sizing must produce different ids")
	}
	if ConfigID("p1", standard, nil) == ConfigID("p1", standard, fabric) {
		t.Error("fabric choice must change the id")
	}
	if ConfigID("p1", standard, nil) == ConfigID("p2", standard, nil) {
		t.Error("different products must produce different ids")
	}
}

func TestManagerSessions(t *testing.T) {
	m := NewManager()
	s1 := m.NewSession()
	s2 := m.NewSession()
	if s1 == s2 {
		t.Fatal("session ids must be unique")
	}

	m.Get(s1).AddItem(item("a", 10, 1))

	if got := m.Get(s1).TotalItems(); got != 1 {
		t.Errorf("same session must return the same cart, got %d items", got)
	}
	if got := m.Get(s2).TotalItems(); got != 0 {
		t.Errorf("sessions must not share carts, got %d items", got)
	}
}
