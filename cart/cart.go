package cart

import (
	"sort"
	"strings"
	"sync"

	"atelier/models"
)

// Cart holds one order draft: the line items in insertion order plus the
// panel-open flag. Every operation is total; totals are derived from the
// items on each read and never stored.
type Cart struct {
	mu    sync.Mutex
	items []models.CartItem
	open  bool
}

func New() *Cart {
	return &Cart{}
}

// AddItem appends the item, or merges it into an existing entry with the
// same id by adding the quantities. The existing entry's price, sizing and
// fabric are kept; callers must build ids so that equal ids mean equal
// configurations (see ConfigID).
func (c *Cart) AddItem(item models.CartItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity += item.Quantity
			return
		}
	}
	c.items = append(c.items, item)
}

// RemoveItem drops the entry with the given id. Absent ids are a no-op.
func (c *Cart) RemoveItem(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(id)
}

func (c *Cart) removeLocked(id string) {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the entry's quantity in place, keeping its position.
// A quantity of zero or less removes the entry. Absent ids are a no-op.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		c.removeLocked(id)
		return
	}
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the item list. The open flag is untouched.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

func (c *Cart) SetOpen(open bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = open
}

func (c *Cart) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]models.CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// TotalItems is the sum of all quantities.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// Subtotal is the sum of unit price times quantity over all items.
func (c *Cart) Subtotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	subtotal := 0.0
	for _, item := range c.items {
		subtotal += item.Price * float64(item.Quantity)
	}
	return subtotal
}

// Snapshot returns the items and both derived totals in one consistent view.
func (c *Cart) Snapshot() models.CartView {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]models.CartItem, len(c.items))
	copy(items, c.items)

	view := models.CartView{Items: items, IsOpen: c.open}
	for _, item := range c.items {
		view.TotalItems += item.Quantity
		view.Subtotal += item.Price * float64(item.Quantity)
	}
	return view
}

// ConfigID derives a cart item id from the full purchasable configuration,
// so two selections share an id only when product, sizing and fabric all
// match. Measurement keys are sorted to keep the id deterministic.
func ConfigID(productID string, sizing models.Sizing, fabric *models.FabricRef) string {
	parts := []string{productID, sizing.Type}

	switch sizing.Type {
	case models.SizingCustom:
		keys := make([]string, 0, len(sizing.Measurements))
		for k := range sizing.Measurements {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			parts = append(parts, k+"="+sizing.Measurements[k])
		}
	default:
		parts = append(parts, sizing.Size)
	}

	if fabric != nil {
		parts = append(parts, fabric.ID)
	}
	return strings.Join(parts, "|")
}
