package models

const (
	SizingStandard = "standard"
	SizingCustom   = "custom"
)

// Sizing is a tagged union: Type is either SizingStandard (Size set) or
// SizingCustom (Measurements set).
type Sizing struct {
	Type         string            `json:"type"`
	Size         string            `json:"size,omitempty"`
	Measurements map[string]string `json:"measurements,omitempty"`
}

// FabricRef points at a fabric swatch chosen for a cart item. Not owned by
// the cart; only id and name are snapshotted.
type FabricRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CartItem struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Price    float64    `json:"price"`
	Image    string     `json:"image"`
	Category string     `json:"category"`
	Quantity int        `json:"quantity"`
	Sizing   Sizing     `json:"sizing"`
	Fabric   *FabricRef `json:"fabric,omitempty"`
}

// CartView is the snapshot handed to HTTP consumers: the items plus the
// derived totals, recomputed from the items at snapshot time.
type CartView struct {
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"total_items"`
	Subtotal   float64    `json:"subtotal"`
	IsOpen     bool       `json:"is_open"`
}
