package models

type FabricSwatch struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	HexColor    string  `json:"hex_color"`
	ImageURL    *string `json:"image_url,omitempty"`
	Description *string `json:"description,omitempty"`
	Brand       string  `json:"brand"`
}

// ProductFabricRow is one row of the product_fabrics join table with the
// referenced swatch attached. Fabric is nil when the reference dangles.
type ProductFabricRow struct {
	ID        string        `json:"id"`
	ProductID string        `json:"product_id"`
	FabricID  string        `json:"fabric_id"`
	Fabric    *FabricSwatch `json:"fabric,omitempty"`
}
