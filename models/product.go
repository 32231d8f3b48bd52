package models

import "time"

type Product struct {
	ID          string         `json:"id"`
	Slug        string         `json:"slug"`
	Name        string         `json:"name"`
	Price       float64        `json:"price"`
	Description *string        `json:"description,omitempty"`
	Details     []string       `json:"details,omitempty"`
	Category    string         `json:"category"`
	Brand       string         `json:"brand"`
	IsCustom    *bool          `json:"is_custom,omitempty"`
	InStock     *bool          `json:"in_stock,omitempty"`
	Colors      []string       `json:"colors,omitempty"`
	Sizes       []string       `json:"sizes,omitempty"`
	CreatedAt   *time.Time     `json:"created_at,omitempty"`
	Images      []ProductImage `json:"images"`
}

type ProductImage struct {
	ID           string `json:"id"`
	ProductID    string `json:"product_id"`
	ImageURL     string `json:"image_url"`
	DisplayOrder *int   `json:"display_order,omitempty"`
}

// Color is the decoded form of a "Name:#hexcode" entry in Product.Colors.
type Color struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}
