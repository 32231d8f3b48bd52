package store

import (
	"context"

	"atelier/models"
)

// RowStore is the contract for row-level reads against the catalog tables.
// Lookups that match nothing return (nil, nil), never an error.
type RowStore interface {
	Products(ctx context.Context, brand, category string) ([]models.Product, error)
	ProductBySlug(ctx context.Context, slug string) (*models.Product, error)
	ProductImages(ctx context.Context, productIDs []string) ([]models.ProductImage, error)
	Fabrics(ctx context.Context, brand string) ([]models.FabricSwatch, error)
	ProductFabrics(ctx context.Context, productID string) ([]models.ProductFabricRow, error)
	SiteImages(ctx context.Context) ([]models.SiteImage, error)
	SiteImageByKey(ctx context.Context, key string) (*models.SiteImage, error)
	UpdateSiteImage(ctx context.Context, key, imageURL string, altText *string) error
}
