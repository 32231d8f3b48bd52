package catalog

import (
	"context"
	"strings"

	"atelier/cache"
	"atelier/models"
	"atelier/store"
)

// Service assembles denormalized catalog views from the row store. The row
// store does no server-side join for images, so the joins happen here, and
// every read goes through the keyed cache.
type Service struct {
	store store.RowStore
	cache *cache.Cache
}

func NewService(st store.RowStore, c *cache.Cache) *Service {
	return &Service{store: st, cache: c}
}

// FetchProducts returns products filtered by optional brand and category,
// newest first, each with its ordered images attached. Images is never nil.
func (s *Service) FetchProducts(ctx context.Context, brand, category string) ([]models.Product, error) {
	key := cache.Key("products", brand, category)
	v, err := s.cache.Fetch(key, func() (interface{}, error) {
		return s.loadProducts(ctx, brand, category)
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.Product), nil
}

func (s *Service) loadProducts(ctx context.Context, brand, category string) ([]models.Product, error) {
	products, err := s.store.Products(ctx, brand, category)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		// Nothing to join; skip the images query entirely.
		return []models.Product{}, nil
	}

	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	images, err := s.store.ProductImages(ctx, ids)
	if err != nil {
		return nil, err
	}

	byProduct := make(map[string][]models.ProductImage, len(products))
	for _, img := range images {
		byProduct[img.ProductID] = append(byProduct[img.ProductID], img)
	}
	for i := range products {
		if imgs, ok := byProduct[products[i].ID]; ok {
			products[i].Images = imgs
		} else {
			products[i].Images = []models.ProductImage{}
		}
	}
	return products, nil
}

// FetchProductBySlug returns the product with its images, or nil when no
// product carries the slug.
func (s *Service) FetchProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	key := cache.Key("product", slug)
	v, err := s.cache.Fetch(key, func() (interface{}, error) {
		return s.loadProductBySlug(ctx, slug)
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.Product), nil
}

func (s *Service) loadProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	p, err := s.store.ProductBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return (*models.Product)(nil), nil
	}
	images, err := s.store.ProductImages(ctx, []string{p.ID})
	if err != nil {
		return nil, err
	}
	if images == nil {
		images = []models.ProductImage{}
	}
	p.Images = images
	return p, nil
}

// FetchAllFabrics returns fabric swatches, optionally filtered by brand,
// ordered by name.
func (s *Service) FetchAllFabrics(ctx context.Context, brand string) ([]models.FabricSwatch, error) {
	key := cache.Key("fabrics", brand)
	v, err := s.cache.Fetch(key, func() (interface{}, error) {
		fabrics, err := s.store.Fabrics(ctx, brand)
		if err != nil {
			return nil, err
		}
		if fabrics == nil {
			fabrics = []models.FabricSwatch{}
		}
		return fabrics, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.FabricSwatch), nil
}

// FetchProductFabrics resolves the fabrics linked to one product. Link rows
// whose fabric no longer exists are dropped.
func (s *Service) FetchProductFabrics(ctx context.Context, productID string) ([]models.FabricSwatch, error) {
	key := cache.Key("product-fabrics", productID)
	v, err := s.cache.Fetch(key, func() (interface{}, error) {
		links, err := s.store.ProductFabrics(ctx, productID)
		if err != nil {
			return nil, err
		}
		fabrics := make([]models.FabricSwatch, 0, len(links))
		for _, link := range links {
			if link.Fabric == nil {
				continue
			}
			fabrics = append(fabrics, *link.Fabric)
		}
		return fabrics, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.FabricSwatch), nil
}

func (s *Service) FetchSiteImages(ctx context.Context) ([]models.SiteImage, error) {
	key := cache.Key("site-images")
	v, err := s.cache.Fetch(key, func() (interface{}, error) {
		images, err := s.store.SiteImages(ctx)
		if err != nil {
			return nil, err
		}
		if images == nil {
			images = []models.SiteImage{}
		}
		return images, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.SiteImage), nil
}

// FetchSiteImageByKey returns the content row for key, or nil when absent.
func (s *Service) FetchSiteImageByKey(ctx context.Context, key string) (*models.SiteImage, error) {
	ck := cache.Key("site-image", key)
	v, err := s.cache.Fetch(ck, func() (interface{}, error) {
		return s.store.SiteImageByKey(ctx, key)
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.SiteImage), nil
}

// UpdateSiteImage writes the new URL (and alt text when given) and drops the
// affected cache entries so subsequent reads re-fetch. On failure nothing is
// invalidated and previously cached reads stay as they were.
func (s *Service) UpdateSiteImage(ctx context.Context, key, imageURL string, altText *string) error {
	if err := s.store.UpdateSiteImage(ctx, key, imageURL, altText); err != nil {
		return err
	}
	s.cache.Invalidate(cache.Key("site-images"), cache.Key("site-image", key))
	return nil
}

// ResolveImageWithFallback returns the stored URL under key, or fallback
// when no row exists, the stored URL is empty, or the fetch fails.
func (s *Service) ResolveImageWithFallback(ctx context.Context, key, fallback string) string {
	si, err := s.FetchSiteImageByKey(ctx, key)
	if err != nil || si == nil || si.ImageURL == "" {
		return fallback
	}
	return si.ImageURL
}

// ParseColor decodes a "Name:#hexcode" entry from a product's colors list.
// Entries without a hex segment default to black.
func ParseColor(colorStr string) models.Color {
	name, hex, found := strings.Cut(colorStr, ":")
	if !found || hex == "" {
		hex = "#000000"
	}
	return models.Color{Name: name, Hex: hex}
}
