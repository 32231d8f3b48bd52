package store

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v4"

	"atelier/condb"
	"atelier/models"
)

// PostgresStore runs the catalog queries against Postgres. Connections are
// opened per call and closed on return.
type PostgresStore struct{}

func NewPostgresStore() *PostgresStore {
	return &PostgresStore{}
}

var _ RowStore = (*PostgresStore)(nil)

const productColumns = `id, slug, name, price, description, details, category, brand, is_custom, in_stock, colors, sizes, created_at`

func scanProduct(row pgx.Row, p *models.Product) error {
	return row.Scan(
		&p.ID, &p.Slug, &p.Name, &p.Price, &p.Description, &p.Details,
		&p.Category, &p.Brand, &p.IsCustom, &p.InStock, &p.Colors, &p.Sizes,
		&p.CreatedAt,
	)
}

func (s *PostgresStore) Products(ctx context.Context, brand, category string) ([]models.Product, error) {
	conn, err := condb.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close(ctx)

	sql := `SELECT ` + productColumns + ` FROM products`
	where := []string{}
	args := []interface{}{}
	ai := 1

	if brand != "" {
		where = append(where, "brand = $"+strconv.Itoa(ai))
		args = append(args, brand)
		ai++
	}
	if category != "" {
		where = append(where, "category = $"+strconv.Itoa(ai))
		args = append(args, category)
		ai++
	}
	for i, cond := range where {
		if i == 0 {
			sql += " WHERE " + cond
		} else {
			sql += " AND " + cond
		}
	}
	sql += " ORDER BY created_at DESC"

	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (s *PostgresStore) ProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	conn, err := condb.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close(ctx)

	var p models.Product
	row := conn.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE slug = $1`, slug)
	if err := scanProduct(row, &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *PostgresStore) ProductImages(ctx context.Context, productIDs []string) ([]models.ProductImage, error) {
	conn, err := condb.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close(ctx)

	rows, err := conn.Query(ctx,
		`SELECT id, product_id, image_url, display_order
		 FROM product_images
		 WHERE product_id = ANY($1)
		 ORDER BY display_order ASC`,
		productIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []models.ProductImage
	for rows.Next() {
		var img models.ProductImage
		if err := rows.Scan(&img.ID, &img.ProductID, &img.ImageURL, &img.DisplayOrder); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

func (s *PostgresStore) Fabrics(ctx context.Context, brand string) ([]models.FabricSwatch, error) {
	conn, err := condb.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close(ctx)

	sql := `SELECT id, name, hex_color, image_url, description, brand FROM fabric_swatches`
	args := []interface{}{}
	if brand != "" {
		sql += ` WHERE brand = $1`
		args = append(args, brand)
	}
	sql += ` ORDER BY name ASC`

	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fabrics []models.FabricSwatch
	for rows.Next() {
		var f models.FabricSwatch
		if err := rows.Scan(&f.ID, &f.Name, &f.HexColor, &f.ImageURL, &f.Description, &f.Brand); err != nil {
			return nil, err
		}
		fabrics = append(fabrics, f)
	}
	return fabrics, rows.Err()
}

func (s *PostgresStore) ProductFabrics(ctx context.Context, productID string) ([]models.ProductFabricRow, error) {
	conn, err := condb.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close(ctx)

	// LEFT JOIN so a dangling fabric_id still produces a row; the nested
	// fabric comes back nil and the caller decides what to do with it.
	rows, err := conn.Query(ctx,
		`SELECT pf.id, pf.product_id, pf.fabric_id,
		        f.id, f.name, f.hex_color, f.image_url, f.description, f.brand
		 FROM product_fabrics pf
		 LEFT JOIN fabric_swatches f ON f.id = pf.fabric_id
		 WHERE pf.product_id = $1`,
		productID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []models.ProductFabricRow
	for rows.Next() {
		var link models.ProductFabricRow
		var fid, fname, fhex, fbrand *string
		var fimg, fdesc *string
		if err := rows.Scan(&link.ID, &link.ProductID, &link.FabricID,
			&fid, &fname, &fhex, &fimg, &fdesc, &fbrand); err != nil {
			return nil, err
		}
		if fid != nil {
			link.Fabric = &models.FabricSwatch{
				ID:          *fid,
				Name:        *fname,
				HexColor:    *fhex,
				ImageURL:    fimg,
				Description: fdesc,
				Brand:       *fbrand,
			}
		}
		links = append(links, link)
	}
	return links, rows.Err()
}

func (s *PostgresStore) SiteImages(ctx context.Context) ([]models.SiteImage, error) {
	conn, err := condb.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close(ctx)

	rows, err := conn.Query(ctx,
		`SELECT id, key, image_url, alt_text, brand, created_at, updated_at
		 FROM site_images ORDER BY key ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []models.SiteImage
	for rows.Next() {
		var si models.SiteImage
		if err := rows.Scan(&si.ID, &si.Key, &si.ImageURL, &si.AltText, &si.Brand, &si.CreatedAt, &si.UpdatedAt); err != nil {
			return nil, err
		}
		images = append(images, si)
	}
	return images, rows.Err()
}

func (s *PostgresStore) SiteImageByKey(ctx context.Context, key string) (*models.SiteImage, error) {
	conn, err := condb.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close(ctx)

	var si models.SiteImage
	err = conn.QueryRow(ctx,
		`SELECT id, key, image_url, alt_text, brand, created_at, updated_at
		 FROM site_images WHERE key = $1`, key,
	).Scan(&si.ID, &si.Key, &si.ImageURL, &si.AltText, &si.Brand, &si.CreatedAt, &si.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &si, nil
}

func (s *PostgresStore) UpdateSiteImage(ctx context.Context, key, imageURL string, altText *string) error {
	conn, err := condb.Connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	_, err = conn.Exec(ctx,
		`UPDATE site_images
		 SET image_url = $1, alt_text = COALESCE($2, alt_text), updated_at = NOW()
		 WHERE key = $3`,
		imageURL, altText, key,
	)
	return err
}
