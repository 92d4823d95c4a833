package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"petal-pink/models"
)

type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// ProductRepository reads the catalog from Postgres. It is only used at
// startup; the result is frozen into a Catalog.
type ProductRepository struct {
	db Querier
}

func NewProductRepository(db Querier) *ProductRepository {
	return &ProductRepository{db: db}
}

type variantRow struct {
	ProductID     int
	VariantID     int
	Name          string
	Color         string
	Thumbnail     string
	FeaturedImage string
}

func (r *ProductRepository) LoadProducts(ctx context.Context) ([]models.Product, error) {
	query := `SELECT id, name, COALESCE(description, ''), COALESCE(category, ''), COALESCE(tags, '{}'),
	          price, discount, variant_type, COALESCE(sizes, '{}'), COALESCE(status, ''),
	          COALESCE(image_url, ''), COALESCE(link, '')
	          FROM products WHERE is_active = true ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	kinds := map[int]models.VariantKind{}
	for rows.Next() {
		var p models.Product
		var kind, status string
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Tags,
			&p.Price, &p.Discount, &kind, &p.Sizes, &status, &p.ImageURL, &p.Link); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.Status, err = models.ParseProductStatus(status)
		if err != nil {
			return nil, fmt.Errorf("product %d: %w", p.ID, err)
		}
		kinds[p.ID] = models.VariantKind(kind)
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read products: %w", err)
	}

	variants, err := r.loadVariants(ctx)
	if err != nil {
		return nil, err
	}

	for i := range products {
		v, err := buildVariants(kinds[products[i].ID], variants[products[i].ID])
		if err != nil {
			return nil, fmt.Errorf("product %d: %w", products[i].ID, err)
		}
		products[i].Variants = v
	}

	return products, nil
}

func (r *ProductRepository) loadVariants(ctx context.Context) (map[int][]variantRow, error) {
	query := `SELECT product_id, variant_id, name, COALESCE(color, ''), COALESCE(thumbnail, ''), COALESCE(featured_image, '')
	          FROM product_variants ORDER BY product_id, position`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query variants: %w", err)
	}
	defer rows.Close()

	out := map[int][]variantRow{}
	for rows.Next() {
		var v variantRow
		if err := rows.Scan(&v.ProductID, &v.VariantID, &v.Name, &v.Color, &v.Thumbnail, &v.FeaturedImage); err != nil {
			return nil, fmt.Errorf("scan variant: %w", err)
		}
		out[v.ProductID] = append(out[v.ProductID], v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read variants: %w", err)
	}
	return out, nil
}

func buildVariants(kind models.VariantKind, rows []variantRow) (models.Variants, error) {
	switch kind {
	case models.VariantKindNone, "":
		if len(rows) > 0 {
			return nil, fmt.Errorf("%d variants stored for a product without variants", len(rows))
		}
		return models.NoVariants{}, nil
	case models.VariantKindColor:
		out := make(models.ColorVariants, 0, len(rows))
		for _, v := range rows {
			if v.Color == "" {
				return nil, fmt.Errorf("color variant %d has no color", v.VariantID)
			}
			out = append(out, models.ColorVariant{ID: v.VariantID, Name: v.Name, Color: v.Color, FeaturedImage: v.FeaturedImage})
		}
		return out, nil
	case models.VariantKindImage:
		out := make(models.ImageVariants, 0, len(rows))
		for _, v := range rows {
			if v.Thumbnail == "" {
				return nil, fmt.Errorf("image variant %d has no thumbnail", v.VariantID)
			}
			out = append(out, models.ImageVariant{ID: v.VariantID, Name: v.Name, Thumbnail: v.Thumbnail, FeaturedImage: v.FeaturedImage})
		}
		return out, nil
	}
	return nil, fmt.Errorf("unknown variant type %q", kind)
}
