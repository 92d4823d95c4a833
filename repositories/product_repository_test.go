package repositories

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petal-pink/models"
)

var productColumns = []string{"id", "name", "description", "category", "tags",
	"price", "discount", "variant_type", "sizes", "status", "image_url", "link"}

var variantColumns = []string{"product_id", "variant_id", "name", "color", "thumbnail", "featured_image"}

func TestProductRepository_LoadProducts(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`FROM products WHERE is_active = true`).
		WillReturnRows(pgxmock.NewRows(productColumns).
			AddRow(1, "Hair Oil", "", "Category 1", []string{"tag1"}, int64(2500), int64(0), "color", []string{}, "", "/img/a.png", "/product-detail/").
			AddRow(2, "Serum", "", "Category 1", []string{}, int64(3200), int64(2800), "none", []string{}, "50% Discount", "/img/b.png", "/product-detail/"))
	mock.ExpectQuery(`FROM product_variants`).
		WillReturnRows(pgxmock.NewRows(variantColumns).
			AddRow(1, 1, "Violet", "bg-violet-400", "", "/p1.jpg").
			AddRow(1, 2, "Green", "bg-green-400", "", "/p2.jpg"))

	products, err := NewProductRepository(mock).LoadProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, models.ColorVariants{
		{ID: 1, Name: "Violet", Color: "bg-violet-400", FeaturedImage: "/p1.jpg"},
		{ID: 2, Name: "Green", Color: "bg-green-400", FeaturedImage: "/p2.jpg"},
	}, products[0].Variants)
	assert.Equal(t, models.NoVariants{}, products[1].Variants)
	assert.Equal(t, models.StatusDiscounted, products[1].Status)
	assert.Equal(t, int64(2800), products[1].UnitPrice())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBuildVariants(t *testing.T) {
	v, err := buildVariants(models.VariantKindImage, []variantRow{
		{VariantID: 1, Name: "Black", Thumbnail: "/v1.jpg", FeaturedImage: "/p1.jpg"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.VariantKindImage, v.Kind())
	assert.Equal(t, 1, v.Len())

	_, err = buildVariants(models.VariantKindImage, []variantRow{{VariantID: 1, Name: "Black"}})
	assert.ErrorContains(t, err, "no thumbnail")

	_, err = buildVariants(models.VariantKindColor, []variantRow{{VariantID: 2, Name: "Red"}})
	assert.ErrorContains(t, err, "no color")

	_, err = buildVariants(models.VariantKindNone, []variantRow{{VariantID: 1}})
	assert.Error(t, err)

	_, err = buildVariants("pattern", nil)
	assert.ErrorContains(t, err, "unknown variant type")
}
