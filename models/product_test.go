package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct_UnitPrice(t *testing.T) {
	assert.Equal(t, int64(2500), Product{Price: 2500}.UnitPrice())
	assert.Equal(t, int64(2800), Product{Price: 3200, Discount: 2800}.UnitPrice())
	assert.True(t, Product{Price: 3200, Discount: 2800}.HasDiscount())
	assert.False(t, Product{Price: 3200}.HasDiscount())
}

func TestParseProductStatus(t *testing.T) {
	tests := map[string]ProductStatus{
		"":                StatusNone,
		"New in":          StatusNew,
		"new":             StatusNew,
		"limited edition": StatusLimited,
		"Sold Out":        StatusSoldOut,
		"sold-out":        StatusSoldOut,
		"50% Discount":    StatusDiscounted,
		" discounted ":    StatusDiscounted,
	}
	for in, want := range tests {
		got, err := ParseProductStatus(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseProductStatus("bestseller")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestProduct_VariantKind(t *testing.T) {
	assert.Equal(t, VariantKindNone, Product{}.VariantKind())
	assert.Equal(t, VariantKindNone, Product{Variants: NoVariants{}}.VariantKind())
	assert.Equal(t, VariantKindColor, Product{Variants: ColorVariants{{ID: 1}}}.VariantKind())
	assert.Equal(t, VariantKindImage, Product{Variants: ImageVariants{{ID: 1}}}.VariantKind())
}

func TestProduct_CloneIsDeep(t *testing.T) {
	p := Product{
		ID:       1,
		Tags:     []string{"a"},
		Sizes:    []string{"S"},
		Variants: ColorVariants{{ID: 1, Name: "Violet", Color: "bg-violet-400"}},
	}
	c := p.Clone()

	c.Tags[0] = "b"
	c.Sizes[0] = "XL"
	c.Variants.(ColorVariants)[0].Name = "Red"

	assert.Equal(t, "a", p.Tags[0])
	assert.Equal(t, "S", p.Sizes[0])
	assert.Equal(t, "Violet", p.Variants.(ColorVariants)[0].Name)
}

func TestNewProductResponse(t *testing.T) {
	p := Product{
		ID:       3,
		Name:     "Keratin Pack",
		Price:    4500,
		Variants: ImageVariants{{ID: 1, Name: "Black", Thumbnail: "/v6.jpg", FeaturedImage: "/p1.jpg"}},
		Status:   StatusNew,
	}

	resp := NewProductResponse(p, 4.3, 55)

	assert.Equal(t, int64(4500), resp.UnitPrice)
	assert.Equal(t, VariantKindImage, resp.VariantType)
	assert.Equal(t, []VariantPayload{{ID: 1, Name: "Black", Thumbnail: "/v6.jpg", FeaturedImage: "/p1.jpg"}}, resp.Variants)
	assert.Equal(t, []string{}, resp.Tags)
	assert.Equal(t, []string{}, resp.Sizes)
	assert.Equal(t, 4.3, resp.Rating)
	assert.Equal(t, 55, resp.ReviewCount)
}

func TestVariantPayloads_NoVariants(t *testing.T) {
	assert.Equal(t, []VariantPayload{}, VariantPayloads(NoVariants{}))
	assert.Equal(t, []VariantPayload{}, VariantPayloads(nil))
}
