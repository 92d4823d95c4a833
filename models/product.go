package models

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidStatus = errors.New("unknown product status")

type ProductStatus string

const (
	StatusNone       ProductStatus = ""
	StatusNew        ProductStatus = "new"
	StatusLimited    ProductStatus = "limited"
	StatusSoldOut    ProductStatus = "sold-out"
	StatusDiscounted ProductStatus = "discounted"
)

// ParseProductStatus accepts both the tag values and the storefront badge labels
// ("New in", "limited edition", "Sold Out", "50% Discount").
func ParseProductStatus(s string) (ProductStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return StatusNone, nil
	case "new", "new in":
		return StatusNew, nil
	case "limited", "limited edition":
		return StatusLimited, nil
	case "sold-out", "sold out":
		return StatusSoldOut, nil
	case "discounted", "50% discount":
		return StatusDiscounted, nil
	}
	return StatusNone, fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// Product is a catalog record. It is never mutated once the catalog is built;
// use the accessor methods to get copies of the slice fields.
type Product struct {
	ID          int
	Name        string
	Description string
	Category    string
	Tags        []string
	Price       int64
	Discount    int64
	Variants    Variants
	Sizes       []string
	Status      ProductStatus
	ImageURL    string
	Link        string
}

// UnitPrice is the price a cart line is charged at. Discount is a reduced
// price point, not a percentage.
func (p Product) UnitPrice() int64 {
	if p.Discount > 0 {
		return p.Discount
	}
	return p.Price
}

func (p Product) HasDiscount() bool {
	return p.Discount > 0
}

func (p Product) VariantKind() VariantKind {
	if p.Variants == nil {
		return VariantKindNone
	}
	return p.Variants.Kind()
}

func (p Product) TagList() []string {
	return append([]string(nil), p.Tags...)
}

func (p Product) SizeList() []string {
	return append([]string(nil), p.Sizes...)
}

// Clone returns a deep copy so callers cannot reach the catalog's slices.
func (p Product) Clone() Product {
	out := p
	out.Tags = p.TagList()
	out.Sizes = p.SizeList()
	out.Variants = cloneVariants(p.Variants)
	return out
}

type ProductResponse struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Tags        []string         `json:"tags"`
	Price       int64            `json:"price"`
	Discount    int64            `json:"discount"`
	UnitPrice   int64            `json:"unit_price"`
	VariantType VariantKind      `json:"variant_type"`
	Variants    []VariantPayload `json:"variants"`
	Sizes       []string         `json:"sizes"`
	Status      ProductStatus    `json:"status,omitempty"`
	ImageURL    string           `json:"image_url"`
	Link        string           `json:"link"`
	Rating      float64          `json:"rating"`
	ReviewCount int              `json:"review_count"`
}

func NewProductResponse(p Product, rating float64, reviews int) ProductResponse {
	tags := p.TagList()
	if tags == nil {
		tags = []string{}
	}
	sizes := p.SizeList()
	if sizes == nil {
		sizes = []string{}
	}
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Tags:        tags,
		Price:       p.Price,
		Discount:    p.Discount,
		UnitPrice:   p.UnitPrice(),
		VariantType: p.VariantKind(),
		Variants:    VariantPayloads(p.Variants),
		Sizes:       sizes,
		Status:      p.Status,
		ImageURL:    p.ImageURL,
		Link:        p.Link,
		Rating:      rating,
		ReviewCount: reviews,
	}
}
