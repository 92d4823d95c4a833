package repositories

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"petal-pink/models"
)

var ErrProductNotFound = errors.New("product not found")

// Catalog is the read-only product list. It is built once and never mutated.
type Catalog struct {
	products []models.Product
	index    map[int]int
}

func NewCatalog(products []models.Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]models.Product, 0, len(products)),
		index:    make(map[int]int, len(products)),
	}

	for i, p := range products {
		if err := validateProduct(p); err != nil {
			return nil, fmt.Errorf("product %d (position %d): %w", p.ID, i, err)
		}
		if _, dup := c.index[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %d", p.ID)
		}
		c.index[p.ID] = len(c.products)
		c.products = append(c.products, p.Clone())
	}

	return c, nil
}

func validateProduct(p models.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("name is required")
	}
	if p.Price < 0 {
		return errors.New("price cannot be negative")
	}
	if p.Discount < 0 {
		return errors.New("discount cannot be negative")
	}
	if p.Variants != nil && p.Variants.Kind() != models.VariantKindNone && p.Variants.Len() == 0 {
		return fmt.Errorf("%s variants declared without items", p.Variants.Kind())
	}
	return nil
}

func (c *Catalog) Resolve(id int) (models.Product, error) {
	i, ok := c.index[id]
	if !ok {
		return models.Product{}, fmt.Errorf("%w: id %d", ErrProductNotFound, id)
	}
	return c.products[i].Clone(), nil
}

func (c *Catalog) Len() int {
	return len(c.products)
}

func (c *Catalog) List() []models.Product {
	out := make([]models.Product, 0, len(c.products))
	for _, p := range c.products {
		out = append(out, p.Clone())
	}
	return out
}

// Page returns one page of the catalog (1-based) and the total product count.
func (c *Catalog) Page(page, limit int) ([]models.Product, int) {
	total := len(c.products)
	if page < 1 || limit < 1 {
		return []models.Product{}, total
	}
	// compare page numbers first so a huge page cannot overflow the offset
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	if page > pages {
		return []models.Product{}, total
	}
	offset := (page - 1) * limit
	end := offset + min(limit, total-offset)

	out := make([]models.Product, 0, end-offset)
	for _, p := range c.products[offset:end] {
		out = append(out, p.Clone())
	}
	return out, total
}

func (c *Catalog) Categories() []string {
	seen := map[string]bool{}
	categories := []string{}
	for _, p := range c.products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	sort.Strings(categories)
	return categories
}

type ProductFilter struct {
	Search    string
	Category  string
	Status    models.ProductStatus
	MinPrice  int64
	MaxPrice  int64
	SortName  string
	SortPrice string
}

// Filter matches on name, category, status and unit price range. Name sorting
// wins over price sorting; with neither, catalog order is kept.
func (c *Catalog) Filter(f ProductFilter) []models.Product {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	category := strings.TrimSpace(f.Category)

	out := []models.Product{}
	for _, p := range c.products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		if f.Status != models.StatusNone && p.Status != f.Status {
			continue
		}
		if f.MinPrice > 0 && p.UnitPrice() < f.MinPrice {
			continue
		}
		if f.MaxPrice > 0 && p.UnitPrice() > f.MaxPrice {
			continue
		}
		out = append(out, p.Clone())
	}

	switch {
	case f.SortName == "asc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	case f.SortName == "desc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name > out[j].Name })
	case f.SortPrice == "asc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].UnitPrice() < out[j].UnitPrice() })
	case f.SortPrice == "desc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].UnitPrice() > out[j].UnitPrice() })
	}

	return out
}
