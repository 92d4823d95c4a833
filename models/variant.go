package models

type VariantKind string

const (
	VariantKindNone  VariantKind = "none"
	VariantKindColor VariantKind = "color"
	VariantKindImage VariantKind = "image"
)

// Variants is a closed union: NoVariants, ColorVariants or ImageVariants.
// Switch on the concrete type to handle every kind.
type Variants interface {
	Kind() VariantKind
	Len() int
	sealed()
}

type NoVariants struct{}

func (NoVariants) Kind() VariantKind { return VariantKindNone }
func (NoVariants) Len() int          { return 0 }
func (NoVariants) sealed()           {}

type ColorVariant struct {
	ID            int
	Name          string
	Color         string
	FeaturedImage string
}

type ColorVariants []ColorVariant

func (ColorVariants) Kind() VariantKind { return VariantKindColor }
func (v ColorVariants) Len() int        { return len(v) }
func (ColorVariants) sealed()           {}

type ImageVariant struct {
	ID            int
	Name          string
	Thumbnail     string
	FeaturedImage string
}

type ImageVariants []ImageVariant

func (ImageVariants) Kind() VariantKind { return VariantKindImage }
func (v ImageVariants) Len() int        { return len(v) }
func (ImageVariants) sealed()           {}

type VariantPayload struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Color         string `json:"color,omitempty"`
	Thumbnail     string `json:"thumbnail,omitempty"`
	FeaturedImage string `json:"featured_image"`
}

func VariantPayloads(v Variants) []VariantPayload {
	out := []VariantPayload{}
	switch vs := v.(type) {
	case ColorVariants:
		for _, c := range vs {
			out = append(out, VariantPayload{ID: c.ID, Name: c.Name, Color: c.Color, FeaturedImage: c.FeaturedImage})
		}
	case ImageVariants:
		for _, i := range vs {
			out = append(out, VariantPayload{ID: i.ID, Name: i.Name, Thumbnail: i.Thumbnail, FeaturedImage: i.FeaturedImage})
		}
	case NoVariants, nil:
	}
	return out
}

func cloneVariants(v Variants) Variants {
	switch vs := v.(type) {
	case ColorVariants:
		return append(ColorVariants(nil), vs...)
	case ImageVariants:
		return append(ImageVariants(nil), vs...)
	default:
		return NoVariants{}
	}
}
