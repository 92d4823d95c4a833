package repositories

import "petal-pink/models"

const productDetailLink = "/product-detail/"

var demoColorVariants = models.ColorVariants{
	{ID: 1, Name: "Violet", Color: "bg-violet-400", FeaturedImage: "/images/products/p1.jpg"},
	{ID: 2, Name: "Yellow", Color: "bg-yellow-400", FeaturedImage: "/images/products/p2.jpg"},
	{ID: 3, Name: "Orange", Color: "bg-orange-400", FeaturedImage: "/images/products/p3.jpg"},
	{ID: 4, Name: "Sky Blue", Color: "bg-sky-400", FeaturedImage: "/images/products/p4.jpg"},
	{ID: 5, Name: "Green", Color: "bg-green-400", FeaturedImage: "/images/products/p5.jpg"},
}

var demoImageVariants = models.ImageVariants{
	{ID: 1, Name: "Black", Thumbnail: "/images/products/v6.jpg", FeaturedImage: "/images/products/p1.jpg"},
	{ID: 2, Name: "White", Thumbnail: "/images/products/v2.jpg", FeaturedImage: "/images/products/p2.jpg"},
	{ID: 3, Name: "Orange", Thumbnail: "/images/products/v3.jpg", FeaturedImage: "/images/products/p3.jpg"},
	{ID: 4, Name: "Sky Blue", Thumbnail: "/images/products/v4.jpg", FeaturedImage: "/images/products/p4.jpg"},
	{ID: 5, Name: "Natural", Thumbnail: "/images/products/v5.jpg", FeaturedImage: "/images/products/p5.jpg"},
}

// DefaultProducts is the compiled-in storefront catalog.
func DefaultProducts() []models.Product {
	return []models.Product{
		{
			ID:       1,
			Name:     "Hair Oil",
			Category: "Category 1",
			Tags:     []string{"tag1", "tag2"},
			Price:    2500,
			Variants: demoColorVariants,
			ImageURL: "/img/Hair Oil.png",
			Link:     productDetailLink,
		},
		{
			ID:       2,
			Name:     "Serum",
			Category: "Category 1",
			Tags:     []string{"tag1", "tag2"},
			Price:    3200,
			Discount: 2800,
			Variants: models.NoVariants{},
			Status:   models.StatusDiscounted,
			ImageURL: "/img/Serum.png",
			Link:     productDetailLink,
		},
		{
			ID:       3,
			Name:     "Keratin Pack",
			Category: "Category 2",
			Tags:     []string{"tag1"},
			Price:    4500,
			Variants: demoImageVariants,
			Sizes:    []string{"S", "M", "L"},
			Status:   models.StatusNew,
			ImageURL: "/img/Keratin pack.png",
			Link:     productDetailLink,
		},
		{
			ID:       4,
			Name:     "Shampoo",
			Category: "Category 1",
			Tags:     []string{"tag1", "tag2"},
			Price:    2500,
			Variants: demoColorVariants,
			ImageURL: "/img/Shampoo.png",
			Link:     productDetailLink,
		},
		{
			ID:       5,
			Name:     "Indian Growth Mask",
			Category: "Category 2",
			Tags:     []string{"tag2"},
			Price:    3800,
			Variants: models.NoVariants{},
			Status:   models.StatusLimited,
			ImageURL: "/img/indian growth mask.png",
			Link:     productDetailLink,
		},
	}
}
