package services

import (
	"math"

	"petal-pink/models"
	"petal-pink/repositories"
	"petal-pink/utils"
)

const maxPageLimit = 100

type ProductService struct {
	catalog    *repositories.Catalog
	ratingSeed uint64
}

func NewProductService(catalog *repositories.Catalog, ratingSeed uint64) *ProductService {
	return &ProductService{
		catalog:    catalog,
		ratingSeed: ratingSeed,
	}
}

func (s *ProductService) GetAllCategories() []string {
	return s.catalog.Categories()
}

func (s *ProductService) GetAllProducts(page, limit int) *models.PaginationResponse {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	products, total := s.catalog.Page(page, limit)
	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	return &models.PaginationResponse{
		Success: true,
		Message: "Products retrieved successfully",
		Data:    s.toResponses(products),
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages,
		},
	}
}

func (s *ProductService) GetProductByID(id int) (models.ProductResponse, error) {
	p, err := s.catalog.Resolve(id)
	if err != nil {
		return models.ProductResponse{}, err
	}
	return s.toResponse(p), nil
}

func (s *ProductService) FilterProducts(req models.ProductFilterRequest) ([]models.ProductResponse, error) {
	filter := repositories.ProductFilter{
		Search:    req.Search,
		Category:  req.Category,
		MinPrice:  req.MinPrice,
		MaxPrice:  req.MaxPrice,
		SortName:  req.SortName,
		SortPrice: req.SortPrice,
	}
	if req.Status != "" {
		status, err := models.ParseProductStatus(req.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = status
	}
	return s.toResponses(s.catalog.Filter(filter)), nil
}

func (s *ProductService) toResponse(p models.Product) models.ProductResponse {
	rating, reviews := utils.DisplayRating(p.ID, s.ratingSeed)
	return models.NewProductResponse(p, rating, reviews)
}

func (s *ProductService) toResponses(products []models.Product) []models.ProductResponse {
	out := make([]models.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, s.toResponse(p))
	}
	return out
}
