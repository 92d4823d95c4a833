package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"petal-pink/models"
	"petal-pink/repositories"
	"petal-pink/services"
)

type ProductController struct {
	products *services.ProductService
	cache    *repositories.ProductCache
	logger   *zap.Logger
}

func NewProductController(products *services.ProductService, cache *repositories.ProductCache, logger *zap.Logger) *ProductController {
	return &ProductController{products: products, cache: cache, logger: logger}
}

// @Summary Get all categories
// @Description Get list of product categories in the catalog
// @Tags Categories
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *ProductController) GetAllCategories(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Categories retrieved",
		Data:    ctrl.products.GetAllCategories(),
	})
}

// @Summary Get all products
// @Description Get paginated list of products
// @Tags Products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.PaginationResponse
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	ctx := c.Request.Context()
	if cached, ok := ctrl.cache.GetList(ctx, page, limit); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
		return
	}

	response := ctrl.products.GetAllProducts(page, limit)

	body, err := json.Marshal(response)
	if err != nil {
		respondError(c, "Failed to encode products", err)
		return
	}
	if err := ctrl.cache.SetList(ctx, page, limit, body); err != nil {
		ctrl.logger.Warn("product list cache write failed", zap.Error(err))
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// @Summary Filter products
// @Description Filter products by search, category, status, sort, and unit price range
// @Tags Products
// @Produce json
// @Param search query string false "Search by product name"
// @Param category query string false "Filter by category"
// @Param status query string false "Filter by status tag" Enums(new, limited, sold-out, discounted)
// @Param sort_name query string false "Sort by name" Enums(asc, desc)
// @Param sort_price query string false "Sort by price" Enums(asc, desc)
// @Param min_price query int false "Minimum unit price"
// @Param max_price query int false "Maximum unit price"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /products/filter [get]
func (ctrl *ProductController) FilterProducts(c *gin.Context) {
	var req models.ProductFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, "Invalid filter parameters", err)
		return
	}

	products, err := ctrl.products.FilterProducts(req)
	if err != nil {
		respondError(c, "Invalid filter parameters", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Products filtered",
		Data:    products,
	})
}

// @Summary Get product by ID
// @Description Get a single catalog product with its variants
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid product ID", nil)
		return
	}

	product, err := ctrl.products.GetProductByID(id)
	if err != nil {
		respondError(c, "Product not found", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Product retrieved",
		Data:    product,
	})
}
