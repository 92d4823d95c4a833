package controllers

import (
	"net/http"
	"slices"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"petal-pink/middleware"
	"petal-pink/models"
	"petal-pink/services"
	"petal-pink/utils"
)

type CartController struct {
	sessions *services.CartSessions
	catalog  services.ProductResolver
	tokens   *utils.SessionTokens
	stepper  utils.QuantityStepper
	logger   *zap.Logger
}

func NewCartController(sessions *services.CartSessions, catalog services.ProductResolver, tokens *utils.SessionTokens, logger *zap.Logger) *CartController {
	return &CartController{
		sessions: sessions,
		catalog:  catalog,
		tokens:   tokens,
		stepper:  utils.DefaultStepper(),
		logger:   logger,
	}
}

func renderCart(store *services.CartStore) models.CartView {
	view := store.View()
	view.SubtotalText = utils.FormatPrice(view.Subtotal)
	return view
}

func (ctrl *CartController) store(c *gin.Context) (*services.CartStore, bool) {
	store, err := ctrl.sessions.Get(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		respondError(c, "Failed to open cart", err)
		return nil, false
	}
	return store, true
}

func productIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("product_id"))
	if err != nil {
		badRequest(c, "Invalid product ID", nil)
		return 0, false
	}
	return id, true
}

func notInCart(c *gin.Context, productID int) {
	c.JSON(http.StatusNotFound, models.ErrorResponse{
		Success: false,
		Message: "Item not in cart",
		Error:   "product " + strconv.Itoa(productID) + " is not in the cart",
	})
}

// @Summary Start a cart session
// @Description Issue a signed guest cart session token
// @Tags Cart
// @Produce json
// @Success 201 {object} models.Response
// @Router /cart/session [post]
func (ctrl *CartController) CreateSession(c *gin.Context) {
	sessionID, token, expiresAt, err := ctrl.tokens.Issue()
	if err != nil {
		respondError(c, "Failed to create cart session", err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Cart session created",
		Data: models.CartSession{
			SessionID: sessionID,
			Token:     token,
			ExpiresAt: expiresAt,
		},
	})
}

// @Summary End a cart session
// @Description Discard the session cart and its stored snapshot
// @Tags Cart
// @Produce json
// @Param X-Cart-Session header string true "Bearer cart session token"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /cart/session [delete]
func (ctrl *CartController) EndSession(c *gin.Context) {
	if err := ctrl.sessions.End(c.Request.Context(), middleware.SessionID(c)); err != nil {
		respondError(c, "Failed to end cart session", err)
		return
	}
	ctrl.logger.Info("cart session ended", zap.String("session_id", middleware.SessionID(c)))
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart session ended",
	})
}

// @Summary Get cart
// @Description Cart lines at current catalog prices, item count and subtotal
// @Tags Cart
// @Produce json
// @Param X-Cart-Session header string true "Bearer cart session token"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	store, ok := ctrl.store(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart retrieved",
		Data:    renderCart(store),
	})
}

// @Summary Add to cart
// @Description Add a quantity of a product; repeated adds accumulate
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Cart-Session header string true "Bearer cart session token"
// @Param request body models.AddToCartRequest true "Product and quantity (default 1)"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	if req.Size != "" {
		product, err := ctrl.catalog.Resolve(req.ProductID)
		if err != nil {
			respondError(c, "Product not found", err)
			return
		}
		if !slices.Contains(product.Sizes, req.Size) {
			badRequest(c, "Invalid size", nil)
			return
		}
	}

	store, ok := ctrl.store(c)
	if !ok {
		return
	}

	newQty, err := store.AddToCart(req.ProductID, quantity)
	if err != nil {
		respondError(c, "Failed to add item to cart", err)
		return
	}
	ctrl.logger.Debug("adding item",
		zap.String("session_id", middleware.SessionID(c)),
		zap.Int("product_id", req.ProductID),
		zap.Int("quantity", newQty))

	notification := models.CartNotification{
		ProductID: req.ProductID,
		Quantity:  quantity,
		Size:      req.Size,
	}
	if product, err := ctrl.catalog.Resolve(req.ProductID); err == nil {
		notification.Name = product.Name
		notification.ImageURL = product.ImageURL
		notification.UnitPrice = product.UnitPrice()
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Added to cart!",
		Data: models.AddToCartResponse{
			Quantity:     newQty,
			Cart:         renderCart(store),
			Notification: notification,
		},
	})
}

// @Summary Update cart item quantity
// @Description Replace the quantity in place; zero or less removes the item
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Cart-Session header string true "Bearer cart session token"
// @Param product_id path int true "Product ID"
// @Param request body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items/{product_id} [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	store, ok := ctrl.store(c)
	if !ok {
		return
	}

	if !store.UpdateQuantity(productID, *req.Quantity) {
		notInCart(c, productID)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart updated",
		Data:    renderCart(store),
	})
}

// @Summary Increment cart item
// @Description Step the quantity up by one, up to 99
// @Tags Cart
// @Produce json
// @Param X-Cart-Session header string true "Bearer cart session token"
// @Param product_id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items/{product_id}/increment [post]
func (ctrl *CartController) IncrementItem(c *gin.Context) {
	ctrl.step(c, ctrl.stepper.Increment)
}

// @Summary Decrement cart item
// @Description Step the quantity down by one, never below 1
// @Tags Cart
// @Produce json
// @Param X-Cart-Session header string true "Bearer cart session token"
// @Param product_id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items/{product_id}/decrement [post]
func (ctrl *CartController) DecrementItem(c *gin.Context) {
	ctrl.step(c, ctrl.stepper.Decrement)
}

func (ctrl *CartController) step(c *gin.Context, next func(int) int) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}

	store, ok := ctrl.store(c)
	if !ok {
		return
	}

	current, ok := store.Quantity(productID)
	if !ok || !store.UpdateQuantity(productID, next(current)) {
		notInCart(c, productID)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart updated",
		Data:    renderCart(store),
	})
}

// @Summary Remove cart item
// @Tags Cart
// @Produce json
// @Param X-Cart-Session header string true "Bearer cart session token"
// @Param product_id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items/{product_id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}

	store, ok := ctrl.store(c)
	if !ok {
		return
	}

	if !store.RemoveFromCart(productID) {
		notInCart(c, productID)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Item removed from cart",
		Data:    renderCart(store),
	})
}

// @Summary Clear cart
// @Tags Cart
// @Produce json
// @Param X-Cart-Session header string true "Bearer cart session token"
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	store, ok := ctrl.store(c)
	if !ok {
		return
	}

	store.Clear()

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart cleared",
		Data:    renderCart(store),
	})
}
