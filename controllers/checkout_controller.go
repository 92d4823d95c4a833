package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"petal-pink/middleware"
	"petal-pink/models"
	"petal-pink/services"
)

type CheckoutController struct {
	checkout *services.CheckoutService
	logger   *zap.Logger
}

func NewCheckoutController(checkout *services.CheckoutService, logger *zap.Logger) *CheckoutController {
	return &CheckoutController{checkout: checkout, logger: logger}
}

// @Summary Checkout
// @Description Summarize the cart at current prices and clear it. No payment is taken.
// @Tags Cart
// @Produce json
// @Param X-Cart-Session header string true "Bearer cart session token"
// @Success 200 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Router /cart/checkout [post]
func (ctrl *CheckoutController) Checkout(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	summary, err := ctrl.checkout.Checkout(c.Request.Context(), sessionID)
	if err != nil {
		respondError(c, "Checkout failed", err)
		return
	}

	ctrl.logger.Info("cart checked out",
		zap.String("session_id", sessionID),
		zap.Int("item_count", summary.ItemCount),
		zap.Int64("subtotal", summary.Subtotal))

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order placed",
		Data:    summary,
	})
}
