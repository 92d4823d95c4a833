package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"petal-pink/controllers"
	"petal-pink/handler"
	"petal-pink/middleware"
	"petal-pink/utils"
)

type Controllers struct {
	Products *controllers.ProductController
	Cart     *controllers.CartController
	Checkout *controllers.CheckoutController
	Tokens   *utils.SessionTokens
}

func SetupRoutes(router *gin.Engine, ctrls Controllers) {
	router.GET("/", gin.WrapF(handler.Handler))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	router.GET("/categories", ctrls.Products.GetAllCategories)
	router.GET("/products", ctrls.Products.GetAllProducts)
	router.GET("/products/filter", ctrls.Products.FilterProducts)
	router.GET("/products/:id", ctrls.Products.GetProductByID)

	router.POST("/cart/session", ctrls.Cart.CreateSession)

	cart := router.Group("/cart")
	cart.Use(middleware.CartSessionMiddleware(ctrls.Tokens))
	{
		cart.DELETE("/session", ctrls.Cart.EndSession)
		cart.GET("", ctrls.Cart.GetCart)
		cart.DELETE("", ctrls.Cart.ClearCart)
		cart.POST("/items", ctrls.Cart.AddItem)
		cart.PATCH("/items/:product_id", ctrls.Cart.UpdateItem)
		cart.DELETE("/items/:product_id", ctrls.Cart.RemoveItem)
		cart.POST("/items/:product_id/increment", ctrls.Cart.IncrementItem)
		cart.POST("/items/:product_id/decrement", ctrls.Cart.DecrementItem)
		cart.POST("/checkout", ctrls.Checkout.Checkout)
	}
}
