package api

import (
	"net/http"

	"pos_sales/internal/sales"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InitRoutes registers the sales journal and report endpoints on the given Gin engine.
func InitRoutes(e *gin.Engine, salesService *sales.Service, logger *zap.Logger) {
	salesHandler := NewSalesHandler(salesService, logger)

	e.GET("/products", salesHandler.handleListProducts)

	e.POST("/sales", salesHandler.handleCreateSale)
	e.POST("/sales/quote", salesHandler.handleQuote)
	e.GET("/sales", salesHandler.handleListSales)
	e.DELETE("/sales", salesHandler.handleClearSales)

	e.GET("/reports/dashboard", salesHandler.handleDashboard)

	e.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
}
