package api

import (
	"errors"
	"net/http"

	"pos_sales/internal/report"
	"pos_sales/internal/sales"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// salesHandler holds the sales service and implements HTTP handlers for sales operations.
type salesHandler struct {
	salesService *sales.Service
	logger       *zap.Logger
}

// NewSalesHandler creates a new sales handler.
func NewSalesHandler(salesService *sales.Service, logger *zap.Logger) *salesHandler {
	return &salesHandler{
		salesService: salesService,
		logger:       logger,
	}
}

type saleRequest struct {
	ItemName string `json:"itemName" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
	Date     string `json:"date"`
}

type quoteRequest struct {
	ItemName string `json:"itemName" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

// writeSaleError maps sales sentinels to status codes.
func writeSaleError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, sales.ErrProductNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
	case errors.Is(err, sales.ErrInvalidQuantity):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, sales.ErrInvalidDate):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// handleCreateSale handles the POST /sales endpoint.
func (h *salesHandler) handleCreateSale(ctx *gin.Context) {
	var req saleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("failed to bind JSON request", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	sale, err := h.salesService.CreateSale(ctx.Request.Context(), sales.SaleRequest{
		ItemName: req.ItemName,
		Quantity: req.Quantity,
		Date:     req.Date,
	})
	if err != nil {
		h.logger.Error("failed to create sale", zap.Error(err), zap.String("item_name", req.ItemName), zap.Int("quantity", req.Quantity))
		writeSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, sale)
}

// handleQuote handles POST /sales/quote, the price preview shown before a sale is added.
func (h *salesHandler) handleQuote(ctx *gin.Context) {
	var req quoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	total, err := h.salesService.Quote(req.ItemName, req.Quantity)
	if err != nil {
		writeSaleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"itemName": req.ItemName, "quantity": req.Quantity, "totalPrice": total})
}

func (h *salesHandler) handleListSales(ctx *gin.Context) {
	txs := h.salesService.Transactions(ctx.Request.Context())
	ctx.JSON(http.StatusOK, gin.H{"results": txs, "count": len(txs)})
}

func (h *salesHandler) handleClearSales(ctx *gin.Context) {
	if err := h.salesService.Clear(ctx.Request.Context()); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear sales"})
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (h *salesHandler) handleListProducts(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.salesService.Products())
}

// handleDashboard handles GET /reports/dashboard. Every call reads a fresh
// snapshot so the report reflects the latest writes.
func (h *salesHandler) handleDashboard(ctx *gin.Context) {
	mode, err := report.ParseMode(ctx.DefaultQuery("mode", string(report.Daily)))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "mode must be Daily, Weekly or Monthly"})
		return
	}
	reference := ctx.DefaultQuery("date", h.salesService.Today())

	txs := h.salesService.Transactions(ctx.Request.Context())
	dashboard := report.BuildDashboard(txs, mode, reference)

	if !dashboard.Period.ReferenceValid {
		h.logger.Warn("invalid reference date", zap.String("date", reference))
	}
	h.logger.Debug("dashboard built",
		zap.String("mode", string(mode)),
		zap.String("date", reference),
		zap.Int("transactions", len(txs)),
		zap.Int("period_transactions", dashboard.Period.Count),
	)

	ctx.JSON(http.StatusOK, dashboard)
}
