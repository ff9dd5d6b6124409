package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/agrovia/kiosk-service/internal/billing"
	"github.com/agrovia/kiosk-service/internal/billing/dto"
	"github.com/agrovia/kiosk-service/internal/cart"
	"github.com/agrovia/kiosk-service/internal/inventory"
	"github.com/agrovia/kiosk-service/internal/pos"
	"github.com/agrovia/kiosk-service/pkg/logger"
)

type BillingHandler struct {
	uc       billing.UseCase
	validate *validator.Validate
	logger   *logger.Logger
}

func NewBillingHandler(uc billing.UseCase, validate *validator.Validate, log *logger.Logger) *BillingHandler {
	return &BillingHandler{
		uc:       uc,
		validate: validate,
		logger:   log,
	}
}

func (h *BillingHandler) Register(r *gin.RouterGroup) {
	r.POST("/checkout", h.Checkout)
	r.GET("/transactions", h.RecentTransactions)
	r.GET("/transactions/:id", h.GetBill)
	r.GET("/transactions/:id/receipt", h.Receipt)
}

func (h *BillingHandler) Checkout(c *gin.Context) {
	var input dto.CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bill, err := h.uc.Checkout(c.Request.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, inventory.ErrLotNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, pos.ErrLotExpired),
			errors.Is(err, pos.ErrNoStock),
			errors.Is(err, cart.ErrStockLimit),
			errors.Is(err, cart.ErrEmptyCart):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, inventory.ErrIntegrity):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			h.logger.Error("checkout failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}
	c.JSON(http.StatusCreated, bill)
}

func (h *BillingHandler) RecentTransactions(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	bills := h.uc.RecentTransactions(c.Request.Context(), limit)
	c.JSON(http.StatusOK, gin.H{"transactions": bills, "total": len(bills)})
}

func (h *BillingHandler) GetBill(c *gin.Context) {
	bill, err := h.uc.GetBill(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, billing.ErrBillNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("get bill failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, bill)
}

func (h *BillingHandler) Receipt(c *gin.Context) {
	receipt, err := h.uc.Receipt(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, billing.ErrBillNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("render receipt failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.String(http.StatusOK, receipt)
}
