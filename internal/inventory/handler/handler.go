package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/agrovia/kiosk-service/internal/inventory"
	"github.com/agrovia/kiosk-service/internal/inventory/dto"
	"github.com/agrovia/kiosk-service/pkg/logger"
)

type InventoryHandler struct {
	uc       inventory.UseCase
	validate *validator.Validate
	logger   *logger.Logger
}

func NewInventoryHandler(uc inventory.UseCase, validate *validator.Validate, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{
		uc:       uc,
		validate: validate,
		logger:   log,
	}
}

func (h *InventoryHandler) Register(r *gin.RouterGroup) {
	r.GET("/lots", h.ListLots)
	r.POST("/lots", h.AddLot)
	r.GET("/lots/:id", h.GetLot)
	r.PATCH("/lots/:id", h.UpdateLot)
	r.GET("/alerts", h.Alerts)
	r.GET("/overview", h.Overview)
}

func (h *InventoryHandler) ListLots(c *gin.Context) {
	var filters dto.LotFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	lots, err := h.uc.ListLots(c.Request.Context(), &filters)
	if err != nil {
		h.logger.Error("list lots failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"lots": lots, "total": len(lots)})
}

func (h *InventoryHandler) GetLot(c *gin.Context) {
	lot, err := h.uc.GetLot(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, inventory.ErrLotNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("get lot failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, lot)
}

func (h *InventoryHandler) AddLot(c *gin.Context) {
	var input dto.AddLotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lot, err := h.uc.AddLot(c.Request.Context(), &input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, lot)
}

func (h *InventoryHandler) UpdateLot(c *gin.Context) {
	var input dto.UpdateLotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lot, err := h.uc.UpdateLot(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		if errors.Is(err, inventory.ErrIntegrity) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if lot == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "lot not found"})
		return
	}
	c.JSON(http.StatusOK, lot)
}

func (h *InventoryHandler) Alerts(c *gin.Context) {
	horizon := 0
	if v := c.Query("horizon"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "horizon must be a non-negative integer"})
			return
		}
		horizon = parsed
	}

	alerts := h.uc.Alerts(c.Request.Context(), horizon)
	c.JSON(http.StatusOK, gin.H{"alerts": alerts, "total": len(alerts)})
}

func (h *InventoryHandler) Overview(c *gin.Context) {
	c.JSON(http.StatusOK, h.uc.Overview(c.Request.Context()))
}
