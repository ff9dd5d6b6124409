package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agrovia/kiosk-service/internal/report"
)

type ReportHandler struct {
	uc report.UseCase
}

func NewReportHandler(uc report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func (h *ReportHandler) Register(r *gin.RouterGroup) {
	r.GET("/reports/summary", h.Summary)
	r.GET("/reports/compliance", h.Compliance)
}

func (h *ReportHandler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, h.uc.Summary(c.Request.Context()))
}

func (h *ReportHandler) Compliance(c *gin.Context) {
	metrics := h.uc.Compliance(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"metrics": metrics, "total": len(metrics)})
}
