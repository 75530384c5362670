package handler

import (
	"net/http"

	"github.com/cloud-wave-best-zizon/backoffice-service/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
	logger           *zap.Logger
}

func NewAnalyticsHandler(analyticsService *service.AnalyticsService, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		logger:           logger,
	}
}

func (h *AnalyticsHandler) TotalRevenue(c *gin.Context) {
	revenue, err := h.analyticsService.TotalRevenue(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to compute revenue")
		return
	}
	c.JSON(http.StatusOK, gin.H{"total_revenue": revenue})
}

func (h *AnalyticsHandler) TopCustomers(c *gin.Context) {
	limit, err := intQuery(c, "limit", 5)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
		return
	}

	ranking, err := h.analyticsService.TopCustomers(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err, "Failed to rank customers")
		return
	}
	c.JSON(http.StatusOK, ranking)
}

// TopProduct renders the single best seller, or a null body when the ledger
// holds no line items.
func (h *AnalyticsHandler) TopProduct(c *gin.Context) {
	top, err := h.analyticsService.TopProduct(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to rank products")
		return
	}
	c.JSON(http.StatusOK, top)
}

func (h *AnalyticsHandler) Counts(c *gin.Context) {
	counts, err := h.analyticsService.Counts(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to count entities")
		return
	}
	c.JSON(http.StatusOK, counts)
}
