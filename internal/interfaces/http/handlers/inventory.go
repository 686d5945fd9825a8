// internal/interfaces/http/handlers/inventory.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/webshop-backend/internal/config"
	"github.com/your-org/webshop-backend/internal/domain/inventory"
	"gorm.io/gorm"
)

// InventoryHandler handles admin inventory endpoints
type InventoryHandler struct {
	inventoryService *inventory.Service
	config           *config.Config
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(db *gorm.DB, cfg *config.Config) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventory.NewService(db, cfg),
		config:           cfg,
	}
}

// Adjust handles POST /admin/inventory/adjust
func (h *InventoryHandler) Adjust(c *gin.Context) {
	var req inventory.AdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := h.inventoryService.Adjust(&req)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Stock adjusted successfully",
		"data":    log,
	})
}

// Restock handles POST /admin/inventory/restock
func (h *InventoryHandler) Restock(c *gin.Context) {
	var req inventory.RestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := h.inventoryService.Restock(&req)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Stock restocked successfully",
		"data":    log,
	})
}

// History handles GET /admin/inventory/:productId/history
func (h *InventoryHandler) History(c *gin.Context) {
	productID, err := parseIDParam(c, "productId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	limit, offset := parsePagination(c)

	logs, total, err := h.inventoryService.History(productID, limit, offset)
	if err != nil {
		logrus.WithError(err).Error("failed to list inventory history")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list inventory history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":   logs,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

// LowStock handles GET /admin/inventory/low-stock
func (h *InventoryHandler) LowStock(c *gin.Context) {
	threshold, err := strconv.Atoi(c.DefaultQuery("threshold", "5"))
	if err != nil || threshold < 0 {
		threshold = 5
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 || limit > 100 {
		limit = 20
	}

	products, err := h.inventoryService.LowStock(threshold, limit)
	if err != nil {
		logrus.WithError(err).Error("failed to list low stock products")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list low stock products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": products})
}
