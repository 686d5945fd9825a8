// internal/interfaces/http/handlers/newsletter.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/webshop-backend/internal/config"
	"github.com/your-org/webshop-backend/internal/domain/newsletter"
	"gorm.io/gorm"
)

// NewsletterHandler handles newsletter endpoints
type NewsletterHandler struct {
	newsletterService *newsletter.Service
	config            *config.Config
}

// NewNewsletterHandler creates a new newsletter handler
func NewNewsletterHandler(db *gorm.DB, cfg *config.Config) *NewsletterHandler {
	return &NewsletterHandler{
		newsletterService: newsletter.NewService(db, cfg),
		config:            cfg,
	}
}

// Subscribe handles POST /newsletter/subscribe
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub, err := h.newsletterService.Subscribe(req.Email)
	if err != nil {
		logrus.WithError(err).Error("failed to subscribe")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Subscribed successfully",
		"email":   sub.Email,
	})
}

// Unsubscribe handles POST /newsletter/unsubscribe
func (h *NewsletterHandler) Unsubscribe(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.newsletterService.Unsubscribe(req.Email); err != nil {
		if errors.Is(err, newsletter.ErrNotSubscribed) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Email is not subscribed"})
			return
		}
		logrus.WithError(err).Error("failed to unsubscribe")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unsubscribe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Unsubscribed successfully"})
}
