// internal/interfaces/http/handlers/report.go
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/webshop-backend/internal/config"
	"github.com/your-org/webshop-backend/internal/domain/report"
	"github.com/your-org/webshop-backend/internal/pkg/email"
	"gorm.io/gorm"
)

// ReportHandler handles admin report endpoints
type ReportHandler struct {
	reportService *report.Service
	emailService  *email.EmailService
	redisClient   *redis.Client
	config        *config.Config
}

// NewReportHandler creates a new report handler
func NewReportHandler(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *ReportHandler {
	return &ReportHandler{
		reportService: report.NewService(db, nil),
		emailService:  email.NewEmailService(cfg),
		redisClient:   redisClient,
		config:        cfg,
	}
}

// GetReport handles GET /admin/reports?period=daily&date=2026-08-29
func (h *ReportHandler) GetReport(c *gin.Context) {
	period, err := report.ParsePeriod(c.DefaultQuery("period", "daily"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid period, must be one of: daily, weekly, monthly, yearly",
		})
		return
	}

	var reference *time.Time
	if dateParam := c.Query("date"); dateParam != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateParam, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date, expected format YYYY-MM-DD",
			})
			return
		}
		reference = &parsed
	}

	// Serve from cache when a fresh copy exists
	cacheKey := h.cacheKey(period, reference)
	if cached, err := h.redisClient.Get(c.Request.Context(), cacheKey).Result(); err == nil {
		var r report.Report
		if err := json.Unmarshal([]byte(cached), &r); err == nil {
			c.JSON(http.StatusOK, gin.H{
				"data":   r,
				"cached": true,
			})
			return
		}
	}

	r, err := h.reportService.Generate(c.Request.Context(), period, reference)
	if err != nil {
		logrus.WithError(err).Error("failed to generate report")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate report",
		})
		return
	}

	if data, err := json.Marshal(r); err == nil {
		_ = h.redisClient.Set(c.Request.Context(), cacheKey, data, h.config.Report.CacheTTL).Err()
	}

	c.JSON(http.StatusOK, gin.H{
		"data":   r,
		"cached": false,
	})
}

// EmailReport handles POST /admin/reports/email - generates a report and
// sends the summary to the configured admin address
func (h *ReportHandler) EmailReport(c *gin.Context) {
	var req struct {
		Period string `json:"period" binding:"required"`
		Date   string `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	period, err := report.ParsePeriod(req.Period)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid period, must be one of: daily, weekly, monthly, yearly",
		})
		return
	}

	var reference *time.Time
	if req.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date, expected format YYYY-MM-DD",
			})
			return
		}
		reference = &parsed
	}

	r, err := h.reportService.Generate(c.Request.Context(), period, reference)
	if err != nil {
		logrus.WithError(err).Error("failed to generate report")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate report",
		})
		return
	}

	if err := h.emailService.SendReportSummaryEmail(c.Request.Context(), r); err != nil {
		logrus.WithError(err).Error("failed to send report summary email")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to send report email",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Report email sent successfully",
		"period":  r.PeriodLabel,
	})
}

func (h *ReportHandler) cacheKey(period report.Period, reference *time.Time) string {
	date := "latest"
	if reference != nil {
		date = reference.Format("2006-01-02")
	}
	return fmt.Sprintf("report:%s:%s", period, date)
}
